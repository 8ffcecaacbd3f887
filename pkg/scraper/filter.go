package scraper

import (
	"strings"

	"socctl/pkg/soc"
)

// FilterCourses keeps the courses matching any of the queries. A query matches a
// course number ("15122"), its dashed form ("15-122"), a department prefix ("15")
// or a case-insensitive fragment of the title. No queries keeps everything.
func FilterCourses(courses []soc.CourseEntry, queries ...string) []soc.CourseEntry {
	var terms []string
	for _, q := range queries {
		if q = strings.TrimSpace(q); q != "" {
			terms = append(terms, q)
		}
	}
	if len(terms) == 0 {
		return courses
	}

	var out []soc.CourseEntry
	for _, c := range courses {
		for _, q := range terms {
			if matchCourse(c, q) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func matchCourse(c soc.CourseEntry, query string) bool {
	number := string(c.Number)
	switch {
	case query == number, query == c.Number.Full():
		return true
	case len(query) == 2 && query == c.Number.Department():
		return true
	}
	return strings.Contains(strings.ToLower(c.Title()), strings.ToLower(query))
}
