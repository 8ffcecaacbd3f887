package scraper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"socctl/pkg/soc"
)

func numbers(courses []soc.CourseEntry) []string {
	var out []string
	for _, c := range courses {
		out = append(out, string(c.Number))
	}
	return out
}

func TestFilterCourses(t *testing.T) {
	term, err := ParseSchedule(strings.NewReader(sampleFeed), soc.Fall, nil)
	if err != nil {
		t.Fatalf("ParseSchedule failed: %v", err)
	}

	tests := []struct {
		name    string
		queries []string
		want    []string
	}{
		{"number", []string{"48104"}, []string{"48104"}},
		{"dashed number", []string{"48-214"}, []string{"48214"}},
		{"department", []string{"48"}, []string{"48025", "48104", "48214", "48313"}},
		{"title fragment", []string{"shop"}, []string{"48104"}},
		{"any query matches", []string{"48025", "modeling"}, []string{"48025", "48214"}},
		{"no match", []string{"15122"}, nil},
		{"blank queries keep all", []string{" ", ""}, []string{"48025", "48104", "48214", "48313"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, numbers(FilterCourses(term.Courses, tt.queries...)))
		})
	}
}
