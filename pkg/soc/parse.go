package soc

// Parse classifies and groups a feed body whose banner has already been removed.
// r may be nil.
func Parse(text string, season Season, year Year, r Reporter) []CourseEntry {
	lines := NewClassifier(r).ClassifyText(text)
	return NewGrouper(r).Group(lines, season, year)
}
