package scraper

import (
	"fmt"

	"socctl/pkg/soc"
)

// Term is one parsed schedule of classes feed.
type Term struct {
	Season  soc.Season
	Year    soc.Year
	Courses []soc.CourseEntry
	Stats   soc.Stats
}

// Label returns the registrar's short term name, e.g. "F25".
func (t *Term) Label() string {
	return t.Season.Code() + t.Year.Short()
}

// FeedName is the file name the registrar publishes a season under.
func FeedName(season soc.Season) string {
	return fmt.Sprintf("sched_layout_%s.dat", season.Slug())
}
