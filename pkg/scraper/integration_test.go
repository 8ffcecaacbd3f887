package scraper

import (
	"context"
	"testing"
	"time"

	"socctl/pkg/soc"
)

// TestScraperIntegration_FetchSchedule actually connects to the registrar.
// If this test fails, the feed layout changed or the server is down.
func TestScraperIntegration_FetchSchedule(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping network test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client := NewClient(nil).WithoutCache()

	seasons := client.AvailableSeasons(ctx)
	if len(seasons) == 0 {
		t.Skip("registrar publishes no feeds right now")
	}

	term, err := client.FetchSchedule(ctx, seasons[0])
	if err != nil {
		t.Fatalf("Failed to fetch %s feed: %v", seasons[0], err)
	}

	if len(term.Courses) == 0 {
		t.Fatalf("Expected to find courses in the %s feed, found 0", term.Label())
	}
	if term.Year < 2000 {
		t.Errorf("Implausible year %d in %s feed", term.Year, term.Label())
	}

	for _, c := range term.Courses {
		if !soc.IsCourseNumber(string(c.Number)) {
			t.Errorf("Invalid course number %q", c.Number)
		}
		for _, comp := range c.Components {
			if len(comp.Meetings) == 0 {
				t.Errorf("Component %s of %s has no meetings", comp.Code, c.Number.Full())
			}
		}
	}

	t.Logf("Parsed %d courses for %s (%d unknown lines, %d skipped)",
		len(term.Courses), term.Label(), term.Stats.UnknownLines, term.Stats.SkippedTotal())
}
