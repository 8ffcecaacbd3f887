package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"socctl/pkg/soc"
)

// headerLines is the size of the banner that precedes the course listing.
const headerLines = 11

// yearLine is the banner line whose last word is the academic year.
const yearLine = 3

// ErrNoYear is returned when the banner does not carry a year.
var ErrNoYear = errors.New("could not find the year in the feed banner")

// SplitHeader separates the banner from the course listing and reads the year.
func SplitHeader(text string) (string, soc.Year, error) {
	var banner []string
	rest := text
	for len(banner) < headerLines && rest != "" {
		line, after, _ := strings.Cut(rest, "\n")
		banner = append(banner, strings.TrimRight(line, "\r"))
		rest = after
	}

	if len(banner) <= yearLine {
		return rest, 0, ErrNoYear
	}
	fields := strings.Fields(banner[yearLine])
	if len(fields) == 0 {
		return rest, 0, ErrNoYear
	}
	year, err := soc.ParseYear(fields[len(fields)-1])
	if err != nil {
		return rest, 0, fmt.Errorf("%w: %v", ErrNoYear, err)
	}
	return rest, year, nil
}

// ParseSchedule parses a complete feed, banner included.
func ParseSchedule(r io.Reader, season soc.Season, reporter soc.Reporter) (*Term, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}

	body, year, err := SplitHeader(string(raw))
	if err != nil {
		return nil, err
	}

	tally := soc.NewTally()
	rep := soc.Reporter(tally)
	if reporter != nil {
		rep = soc.MultiReporter{tally, reporter}
	}

	return &Term{
		Season:  season,
		Year:    year,
		Courses: soc.Parse(body, season, year, rep),
		Stats:   tally.Stats(),
	}, nil
}

// FetchRaw returns the feed for season, from the disk cache when it is fresh.
func (c *Client) FetchRaw(ctx context.Context, season soc.Season) ([]byte, error) {
	name := FeedName(season)
	if data, ok := readCache(season.Slug(), c.cacheTTL); ok {
		return data, nil
	}

	resp, err := c.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	if c.cacheTTL > 0 {
		writeCache(season.Slug(), data)
	}
	return data, nil
}

// FetchSchedule downloads and parses the feed for season.
func (c *Client) FetchSchedule(ctx context.Context, season soc.Season) (*Term, error) {
	data, err := c.FetchRaw(ctx, season)
	if err != nil {
		return nil, err
	}

	term, err := ParseSchedule(bytes.NewReader(data), season, c.Reporter)
	if err != nil {
		return nil, fmt.Errorf("%s feed: %w", season, err)
	}
	return term, nil
}

// FetchAll fetches and parses several seasons concurrently. Terms are returned in the
// order the seasons were given; the first failure cancels the rest.
func (c *Client) FetchAll(ctx context.Context, seasons []soc.Season) ([]*Term, error) {
	terms := make([]*Term, len(seasons))

	g, ctx := errgroup.WithContext(ctx)
	for i, season := range seasons {
		i, season := i, season // per-iteration copies (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			term, err := c.FetchSchedule(ctx, season)
			if err != nil {
				return err
			}
			terms[i] = term
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return terms, nil
}
