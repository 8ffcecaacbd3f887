package scraper

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"socctl/pkg/soc"
)

// AvailableSeasons checks which seasons currently have a published feed. Seasons whose
// feed cannot be reached are left out rather than reported as errors.
func (c *Client) AvailableSeasons(ctx context.Context) []soc.Season {
	all := soc.AllSeasons()
	found := make([]bool, len(all))

	var g errgroup.Group
	for i, season := range all {
		i, season := i, season // per-iteration copies (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			resp, err := c.do(ctx, http.MethodHead, FeedName(season))
			if err != nil {
				return nil
			}
			resp.Body.Close()
			found[i] = true
			return nil
		})
	}
	_ = g.Wait()

	var seasons []soc.Season
	for i, ok := range found {
		if ok {
			seasons = append(seasons, all[i])
		}
	}
	return seasons
}
