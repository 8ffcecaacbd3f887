package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"socctl/pkg/config"
	"socctl/pkg/scraper"
	"socctl/pkg/soc"
	"socctl/pkg/tui"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a schedule of classes feed and print what was found",
	Long: `Parse a schedule of classes feed, either downloaded for a term or read from a
local file, and print a summary or the full course tree.`,
	Example: `  socctl parse --season fall
  socctl parse --file sched_layout_fall.dat --season fall --tree --query 15-122`,
	RunE: func(cmd *cobra.Command, args []string) error {
		terms, err := loadTerms(cmd)
		if err != nil {
			return err
		}

		tree, _ := cmd.Flags().GetBool("tree")
		queries, _ := cmd.Flags().GetStringSlice("query")

		for _, term := range terms {
			courses := scraper.FilterCourses(term.Courses, queries...)
			fmt.Println(tui.RenderSummary(term.Label(), len(courses), term.Stats))

			for _, c := range courses {
				if tree {
					fmt.Println(tui.RenderCourse(c))
					continue
				}
				fmt.Printf("  %s  %-6s %s\n", c.Number.Full(), c.Units, c.Title())
			}
		}
		return nil
	},
}

// loadTerms reads --file when it is set and otherwise downloads every --season.
func loadTerms(cmd *cobra.Command) ([]*scraper.Term, error) {
	file, _ := cmd.Flags().GetString("file")
	names, _ := cmd.Flags().GetStringSlice("season")
	noCache, _ := cmd.Flags().GetBool("no-cache")

	seasons := make([]soc.Season, 0, len(names))
	for _, name := range names {
		s, err := soc.ParseSeason(name)
		if err != nil {
			return nil, err
		}
		seasons = append(seasons, s)
	}
	if len(seasons) == 0 {
		return nil, fmt.Errorf("at least one --season is required")
	}

	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open feed: %w", err)
		}
		defer f.Close()

		term, err := scraper.ParseSchedule(f, seasons[0], newReporter())
		if err != nil {
			return nil, err
		}
		return []*scraper.Term{term}, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	client := scraper.NewClient(cfg)
	if noCache {
		client = client.WithoutCache()
	}
	client.Reporter = newReporter()

	var terms []*scraper.Term
	_ = spinner.New().
		Title(fmt.Sprintf("Fetching %d schedule(s) from %s...", len(seasons), cfg.FeedURL())).
		Action(func() {
			terms, err = client.FetchAll(context.Background(), seasons)
		}).
		Run()

	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}
	return terms, nil
}

// addSourceFlags registers the flags read by loadTerms.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("season", "s", []string{"fall"}, "Term(s) to load: fall, spring, summer_1, summer_2")
	cmd.Flags().StringP("file", "f", "", "Parse a local feed file instead of downloading (uses the first --season)")
	cmd.Flags().Bool("no-cache", false, "Always download, ignoring the local feed cache")
	cmd.Flags().StringSliceP("query", "q", nil, "Only keep courses matching a number, department or title fragment")
}

func init() {
	rootCmd.AddCommand(parseCmd)
	addSourceFlags(parseCmd)
	parseCmd.Flags().BoolP("tree", "t", false, "Print every component and meeting")
}
