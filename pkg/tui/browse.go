package tui

import (
	"context"
	"fmt"
	"strings"

	"socctl/pkg/config"
	"socctl/pkg/scraper"
	"socctl/pkg/soc"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

// maxBrowseResults caps how many courses are printed for a single query
const maxBrowseResults = 25

// RunBrowseTUI runs the interactive flow for searching a term's courses
func RunBrowseTUI() error {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client := scraper.NewClient(cfg)

	var selected string
	seasonOptions := make([]huh.Option[string], 0, 4)
	for _, s := range soc.AllSeasons() {
		seasonOptions = append(seasonOptions, huh.NewOption(s.String(), s.Slug()))
	}
	if len(cfg.SavedSeasons) > 0 {
		selected = cfg.SavedSeasons[0]
	}

	seasonForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select Term").
				Options(seasonOptions...).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := seasonForm.Run(); err != nil {
		return err
	}

	season, err := soc.ParseSeason(selected)
	if err != nil {
		return err
	}

	var term *scraper.Term
	_ = spinner.New().
		Title(fmt.Sprintf("Fetching the %s schedule of classes...", season)).
		Action(func() {
			term, err = client.FetchSchedule(ctx, season)
		}).
		Run()

	if err != nil {
		return fmt.Errorf("failed to fetch schedule: %w", err)
	}

	fmt.Println(RenderSummary(term.Label(), len(term.Courses), term.Stats))

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Accent())).Bold(true).Underline(true)

	for {
		var query string
		queryForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Search courses").
					Description("Course number (15-122), department (15) or part of a title. Separate several with commas. Leave empty to quit.").
					Value(&query),
			),
		).WithTheme(GetTheme())

		if err := queryForm.Run(); err != nil {
			return err
		}

		query = strings.TrimSpace(query)
		if query == "" {
			return nil
		}

		matches := scraper.FilterCourses(term.Courses, strings.Split(query, ",")...)
		if len(matches) == 0 {
			fmt.Println(errorStyle.Render(fmt.Sprintf("No courses match '%s'", query)))
			continue
		}

		fmt.Printf("\n%s\n\n", headerStyle.Render(fmt.Sprintf("%d matches in %s", len(matches), term.Label())))
		for i, c := range matches {
			if i == maxBrowseResults {
				fmt.Println(mutedStyle.Render(fmt.Sprintf("... and %d more. Narrow the search to see them.", len(matches)-maxBrowseResults)))
				break
			}
			fmt.Println(RenderCourse(c))
		}
	}
}
