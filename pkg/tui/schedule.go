package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"socctl/pkg/config"
	"socctl/pkg/exporter"
	"socctl/pkg/publish"
	"socctl/pkg/scraper"
	"socctl/pkg/soc"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

const dateLayout = "2006-01-02"

// pickTerms asks which seasons to load and fetches them.
func pickTerms(ctx context.Context, cfg *config.AppConfig, client *scraper.Client) ([]*scraper.Term, error) {
	var available []soc.Season
	_ = spinner.New().
		Title("Checking which schedules are published...").
		Action(func() {
			available = client.AvailableSeasons(ctx)
		}).
		Run()

	if len(available) == 0 {
		return nil, fmt.Errorf("no schedule of classes feeds are reachable at %s", cfg.FeedURL())
	}

	saved := make(map[string]bool)
	for _, s := range cfg.SavedSeasons {
		saved[s] = true
	}

	var options []huh.Option[string]
	for _, s := range available {
		options = append(options, huh.NewOption(s.String(), s.Slug()).Selected(saved[s.Slug()]))
	}

	var selected []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select the term(s) to load").
				Description("Space = toggle, Enter = confirm").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, nil
	}

	seasons := make([]soc.Season, 0, len(selected))
	for _, slug := range selected {
		s, err := soc.ParseSeason(slug)
		if err != nil {
			return nil, err
		}
		seasons = append(seasons, s)
	}

	var terms []*scraper.Term
	var err error
	_ = spinner.New().
		Title("Downloading and parsing schedules...").
		Action(func() {
			terms, err = client.FetchAll(ctx, seasons)
		}).
		Run()

	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedules: %w", err)
	}
	return terms, nil
}

func courseKey(c soc.CourseEntry) string {
	return c.Season.Slug() + "/" + string(c.Number)
}

// RunScheduleTUI runs the interactive flow for selecting courses and exporting them
func RunScheduleTUI() error {
	fmt.Println(accentStyle.Render("Welcome to the socctl Exporter!"))

	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client := scraper.NewClient(cfg)

	terms, err := pickTerms(ctx, cfg, client)
	if err != nil {
		return err
	}
	if len(terms) == 0 {
		fmt.Println(errorStyle.Render("No terms selected!"))
		return nil
	}

	savedCourses := make(map[string]bool)
	for _, n := range cfg.SavedCourses {
		savedCourses[n] = true
	}

	var all []soc.CourseEntry
	var courseOptions []huh.Option[string]
	for _, term := range terms {
		fmt.Println(RenderSummary(term.Label(), len(term.Courses), term.Stats))
		for _, c := range term.Courses {
			all = append(all, c)
			label := fmt.Sprintf("%s  %s  %s", term.Label(), c.Number.Full(), c.Title())
			opt := huh.NewOption(label, courseKey(c)).
				Selected(savedCourses[string(c.Number)] || savedCourses[c.Number.Full()])
			courseOptions = append(courseOptions, opt)
		}
	}

	if len(all) == 0 {
		fmt.Println(errorStyle.Render("No courses found in the selected terms!"))
		return nil
	}

	var selectedKeys []string
	var format string
	var outputFile string
	var remember bool

	coursesForm := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select courses to export").
				Description("Space = toggle, Enter = confirm. Start typing to filter.").
				Options(courseOptions...).
				Value(&selectedKeys).
				Filterable(true).
				Height(12),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Export format").
				Options(
					huh.NewOption("📅 Calendar (.ics)", string(exporter.FormatICS)),
					huh.NewOption("📊 Spreadsheet (.xlsx)", string(exporter.FormatXLSX)),
				).
				Value(&format),

			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),

			huh.NewConfirm().
				Title("Remember these courses for next time?").
				Value(&remember),
		),
	).WithTheme(GetTheme())

	// Defaults
	outputFile = "schedule"

	if err := coursesForm.Run(); err != nil {
		return err
	}

	if len(selectedKeys) == 0 {
		fmt.Println(errorStyle.Render("No courses selected!"))
		return nil
	}

	selected := make(map[string]bool)
	for _, k := range selectedKeys {
		selected[k] = true
	}

	var chosen []soc.CourseEntry
	var numbers []string
	for _, c := range all {
		if selected[courseKey(c)] {
			chosen = append(chosen, c)
			numbers = append(numbers, string(c.Number))
		}
	}

	fmtChoice := exporter.Format(format)
	outputFile = fmtChoice.EnsureExt(outputFile)

	var opts exporter.ICSOptions
	if fmtChoice == exporter.FormatICS {
		opts, err = askICSOptions()
		if err != nil {
			return err
		}
	}

	if err := exporter.WriteFile(outputFile, fmtChoice, chosen, opts); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported %d courses to %s", len(chosen), outputFile)))

	if remember {
		cfg.SavedCourses = numbers
		cfg.SavedSeasons = nil
		for _, t := range terms {
			cfg.SavedSeasons = append(cfg.SavedSeasons, t.Season.Slug())
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
	}

	return offerUpload(ctx, cfg, outputFile)
}

func askICSOptions() (exporter.ICSOptions, error) {
	start := time.Now().Format(dateLayout)
	weeks := "15"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("First day of classes").
				Description("YYYY-MM-DD").
				Value(&start).
				Validate(func(s string) error {
					_, err := time.Parse(dateLayout, s)
					return err
				}),
			huh.NewInput().
				Title("Number of weeks").
				Value(&weeks).
				Validate(func(s string) error {
					if n, err := strconv.Atoi(s); err != nil || n <= 0 {
						return fmt.Errorf("enter a positive number of weeks")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return exporter.ICSOptions{}, err
	}

	termStart, _ := time.Parse(dateLayout, start)
	n, _ := strconv.Atoi(weeks)
	return exporter.ICSOptions{TermStart: termStart, Weeks: n}, nil
}

func offerUpload(ctx context.Context, cfg *config.AppConfig, path string) error {
	if !cfg.SFTP.Configured() || cfg.SFTP.Password == "" {
		return nil
	}

	var upload bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Publish %s to %s?", filepath.Base(path), cfg.SFTP.Host)).
				Value(&upload),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}
	if !upload {
		return nil
	}

	var err error
	_ = spinner.New().
		Title(fmt.Sprintf("Uploading to %s...", cfg.SFTP.Host)).
		Action(func() {
			err = publish.UploadFile(ctx, cfg.SFTP, path, filepath.Base(path))
		}).
		Run()

	if err != nil {
		return fmt.Errorf("failed to publish: %w", err)
	}
	fmt.Println(accentStyle.Render("✅ Published."))
	return nil
}
