package tui

import (
	"fmt"
	"strconv"
	"strings"

	"socctl/pkg/config"
	"socctl/pkg/soc"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Schedule Feed URL", "feed"),
						huh.NewOption("Set Cache Lifetime", "cache"),
						huh.NewOption("Set Saved Terms", "seasons"),
						huh.NewOption("Set Saved Courses", "courses"),
						huh.NewOption("Set SFTP Publish Target", "sftp"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "feed":
			err = runSetFeedTUI(cfg)
		case "cache":
			err = runSetCacheTUI(cfg)
		case "seasons":
			err = runSetSavedSeasonsTUI(cfg)
		case "courses":
			err = runSetSavedCoursesTUI(cfg)
		case "sftp":
			err = runSetSFTPTUI(cfg)
		case "view":
			printConfig(cfg)
		}

		if err != nil {
			return err
		}
	}
}

func printConfig(cfg *config.AppConfig) {
	fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.socctl.json) ---"))
	fmt.Printf("Feed URL: %s\n", cfg.FeedURL())
	fmt.Printf("Cache Lifetime: %s\n", cfg.CacheDuration())
	fmt.Printf("Saved Terms: %s\n", strings.Join(cfg.SavedSeasons, ", "))
	fmt.Printf("Saved Courses: %d\n", len(cfg.SavedCourses))
	if cfg.SFTP.Configured() {
		fmt.Printf("SFTP Target: %s@%s:%s\n", cfg.SFTP.User, cfg.SFTP.Host, cfg.SFTP.RemoteDir)
	} else {
		fmt.Println("SFTP Target: Not set")
	}
	fmt.Printf("Accent Color: %s\n", cfg.Accent())
	fmt.Println()
}

func runSetFeedTUI(cfg *config.AppConfig) error {
	input := cfg.FeedURL()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schedule of Classes base URL").
				Description("Feeds are read from <url>/sched_layout_<term>.dat").
				Value(&input).
				Validate(func(s string) error {
					if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
						return fmt.Errorf("must be an http(s) URL")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.BaseURL = strings.TrimRight(input, "/")
	if cfg.BaseURL == config.DefaultBaseURL {
		cfg.BaseURL = ""
	}
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Feed URL set to: %s\n", cfg.FeedURL())))
	return nil
}

func runSetCacheTUI(cfg *config.AppConfig) error {
	input := strconv.Itoa(int(cfg.CacheDuration().Hours()))

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("How many hours should downloaded schedules be cached?").
				Description("0 disables the cache.").
				Value(&input).
				Validate(func(s string) error {
					if n, err := strconv.Atoi(s); err != nil || n < 0 {
						return fmt.Errorf("enter a whole number of hours")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	hours, _ := strconv.Atoi(input)
	if hours == 0 {
		hours = -1
	}
	cfg.CacheHours = hours
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Cache lifetime set to %s\n", cfg.CacheDuration())))
	return nil
}

func runSetSavedSeasonsTUI(cfg *config.AppConfig) error {
	existing := make(map[string]bool)
	for _, s := range cfg.SavedSeasons {
		existing[s] = true
	}

	var options []huh.Option[string]
	for _, s := range soc.AllSeasons() {
		options = append(options, huh.NewOption(s.String(), s.Slug()).Selected(existing[s.Slug()]))
	}

	var selected []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select the terms to preselect when exporting").
				Description("Space = toggle, Enter = confirm").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.SavedSeasons = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Successfully saved %d terms.\n", len(selected))))
	return nil
}

func runSetSavedCoursesTUI(cfg *config.AppConfig) error {
	input := strings.Join(cfg.SavedCourses, ", ")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Saved course numbers").
				Description("Comma separated, e.g. 15-122, 21127. These are preselected when exporting.").
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	var numbers []string
	for _, field := range strings.Split(input, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := soc.ParseCourseNumber(strings.ReplaceAll(field, "-", ""))
		if err != nil {
			fmt.Println(errorStyle.Render(fmt.Sprintf("Skipping '%s': not a course number", field)))
			continue
		}
		numbers = append(numbers, string(n))
	}

	cfg.SavedCourses = numbers
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Saved %d courses.\n", len(numbers))))
	return nil
}

func runSetSFTPTUI(cfg *config.AppConfig) error {
	target := cfg.SFTP
	port := strconv.Itoa(target.Port)
	if target.Port == 0 {
		port = "22"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("SFTP host").
				Placeholder("calendar.example.edu").
				Value(&target.Host),
			huh.NewInput().
				Title("Port").
				Value(&port).
				Validate(func(s string) error {
					if n, err := strconv.Atoi(s); err != nil || n <= 0 || n > 65535 {
						return fmt.Errorf("must be a valid port")
					}
					return nil
				}),
			huh.NewInput().
				Title("User").
				Value(&target.User),
			huh.NewInput().
				Title("Remote directory").
				Placeholder("/var/www/calendars").
				Value(&target.RemoteDir),
		).Description("The password is read from SOCCTL_SFTP_PASSWORD and never saved."),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	target.Port, _ = strconv.Atoi(port)
	target.Password = ""
	cfg.SFTP = target
	if err := config.Save(cfg); err != nil {
		return err
	}

	if cfg.SFTP.Configured() {
		fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Exports can now be published to %s\n", cfg.SFTP.Host)))
	} else {
		fmt.Println(mutedStyle.Render("\nSFTP publishing is disabled until a host and user are set.\n"))
	}
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for socctl").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Carnegie Red", colorBlock(config.DefaultAccentColor)), config.DefaultAccentColor),
					huh.NewOption(fmt.Sprintf("%s Tartan Green", colorBlock("#297739")), "#297739"),
					huh.NewOption(fmt.Sprintf("%s Ocean Blue", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Iron Gray", colorBlock("#6D6E71")), "#6D6E71"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(func(str string) error {
						if len(str) != 7 || !strings.HasPrefix(str, "#") {
							return fmt.Errorf("must be a valid 6-character hex code starting with #")
						}
						return nil
					}),
			),
		).WithTheme(GetCustomTheme(cfg.Accent()))

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Accent())).Render("\n✅ Beautiful! The theme color is now saved.\n"))
	return nil
}
