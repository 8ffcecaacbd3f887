package cmd

import (
	"fmt"
	"strings"

	"socctl/pkg/config"
	"socctl/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage socctl configuration",
	Long: `View or edit your local configuration settings (feed URL, theme, cache lifetime,
SFTP publish target). Without flags the interactive settings menu opens.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		changed := false

		if cmd.Flags().Changed("set-base-url") {
			url, _ := cmd.Flags().GetString("set-base-url")
			if url != "" && !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
				return fmt.Errorf("base URL must be an http(s) URL, got '%s'", url)
			}
			cfg.BaseURL = strings.TrimRight(url, "/")
			changed = true
		}

		if cmd.Flags().Changed("set-accent") {
			cfg.AccentColor, _ = cmd.Flags().GetString("set-accent")
			changed = true
		}

		if cmd.Flags().Changed("set-cache-hours") {
			cfg.CacheHours, _ = cmd.Flags().GetInt("set-cache-hours")
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Printf("✅ Configuration saved (feed: %s, cache: %s)\n", cfg.FeedURL(), cfg.CacheDuration())
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-base-url", "", "Set the schedule of classes feed URL (empty resets to the registrar)")
	configCmd.Flags().String("set-accent", "", "Set the accent color (ANSI number or #RRGGBB)")
	configCmd.Flags().Int("set-cache-hours", 0, "Set how long downloaded feeds are cached (negative disables, 0 resets)")
}
