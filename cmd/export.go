package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"socctl/pkg/config"
	"socctl/pkg/exporter"
	"socctl/pkg/publish"
	"socctl/pkg/scraper"
	"socctl/pkg/soc"
)

const formatPGSQL = "pgsql"

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Directly export courses to a calendar, spreadsheet or database",
	Long: `Export the courses of one or more terms without using the interactive TUI.
Use --query to narrow the export to specific courses.`,
	Example: `  socctl export --season fall --query 15-122,21-127 --start 2025-08-25 -o fall.ics
  socctl export --season fall --season spring --format xlsx -o schedule.xlsx
  socctl export --season fall --format pgsql --dsn postgres://localhost/soc?sslmode=disable`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		dsn, _ := cmd.Flags().GetString("dsn")
		start, _ := cmd.Flags().GetString("start")
		weeks, _ := cmd.Flags().GetInt("weeks")
		upload, _ := cmd.Flags().GetBool("upload")
		queries, _ := cmd.Flags().GetStringSlice("query")

		terms, err := loadTerms(cmd)
		if err != nil {
			return err
		}

		var courses []soc.CourseEntry
		for _, term := range terms {
			courses = append(courses, scraper.FilterCourses(term.Courses, queries...)...)
		}
		if len(courses) == 0 {
			return fmt.Errorf("no courses matched")
		}

		ctx := context.Background()

		if strings.EqualFold(format, formatPGSQL) {
			if dsn == "" {
				return fmt.Errorf("--dsn is required for the pgsql format")
			}
			_ = spinner.New().
				Title(fmt.Sprintf("Writing %d courses to PostgreSQL...", len(courses))).
				Action(func() {
					err = exporter.PGSQLExporter{DSN: dsn}.Write(ctx, courses)
				}).
				Run()
			if err != nil {
				return fmt.Errorf("failed to export to PostgreSQL: %w", err)
			}
			fmt.Printf("Successfully exported %d courses to PostgreSQL\n", len(courses))
			return nil
		}

		if format == "" {
			format = output
		}
		fileFormat, err := exporter.ParseFormat(format)
		if err != nil {
			return err
		}
		output = fileFormat.EnsureExt(output)

		var opts exporter.ICSOptions
		if fileFormat == exporter.FormatICS {
			termStart, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("--start must be the first day of classes as YYYY-MM-DD: %w", err)
			}
			opts = exporter.ICSOptions{TermStart: termStart, Weeks: weeks}
		}

		if err := exporter.WriteFile(output, fileFormat, courses, opts); err != nil {
			return err
		}
		fmt.Printf("Successfully exported %d courses to %s\n", len(courses), output)

		if !upload {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		_ = spinner.New().
			Title(fmt.Sprintf("Publishing %s to %s...", output, cfg.SFTP.Host)).
			Action(func() {
				err = publish.UploadFile(ctx, cfg.SFTP, output, filepath.Base(output))
			}).
			Run()
		if err != nil {
			return fmt.Errorf("failed to publish: %w", err)
		}
		fmt.Printf("Published %s to %s\n", filepath.Base(output), cfg.SFTP.Host)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addSourceFlags(exportCmd)

	exportCmd.Flags().String("format", "", "Export format: ics, xlsx or pgsql (default: from the output file name)")
	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
	exportCmd.Flags().String("dsn", "", "PostgreSQL connection string for --format pgsql")
	exportCmd.Flags().String("start", "", "First day of classes (YYYY-MM-DD), required for ics")
	exportCmd.Flags().Int("weeks", 15, "Number of weeks meetings repeat for in ics exports")
	exportCmd.Flags().Bool("upload", false, "Publish the exported file to the configured SFTP target")
}
