package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"socctl/pkg/logging"
	"socctl/pkg/soc"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "socctl",
	Short: "A CLI and TUI for the Carnegie Mellon Schedule of Classes",
	Long: `socctl downloads the registrar's Schedule of Classes feeds, parses them into
courses, sections and meetings, and exports the ones you pick to an .ics calendar,
an .xlsx spreadsheet or a PostgreSQL database.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newReporter logs parser diagnostics to stderr. Without --verbose only warnings show.
func newReporter() soc.Reporter {
	return logging.NewReporter(logging.New(os.Stderr, verbose))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every unrecognised or skipped feed line")
}
