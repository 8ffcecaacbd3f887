// Package logging builds the zerolog logger used across socctl and adapts it to the
// parser's diagnostic hooks.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"socctl/pkg/soc"
)

// New returns a logger writing human readable lines to w. Verbose lowers the level
// to trace so that every dropped feed line is shown.
func New(w io.Writer, verbose bool) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.TraceLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
	}

	return zerolog.New(console).
		Level(level).
		With().
		Timestamp().
		Str("app", "socctl").
		Logger()
}

// Reporter forwards parser diagnostics to a zerolog logger.
type Reporter struct {
	log zerolog.Logger
}

// NewReporter wraps logger as a soc.Reporter.
func NewReporter(logger zerolog.Logger) *Reporter {
	return &Reporter{log: logger.With().Str("component", "parser").Logger()}
}

var _ soc.Reporter = (*Reporter)(nil)

func (r *Reporter) UnknownLine(raw string) {
	r.log.Warn().Str("line", raw).Msg("unrecognised feed line")
}

func (r *Reporter) MissingUnits(number soc.CourseNumber) {
	r.log.Warn().Str("course", number.Full()).Msg("no units found, defaulting to VAR")
}

func (r *Reporter) SkippedLine(line soc.Line) {
	r.log.Trace().Stringer("kind", line.Kind).Str("line", line.String()).Msg("skipped line outside a course")
}
