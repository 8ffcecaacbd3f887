package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"socctl/pkg/soc"
)

func TestReporterLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)
	r := NewReporter(logger)

	r.UnknownLine("\t\t\tfoo\tbar")
	r.MissingUnits("99999")
	r.SkippedLine(soc.Line{Kind: soc.Department, Text: "Architecture"})

	out := buf.String()
	assert.Contains(t, out, "unrecognised feed line")
	assert.Contains(t, out, `"level":"warn"`)
	assert.NotContains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"course":"99-999"`)
	assert.NotContains(t, out, "skipped line", "trace is below info")
}

func TestVerboseShowsSkippedLines(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(New(&buf, true))

	soc.Parse("\tArchitecture\n\t48025\tSeminar\n\t\t\t3.0\tA\tR\t12:30PM\t01:50PM\tMM A14\tPittsburgh\tWorkinger", soc.Fall, 2025, r)

	assert.Contains(t, buf.String(), "skipped line outside a course")
	assert.Contains(t, buf.String(), "Department: Architecture")
}

func TestQuietShowsUnknownLines(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(New(&buf, false))

	r.UnknownLine("\t\t\tfoo\tbar")
	r.MissingUnits("15122")
	r.SkippedLine(soc.Line{Kind: soc.Department, Text: "Architecture"})

	assert.Contains(t, buf.String(), "unrecognised feed line")
	assert.Contains(t, buf.String(), "defaulting to VAR")
	assert.NotContains(t, buf.String(), "skipped line")
}
