package exporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"ics":           FormatICS,
		"XLSX":          FormatXLSX,
		"schedule.ics":  FormatICS,
		"out/Fall.xlsx": FormatXLSX,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("csv")
	assert.Error(t, err)
}

func TestEnsureExt(t *testing.T) {
	assert.Equal(t, "schedule.ics", FormatICS.EnsureExt("schedule"))
	assert.Equal(t, "schedule.ICS", FormatICS.EnsureExt("schedule.ICS"))
	assert.Equal(t, "f25.xlsx", FormatXLSX.EnsureExt("f25"))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	icsPath := filepath.Join(dir, "schedule.ics")
	require.NoError(t, WriteFile(icsPath, FormatICS, testCourses(), ICSOptions{TermStart: termStart(), Weeks: 2}))
	data, err := os.ReadFile(icsPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "BEGIN:VCALENDAR"))

	xlsxPath := filepath.Join(dir, "schedule.xlsx")
	require.NoError(t, WriteFile(xlsxPath, FormatXLSX, testCourses(), ICSOptions{}))
	data, err = os.ReadFile(xlsxPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "PK"), "xlsx files are zip archives")

	err = WriteFile(filepath.Join(dir, "bad.ics"), FormatICS, testCourses(), ICSOptions{})
	assert.Error(t, err, "ICS export needs a term start")
}
