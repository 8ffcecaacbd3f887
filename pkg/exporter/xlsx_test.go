package exporter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"

	"socctl/pkg/soc"
)

func cellValue(t *testing.T, sh *xlsx.Sheet, row, col int) string {
	t.Helper()
	cell, err := sh.Cell(row, col)
	require.NoError(t, err)
	return cell.Value
}

func TestGenerateXLSX(t *testing.T) {
	courses := testCourses()
	courses = append(courses, soc.Parse(architectureFeed, soc.Spring, 2026, nil)[0])

	var buf bytes.Buffer
	require.NoError(t, GenerateXLSX(courses, &buf))

	wb, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 2)

	fall, ok := wb.Sheet["F25"]
	require.True(t, ok, "expected a sheet for Fall 2025")
	assert.Equal(t, "Course", cellValue(t, fall, 0, 0))
	assert.Equal(t, "48-025", cellValue(t, fall, 1, 0))
	assert.Equal(t, "First Year Seminar: Architecture Edition", cellValue(t, fall, 1, 1))
	assert.Equal(t, "3", cellValue(t, fall, 1, 2))
	assert.Equal(t, "R", cellValue(t, fall, 1, 5))
	assert.Equal(t, "12:30PM", cellValue(t, fall, 1, 6))
	assert.Equal(t, "MM A14", cellValue(t, fall, 1, 8))
	// header plus one row per meeting
	assert.Equal(t, 7, fall.MaxRow)

	spring, ok := wb.Sheet["S26"]
	require.True(t, ok, "expected a sheet for Spring 2026")
	assert.Equal(t, 2, spring.MaxRow)
}

func TestGenerateXLSXEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, GenerateXLSX(nil, &buf))

	wb, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 1)
	assert.Equal(t, "Schedule", wb.Sheets[0].Name)
}

func TestRows(t *testing.T) {
	rows := Rows(testCourses())
	require.Len(t, rows, 6)

	lec := rows[3]
	assert.Equal(t, "48-214", lec.Number)
	assert.Equal(t, "Lecture", lec.Type)
	assert.Equal(t, "TBA", lec.Days)
	assert.Empty(t, lec.Begin)
	assert.Equal(t, "DNM", lec.Location)
	assert.Equal(t, "F25", lec.Term)

	assert.Equal(t, "VAR", rows[1].Units)
	assert.Equal(t, "New Pedogogies: Storycraft", rows[5].Title)
}
