package exporter

import (
	"fmt"
	"io"

	"github.com/tealeg/xlsx/v3"

	"socctl/pkg/soc"
)

var xlsxHeader = []string{
	"Course", "Title", "Units", "Section", "Type",
	"Days", "Begin", "End", "Location", "Campus", "Instructors",
}

// GenerateXLSX writes a workbook with one sheet per term and one row per meeting.
func GenerateXLSX(courses []soc.CourseEntry, w io.Writer) error {
	wb := xlsx.NewFile()
	sheets := map[string]*xlsx.Sheet{}

	for _, r := range Rows(courses) {
		sh, ok := sheets[r.Term]
		if !ok {
			var err error
			sh, err = wb.AddSheet(r.Term)
			if err != nil {
				return fmt.Errorf("failed to add sheet %s: %w", r.Term, err)
			}
			writeRow(sh, xlsxHeader)
			sheets[r.Term] = sh
		}

		writeRow(sh, []string{
			r.Number, r.Title, r.Units, r.Component, r.Type,
			r.Days, r.Begin, r.End, r.Location, r.Campus, r.Instructors,
		})
	}

	if len(sheets) == 0 {
		sh, err := wb.AddSheet("Schedule")
		if err != nil {
			return fmt.Errorf("failed to add sheet: %w", err)
		}
		writeRow(sh, xlsxHeader)
	}

	if err := wb.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRow(sh *xlsx.Sheet, values []string) {
	row := sh.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}
