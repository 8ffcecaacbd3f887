package exporter

import (
	"socctl/pkg/soc"
)

// Row is one meeting of one component, flattened for tabular exports.
type Row struct {
	Term        string
	Number      string
	Title       string
	Units       string
	Component   string
	Type        string
	Days        string
	Begin       string
	End         string
	Location    string
	Campus      string
	Instructors string
}

// Rows flattens courses into one Row per meeting, in feed order.
func Rows(courses []soc.CourseEntry) []Row {
	var rows []Row
	for _, c := range courses {
		for _, comp := range c.Components {
			for _, m := range comp.Meetings {
				row := Row{
					Term:        termLabel(c),
					Number:      c.Number.Full(),
					Title:       comp.Title,
					Units:       c.Units.String(),
					Component:   comp.Code,
					Type:        comp.Type.String(),
					Days:        m.Days.String(),
					Location:    m.Location.String(),
					Campus:      m.Campus,
					Instructors: m.Instructors.String(),
				}
				if m.Time != nil {
					row.Begin = m.Time.Begin.Format("03:04PM")
					row.End = m.Time.End.Format("03:04PM")
				}
				rows = append(rows, row)
			}
		}
	}
	return rows
}

func termLabel(c soc.CourseEntry) string {
	return c.Season.Code() + c.Year.Short()
}
