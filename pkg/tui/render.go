package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"socctl/pkg/soc"
)

var (
	courseStyle    = lipgloss.NewStyle().Bold(true)
	componentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	unitsStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// RenderCourse formats a course as an indented tree of components and meetings.
func RenderCourse(c soc.CourseEntry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s %s\n",
		accentStyle.Render(c.Number.Full()),
		courseStyle.Render(c.Title()),
		unitsStyle.Render(fmt.Sprintf("(%s units)", c.Units)),
	)

	for _, comp := range c.Components {
		label := comp.Code
		if comp.Title != c.Title() {
			label += " · " + comp.Title
		}
		fmt.Fprintf(&b, "  %s\n", componentStyle.Render(label))

		for _, m := range comp.Meetings {
			when := "time TBA"
			if m.Time != nil {
				when = m.Time.String()
			}
			fmt.Fprintf(&b, "    %-6s %-16s %-10s %s\n", m.Days, when, m.Location, mutedStyle.Render(m.Instructors.String()))
		}
	}
	return b.String()
}

// RenderSummary is a one line description of a parsed term.
func RenderSummary(label string, courses int, stats soc.Stats) string {
	line := fmt.Sprintf("%s: %d courses", label, courses)
	if stats.UnknownLines > 0 || stats.MissingUnits > 0 || stats.SkippedTotal() > 0 {
		line += mutedStyle.Render(fmt.Sprintf(" (%d unrecognised lines, %d skipped, %d courses without units)",
			stats.UnknownLines, stats.SkippedTotal(), stats.MissingUnits))
	}
	return line
}
