package soc

import (
	"fmt"
	"strings"
)

// Grouper rebuilds courses from classified lines. The zero value discards diagnostics.
type Grouper struct {
	reporter Reporter
}

// NewGrouper returns a Grouper that reports dropped lines and missing units to r.
func NewGrouper(r Reporter) *Grouper {
	return &Grouper{reporter: r}
}

// Group walks lines front to back and returns every course found, in feed order.
// Lines that cannot start a course are dropped one at a time and reported.
func (g *Grouper) Group(lines []Line, season Season, year Year) []CourseEntry {
	rep := orNop(g.reporter)

	var courses []CourseEntry
	rest := lines
	for len(rest) > 0 {
		course, remaining, ok := g.parseCourse(rest, season, year)
		if !ok {
			rep.SkippedLine(rest[0])
			rest = rest[1:]
			continue
		}
		courses = append(courses, course)
		rest = remaining
	}
	return courses
}

// parseCourse expects a course header at the front of lines. ok is false when there
// is none, in which case nothing is consumed.
func (g *Grouper) parseCourse(lines []Line, season Season, year Year) (course CourseEntry, rest []Line, ok bool) {
	if len(lines) == 0 {
		return CourseEntry{}, lines, false
	}

	head := lines[0]
	var headerUnits *Units
	switch head.Kind {
	case CourseHeader:
	case SecondaryCourseHeader:
		u := unitsOf(head.Units)
		headerUnits = &u
	default:
		return CourseEntry{}, lines, false
	}

	acc, rest := parseComponents(lines[1:], head.Title)

	number := CourseNumber(head.Number)
	var units Units
	switch {
	case headerUnits != nil:
		units = *headerUnits
	case acc.inferredUnits != nil:
		units = *acc.inferredUnits
	default:
		orNop(g.reporter).MissingUnits(number)
		units = VAR
	}

	return CourseEntry{
		Number:     number,
		Units:      units,
		Components: acc.components,
		Season:     season,
		Year:       year,
	}, rest, true
}

// componentAcc is the state carried while folding over a course's component lines.
type componentAcc struct {
	components    []CourseComponent
	inferredUnits *Units
	pendingTitles []string
}

// parseComponents consumes the component block following a course header and stops
// at the first line that cannot belong to it.
func parseComponents(lines []Line, headerTitle string) (componentAcc, []Line) {
	var acc componentAcc
	rest := lines

	for len(rest) > 0 {
		line := rest[0]
		switch line.Kind {
		case Empty:
			rest = rest[1:]

		case ComponentTitle:
			acc.pendingTitles = append(acc.pendingTitles, strings.TrimSpace(line.Text))
			rest = rest[1:]

		case PrimaryComponent:
			comp, units, remaining := parseComponent(rest, headerTitle)
			if acc.inferredUnits == nil {
				acc.inferredUnits = units
			}
			acc.components = append(acc.components, comp)
			acc.pendingTitles = acc.pendingTitles[:0]
			rest = remaining

		case SecondaryComponent:
			title := effectiveTitle(headerTitle, acc.pendingTitles)
			comp, _, remaining := parseComponent(rest, title)
			acc.components = append(acc.components, comp)
			acc.pendingTitles = acc.pendingTitles[:0]
			rest = remaining

		default:
			return acc, rest
		}
	}
	return acc, rest
}

// effectiveTitle names a secondary component. Buffered titles already contained in the
// header title are redundant; of the rest, the most recent one is appended.
func effectiveTitle(headerTitle string, pending []string) string {
	last := ""
	for _, t := range pending {
		if !strings.Contains(headerTitle, t) {
			last = t
		}
	}
	if last == "" {
		return headerTitle
	}
	return headerTitle + ": " + last
}

// parseComponent builds one component from the component row at the front of lines
// plus any additional meeting rows after it. Primary rows also yield their units.
// Calling it on any other kind of line is a programming error.
func parseComponent(lines []Line, title string) (CourseComponent, *Units, []Line) {
	if len(lines) == 0 || !lines[0].IsComponent() {
		var got any = "nothing"
		if len(lines) > 0 {
			got = lines[0]
		}
		panic(fmt.Sprintf("soc: expected a component line, got %v", got))
	}

	head := lines[0]
	instructors := ParseInstructors(head.Instructors)
	meetings, rest := parseMeetings(lines[1:], instructors, head)

	var units *Units
	if head.Kind == PrimaryComponent {
		u := unitsOf(head.Units)
		units = &u
	}

	return CourseComponent{
		Title:    title,
		Type:     ComponentTypeOf(head.Section),
		Code:     head.Section,
		Meetings: meetings,
	}, units, rest
}

// parseMeetings turns base into the first meeting, then takes every additional meeting
// row that directly follows. Additional rows share the component's instructors.
func parseMeetings(lines []Line, instructors Instructors, base Line) ([]Meeting, []Line) {
	meetings := []Meeting{meetingOf(base, instructors)}

	rest := lines
	for len(rest) > 0 && rest[0].Kind == AdditionalMeeting {
		meetings = append(meetings, meetingOf(rest[0], instructors))
		rest = rest[1:]
	}
	return meetings, rest
}

func meetingOf(l Line, instructors Instructors) Meeting {
	m := Meeting{
		Days:        ParseDays(l.Days),
		Location:    ParseBuildingRoom(l.BuildingRoom),
		Campus:      l.Campus,
		Instructors: instructors,
	}
	if tr, ok := ParseTimeRange(l.TimeStart, l.TimeEnd); ok {
		m.Time = &tr
	}
	return m
}

// unitsOf parses a units field the classifier has already validated.
func unitsOf(s string) Units {
	u, err := ParseUnits(s)
	if err != nil {
		return VAR
	}
	return u
}
