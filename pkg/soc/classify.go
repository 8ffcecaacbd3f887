package soc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// unknownCampus fills the campus of four field meeting rows, which omit it.
const unknownCampus = "Unknown Location"

// row is a raw line split into its tab separated fields.
type row struct {
	raw         string
	fields      []string
	leadingTabs int
}

func (r row) arity() int {
	return len(r.fields)
}

// rule pairs a guard with the builder used when the guard matches.
type rule struct {
	name  string
	match func(r row) bool
	build func(r row) Line
}

// rules are evaluated in order and the first match wins. Field count alone is not
// enough: a department and a component title are both single fields and differ only
// in indentation, and component rows are told apart by what their first field holds.
var rules = []rule{
	{
		name:  "department",
		match: func(r row) bool { return r.arity() == 1 && r.leadingTabs == 1 },
		build: func(r row) Line { return Line{Kind: Department, Text: r.fields[0]} },
	},
	{
		name:  "course header",
		match: func(r row) bool { return r.arity() == 2 && IsCourseNumber(r.fields[0]) },
		build: func(r row) Line {
			return Line{
				Kind:   CourseHeader,
				Number: r.fields[0],
				Title:  strings.TrimSpace(r.fields[1]),
			}
		},
	},
	{
		name: "secondary course header",
		match: func(r row) bool {
			return r.arity() >= 3 && IsCourseNumber(r.fields[0]) && IsUnits(r.fields[2])
		},
		build: func(r row) Line {
			return Line{
				Kind:   SecondaryCourseHeader,
				Number: r.fields[0],
				Title:  strings.TrimSpace(strings.TrimRight(r.fields[1], ":")),
				Units:  r.fields[2],
			}
		},
	},
	{
		name:  "primary component",
		match: func(r row) bool { return r.arity() >= 8 && IsUnits(r.fields[0]) },
		build: func(r row) Line {
			f := r.fields
			return Line{
				Kind:         PrimaryComponent,
				Units:        f[0],
				Section:      f[1],
				Days:         f[2],
				TimeStart:    f[3],
				TimeEnd:      f[4],
				BuildingRoom: f[5],
				Campus:       f[6],
				Instructors:  f[7],
			}
		},
	},
	{
		name:  "secondary component",
		match: func(r row) bool { return r.arity() >= 7 && isSectionCode(r.fields[0]) },
		build: func(r row) Line {
			f := r.fields
			return Line{
				Kind:         SecondaryComponent,
				Section:      f[0],
				Days:         f[1],
				TimeStart:    f[2],
				TimeEnd:      f[3],
				BuildingRoom: f[4],
				Campus:       f[5],
				Instructors:  f[6],
			}
		},
	},
	{
		name:  "additional meeting",
		match: func(r row) bool { return r.arity() >= 5 },
		build: func(r row) Line {
			f := r.fields
			return Line{
				Kind:         AdditionalMeeting,
				Days:         f[0],
				TimeStart:    f[1],
				TimeEnd:      f[2],
				BuildingRoom: f[3],
				Campus:       f[4],
			}
		},
	},
	{
		name:  "additional meeting without campus",
		match: func(r row) bool { return r.arity() == 4 },
		build: func(r row) Line {
			f := r.fields
			return Line{
				Kind:         AdditionalMeeting,
				Days:         f[0],
				TimeStart:    f[1],
				TimeEnd:      f[2],
				BuildingRoom: f[3],
				Campus:       unknownCampus,
			}
		},
	},
	{
		name:  "component title",
		match: func(r row) bool { return r.arity() == 1 && r.leadingTabs == 2 },
		build: func(r row) Line { return Line{Kind: ComponentTitle, Text: r.fields[0]} },
	},
}

// isSectionCode reports whether s starts with an uppercase ASCII letter, as section
// codes like "A", "A2" or "Lec" do.
func isSectionCode(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}

func splitRow(line string) row {
	trimmed := strings.TrimSpace(line)
	return row{
		raw:         line,
		fields:      strings.Split(trimmed, "\t"),
		leadingTabs: len(line) - len(strings.TrimLeft(line, "\t")),
	}
}

// Classifier tags raw feed lines. The zero value discards diagnostics.
type Classifier struct {
	reporter Reporter
}

// NewClassifier returns a Classifier that reports unrecognised rows to r.
func NewClassifier(r Reporter) *Classifier {
	return &Classifier{reporter: r}
}

// Classify tags a single raw line. It never fails: rows matching no rule come back as
// Unknown and are reported.
func (c *Classifier) Classify(line string) Line {
	if strings.TrimSpace(line) == "" {
		return Line{Kind: Empty}
	}

	r := splitRow(line)
	for _, rl := range rules {
		if rl.match(r) {
			return rl.build(r)
		}
	}

	orNop(c.reporter).UnknownLine(line)
	return Line{Kind: Unknown, Text: line}
}

// ClassifyText tags every line of an already de-bannered feed. Lines may be any length.
func (c *Classifier) ClassifyText(text string) []Line {
	if text == "" {
		return nil
	}
	raw := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	lines := make([]Line, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, c.Classify(strings.TrimRight(l, "\r")))
	}
	return lines
}

// ClassifyReader tags every line read from r. Lines may be any length.
func (c *Classifier) ClassifyReader(r io.Reader) ([]Line, error) {
	br := bufio.NewReader(r)

	var lines []Line
	for {
		text, err := br.ReadString('\n')
		if text != "" {
			text = strings.TrimRight(strings.TrimSuffix(text, "\n"), "\r")
			lines = append(lines, c.Classify(text))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return lines, fmt.Errorf("read feed: %w", err)
		}
	}
}
