package soc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCourseNumber is returned for course numbers that are not exactly five digits.
var ErrCourseNumber = errors.New("course number must be five digits")

// CourseNumber is a five digit course code such as "15122". The first two digits
// identify the department.
type CourseNumber string

// IsCourseNumber reports whether s is exactly five ASCII digits.
func IsCourseNumber(s string) bool {
	if len(s) != 5 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseCourseNumber validates s as a course number.
func ParseCourseNumber(s string) (CourseNumber, error) {
	if !IsCourseNumber(s) {
		return "", fmt.Errorf("%w: %q", ErrCourseNumber, s)
	}
	return CourseNumber(s), nil
}

// Department returns the two digit department prefix.
func (n CourseNumber) Department() string {
	if len(n) < 2 {
		return string(n)
	}
	return string(n[:2])
}

// Full returns the dashed form used on the registrar's site, e.g. "15-122".
func (n CourseNumber) Full() string {
	if len(n) != 5 {
		return string(n)
	}
	return string(n[:2]) + "-" + string(n[2:])
}

// Instructors lists the names on a component row.
type Instructors []string

// ParseInstructors splits a comma separated instructor field. Blank names are dropped.
func ParseInstructors(s string) Instructors {
	var out Instructors
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func (i Instructors) String() string {
	return strings.Join(i, ", ")
}

// ComponentType distinguishes lectures from every other kind of section.
type ComponentType uint8

const (
	Section ComponentType = iota
	Lecture
)

// ComponentTypeOf derives the type from a section code: anything containing "Lec" is a lecture.
func ComponentTypeOf(code string) ComponentType {
	if strings.Contains(code, "Lec") {
		return Lecture
	}
	return Section
}

func (c ComponentType) String() string {
	if c == Lecture {
		return "Lecture"
	}
	return "Section"
}

// Meeting is one scheduled occurrence of a component.
type Meeting struct {
	Days        Days
	Time        *TimeRange // nil when the time is TBA
	Location    BuildingRoom
	Campus      string
	Instructors Instructors
}

// CourseComponent is a lecture or section of a course with its meeting pattern.
type CourseComponent struct {
	Title    string
	Type     ComponentType
	Code     string
	Meetings []Meeting
}

// CourseEntry is a course as listed for one term.
type CourseEntry struct {
	Number     CourseNumber
	Units      Units
	Components []CourseComponent
	Season     Season
	Year       Year
}

// Title returns the title of the first component, which carries the course header title.
func (c CourseEntry) Title() string {
	if len(c.Components) == 0 {
		return ""
	}
	return c.Components[0].Title
}

// Lectures returns the lecture components of c.
func (c CourseEntry) Lectures() []CourseComponent {
	var out []CourseComponent
	for _, comp := range c.Components {
		if comp.Type == Lecture {
			out = append(out, comp)
		}
	}
	return out
}
