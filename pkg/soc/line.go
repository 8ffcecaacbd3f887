// Package soc parses the registrar's tab separated "schedule of classes" feed.
//
// Parsing runs in two passes. A Classifier tags every raw line with a LineKind, then
// a Grouper walks the tagged lines and rebuilds the course, component and meeting tree.
// Neither pass performs I/O; diagnostics go to an injected Reporter.
package soc

import "fmt"

// LineKind tags a classified feed line.
type LineKind uint8

const (
	Empty LineKind = iota
	Department
	CourseHeader
	SecondaryCourseHeader
	ComponentTitle
	PrimaryComponent
	SecondaryComponent
	AdditionalMeeting
	Unknown
)

var lineKindNames = [...]string{
	Empty:                 "Empty",
	Department:            "Department",
	CourseHeader:          "CourseHeader",
	SecondaryCourseHeader: "SecondaryCourseHeader",
	ComponentTitle:        "ComponentTitle",
	PrimaryComponent:      "PrimaryComponent",
	SecondaryComponent:    "SecondaryComponent",
	AdditionalMeeting:     "AdditionalMeeting",
	Unknown:               "Unknown",
}

func (k LineKind) String() string {
	if int(k) < len(lineKindNames) {
		return lineKindNames[k]
	}
	return fmt.Sprintf("LineKind(%d)", k)
}

// Line is one classified row of the feed. Which fields are set depends on Kind:
//
//	Department, ComponentTitle, Unknown  Text
//	CourseHeader                         Number, Title
//	SecondaryCourseHeader                Number, Title, Units
//	PrimaryComponent                     Units, Section, meeting fields, Instructors
//	SecondaryComponent                   Section, meeting fields, Instructors
//	AdditionalMeeting                    meeting fields
//
// The meeting fields are Days, TimeStart, TimeEnd, BuildingRoom and Campus. All
// values are kept as the raw strings found in the feed.
type Line struct {
	Kind LineKind
	Text string

	Number string
	Title  string
	Units  string

	Section      string
	Days         string
	TimeStart    string
	TimeEnd      string
	BuildingRoom string
	Campus       string
	Instructors  string
}

// IsComponent reports whether l starts a course component.
func (l Line) IsComponent() bool {
	return l.Kind == PrimaryComponent || l.Kind == SecondaryComponent
}

func (l Line) String() string {
	switch l.Kind {
	case Department:
		return "Department: " + l.Text
	case CourseHeader:
		return fmt.Sprintf("CourseHeader: %s - %s", l.Number, l.Title)
	case SecondaryCourseHeader:
		return fmt.Sprintf("SecondaryCourseHeader: %s - %s (%s)", l.Number, l.Title, l.Units)
	case ComponentTitle:
		return "ComponentTitle: " + l.Text
	case PrimaryComponent:
		return "PrimaryComponent: " + l.Section
	case SecondaryComponent:
		return "SecondaryComponent: " + l.Section
	case AdditionalMeeting:
		return fmt.Sprintf("AdditionalMeeting: %s at %s-%s", l.Days, l.TimeStart, l.TimeEnd)
	case Unknown:
		return "Unknown: " + l.Text
	}
	return l.Kind.String()
}
