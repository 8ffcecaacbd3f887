package soc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// architectureFeed is a de-bannered excerpt of the Fall 2025 feed.
const architectureFeed = "\tArchitecture\t\t\t\t\t\t\t\t\n" +
	"\t48025\tFirst Year Seminar: Architecture Edition\n" +
	"\t\t\t3.0\tA\tR\t12:30PM\t01:50PM\tMM A14\tPittsburgh, Pennsylvania\tWorkinger\n" +
	"\t48104\tShop Skills\n" +
	"\t\t\tVAR\tA1\tMW\t10:00AM\t10:50AM\tCFA A9\tPittsburgh, Pennsylvania\tHolmes\n" +
	"\t\t\t\tA2\tMW\t10:00AM\t10:50AM\tCFA A9\tPittsburgh, Pennsylvania\tHolmes\n" +
	"\t48214\tGenerative Modeling\n" +
	"\t\t\t9.0\tLec\tTBA\t\t\tDNM DNM\tPittsburgh, Pennsylvania\tBard\n" +
	"\t\t\t\tA\tM\t10:00AM\t10:50AM\tMM 303\tPittsburgh, Pennsylvania\tBard\n" +
	"\t48313\tNew Pedogogies:\t9.0\t\t\t\t\t\t\n" +
	"\n" +
	"\t\tUnreasonable Architecture\n" +
	"\t\t\t\tA\tTR\t11:00AM\t12:20PM\tTBD TBD\tPittsburgh, Pennsylvania\tSindi\n" +
	"\t\tNew Pedogogies\t\t\t\t\t\t\t\n" +
	"\t\tStorycraft\n" +
	"\t\t\t\tD\tMW\t11:00AM\t12:20PM\tTBA\tPittsburgh, Pennsylvania\tStone"

func TestClassifyFeed(t *testing.T) {
	tally := NewTally()
	lines := NewClassifier(tally).ClassifyText(architectureFeed)

	kinds := make([]LineKind, len(lines))
	for i, l := range lines {
		kinds[i] = l.Kind
	}
	assert.Equal(t, []LineKind{
		Department,
		CourseHeader,
		PrimaryComponent,
		CourseHeader,
		PrimaryComponent,
		SecondaryComponent,
		CourseHeader,
		PrimaryComponent,
		SecondaryComponent,
		SecondaryCourseHeader,
		Empty,
		ComponentTitle,
		SecondaryComponent,
		ComponentTitle,
		ComponentTitle,
		SecondaryComponent,
	}, kinds)
	assert.Zero(t, tally.Stats().UnknownLines)

	assert.Equal(t, Line{Kind: Department, Text: "Architecture"}, lines[0])
	assert.Equal(t, Line{
		Kind:   SecondaryCourseHeader,
		Number: "48313",
		Title:  "New Pedogogies",
		Units:  "9.0",
	}, lines[9])
	assert.Equal(t, Line{
		Kind:         PrimaryComponent,
		Units:        "9.0",
		Section:      "Lec",
		Days:         "TBA",
		BuildingRoom: "DNM DNM",
		Campus:       "Pittsburgh, Pennsylvania",
		Instructors:  "Bard",
	}, lines[7])
}

func TestClassifyRows(t *testing.T) {
	c := NewClassifier(nil)

	tests := []struct {
		name string
		raw  string
		want Line
	}{
		{
			name: "course header title is trimmed",
			raw:  "\t15122\t Principles of Imperative Computation ",
			want: Line{Kind: CourseHeader, Number: "15122", Title: "Principles of Imperative Computation"},
		},
		{
			name: "secondary header strips every trailing colon",
			raw:  "\t48313\tNew Pedogogies ::\t9.0",
			want: Line{Kind: SecondaryCourseHeader, Number: "48313", Title: "New Pedogogies", Units: "9.0"},
		},
		{
			name: "secondary component",
			raw:  "\t\t\t\tB\tTR\t02:00PM\t03:20PM\tGHC 4401\tPittsburgh, Pennsylvania\tKosbie, Taylor",
			want: Line{
				Kind: SecondaryComponent, Section: "B", Days: "TR", TimeStart: "02:00PM", TimeEnd: "03:20PM",
				BuildingRoom: "GHC 4401", Campus: "Pittsburgh, Pennsylvania", Instructors: "Kosbie, Taylor",
			},
		},
		{
			name: "additional meeting",
			raw:  "\t\t\t\t\tF\t09:00AM\t09:50AM\tWEH 5409\tPittsburgh, Pennsylvania",
			want: Line{
				Kind: AdditionalMeeting, Days: "F", TimeStart: "09:00AM", TimeEnd: "09:50AM",
				BuildingRoom: "WEH 5409", Campus: "Pittsburgh, Pennsylvania",
			},
		},
		{
			name: "additional meeting without campus",
			raw:  "\t\t\t\t\tF\t09:00AM\t09:50AM\tWEH 5409",
			want: Line{
				Kind: AdditionalMeeting, Days: "F", TimeStart: "09:00AM", TimeEnd: "09:50AM",
				BuildingRoom: "WEH 5409", Campus: "Unknown Location",
			},
		},
		{
			name: "lowercase section code is not a component",
			raw:  "\t\t\t\tb\tTR\t02:00PM\t03:20PM\tGHC 4401\tPittsburgh, Pennsylvania\tKosbie",
			want: Line{
				Kind: AdditionalMeeting, Days: "b", TimeStart: "TR", TimeEnd: "02:00PM",
				BuildingRoom: "03:20PM", Campus: "GHC 4401",
			},
		},
		{
			name: "whitespace only",
			raw:  " \t \t",
			want: Line{Kind: Empty},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.raw))
		})
	}
}

func TestClassifyRejectsNonCourseNumbers(t *testing.T) {
	c := NewClassifier(nil)

	for _, raw := range []string{
		"\t1512\tToo Short",
		"\t151222\tToo Long",
		"\t15-12\tDashed",
	} {
		got := c.Classify(raw)
		assert.NotEqual(t, CourseHeader, got.Kind, raw)
		assert.NotEqual(t, SecondaryCourseHeader, got.Kind, raw)
	}
}

func TestClassifyUnknownIsReported(t *testing.T) {
	tally := NewTally()
	c := NewClassifier(tally)

	raw := "\t\t\tfoo\tbar"
	got := c.Classify(raw)

	assert.Equal(t, Line{Kind: Unknown, Text: raw}, got)
	assert.Equal(t, 1, tally.Stats().UnknownLines)

	// a lone field at the wrong depth is neither a department nor a title
	assert.Equal(t, Unknown, c.Classify("\t\t\tOrphan").Kind)
	assert.Equal(t, 2, tally.Stats().UnknownLines)
}

func TestClassifyReaderToleratesCRLF(t *testing.T) {
	crlf := strings.ReplaceAll(architectureFeed, "\n", "\r\n")

	got, err := NewClassifier(nil).ClassifyReader(strings.NewReader(crlf))
	require.NoError(t, err)

	want := NewClassifier(nil).ClassifyText(architectureFeed)
	assert.Equal(t, want, got)
}

func TestClassifyOneLinePerInput(t *testing.T) {
	lines := NewClassifier(nil).ClassifyText(architectureFeed)
	assert.Len(t, lines, strings.Count(architectureFeed, "\n")+1)
}
