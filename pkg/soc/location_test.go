package soc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBuildingRoom(t *testing.T) {
	tests := []struct {
		in   string
		want BuildingRoom
	}{
		{"MM A14", Room("MM", "A14")},
		{"CFA A9", Room("CFA", "A9")},
		{"  GHC 4401 ", Room("GHC", "4401")},
		{"POS 1st Floor", Room("POS", "1st Floor")},
		{"TBA", BuildingRoom{Kind: ToBeAnnounced}},
		{"TBD TBD", BuildingRoom{Kind: ToBeDetermined}},
		{"DNM DNM", BuildingRoom{Kind: DoesNotMeet}},
		{"OFF PITT", BuildingRoom{Kind: OffCampus}},
		{"CMU REMOTE", BuildingRoom{Kind: Remote}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseBuildingRoom(tt.in), "input %q", tt.in)
	}
}

func TestBuildingRoomString(t *testing.T) {
	assert.Equal(t, "MM A14", Room("MM", "A14").String())
	assert.Equal(t, "DNM", BuildingRoom{Kind: DoesNotMeet}.String())
	assert.True(t, Room("MM", "A14").IsPhysical())
	assert.False(t, BuildingRoom{Kind: ToBeAnnounced}.IsPhysical())
}

func TestParseTimeRange(t *testing.T) {
	tr, ok := ParseTimeRange("12:30PM", "01:50PM")
	require.True(t, ok)
	assert.Equal(t, 80*time.Minute, tr.Duration())
	assert.Equal(t, "12:30PM-01:50PM", tr.String())

	tr, ok = ParseTimeRange("9:00AM", "10:20AM")
	require.True(t, ok)
	assert.Equal(t, 9, tr.Begin.Hour())
}

func TestParseTimeRangeRejects(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
	}{
		{"blank", "", ""},
		{"missing end", "10:00AM", ""},
		{"malformed", "10h", "11h"},
		{"inverted", "11:00AM", "10:00AM"},
		{"empty span", "10:00AM", "10:00AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseTimeRange(tt.start, tt.end)
			assert.False(t, ok)
		})
	}
}

func TestTimeRangeOn(t *testing.T) {
	tr, ok := ParseTimeRange("11:00AM", "12:20PM")
	require.True(t, ok)

	loc := time.FixedZone("EST", -5*3600)
	date := time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC)
	begin, end := tr.On(date, loc)

	assert.Equal(t, time.Date(2025, time.September, 2, 11, 0, 0, 0, loc), begin)
	assert.Equal(t, time.Date(2025, time.September, 2, 12, 20, 0, 0, loc), end)
}
