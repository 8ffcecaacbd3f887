package soc

import "time"

// clockLayout matches the feed's 12-hour times, e.g. "12:30PM" or "01:50PM".
const clockLayout = "3:04PM"

// TimeRange is the wall-clock span of a Meeting. Only the hour and minute of Begin
// and End are meaningful.
type TimeRange struct {
	Begin time.Time
	End   time.Time
}

// NewTimeRange returns a range when begin is strictly before end.
func NewTimeRange(begin, end time.Time) (TimeRange, bool) {
	if !begin.Before(end) {
		return TimeRange{}, false
	}
	return TimeRange{Begin: begin, End: end}, true
}

// ParseTimeRange parses a start/end pair. A missing, malformed or inverted pair
// yields ok == false, meaning the meeting time is unspecified.
func ParseTimeRange(start, end string) (TimeRange, bool) {
	begin, err := time.Parse(clockLayout, start)
	if err != nil {
		return TimeRange{}, false
	}
	finish, err := time.Parse(clockLayout, end)
	if err != nil {
		return TimeRange{}, false
	}
	return NewTimeRange(begin, finish)
}

// Duration is the length of the meeting.
func (t TimeRange) Duration() time.Duration {
	return t.End.Sub(t.Begin)
}

// On places the range on the given calendar date in loc.
func (t TimeRange) On(date time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := date.Date()
	begin := time.Date(y, m, d, t.Begin.Hour(), t.Begin.Minute(), 0, 0, loc)
	end := time.Date(y, m, d, t.End.Hour(), t.End.Minute(), 0, 0, loc)
	return begin, end
}

func (t TimeRange) String() string {
	return t.Begin.Format("03:04PM") + "-" + t.End.Format("03:04PM")
}
