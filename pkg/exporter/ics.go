package exporter

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	_ "time/tzdata"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"socctl/pkg/soc"
)

// CampusTimezone is the zone feed times are written in.
const CampusTimezone = "America/New_York"

const icalLocalFormat = "20060102T150405"

// eventNamespace seeds event UIDs; a meeting keeps its UID across exports.
var eventNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://enr-apps.as.cmu.edu/assets/SOC"))

var icalDays = map[time.Weekday]string{
	time.Monday:    "MO",
	time.Tuesday:   "TU",
	time.Wednesday: "WE",
	time.Thursday:  "TH",
	time.Friday:    "FR",
	time.Saturday:  "SA",
	time.Sunday:    "SU",
}

// ICSOptions places a term on the calendar.
type ICSOptions struct {
	// TermStart is the first day of classes.
	TermStart time.Time
	// Weeks is how many weeks meetings repeat for.
	Weeks int
	// Location defaults to CampusTimezone.
	Location *time.Location
}

// GenerateICS writes one weekly recurring event per timed meeting. Meetings without
// days or a time (TBA) cannot be placed and are left out.
func GenerateICS(courses []soc.CourseEntry, opts ICSOptions, w io.Writer) error {
	if opts.TermStart.IsZero() {
		return errors.New("term start date is required")
	}
	if opts.Weeks <= 0 {
		return fmt.Errorf("invalid number of weeks: %d", opts.Weeks)
	}

	loc := opts.Location
	if loc == nil {
		var err error
		loc, err = time.LoadLocation(CampusTimezone)
		if err != nil {
			return fmt.Errorf("could not load timezone: %w", err)
		}
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//socctl//Schedule of Classes//EN")
	cal.SetXWRCalName("Schedule of Classes")

	titleCase := cases.Title(language.English, cases.NoLower)
	termEnd := opts.TermStart.AddDate(0, 0, 7*opts.Weeks)
	until := time.Date(termEnd.Year(), termEnd.Month(), termEnd.Day(), 0, 0, 0, 0, loc).UTC()
	now := time.Now()

	addTimezone(cal, loc, opts.TermStart, until)
	tzid := &ics.KeyValues{Key: string(ics.ParameterTzid), Value: []string{loc.String()}}

	for _, c := range courses {
		for _, comp := range c.Components {
			for i, m := range comp.Meetings {
				if m.Time == nil || m.Days.TBA || m.Days.Set == soc.NoDays {
					continue
				}

				first := firstMeetingDay(opts.TermStart, m.Days.Set)
				start, end := m.Time.On(first, loc)

				event := cal.AddEvent(eventUID(c, comp, i))
				event.SetCreatedTime(now)
				event.SetDtStampTime(now)
				event.SetModifiedAt(now)
				event.SetProperty(ics.ComponentPropertyDtStart, start.Format(icalLocalFormat), tzid)
				event.SetProperty(ics.ComponentPropertyDtEnd, end.Format(icalLocalFormat), tzid)
				event.SetSummary(fmt.Sprintf("%s %s: %s", c.Number.Full(), comp.Code, titleCase.String(comp.Title)))
				if m.Location.IsPhysical() {
					event.SetLocation(m.Location.String())
				}
				event.AddProperty(ics.ComponentPropertyRrule, weeklyRule(m.Days.Set, until))

				description := fmt.Sprintf("Type: %s\nUnits: %s\nInstructors: %s\nCampus: %s",
					comp.Type, c.Units, m.Instructors, m.Campus)
				event.SetDescription(description)
			}
		}
	}

	return cal.SerializeTo(w)
}

// addTimezone describes loc as a VTIMEZONE covering every offset change between the
// start of from's year and to. Events carry wall clock times with a TZID so weekly
// repeats stay at the same local time across daylight saving changes.
func addTimezone(cal *ics.Calendar, loc *time.Location, from, to time.Time) {
	tz := cal.AddTimezone(loc.String())

	t := time.Date(from.Year(), time.January, 1, 0, 0, 0, 0, loc)
	name, offset := t.Zone()
	tz.Components = append(tz.Components, observance(t.IsDST(), "19700101T000000", offset, offset, name))

	for {
		_, end := t.ZoneBounds()
		if end.IsZero() || end.After(to) {
			return
		}
		nextName, nextOffset := end.Zone()
		// DTSTART of an observance is the local time before the change.
		onset := end.In(time.FixedZone("", offset)).Format(icalLocalFormat)
		tz.Components = append(tz.Components, observance(end.IsDST(), onset, offset, nextOffset, nextName))
		t, offset = end, nextOffset
	}
}

func observance(dst bool, onset string, from, to int, name string) ics.Component {
	base := ics.ComponentBase{}
	base.AddProperty(ics.ComponentPropertyDtStart, onset)
	base.AddProperty(ics.ComponentProperty(ics.PropertyTzoffsetfrom), utcOffset(from))
	base.AddProperty(ics.ComponentProperty(ics.PropertyTzoffsetto), utcOffset(to))
	base.AddProperty(ics.ComponentProperty(ics.PropertyTzname), name)
	if dst {
		return &ics.Daylight{ComponentBase: base}
	}
	return &ics.Standard{ComponentBase: base}
}

// utcOffset formats seconds east of UTC as +hhmm.
func utcOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("%s%02d%02d", sign, seconds/3600, seconds%3600/60)
}

// firstMeetingDay is the first date on or after start that falls on a day in set.
func firstMeetingDay(start time.Time, set soc.DaySet) time.Time {
	days := set.Weekdays()
	for offset := 0; offset < 7; offset++ {
		d := start.AddDate(0, 0, offset)
		for _, wd := range days {
			if d.Weekday() == wd {
				return d
			}
		}
	}
	return start
}

func weeklyRule(set soc.DaySet, until time.Time) string {
	var byDay []string
	for _, wd := range set.Weekdays() {
		byDay = append(byDay, icalDays[wd])
	}
	return fmt.Sprintf("FREQ=WEEKLY;BYDAY=%s;UNTIL=%s", strings.Join(byDay, ","), until.Format("20060102T150405Z"))
}

func eventUID(c soc.CourseEntry, comp soc.CourseComponent, meeting int) string {
	key := fmt.Sprintf("%s%s/%s/%s/%d", c.Season.Code(), c.Year, c.Number, comp.Code, meeting)
	return uuid.NewSHA1(eventNamespace, []byte(key)).String() + "@socctl"
}
