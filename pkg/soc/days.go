package soc

import (
	"strings"
	"time"
)

// DaySet is a bitmask over the days of the week, Monday first.
type DaySet uint8

const (
	Monday DaySet = 1 << iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const (
	NoDays   DaySet = 0
	Weekdays        = Monday | Tuesday | Wednesday | Thursday | Friday
	Weekend         = Saturday | Sunday
	AllDays         = Weekdays | Weekend
)

// dayCodes lists the single-letter codes used by the feed, in display order.
var dayCodes = [...]struct {
	day     DaySet
	code    byte
	weekday time.Weekday
}{
	{Monday, 'M', time.Monday},
	{Tuesday, 'T', time.Tuesday},
	{Wednesday, 'W', time.Wednesday},
	{Thursday, 'R', time.Thursday},
	{Friday, 'F', time.Friday},
	{Saturday, 'S', time.Saturday},
	{Sunday, 'U', time.Sunday},
}

// ParseDaySet reads day codes such as "MWF" or "TR". Unknown characters are ignored.
func ParseDaySet(s string) DaySet {
	var set DaySet
	for i := 0; i < len(s); i++ {
		for _, dc := range dayCodes {
			if s[i] == dc.code {
				set |= dc.day
				break
			}
		}
	}
	return set
}

// Contains reports whether every day in other is also in d.
func (d DaySet) Contains(other DaySet) bool {
	return d&other == other
}

// Weekdays returns the days in d as time.Weekday values, Monday first.
func (d DaySet) Weekdays() []time.Weekday {
	var out []time.Weekday
	for _, dc := range dayCodes {
		if d.Contains(dc.day) {
			out = append(out, dc.weekday)
		}
	}
	return out
}

func (d DaySet) String() string {
	var b strings.Builder
	for _, dc := range dayCodes {
		if d.Contains(dc.day) {
			b.WriteByte(dc.code)
		}
	}
	return b.String()
}

// Days is the meeting pattern of a Meeting: either a set of days or TBA.
type Days struct {
	TBA bool
	Set DaySet
}

// DaysTBA is a meeting whose days have not been announced.
var DaysTBA = Days{TBA: true}

// DaysOf returns a concrete day pattern.
func DaysOf(set DaySet) Days {
	return Days{Set: set}
}

// ParseDays reads a days field. Any field mentioning "TBA" is TBA.
func ParseDays(s string) Days {
	if strings.Contains(s, "TBA") {
		return DaysTBA
	}
	return DaysOf(ParseDaySet(s))
}

func (d Days) String() string {
	if d.TBA {
		return "TBA"
	}
	return d.Set.String()
}
