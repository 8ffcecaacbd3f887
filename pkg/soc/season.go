package soc

import (
	"fmt"
	"strconv"
	"strings"
)

// Season is the academic term a schedule belongs to.
type Season uint8

const (
	Fall Season = iota
	Spring
	Summer1
	Summer2
)

var seasonInfo = [...]struct {
	code string
	slug string
	name string
}{
	Fall:    {"F", "fall", "Fall"},
	Spring:  {"S", "spring", "Spring"},
	Summer1: {"M", "summer_1", "Summer One"},
	Summer2: {"N", "summer_2", "Summer Two"},
}

// AllSeasons lists every season in feed order.
func AllSeasons() []Season {
	return []Season{Fall, Spring, Summer1, Summer2}
}

// ParseSeason accepts a one letter code ("F"), a slug ("summer_1") or a name ("Fall").
func ParseSeason(s string) (Season, error) {
	s = strings.TrimSpace(s)
	for i, info := range seasonInfo {
		if strings.EqualFold(s, info.code) || strings.EqualFold(s, info.slug) || strings.EqualFold(s, info.name) {
			return Season(i), nil
		}
	}
	return 0, fmt.Errorf("unknown season %q", s)
}

// Code is the one letter registrar code.
func (s Season) Code() string {
	if int(s) >= len(seasonInfo) {
		return "?"
	}
	return seasonInfo[s].code
}

// Slug is the lowercase name used in feed file names.
func (s Season) Slug() string {
	if int(s) >= len(seasonInfo) {
		return "unknown"
	}
	return seasonInfo[s].slug
}

func (s Season) String() string {
	if int(s) >= len(seasonInfo) {
		return fmt.Sprintf("Season(%d)", s)
	}
	return seasonInfo[s].name
}

// Year is the calendar year of a term, e.g. 2025.
type Year uint16

// ParseYear parses a four digit year.
func ParseYear(s string) (Year, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q: %w", s, err)
	}
	return Year(v), nil
}

// Short returns the last two digits, as the registrar writes terms ("F25").
func (y Year) Short() string {
	return fmt.Sprintf("%02d", y%100)
}

func (y Year) String() string {
	return strconv.Itoa(int(y))
}
