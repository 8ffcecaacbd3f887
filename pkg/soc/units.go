package soc

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrEmptyUnits is returned when a units field is blank
	ErrEmptyUnits = errors.New("empty units string")
	// ErrNoValidUnits is returned when no part of a units field is numeric
	ErrNoValidUnits = errors.New("no valid units found")
)

// UnitValue is a single unit count or an inclusive min-max range.
type UnitValue struct {
	Min    float64
	Max    float64
	Ranged bool
}

// Single returns a fixed unit count.
func Single(v float64) UnitValue {
	return UnitValue{Min: v, Max: v}
}

// Range returns a variable unit count between min and max.
func Range(min, max float64) UnitValue {
	return UnitValue{Min: min, Max: max, Ranged: true}
}

func (v UnitValue) String() string {
	if v.Ranged {
		return formatUnit(v.Min) + "-" + formatUnit(v.Max)
	}
	return formatUnit(v.Min)
}

// Units is the credit value of a course. The zero value is not meaningful; use VAR,
// NewUnits or ParseUnits.
type Units struct {
	variable bool
	values   []UnitValue
}

// VAR marks a course whose units vary and are not listed in the feed.
var VAR = Units{variable: true}

// NewUnits returns units with a single fixed value.
func NewUnits(v float64) Units {
	return Units{values: []UnitValue{Single(v)}}
}

// NewUnitsRange returns units spanning min to max.
func NewUnitsRange(min, max float64) Units {
	return Units{values: []UnitValue{Range(min, max)}}
}

// NewUnitsMulti returns units listing several alternatives, sorted by (min, max).
func NewUnitsMulti(values ...UnitValue) Units {
	sorted := append([]UnitValue(nil), values...)
	sortUnitValues(sorted)
	return Units{values: sorted}
}

// IsVariable reports whether u is the VAR sentinel.
func (u Units) IsVariable() bool {
	return u.variable
}

// IsMulti reports whether u lists more than one alternative.
func (u Units) IsMulti() bool {
	return len(u.values) > 1
}

// Values returns the numeric alternatives; nil for VAR.
func (u Units) Values() []UnitValue {
	return u.values
}

// Min is the smallest unit count u allows. VAR reports +Inf.
func (u Units) Min() float64 {
	if u.variable || len(u.values) == 0 {
		return math.Inf(1)
	}
	min := u.values[0].Min
	for _, v := range u.values[1:] {
		min = math.Min(min, v.Min)
	}
	return min
}

// Max is the largest unit count u allows. VAR reports +Inf.
func (u Units) Max() float64 {
	if u.variable || len(u.values) == 0 {
		return math.Inf(1)
	}
	max := u.values[0].Max
	for _, v := range u.values[1:] {
		max = math.Max(max, v.Max)
	}
	return max
}

// Compare orders units: VAR sorts above every numeric value and numeric values compare
// by (min, max). It returns -1, 0 or +1.
func (u Units) Compare(other Units) int {
	switch {
	case u.variable && other.variable:
		return 0
	case u.variable:
		return 1
	case other.variable:
		return -1
	}
	return compareSpan(u.Min(), u.Max(), other.Min(), other.Max())
}

// Less reports whether u sorts before other.
func (u Units) Less(other Units) bool {
	return u.Compare(other) < 0
}

func (u Units) String() string {
	if u.variable {
		return "VAR"
	}
	parts := make([]string, len(u.values))
	for i, v := range u.values {
		parts[i] = v.String()
	}
	return strings.Join(parts, ",")
}

// ParseUnits parses a units field such as "9.0", "VAR", "3-12" or "3,6,9".
func ParseUnits(s string) (Units, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Units{}, ErrEmptyUnits
	}
	if s == "VAR" {
		return VAR, nil
	}
	if v, ok := parseUnitFloat(s); ok {
		return NewUnits(v), nil
	}

	var values []UnitValue
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	for _, part := range parts {
		if a, b, found := strings.Cut(part, "-"); found {
			min, okMin := parseUnitFloat(a)
			max, okMax := parseUnitFloat(b)
			if okMin && okMax {
				values = append(values, Range(min, max))
				continue
			}
		}
		if v, ok := parseUnitFloat(part); ok {
			values = append(values, Single(v))
		}
	}

	switch len(values) {
	case 0:
		return Units{}, ErrNoValidUnits
	case 1:
		return Units{values: values}, nil
	}
	sortUnitValues(values)
	return Units{values: values}, nil
}

// IsUnits reports whether s parses as a units field.
func IsUnits(s string) bool {
	_, err := ParseUnits(s)
	return err == nil
}

func parseUnitFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func sortUnitValues(values []UnitValue) {
	sort.SliceStable(values, func(i, j int) bool {
		return compareSpan(values[i].Min, values[i].Max, values[j].Min, values[j].Max) < 0
	})
}

func compareSpan(minA, maxA, minB, maxB float64) int {
	switch {
	case minA < minB:
		return -1
	case minA > minB:
		return 1
	case maxA < maxB:
		return -1
	case maxA > maxB:
		return 1
	}
	return 0
}

// formatUnit drops the fraction from integral values ("9" rather than "9.0").
func formatUnit(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
