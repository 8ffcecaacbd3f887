package soc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTallyConcurrent(t *testing.T) {
	tally := NewTally()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tally.UnknownLine("x")
				tally.SkippedLine(Line{Kind: Unknown})
			}
			tally.MissingUnits("15122")
		}()
	}
	wg.Wait()

	stats := tally.Stats()
	assert.Equal(t, 800, stats.UnknownLines)
	assert.Equal(t, 8, stats.MissingUnits)
	assert.Equal(t, 800, stats.SkippedTotal())
}

func TestTallyStatsIsACopy(t *testing.T) {
	tally := NewTally()
	tally.SkippedLine(Line{Kind: Department})

	stats := tally.Stats()
	stats.Skipped[Department] = 42

	assert.Equal(t, 1, tally.Stats().Skipped[Department])
}

func TestTallyZeroValue(t *testing.T) {
	var tally Tally
	assert.Empty(t, tally.Stats().Skipped)

	assert.NotPanics(t, func() {
		tally.SkippedLine(Line{Kind: ComponentTitle})
		tally.UnknownLine("x")
	})

	stats := tally.Stats()
	assert.Equal(t, map[LineKind]int{ComponentTitle: 1}, stats.Skipped)
	assert.Equal(t, 1, stats.UnknownLines)
}

func TestMultiReporter(t *testing.T) {
	a, b := NewTally(), NewTally()
	Parse("\t\t\tfoo\tbar\n\t99999\tNo Units", Fall, 2025, MultiReporter{a, b})

	for _, tally := range []*Tally{a, b} {
		stats := tally.Stats()
		assert.Equal(t, 1, stats.UnknownLines)
		assert.Equal(t, 1, stats.MissingUnits)
		assert.Equal(t, 1, stats.SkippedTotal())
	}
}

func TestLineString(t *testing.T) {
	assert.Equal(t, "Department: Architecture", Line{Kind: Department, Text: "Architecture"}.String())
	assert.Equal(t, "CourseHeader: 48025 - Seminar", Line{Kind: CourseHeader, Number: "48025", Title: "Seminar"}.String())
	assert.Equal(t, "Empty", Line{}.String())
	assert.Equal(t, "LineKind(200)", LineKind(200).String())
}
