package soc

import "sync"

// Reporter receives the advisory diagnostics produced while parsing. None of them
// abort a parse.
type Reporter interface {
	// UnknownLine is called for every row that matches no classification rule.
	UnknownLine(raw string)
	// MissingUnits is called when a course falls back to VAR units.
	MissingUnits(number CourseNumber)
	// SkippedLine is called for every line the grouper drops while looking for
	// the next course header.
	SkippedLine(line Line)
}

// NopReporter discards all diagnostics.
type NopReporter struct{}

func (NopReporter) UnknownLine(string) {}
func (NopReporter) MissingUnits(CourseNumber) {}
func (NopReporter) SkippedLine(Line) {}

// Stats summarises the diagnostics of one or more parses.
type Stats struct {
	UnknownLines int
	MissingUnits int
	Skipped      map[LineKind]int
}

// SkippedTotal is the number of lines dropped during grouping.
func (s Stats) SkippedTotal() int {
	total := 0
	for _, n := range s.Skipped {
		total += n
	}
	return total
}

// Tally is a Reporter that counts diagnostics for feed quality monitoring.
// It is safe for concurrent use, and the zero value is ready to use.
type Tally struct {
	mu    sync.Mutex
	stats Stats
}

// NewTally returns an empty Tally.
func NewTally() *Tally {
	return &Tally{stats: Stats{Skipped: make(map[LineKind]int)}}
}

func (t *Tally) UnknownLine(string) {
	t.mu.Lock()
	t.stats.UnknownLines++
	t.mu.Unlock()
}

func (t *Tally) MissingUnits(CourseNumber) {
	t.mu.Lock()
	t.stats.MissingUnits++
	t.mu.Unlock()
}

func (t *Tally) SkippedLine(line Line) {
	t.mu.Lock()
	if t.stats.Skipped == nil {
		t.stats.Skipped = make(map[LineKind]int)
	}
	t.stats.Skipped[line.Kind]++
	t.mu.Unlock()
}

// Stats returns a copy of the counts collected so far.
func (t *Tally) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := Stats{
		UnknownLines: t.stats.UnknownLines,
		MissingUnits: t.stats.MissingUnits,
		Skipped:      make(map[LineKind]int, len(t.stats.Skipped)),
	}
	for k, v := range t.stats.Skipped {
		out.Skipped[k] = v
	}
	return out
}

// MultiReporter fans diagnostics out to several reporters.
type MultiReporter []Reporter

func (m MultiReporter) UnknownLine(raw string) {
	for _, r := range m {
		r.UnknownLine(raw)
	}
}

func (m MultiReporter) MissingUnits(number CourseNumber) {
	for _, r := range m {
		r.MissingUnits(number)
	}
}

func (m MultiReporter) SkippedLine(line Line) {
	for _, r := range m {
		r.SkippedLine(line)
	}
}

func orNop(r Reporter) Reporter {
	if r == nil {
		return NopReporter{}
	}
	return r
}
