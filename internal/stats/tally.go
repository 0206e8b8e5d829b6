// Package stats computes descriptive statistics over a trip table. Nothing
// here prints; see package report for the console output.
package stats

import (
	"errors"
	"sort"
)

// ErrEmptyTable is returned when a statistic is undefined because the table
// has no rows.
var ErrEmptyTable = errors.New("statistic undefined on an empty table")

// Count is a value and how often it occurred.
type Count[K comparable] struct {
	Value K
	Count int
}

// Tally counts occurrences while remembering the order in which values were
// first seen. That order breaks ties everywhere in this package.
type Tally[K comparable] struct {
	index   map[K]int
	entries []Count[K]
}

// NewTally returns an empty tally.
func NewTally[K comparable]() *Tally[K] {
	return &Tally[K]{index: make(map[K]int)}
}

// Add counts one occurrence of v.
func (t *Tally[K]) Add(v K) {
	if i, ok := t.index[v]; ok {
		t.entries[i].Count++
		return
	}
	t.index[v] = len(t.entries)
	t.entries = append(t.entries, Count[K]{Value: v, Count: 1})
}

// Len returns the number of distinct values.
func (t *Tally[K]) Len() int {
	return len(t.entries)
}

// Mode returns the first value, in first-seen order, whose count equals the
// maximum count.
func (t *Tally[K]) Mode() (Count[K], error) {
	if len(t.entries) == 0 {
		return Count[K]{}, ErrEmptyTable
	}
	best := t.entries[0]
	for _, e := range t.entries[1:] {
		if e.Count > best.Count {
			best = e
		}
	}
	return best, nil
}

// Ranked returns every value ordered by descending count, ties in
// first-seen order.
func (t *Tally[K]) Ranked() []Count[K] {
	out := make([]Count[K], len(t.entries))
	copy(out, t.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
