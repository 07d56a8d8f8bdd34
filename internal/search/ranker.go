package search

import (
	"sort"

	"github.com/courtside-sg/courtside-api/internal/models"
)

// Ranker orders matched pairs by the active sort mode. The sort is stable so
// entries with equal keys keep their pre-sort relative order.
type Ranker struct{}

// NewRanker constructs a Ranker.
func NewRanker() *Ranker {
	return &Ranker{}
}

// Rank sorts pairs in place and returns the same slice.
func (r *Ranker) Rank(pairs []Pair, opts models.SortOptions) []Pair {
	cmp := compareFn(opts.Mode)
	sort.SliceStable(pairs, func(i, j int) bool {
		c := cmp(pairs[i], pairs[j])
		if opts.Descending {
			return c > 0
		}
		return c < 0
	})
	return pairs
}

func compareFn(mode models.SortMode) func(a, b Pair) int {
	switch mode {
	case models.SortByPrice:
		return comparePrice
	case models.SortCombined:
		// Chronological primary, fee as tie-break.
		return func(a, b Pair) int {
			if c := compareTime(a, b); c != 0 {
				return c
			}
			return comparePrice(a, b)
		}
	default:
		return compareTime
	}
}

// compareTime orders chronologically. Dates are canonical YYYY-MM-DD and
// times zero-padded HH:MM, so lexicographic comparison is chronological.
func compareTime(a, b Pair) int {
	if a.Slot.Date != b.Slot.Date {
		if a.Slot.Date < b.Slot.Date {
			return -1
		}
		return 1
	}
	if a.Slot.StartTime != b.Slot.StartTime {
		if a.Slot.StartTime < b.Slot.StartTime {
			return -1
		}
		return 1
	}
	return 0
}

func comparePrice(a, b Pair) int {
	switch {
	case a.Instructor.Fee < b.Instructor.Fee:
		return -1
	case a.Instructor.Fee > b.Instructor.Fee:
		return 1
	default:
		return 0
	}
}
