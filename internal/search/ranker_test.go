package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside-sg/courtside-api/internal/models"
)

func pairWith(id string, fee float64, date, start string) Pair {
	return Pair{
		Instructor: &models.Instructor{ID: id, Fee: fee},
		Slot:       models.TimeSlot{ID: id + "-slot", Date: date, StartTime: start},
	}
}

func rankedIDs(pairs []Pair) []string {
	out := make([]string, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, p.Instructor.ID)
	}
	return out
}

func TestRankByPrice(t *testing.T) {
	pairs := []Pair{
		pairWith("x", 90, "2024-06-01", "09:00"),
		pairWith("y", 70, "2024-06-01", "10:00"),
	}

	ranked := NewRanker().Rank(pairs, models.SortOptions{Mode: models.SortByPrice})
	assert.Equal(t, []string{"y", "x"}, rankedIDs(ranked))

	ranked = NewRanker().Rank(pairs, models.SortOptions{Mode: models.SortByPrice, Descending: true})
	assert.Equal(t, []string{"x", "y"}, rankedIDs(ranked))
}

func TestRankByTimeDateThenStart(t *testing.T) {
	pairs := []Pair{
		pairWith("late-day", 50, "2024-06-02", "08:00"),
		pairWith("early-day-late-hour", 50, "2024-06-01", "18:00"),
		pairWith("early-day-early-hour", 50, "2024-06-01", "09:00"),
	}

	ranked := NewRanker().Rank(pairs, models.SortOptions{Mode: models.SortByTime})
	assert.Equal(t, []string{"early-day-early-hour", "early-day-late-hour", "late-day"}, rankedIDs(ranked))
}

func TestRankCombinedUsesFeeAsTieBreak(t *testing.T) {
	pairs := []Pair{
		pairWith("pricey", 120, "2024-06-01", "09:00"),
		pairWith("cheap", 60, "2024-06-01", "09:00"),
		pairWith("earlier", 200, "2024-06-01", "08:00"),
	}

	ranked := NewRanker().Rank(pairs, models.SortOptions{Mode: models.SortCombined})
	assert.Equal(t, []string{"earlier", "cheap", "pricey"}, rankedIDs(ranked))
}

func TestRankIsStableOnEqualKeys(t *testing.T) {
	pairs := []Pair{
		pairWith("first", 80, "2024-06-01", "09:00"),
		pairWith("second", 80, "2024-06-01", "09:00"),
		pairWith("third", 80, "2024-06-01", "09:00"),
	}

	for _, mode := range []models.SortMode{models.SortByTime, models.SortByPrice, models.SortCombined} {
		ranked := NewRanker().Rank(append([]Pair(nil), pairs...), models.SortOptions{Mode: mode})
		require.Equal(t, []string{"first", "second", "third"}, rankedIDs(ranked), "mode %s", mode)
	}
}
