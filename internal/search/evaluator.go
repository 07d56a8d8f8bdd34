// Package search implements the directory's core engine: filter predicate
// evaluation over the instructor roster, result ranking and pagination, and
// the latest-request-wins recomputation coordinator.
package search

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/courtside-sg/courtside-api/internal/models"
)

// Pair is one matched (instructor, time slot) combination.
type Pair struct {
	Instructor *models.Instructor
	Slot       models.TimeSlot
}

// Evaluator decides which (instructor, slot) pairs satisfy a filter
// configuration. It never mutates the roster and never fabricates results:
// an instructor with zero qualifying slots contributes nothing.
type Evaluator struct{}

// NewEvaluator constructs an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate scans the full roster and returns the flattened cross product of
// qualifying instructors and their qualifying slots, in roster order.
func (e *Evaluator) Evaluate(roster []models.Instructor, filter models.FilterOptions) []Pair {
	var pairs []Pair
	for i := range roster {
		inst := &roster[i]
		if !e.MatchesInstructor(inst, filter) {
			continue
		}
		for _, slot := range inst.Availability {
			if e.MatchesSlot(slot, filter) {
				pairs = append(pairs, Pair{Instructor: inst, Slot: slot})
			}
		}
	}
	return pairs
}

// MatchesInstructor applies the per-instructor gates. Failing any gate
// excludes the instructor entirely before any slot is considered.
func (e *Evaluator) MatchesInstructor(inst *models.Instructor, filter models.FilterOptions) bool {
	if name := strings.TrimSpace(filter.InstructorName); name != "" {
		if !strings.Contains(strings.ToLower(inst.Name), strings.ToLower(name)) {
			return false
		}
	}

	if inst.Fee > filter.Budget {
		return false
	}

	// OR semantics: any overlap between requested and covered neighborhoods.
	if len(filter.Locations) > 0 && !lo.Some(inst.Locations, filter.Locations) {
		return false
	}

	if filter.Level != "" && !lo.Contains(inst.Levels, filter.Level) {
		return false
	}

	if filter.NeedsCourt && !inst.ProvidesOwnCourt {
		return false
	}

	return true
}

// MatchesSlot applies the per-slot gates, evaluated independently per slot.
func (e *Evaluator) MatchesSlot(slot models.TimeSlot, filter models.FilterOptions) bool {
	if slot.Booked {
		return false
	}

	if filter.Date != "" && slot.Date != filter.Date {
		return false
	}

	hour, ok := startHour(slot.StartTime)
	if !ok {
		return false
	}
	return hour >= filter.TimeFrom && hour <= filter.TimeTo
}

func startHour(startTime string) (int, bool) {
	h, _, found := strings.Cut(startTime, ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	return hour, true
}
