// Package dataset seeds and normalizes the in-memory instructor roster. The
// roster is built once at startup; read paths never mutate it.
package dataset

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/courtside-sg/courtside-api/internal/models"
	"github.com/courtside-sg/courtside-api/pkg/config"
)

// Load seeds the roster with availability starting at baseDate and runs the
// one-time normalization pass. The same seed always yields the same roster.
func Load(cfg config.DatasetConfig, baseDate time.Time, logger *zap.Logger) ([]models.Instructor, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	days := cfg.Days
	if days <= 0 {
		days = 7
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	baseDate = time.Date(baseDate.Year(), baseDate.Month(), baseDate.Day(), 0, 0, 0, 0, time.UTC)

	instructors := roster()
	for i := range instructors {
		inst := &instructors[i]
		inst.Availability = generateAvailability(rng, inst.ID, baseDate, inst.Locations, days)
	}

	if err := Normalize(instructors, rng); err != nil {
		return nil, err
	}

	logger.Info("dataset loaded",
		zap.Int("instructors", len(instructors)),
		zap.Int("days", days),
		zap.Int64("seed", cfg.Seed),
	)
	return instructors, nil
}

// Normalize sorts each instructor's availability chronologically, backfills
// missing specializations, and validates the dataset invariants. It is the
// only place the roster is mutated after seeding.
func Normalize(instructors []models.Instructor, rng *rand.Rand) error {
	for i := range instructors {
		inst := &instructors[i]

		sort.SliceStable(inst.Availability, func(a, b int) bool {
			sa, sb := inst.Availability[a], inst.Availability[b]
			if sa.Date != sb.Date {
				return sa.Date < sb.Date
			}
			return sa.StartTime < sb.StartTime
		})

		if inst.Specialization == "" {
			inst.Specialization = models.Specializations[rng.Intn(len(models.Specializations))]
		}
	}
	return validate(instructors)
}

func validate(instructors []models.Instructor) error {
	v := validator.New()
	seen := make(map[string]bool, len(instructors))

	for i := range instructors {
		inst := &instructors[i]
		if inst.ID == "" || seen[inst.ID] {
			return fmt.Errorf("instructor %q: missing or duplicate id", inst.Name)
		}
		seen[inst.ID] = true

		if err := v.Var(inst.Fee, "gt=0"); err != nil {
			return fmt.Errorf("instructor %s: fee must be positive", inst.ID)
		}
		if err := v.Var(inst.Rating, "gte=0,lte=5"); err != nil {
			return fmt.Errorf("instructor %s: rating out of range", inst.ID)
		}
		if len(inst.Locations) == 0 {
			return fmt.Errorf("instructor %s: empty location set", inst.ID)
		}
		for _, size := range inst.ClassSizes {
			if size <= 0 {
				return fmt.Errorf("instructor %s: class size must be positive", inst.ID)
			}
		}

		for _, slot := range inst.Availability {
			if err := v.Var(slot.Date, "datetime=2006-01-02"); err != nil {
				return fmt.Errorf("instructor %s slot %s: bad date %q", inst.ID, slot.ID, slot.Date)
			}
			if err := v.Var(slot.StartTime, "datetime=15:04"); err != nil {
				return fmt.Errorf("instructor %s slot %s: bad start time %q", inst.ID, slot.ID, slot.StartTime)
			}
			if err := v.Var(slot.EndTime, "datetime=15:04"); err != nil {
				return fmt.Errorf("instructor %s slot %s: bad end time %q", inst.ID, slot.ID, slot.EndTime)
			}
			if !lo.Contains(inst.Locations, slot.Location) {
				return fmt.Errorf("instructor %s slot %s: location %q outside coverage", inst.ID, slot.ID, slot.Location)
			}
		}
	}
	return nil
}
