package dataset

import (
	"math/rand"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside-sg/courtside-api/internal/models"
	"github.com/courtside-sg/courtside-api/pkg/config"
)

func TestLoadIsDeterministicPerSeed(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	cfg := config.DatasetConfig{Seed: 42, Days: 7}

	first, err := Load(cfg, base, nil)
	require.NoError(t, err)
	second, err := Load(cfg, base, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := Load(config.DatasetConfig{Seed: 43, Days: 7}, base, nil)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestLoadProducesValidRoster(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	instructors, err := Load(config.DatasetConfig{Seed: 7, Days: 7}, base, nil)
	require.NoError(t, err)
	require.NotEmpty(t, instructors)

	for _, inst := range instructors {
		assert.NotEmpty(t, inst.Specialization, "specialization backfilled at load time")
		assert.Greater(t, inst.Fee, 0.0)
		assert.GreaterOrEqual(t, inst.Rating, 0.0)
		assert.LessOrEqual(t, inst.Rating, 5.0)
		require.NotEmpty(t, inst.Availability)

		for i, slot := range inst.Availability {
			assert.True(t, lo.Contains(inst.Locations, slot.Location))
			if i > 0 {
				prev := inst.Availability[i-1]
				ordered := prev.Date < slot.Date ||
					(prev.Date == slot.Date && prev.StartTime <= slot.StartTime)
				assert.True(t, ordered, "availability sorted by date then start time")
			}
		}
	}
}

func TestLoadAvailabilityWindow(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	instructors, err := Load(config.DatasetConfig{Seed: 1, Days: 3}, base, nil)
	require.NoError(t, err)

	for _, inst := range instructors {
		for _, slot := range inst.Availability {
			assert.GreaterOrEqual(t, slot.Date, "2024-06-01")
			assert.LessOrEqual(t, slot.Date, "2024-06-03")
		}
	}
}

func TestNormalizeRejectsSlotOutsideCoverage(t *testing.T) {
	instructors := []models.Instructor{{
		ID:        "x",
		Name:      "X",
		Locations: []string{"Bedok"},
		Fee:       50,
		Rating:    4,
		Availability: []models.TimeSlot{
			{ID: "x-1", Date: "2024-06-01", StartTime: "09:00", EndTime: "10:00", Location: "Yishun"},
		},
	}}

	err := Normalize(instructors, rand.New(rand.NewSource(1)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside coverage")
}

func TestNormalizeBackfillsSpecializationOnce(t *testing.T) {
	instructors := []models.Instructor{{
		ID:        "x",
		Name:      "X",
		Locations: []string{"Bedok"},
		Fee:       50,
		Rating:    4,
	}}

	require.NoError(t, Normalize(instructors, rand.New(rand.NewSource(1))))
	first := instructors[0].Specialization
	assert.Contains(t, models.Specializations, first)

	require.NoError(t, Normalize(instructors, rand.New(rand.NewSource(99))))
	assert.Equal(t, first, instructors[0].Specialization, "existing specialization is never overwritten")
}
