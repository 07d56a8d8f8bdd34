package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside-sg/courtside-api/internal/models"
	appErrors "github.com/courtside-sg/courtside-api/pkg/errors"
)

func seedRepo() *InstructorRepository {
	repo := NewInstructorRepository()
	repo.Replace([]models.Instructor{
		{ID: "1", Name: "James Wong", Bio: "fundamentals", Fee: 70, Rating: 4.8},
		{ID: "2", Name: "Michelle Tan", Bio: "tournament prep", Fee: 90, Rating: 4.9},
		{ID: "3", Name: "Ravi Kumar", Bio: "casual players", Fee: 55, Rating: 4.5},
	})
	return repo
}

func TestFindByID(t *testing.T) {
	repo := seedRepo()

	inst, err := repo.FindByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Michelle Tan", inst.Name)

	_, err = repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestFindByIDReturnsCopy(t *testing.T) {
	repo := seedRepo()

	inst, err := repo.FindByID(context.Background(), "1")
	require.NoError(t, err)
	inst.Name = "mutated"

	again, err := repo.FindByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "James Wong", again.Name)
}

func TestListSearchAndSort(t *testing.T) {
	repo := seedRepo()

	listed, total, err := repo.List(context.Background(), models.RosterFilter{Search: "tournament"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, listed, 1)
	assert.Equal(t, "2", listed[0].ID)

	listed, total, err = repo.List(context.Background(), models.RosterFilter{SortBy: "fee", SortOrder: "desc"})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, "2", listed[0].ID)
	assert.Equal(t, "3", listed[2].ID)
}

func TestListPagination(t *testing.T) {
	repo := seedRepo()

	listed, total, err := repo.List(context.Background(), models.RosterFilter{Page: 2, PageSize: 2, SortBy: "name"})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, listed, 1)

	listed, _, err = repo.List(context.Background(), models.RosterFilter{Page: 5, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestReplaceSwapsRoster(t *testing.T) {
	repo := seedRepo()
	repo.Replace([]models.Instructor{{ID: "9", Name: "New Coach"}})

	_, err := repo.FindByID(context.Background(), "1")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	snapshot, err := repo.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshot, 1)
	assert.Equal(t, "9", snapshot[0].ID)
}
