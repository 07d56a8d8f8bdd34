package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/courtside-sg/courtside-api/internal/models"
	appErrors "github.com/courtside-sg/courtside-api/pkg/errors"
)

type stubInstructorRepo struct {
	instructors []models.Instructor
	total       int
	err         error
}

func (s *stubInstructorRepo) List(ctx context.Context, filter models.RosterFilter) ([]models.Instructor, int, error) {
	return s.instructors, s.total, s.err
}

func (s *stubInstructorRepo) FindByID(ctx context.Context, id string) (*models.Instructor, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.instructors {
		if s.instructors[i].ID == id {
			return &s.instructors[i], nil
		}
	}
	return nil, appErrors.ErrNotFound
}

func TestInstructorListPagination(t *testing.T) {
	repo := &stubInstructorRepo{
		instructors: []models.Instructor{{ID: "ins-1"}, {ID: "ins-2"}},
		total:       42,
	}
	svc := NewInstructorService(repo, zap.NewNop())

	instructors, pagination, err := svc.List(context.Background(), models.RosterFilter{Page: 2, PageSize: 10})
	require.NoError(t, err)

	assert.Len(t, instructors, 2)
	assert.Equal(t, 2, pagination.Page)
	assert.Equal(t, 10, pagination.PageSize)
	assert.Equal(t, 42, pagination.TotalCount)
	assert.Equal(t, 5, pagination.TotalPages)
}

func TestInstructorListDefaultsPageSize(t *testing.T) {
	repo := &stubInstructorRepo{total: 5}
	svc := NewInstructorService(repo, zap.NewNop())

	_, pagination, err := svc.List(context.Background(), models.RosterFilter{})
	require.NoError(t, err)

	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, models.DefaultRosterPageSize, pagination.PageSize)
	assert.Equal(t, 1, pagination.TotalPages)
}

func TestInstructorGet(t *testing.T) {
	repo := &stubInstructorRepo{instructors: []models.Instructor{{ID: "ins-1", Name: "Alice Teo"}}}
	svc := NewInstructorService(repo, zap.NewNop())

	instructor, err := svc.Get(context.Background(), "ins-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice Teo", instructor.Name)

	_, err = svc.Get(context.Background(), "ins-missing")
	require.ErrorIs(t, err, appErrors.ErrNotFound)
}
