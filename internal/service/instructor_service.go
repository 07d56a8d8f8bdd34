package service

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/courtside-sg/courtside-api/internal/models"
)

type instructorRepository interface {
	List(ctx context.Context, filter models.RosterFilter) ([]models.Instructor, int, error)
	FindByID(ctx context.Context, id string) (*models.Instructor, error)
}

// InstructorService exposes the roster for profile browsing.
type InstructorService struct {
	repo   instructorRepository
	logger *zap.Logger
}

// NewInstructorService constructs an InstructorService.
func NewInstructorService(repo instructorRepository, logger *zap.Logger) *InstructorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstructorService{repo: repo, logger: logger}
}

// List returns a page of instructors with pagination metadata.
func (s *InstructorService) List(ctx context.Context, filter models.RosterFilter) ([]models.Instructor, *models.Pagination, error) {
	instructors, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = models.DefaultRosterPageSize
	}
	pagination := &models.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}
	return instructors, pagination, nil
}

// Get returns a single instructor profile by id.
func (s *InstructorService) Get(ctx context.Context, id string) (*models.Instructor, error) {
	return s.repo.FindByID(ctx, id)
}
