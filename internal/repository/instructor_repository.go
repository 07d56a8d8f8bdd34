package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/courtside-sg/courtside-api/internal/models"
	appErrors "github.com/courtside-sg/courtside-api/pkg/errors"
)

// InstructorRepository is the in-memory roster store. The roster is replaced
// wholesale at load time and treated as read-only afterwards; reads hand out
// copies so callers cannot mutate shared state.
type InstructorRepository struct {
	mu          sync.RWMutex
	instructors []models.Instructor
	byID        map[string]int
}

// NewInstructorRepository constructs an empty repository.
func NewInstructorRepository() *InstructorRepository {
	return &InstructorRepository{byID: make(map[string]int)}
}

// Replace swaps in a freshly loaded roster.
func (r *InstructorRepository) Replace(instructors []models.Instructor) {
	byID := make(map[string]int, len(instructors))
	for i := range instructors {
		byID[instructors[i].ID] = i
	}

	r.mu.Lock()
	r.instructors = instructors
	r.byID = byID
	r.mu.Unlock()
}

// Snapshot returns the full roster for evaluation. The slice header is a
// copy; the evaluator treats elements as read-only.
func (r *InstructorRepository) Snapshot(ctx context.Context) ([]models.Instructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Instructor, len(r.instructors))
	copy(out, r.instructors)
	return out, nil
}

// List returns a roster page filtered by a name/bio substring search.
func (r *InstructorRepository) List(ctx context.Context, filter models.RosterFilter) ([]models.Instructor, int, error) {
	r.mu.RLock()
	matched := lo.Filter(r.instructors, func(inst models.Instructor, _ int) bool {
		if filter.Search == "" {
			return true
		}
		needle := strings.ToLower(filter.Search)
		return strings.Contains(strings.ToLower(inst.Name), needle) ||
			strings.Contains(strings.ToLower(inst.Bio), needle)
	})
	r.mu.RUnlock()

	sortRoster(matched, filter.SortBy, filter.SortOrder)

	total := len(matched)
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = models.DefaultRosterPageSize
	}
	start := (page - 1) * size
	if start >= total {
		return []models.Instructor{}, total, nil
	}
	end := start + size
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

// FindByID returns a copy of the instructor with the given id.
func (r *InstructorRepository) FindByID(ctx context.Context, id string) (*models.Instructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byID[id]
	if !ok {
		return nil, appErrors.ErrNotFound
	}
	cp := r.instructors[idx]
	return &cp, nil
}

func sortRoster(instructors []models.Instructor, sortBy, order string) {
	desc := strings.EqualFold(order, "desc")
	less := func(a, b models.Instructor) bool { return a.Name < b.Name }
	switch sortBy {
	case "fee":
		less = func(a, b models.Instructor) bool { return a.Fee < b.Fee }
	case "rating":
		less = func(a, b models.Instructor) bool { return a.Rating < b.Rating }
	}
	sort.SliceStable(instructors, func(i, j int) bool {
		if desc {
			return less(instructors[j], instructors[i])
		}
		return less(instructors[i], instructors[j])
	})
}
