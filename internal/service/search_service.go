package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/courtside-sg/courtside-api/internal/models"
	"github.com/courtside-sg/courtside-api/internal/search"
	"github.com/courtside-sg/courtside-api/pkg/contact"
	appErrors "github.com/courtside-sg/courtside-api/pkg/errors"
)

const dateStripDays = 7

type instructorSource interface {
	Snapshot(ctx context.Context) ([]models.Instructor, error)
}

// SearchRequest carries one search invocation: filter, ordering and page.
type SearchRequest struct {
	Filter models.FilterOptions `json:"filter"`
	Sort   models.SortOptions   `json:"sort"`
	Page   int                  `json:"page" validate:"gte=0"`
}

// SearchService orchestrates the engine: evaluate, rank, paginate, with a
// read-through result cache and latest-request-wins session coordination.
type SearchService struct {
	source      instructorSource
	evaluator   *search.Evaluator
	ranker      *search.Ranker
	paginator   *search.Paginator
	coordinator *search.Coordinator
	cache       *CacheService
	metrics     *MetricsService
	contacts    *contact.LinkBuilder
	validator   *validator.Validate
	logger      *zap.Logger
	cacheTTL    time.Duration
	now         func() time.Time
}

// NewSearchService constructs a SearchService.
func NewSearchService(
	source instructorSource,
	coordinator *search.Coordinator,
	paginator *search.Paginator,
	cache *CacheService,
	metrics *MetricsService,
	contacts *contact.LinkBuilder,
	validate *validator.Validate,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *SearchService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if contacts == nil {
		contacts = contact.NewLinkBuilder("")
	}
	if paginator == nil {
		paginator = search.NewPaginator(0)
	}
	return &SearchService{
		source:      source,
		evaluator:   search.NewEvaluator(),
		ranker:      search.NewRanker(),
		paginator:   paginator,
		coordinator: coordinator,
		cache:       cache,
		metrics:     metrics,
		contacts:    contacts,
		validator:   validate,
		logger:      logger,
		cacheTTL:    cacheTTL,
		now:         time.Now,
	}
}

// Search computes the ordered, paginated result set for the request.
// Requests sharing a session id supersede each other: only the most recent
// configuration is computed and returned. The boolean reports whether the
// ranked set came from cache.
func (s *SearchService) Search(ctx context.Context, sessionID string, req SearchRequest) ([]models.SearchResult, *models.Pagination, bool, error) {
	req.Sort = defaultSort(req.Sort)
	if err := s.validateRequest(req); err != nil {
		return nil, nil, false, err
	}

	var (
		ranked   []models.SearchResult
		cacheHit bool
	)
	run := func(runCtx context.Context) error {
		var err error
		ranked, cacheHit, err = s.rankedResults(runCtx, req)
		return err
	}

	var err error
	if s.coordinator != nil {
		err = s.coordinator.Run(ctx, sessionID, run)
	} else {
		err = run(ctx)
	}
	if err != nil {
		if errors.Is(err, appErrors.ErrSuperseded) {
			s.metrics.ObserveSupersededSearch()
		}
		return nil, nil, false, err
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pagination := &models.Pagination{
		Page:       page,
		PageSize:   s.paginator.PageSize(),
		TotalCount: len(ranked),
		TotalPages: s.paginator.TotalPages(len(ranked)),
	}
	return s.paginator.Page(ranked, page), pagination, cacheHit, nil
}

// SearchAll returns the complete ordered result set without pagination.
func (s *SearchService) SearchAll(ctx context.Context, req SearchRequest) ([]models.SearchResult, error) {
	req.Sort = defaultSort(req.Sort)
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}
	results, _, err := s.rankedResults(ctx, req)
	return results, err
}

// FilterMetadata returns the filter choices and slider bounds for the search form.
func (s *SearchService) FilterMetadata() models.FilterMetadata {
	return models.FilterMetadata{
		NeighborhoodsByRegion: models.NeighborhoodsByRegion,
		Levels:                models.Levels,
		Budget: models.RangeMetadata{
			Min:  models.MinBudget,
			Max:  models.DefaultBudget,
			Step: models.BudgetStep,
		},
		TimeRange: models.RangeMetadata{
			Min: float64(models.DefaultTimeFrom),
			Max: float64(models.DefaultTimeTo),
		},
	}
}

// DateStrip returns the seven calendar days starting at from (today when empty),
// feeding the date navigation strip.
func (s *SearchService) DateStrip(from string) ([]string, error) {
	start := s.now().UTC()
	if from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "from must be a YYYY-MM-DD date")
		}
		start = parsed
	}
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	dates := make([]string, 0, dateStripDays)
	for i := 0; i < dateStripDays; i++ {
		dates = append(dates, start.AddDate(0, 0, i).Format("2006-01-02"))
	}
	return dates, nil
}

func (s *SearchService) rankedResults(ctx context.Context, req SearchRequest) ([]models.SearchResult, bool, error) {
	key := cacheKey(req.Filter, req.Sort)

	var cached []models.SearchResult
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return cached, true, nil
	}

	start := time.Now()
	roster, err := s.source.Snapshot(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster")
	}

	pairs := s.evaluator.Evaluate(roster, req.Filter)
	s.ranker.Rank(pairs, req.Sort)

	results := make([]models.SearchResult, 0, len(pairs))
	for _, p := range pairs {
		results = append(results, s.toResult(p))
	}
	s.metrics.ObserveSearch(len(results), time.Since(start))

	if err := s.cache.Set(ctx, key, results, s.cacheTTL); err != nil {
		s.logger.Warn("search result cache write failed", zap.Error(err))
	}
	return results, false, nil
}

func (s *SearchService) toResult(p search.Pair) models.SearchResult {
	result := models.SearchResult{
		Instructor: models.InstructorSummary{
			ID:               p.Instructor.ID,
			Name:             p.Instructor.Name,
			Image:            p.Instructor.Image,
			Fee:              p.Instructor.Fee,
			Rating:           p.Instructor.Rating,
			Levels:           p.Instructor.Levels,
			ProvidesOwnCourt: p.Instructor.ProvidesOwnCourt,
			Specialization:   p.Instructor.Specialization,
		},
		Slot:        p.Slot,
		IsAvailable: !p.Slot.Booked,
	}
	if date, err := time.Parse("2006-01-02", p.Slot.Date); err == nil {
		result.ContactLink = s.contacts.BookingLink(p.Instructor.Name, p.Instructor.Phone, date, p.Slot.StartTime)
	}
	return result
}

func (s *SearchService) validateRequest(req SearchRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid search request")
	}
	switch req.Sort.Mode {
	case models.SortByTime, models.SortByPrice, models.SortCombined:
		return nil
	default:
		return appErrors.Clone(appErrors.ErrValidation, "sort mode must be time, price or combined")
	}
}

// defaultSort fills the one genuinely unset-able option. Filter values are
// taken as given: a zero budget or a [0,0] time range is a real, very narrow
// filter, not a request for defaults. Presence-based defaulting belongs to the
// caller (models.DefaultFilter).
func defaultSort(sort models.SortOptions) models.SortOptions {
	if sort.Mode == "" {
		sort.Mode = models.SortByTime
	}
	return sort
}

func cacheKey(filter models.FilterOptions, sort models.SortOptions) string {
	payload, _ := json.Marshal(struct {
		Filter models.FilterOptions `json:"filter"`
		Sort   models.SortOptions   `json:"sort"`
	}{filter, sort})
	sum := sha256.Sum256(payload)
	return "search:results:" + hex.EncodeToString(sum[:8])
}
