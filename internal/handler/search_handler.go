package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/courtside-sg/courtside-api/internal/middleware"
	"github.com/courtside-sg/courtside-api/internal/models"
	"github.com/courtside-sg/courtside-api/internal/service"
	appErrors "github.com/courtside-sg/courtside-api/pkg/errors"
	"github.com/courtside-sg/courtside-api/pkg/response"
)

// SessionHeader carries the caller's search session identifier. Requests
// sharing a session supersede each other; requests without one never collide.
const SessionHeader = "X-Search-Session"

type searchService interface {
	Search(ctx context.Context, sessionID string, req service.SearchRequest) ([]models.SearchResult, *models.Pagination, bool, error)
	FilterMetadata() models.FilterMetadata
	DateStrip(from string) ([]string, error)
}

type exportService interface {
	Enabled() bool
	Export(ctx context.Context, req service.SearchRequest, format service.ExportFormat) ([]byte, string, error)
}

// SearchHandler wires the search engine to HTTP endpoints.
type SearchHandler struct {
	search  searchService
	exports exportService
}

// NewSearchHandler constructs the handler.
func NewSearchHandler(search searchService, exports exportService) *SearchHandler {
	return &SearchHandler{search: search, exports: exports}
}

// Search godoc
// @Summary Search instructor availability
// @Tags Search
// @Produce json
// @Param name query string false "Instructor name substring"
// @Param location query []string false "Neighborhood (repeatable, matched as OR)"
// @Param budget query number false "Maximum hourly fee"
// @Param level query string false "Skill level"
// @Param needs_court query boolean false "Only instructors providing a court"
// @Param date query string false "Lesson date (YYYY-MM-DD)"
// @Param time_from query integer false "Earliest start hour (0-23)"
// @Param time_to query integer false "Latest start hour (0-23)"
// @Param sort query string false "Sort mode: time, price or combined"
// @Param order query string false "Sort order: asc or desc"
// @Param page query integer false "Page number"
// @Success 200 {object} response.Envelope
// @Router /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	if h.search == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	req, err := parseSearchRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	sessionID := strings.TrimSpace(c.GetHeader(SessionHeader))
	if sessionID != "" {
		middleware.SetSessionID(c, sessionID)
		c.Header(SessionHeader, sessionID)
	}

	start := time.Now()
	results, pagination, cacheHit, err := h.search.Search(c.Request.Context(), sessionID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	response.JSON(c, http.StatusOK, results, pagination, meta)
}

// Filters godoc
// @Summary Filter form metadata
// @Tags Search
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /search/filters [get]
func (h *SearchHandler) Filters(c *gin.Context) {
	if h.search == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	response.JSON(c, http.StatusOK, h.search.FilterMetadata(), nil)
}

// Dates godoc
// @Summary Seven-day date navigation strip
// @Tags Search
// @Produce json
// @Param from query string false "First day (YYYY-MM-DD). Defaults to today"
// @Success 200 {object} response.Envelope
// @Router /search/dates [get]
func (h *SearchHandler) Dates(c *gin.Context) {
	if h.search == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	dates, err := h.search.DateStrip(strings.TrimSpace(c.Query("from")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"dates": dates}, nil)
}

// Export godoc
// @Summary Export search results as CSV or PDF
// @Tags Search
// @Produce text/csv
// @Produce application/pdf
// @Param format query string true "Export format: csv or pdf"
// @Success 200 {file} file
// @Router /search/export [get]
func (h *SearchHandler) Export(c *gin.Context) {
	if h.exports == nil || !h.exports.Enabled() {
		response.Error(c, appErrors.ErrFeatureDisabled)
		return
	}
	req, err := parseSearchRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	format := service.ExportFormat(strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", "csv"))))

	out, contentType, err := h.exports.Export(c.Request.Context(), req, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := fmt.Sprintf("instructor-availability-%s.%s", time.Now().UTC().Format("20060102"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, out)
}

func parseSearchRequest(c *gin.Context) (service.SearchRequest, error) {
	filter := models.DefaultFilter()
	filter.InstructorName = strings.TrimSpace(c.Query("name"))
	filter.Level = strings.TrimSpace(c.Query("level"))
	filter.Date = strings.TrimSpace(c.Query("date"))

	for _, loc := range c.QueryArray("location") {
		if trimmed := strings.TrimSpace(loc); trimmed != "" {
			filter.Locations = append(filter.Locations, trimmed)
		}
	}

	if raw := strings.TrimSpace(c.Query("budget")); raw != "" {
		budget, err := strconv.ParseFloat(raw, 64)
		if err != nil || budget < 0 {
			return service.SearchRequest{}, appErrors.Clone(appErrors.ErrValidation, "budget must be a non-negative number")
		}
		filter.Budget = budget
	}
	if raw := strings.TrimSpace(c.Query("needs_court")); raw != "" {
		needsCourt, err := strconv.ParseBool(raw)
		if err != nil {
			return service.SearchRequest{}, appErrors.Clone(appErrors.ErrValidation, "needs_court must be a boolean")
		}
		filter.NeedsCourt = needsCourt
	}
	var err error
	if filter.TimeFrom, err = parseHour(c, "time_from", filter.TimeFrom); err != nil {
		return service.SearchRequest{}, err
	}
	if filter.TimeTo, err = parseHour(c, "time_to", filter.TimeTo); err != nil {
		return service.SearchRequest{}, err
	}

	sort := models.SortOptions{
		Mode:       models.SortMode(strings.TrimSpace(c.DefaultQuery("sort", string(models.SortByTime)))),
		Descending: strings.EqualFold(strings.TrimSpace(c.Query("order")), models.SortOrderDesc),
	}

	page := 1
	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return service.SearchRequest{}, appErrors.Clone(appErrors.ErrValidation, "page must be a positive integer")
		}
	}

	return service.SearchRequest{Filter: filter, Sort: sort, Page: page}, nil
}

func parseHour(c *gin.Context, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback, nil
	}
	hour, err := strconv.Atoi(raw)
	if err != nil || hour < 0 || hour > 23 {
		return 0, appErrors.Clone(appErrors.ErrValidation, key+" must be an hour between 0 and 23")
	}
	return hour, nil
}
