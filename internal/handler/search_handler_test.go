package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside-sg/courtside-api/internal/models"
	"github.com/courtside-sg/courtside-api/internal/service"
	appErrors "github.com/courtside-sg/courtside-api/pkg/errors"
)

type fakeSearchSrv struct {
	results     []models.SearchResult
	pagination  *models.Pagination
	cacheHit    bool
	err         error
	dates       []string
	datesErr    error
	lastSession string
	lastReq     service.SearchRequest
}

func (f *fakeSearchSrv) Search(_ context.Context, sessionID string, req service.SearchRequest) ([]models.SearchResult, *models.Pagination, bool, error) {
	f.lastSession = sessionID
	f.lastReq = req
	return f.results, f.pagination, f.cacheHit, f.err
}

func (f *fakeSearchSrv) FilterMetadata() models.FilterMetadata {
	return models.FilterMetadata{Levels: models.Levels}
}

func (f *fakeSearchSrv) DateStrip(string) ([]string, error) {
	return f.dates, f.datesErr
}

type fakeExportSrv struct {
	enabled     bool
	payload     []byte
	contentType string
	err         error
	lastFormat  service.ExportFormat
}

func (f *fakeExportSrv) Enabled() bool { return f.enabled }

func (f *fakeExportSrv) Export(_ context.Context, _ service.SearchRequest, format service.ExportFormat) ([]byte, string, error) {
	f.lastFormat = format
	return f.payload, f.contentType, f.err
}

type searchEnvelope struct {
	Data       []models.SearchResult  `json:"data"`
	Pagination *models.Pagination     `json:"pagination"`
	Meta       map[string]interface{} `json:"meta"`
}

func TestSearchHandlerParsesQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeSearchSrv{pagination: &models.Pagination{Page: 2, PageSize: 5}}
	handler := NewSearchHandler(srv, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet,
		"/search?name=wong&location=Kallang&location=Bishan&budget=90&level=Beginner&needs_court=true&date=2024-06-01&time_from=9&time_to=18&sort=price&order=desc&page=2", nil)

	handler.Search(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "wong", srv.lastReq.Filter.InstructorName)
	assert.Equal(t, []string{"Kallang", "Bishan"}, srv.lastReq.Filter.Locations)
	assert.Equal(t, 90.0, srv.lastReq.Filter.Budget)
	assert.Equal(t, "Beginner", srv.lastReq.Filter.Level)
	assert.True(t, srv.lastReq.Filter.NeedsCourt)
	assert.Equal(t, "2024-06-01", srv.lastReq.Filter.Date)
	assert.Equal(t, 9, srv.lastReq.Filter.TimeFrom)
	assert.Equal(t, 18, srv.lastReq.Filter.TimeTo)
	assert.Equal(t, models.SortByPrice, srv.lastReq.Sort.Mode)
	assert.True(t, srv.lastReq.Sort.Descending)
	assert.Equal(t, 2, srv.lastReq.Page)
}

func TestSearchHandlerDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeSearchSrv{}
	handler := NewSearchHandler(srv, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/search", nil)

	handler.Search(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.DefaultBudget, srv.lastReq.Filter.Budget)
	assert.Equal(t, models.DefaultTimeFrom, srv.lastReq.Filter.TimeFrom)
	assert.Equal(t, models.DefaultTimeTo, srv.lastReq.Filter.TimeTo)
	assert.Equal(t, models.SortByTime, srv.lastReq.Sort.Mode)
	assert.Equal(t, 1, srv.lastReq.Page)
	assert.Empty(t, srv.lastSession)
	assert.Empty(t, rec.Header().Get(SessionHeader))
}

func TestSearchHandlerReusesSessionHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeSearchSrv{}
	handler := NewSearchHandler(srv, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/search", nil)
	c.Request.Header.Set(SessionHeader, "session-abc")

	handler.Search(c)

	assert.Equal(t, "session-abc", srv.lastSession)
	assert.Equal(t, "session-abc", rec.Header().Get(SessionHeader))
}

func TestSearchHandlerPassesExplicitZerosThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeSearchSrv{}
	handler := NewSearchHandler(srv, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/search?budget=0&time_from=0&time_to=0", nil)

	handler.Search(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0.0, srv.lastReq.Filter.Budget)
	assert.Equal(t, 0, srv.lastReq.Filter.TimeFrom)
	assert.Equal(t, 0, srv.lastReq.Filter.TimeTo)
}

func TestSearchHandlerInvalidBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSearchHandler(&fakeSearchSrv{}, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/search?budget=expensive", nil)

	handler.Search(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchHandlerSupersededConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSearchHandler(&fakeSearchSrv{err: appErrors.ErrSuperseded}, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/search", nil)

	handler.Search(c)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSearchHandlerEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeSearchSrv{
		results: []models.SearchResult{
			{Instructor: models.InstructorSummary{ID: "ins-1", Name: "Alice Teo"}},
		},
		pagination: &models.Pagination{Page: 1, PageSize: 5, TotalCount: 1, TotalPages: 1},
		cacheHit:   true,
	}
	handler := NewSearchHandler(srv, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/search", nil)

	handler.Search(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope searchEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "Alice Teo", envelope.Data[0].Instructor.Name)
	assert.Equal(t, 1, envelope.Pagination.TotalCount)
	assert.Contains(t, envelope.Meta, "processing_time_ms")
	assert.Equal(t, true, envelope.Meta["cache_hit"])
}

func TestSearchHandlerFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSearchHandler(&fakeSearchSrv{}, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/search/filters", nil)

	handler.Filters(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Beginner")
}

func TestSearchHandlerDates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSearchHandler(&fakeSearchSrv{dates: []string{"2024-06-01", "2024-06-02"}}, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/search/dates", nil)

	handler.Dates(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "2024-06-01")
}

func TestSearchHandlerExport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	exports := &fakeExportSrv{enabled: true, payload: []byte("header\nrow"), contentType: "text/csv"}
	handler := NewSearchHandler(&fakeSearchSrv{}, exports)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/search/export?format=csv", nil)

	handler.Export(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, service.ExportCSV, exports.lastFormat)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, "header\nrow", rec.Body.String())
}

func TestSearchHandlerExportDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSearchHandler(&fakeSearchSrv{}, &fakeExportSrv{enabled: false})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/search/export", nil)

	handler.Export(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
