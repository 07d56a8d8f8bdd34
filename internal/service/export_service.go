package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/courtside-sg/courtside-api/internal/models"
	appErrors "github.com/courtside-sg/courtside-api/pkg/errors"
	"github.com/courtside-sg/courtside-api/pkg/export"
)

// ExportFormat identifies a supported export encoding.
type ExportFormat string

const (
	ExportCSV ExportFormat = "csv"
	ExportPDF ExportFormat = "pdf"
)

var exportHeaders = []string{"Instructor", "Fee (SGD/hr)", "Rating", "Levels", "Date", "Start", "End", "Location", "Available"}

// ExportService renders a full search result set as a downloadable file.
type ExportService struct {
	search  *SearchService
	logger  *zap.Logger
	enabled bool
}

// NewExportService constructs an ExportService.
func NewExportService(search *SearchService, logger *zap.Logger, enabled bool) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{search: search, logger: logger, enabled: enabled}
}

// Enabled reports whether exports are available.
func (s *ExportService) Enabled() bool {
	return s != nil && s.enabled
}

// Export runs the search without pagination and renders every result in the
// requested format. It returns the file bytes and a content type.
func (s *ExportService) Export(ctx context.Context, req SearchRequest, format ExportFormat) ([]byte, string, error) {
	if !s.Enabled() {
		return nil, "", appErrors.ErrFeatureDisabled
	}

	results, err := s.search.SearchAll(ctx, req)
	if err != nil {
		return nil, "", err
	}

	data := export.Dataset{
		Headers: exportHeaders,
		Rows: lo.Map(results, func(r models.SearchResult, _ int) map[string]string {
			return map[string]string{
				"Instructor":   r.Instructor.Name,
				"Fee (SGD/hr)": strconv.FormatFloat(r.Instructor.Fee, 'f', 2, 64),
				"Rating":       strconv.FormatFloat(r.Instructor.Rating, 'f', 1, 64),
				"Levels":       strings.Join(r.Instructor.Levels, ", "),
				"Date":         r.Slot.Date,
				"Start":        r.Slot.StartTime,
				"End":          r.Slot.EndTime,
				"Location":     r.Slot.Location,
				"Available":    strconv.FormatBool(r.IsAvailable),
			}
		}),
	}

	switch format {
	case ExportCSV:
		out, err := export.CSV(data)
		return out, "text/csv", err
	case ExportPDF:
		out, err := export.PDF(data, "Tennis Instructor Availability")
		return out, "application/pdf", err
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}
