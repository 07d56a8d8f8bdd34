package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appErrors "github.com/courtside-sg/courtside-api/pkg/errors"
)

func newTestExportService(enabled bool) *ExportService {
	searchSvc := newTestSearchService(&stubSource{roster: searchRoster()}, 5)
	return NewExportService(searchSvc, zap.NewNop(), enabled)
}

func TestExportCSVContainsAllResults(t *testing.T) {
	svc := newTestExportService(true)

	out, contentType, err := svc.Export(context.Background(), defaultRequest(0), ExportCSV)
	require.NoError(t, err)

	assert.Equal(t, "text/csv", contentType)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 7) // header plus six result rows
	assert.Contains(t, lines[0], "Instructor")
	assert.Contains(t, string(out), "Alice Teo")
	assert.Contains(t, string(out), "Ben Ong")
}

func TestExportPDFProducesDocument(t *testing.T) {
	svc := newTestExportService(true)

	out, contentType, err := svc.Export(context.Background(), defaultRequest(0), ExportPDF)
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestExportDisabled(t *testing.T) {
	svc := newTestExportService(false)

	_, _, err := svc.Export(context.Background(), defaultRequest(0), ExportCSV)
	require.ErrorIs(t, err, appErrors.ErrFeatureDisabled)
}

func TestExportUnsupportedFormat(t *testing.T) {
	svc := newTestExportService(true)

	_, _, err := svc.Export(context.Background(), defaultRequest(0), ExportFormat("xlsx"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
