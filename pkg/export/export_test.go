package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"Instructor", "Date", "Start"},
		Rows: []map[string]string{
			{"Instructor": "James Wong", "Date": "2024-06-01", "Start": "09:00"},
			{"Instructor": "Michelle Tan", "Date": "2024-06-02", "Start": "11:00"},
		},
	}
}

func TestCSV(t *testing.T) {
	out, err := CSV(sampleDataset())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Instructor,Date,Start", lines[0])
	assert.Equal(t, "James Wong,2024-06-01,09:00", lines[1])
}

func TestCSVRequiresHeaders(t *testing.T) {
	_, err := CSV(Dataset{})
	require.Error(t, err)
}

func TestPDF(t *testing.T) {
	out, err := PDF(sampleDataset(), "Availability")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestPDFRequiresHeaders(t *testing.T) {
	_, err := PDF(Dataset{}, "")
	require.Error(t, err)
}
