package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	data := Dataset{Headers: []string{"Field", "Value"}}
	data.AddRow("Attendance", "92%")
	data.AddRow("Marks", "A")
	return data
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)
	assert.Equal(t, "Field,Value\nAttendance,92%\nMarks,A\n", string(out))
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter().Render(sampleDataset(), "Student Report", "Doing well.")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestAddRowIgnoresExtraValues(t *testing.T) {
	data := Dataset{Headers: []string{"A"}}
	data.AddRow("1", "2")
	require.Len(t, data.Rows, 1)
	assert.Equal(t, map[string]string{"A": "1"}, data.Rows[0])
}
