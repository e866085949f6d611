package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"modportal/internal/domain/ticket"
)

func sampleViews() []ticket.View {
	return []ticket.View{
		{
			ID:                 2,
			SiteName:           "SITE_B",
			TypeName:           "Cambio AAU",
			RequestDate:        time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			Priority:           "Normal",
			AssigneeName:       "Juan Herrero",
			AssigneeEmail:      "juan.herrero@telecom.com.ar",
			CreatorEmail:       "creator@telecom.com.ar",
			Status:             "Abierto",
			CreatedAt:          time.Date(2026, 4, 1, 10, 30, 0, 0, time.UTC),
			UpdatedAt:          time.Date(2026, 4, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:                 1,
			SiteName:           "SITE_A",
			TypeName:           "Swap 4G→5G",
			RequestDate:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			Priority:           "Urgente",
			AssigneeName:       "Andres Martinez",
			CreatorEmail:       "creator@telecom.com.ar",
			ExternalCaseNumber: "CASE-1",
			ExternalCaseLink:   "http://iga.local/case/1",
			Status:             "Cerrado",
			CreatedAt:          time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
			UpdatedAt:          time.Date(2026, 3, 20, 17, 45, 0, 0, time.UTC),
		},
	}
}

func TestExporter_WriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewExporter().WriteCSV(&buf, sampleViews()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, exportColumns, records[0])
	assert.Equal(t, "2", records[1][0])
	assert.Equal(t, "SITE_B", records[1][1])
	assert.Equal(t, "2026-04-01", records[1][3])

	closed := records[2]
	assert.Equal(t, "CASE-1", closed[8])
	assert.Equal(t, "http://iga.local/case/1", closed[9])
	assert.Equal(t, "Cerrado", closed[10])
	assert.Equal(t, "2026-03-20 17:45:00", closed[12])
}

func TestExporter_WriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewExporter().WriteCSV(&buf, nil))

	assert.Equal(t, "Sin datos", strings.TrimSpace(buf.String()))
}

func TestExporter_WriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewExporter().WriteXLSX(&buf, sampleViews()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, exportColumns, rows[0])
	assert.Equal(t, "SITE_B", rows[1][1])
	assert.Equal(t, "Urgente", rows[2][4])

	// The urgent row is highlighted, the normal one keeps the default style.
	normalStyle, err := f.GetCellStyle(sheetName, "A2")
	require.NoError(t, err)
	urgentStyle, err := f.GetCellStyle(sheetName, "A3")
	require.NoError(t, err)
	assert.NotEqual(t, normalStyle, urgentStyle)
}

func TestExporter_WriteXLSX_EmptyKeepsHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewExporter().WriteXLSX(&buf, nil))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, exportColumns, rows[0])
}

func TestExporter_Filenames(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 5, 9, 0, time.UTC)
	e := NewExporter()

	assert.Equal(t, "tickets_20260830_140509.csv", e.CSVFilename(now))
	assert.Equal(t, "tickets_20260830_140509.xlsx", e.XLSXFilename(now))
}
