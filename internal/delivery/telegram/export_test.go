package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/shahrazad-assistant/internal/domain/entity"
)

func TestCollectColumns(t *testing.T) {
	records := []entity.Record{
		{"id": "p-1", "name": "كابل"},
		{"id": "p-2", "stock": 3.0},
	}
	assert.Equal(t, []string{"id", "name", "stock"}, collectColumns(records))
	assert.Empty(t, collectColumns(nil))
}

func TestWriteRecordsSheet(t *testing.T) {
	file := excelize.NewFile()
	sheet := file.GetSheetName(0)

	records := []entity.Record{
		{"id": "p-1", "name": "كابل", "stock": 40.0},
		{"id": "p-2", "name": "مفتاح"},
	}
	require.NoError(t, writeRecordsSheet(file, sheet, records))

	rows, err := file.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "name", "stock"}, rows[0])
	assert.Equal(t, "p-1", rows[1][0])
	assert.Equal(t, "كابل", rows[1][1])
	assert.Equal(t, "40", rows[1][2])
	// Yo'q maydon bo'sh katak bo'lib qoladi
	assert.Equal(t, "p-2", rows[2][0])
}
