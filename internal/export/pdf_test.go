package export_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroom/internal/dto"
	"stockroom/internal/export"
)

func TestWarehouseLogsPDF(t *testing.T) {
	logs := []dto.LogEntry{
		{Date: "2025-01-20T00:00:00Z", Type: "OUT", ItemName: "Bolt", ItemCategory: "LAPOTHARA", Quantity: 2},
		{Date: "2025-01-05T00:00:00Z", Type: "IN", ItemName: "Bolt", ItemCategory: "LAPOTHARA", Quantity: 10},
	}

	buf, err := export.WarehouseLogsPDF("Main", logs)
	require.NoError(t, err)
	require.NotNil(t, buf)
	assert.Equal(t, "%PDF", buf.String()[:4])
}

func TestWarehouseLogsPDFEmpty(t *testing.T) {
	buf, err := export.WarehouseLogsPDF("Main", nil)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", buf.String()[:4])
}
