package export_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"stockroom/internal/dto"
	"stockroom/internal/export"
)

func TestMonthlyWorkbookSheetPerMonth(t *testing.T) {
	rows := map[int][]dto.ReportRow{
		1: {
			{ItemName: "Bolt", OpeningStock: 0, StockIn: 100, StockOut: 20, ClosingStock: 80},
			{ItemName: "Nut", OpeningStock: 5, StockIn: 0, StockOut: 2, ClosingStock: 3},
		},
		2: {
			{ItemName: "Bolt", OpeningStock: 80, StockIn: 30, StockOut: 0, ClosingStock: 110},
		},
	}

	buf, err := export.MonthlyWorkbook(2025, []int{1, 2}, rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"January 2025", "February 2025"}, f.GetSheetList())

	header, err := f.GetRows("January 2025")
	require.NoError(t, err)
	require.NotEmpty(t, header)
	assert.Equal(t, []string{"Item Name", "Opening Stock", "Stock In", "Stock Out", "Closing Stock"}, header[0])

	cell, err := f.GetCellValue("January 2025", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Bolt", cell)

	closing, err := f.GetCellValue("February 2025", "E2")
	require.NoError(t, err)
	assert.Equal(t, "110", closing)
}

func TestMonthlyWorkbookEmptyMonthStillHasHeader(t *testing.T) {
	buf, err := export.MonthlyWorkbook(2025, []int{7}, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"July 2025"}, f.GetSheetList())
	cell, err := f.GetCellValue("July 2025", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Item Name", cell)
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "January 2025", export.SheetName(2025, 1))
	assert.Equal(t, "December 2024", export.SheetName(2024, 12))
}
