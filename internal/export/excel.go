// Package export renders report rows into downloadable documents. It is a
// pure formatting layer: it never reads storage and never mutates anything.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"stockroom/internal/dto"
)

var reportHeader = []string{"Item Name", "Opening Stock", "Stock In", "Stock Out", "Closing Stock"}

// MonthlyWorkbook builds an XLSX workbook with one sheet per month. The
// months slice controls sheet order; rowsByMonth supplies the rows for each.
func MonthlyWorkbook(year int, months []int, rowsByMonth map[int][]dto.ReportRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, m := range months {
		sheet := SheetName(year, m)
		if i == 0 {
			// Rename the default sheet instead of leaving an empty Sheet1.
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, err
			}
		}

		for col, title := range reportHeader {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, title); err != nil {
				return nil, err
			}
		}

		for rowIdx, row := range rowsByMonth[m] {
			values := []interface{}{row.ItemName, row.OpeningStock, row.StockIn, row.StockOut, row.ClosingStock}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return nil, err
				}
			}
		}
	}

	return f.WriteToBuffer()
}

// SheetName is the per-month sheet title, e.g. "January 2025".
func SheetName(year, month int) string {
	return fmt.Sprintf("%s %d", time.Month(month).String(), year)
}
