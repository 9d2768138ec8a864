package export

import (
	"bytes"
	"strconv"

	"github.com/go-pdf/fpdf"

	"stockroom/internal/dto"
)

// WarehouseLogsPDF renders the enriched transaction log of a warehouse as a
// simple table, newest entries first (the order the rows arrive in).
func WarehouseLogsPDF(warehouseName string, logs []dto.LogEntry) (*bytes.Buffer, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Warehouse Logs - "+warehouseName, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Stock Log: "+warehouseName, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	headers := []string{"Date", "Type", "Item", "Category", "Qty", "Notes"}
	widths := []float64{40, 18, 70, 50, 18, 80}

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, entry := range logs {
		cells := []string{
			entry.Date,
			entry.Type,
			entry.ItemName,
			entry.ItemCategory,
			strconv.Itoa(entry.Quantity),
			entry.Notes,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
