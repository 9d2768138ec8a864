package dto

// ReportRow is one line of the monthly report for a single item.
type ReportRow struct {
	ItemName      string `json:"itemName"`
	CategoryName  string `json:"categoryName"`
	WarehouseName string `json:"warehouseName"`
	OpeningStock  int    `json:"openingStock"`
	StockIn       int    `json:"stockIn"`
	StockOut      int    `json:"stockOut"`
	ClosingStock  int    `json:"closingStock"`
}

// MonthlyReportQuery binds the GET /api/reports/monthly query string.
type MonthlyReportQuery struct {
	Year        int    `form:"year"`
	Month       int    `form:"month"`
	WarehouseID string `form:"warehouseId" validate:"omitempty,uuid"`
}

type LowStockQuery struct {
	WarehouseID string `form:"warehouseId" validate:"omitempty,uuid"`
	Threshold   int    `form:"threshold,default=5" validate:"min=1"`
}

// LogEntry is one enriched row of a warehouse's transaction log.
type LogEntry struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	Type          string `json:"type"`
	Quantity      int    `json:"quantity"`
	ItemName      string `json:"itemName"`
	ItemCategory  string `json:"itemCategory"`
	WarehouseName string `json:"warehouse"`
	Notes         string `json:"notes"`
}

// MonthlyExportQuery binds the XLSX export query string. Months is a
// comma-separated list of 1-12 values; empty means the single month export
// is not constrained and all twelve months of the year are emitted.
type MonthlyExportQuery struct {
	Year        int    `form:"year"`
	Months      string `form:"months"`
	WarehouseID string `form:"warehouseId" validate:"omitempty,uuid"`
}
