package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stockroom/internal/apierror"
	"stockroom/internal/dto"
	"stockroom/internal/export"
	"stockroom/internal/service"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// Monthly GET /api/reports/monthly?year=&month=&warehouseId=
func (h *ReportsHandler) Monthly(c *gin.Context) {
	var q dto.MonthlyReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	rows, err := h.svc.Monthly(c.Request.Context(), q.Year, q.Month, q.WarehouseID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// LowStock GET /api/reports/low-stock?warehouseId=&threshold=
func (h *ReportsHandler) LowStock(c *gin.Context) {
	var q dto.LowStockQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	items, err := h.svc.LowStock(c.Request.Context(), q.WarehouseID, q.Threshold)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// WarehouseLogs GET /api/reports/logs/warehouse/:warehouseId
func (h *ReportsHandler) WarehouseLogs(c *gin.Context) {
	id, err := uuid.Parse(c.Param("warehouseId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid warehouse id"))
		return
	}
	logs, svcErr := h.svc.WarehouseLogs(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// MonthlyExport GET /api/reports/monthly/export?year=&months=1,2,3&warehouseId=
// Streams an XLSX workbook with one sheet per requested month.
func (h *ReportsHandler) MonthlyExport(c *gin.Context) {
	var q dto.MonthlyExportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	months, err := parseMonths(q.Months)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}

	rowsByMonth := make(map[int][]dto.ReportRow, len(months))
	for _, m := range months {
		rows, svcErr := h.svc.Monthly(c.Request.Context(), q.Year, m, q.WarehouseID)
		if svcErr != nil {
			respondError(c, svcErr)
			return
		}
		rowsByMonth[m] = rows
	}

	buf, err := export.MonthlyWorkbook(q.Year, months, rowsByMonth)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("monthly-report-%d.xlsx", q.Year)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// WarehouseLogsExport GET /api/reports/logs/warehouse/:warehouseId/export
func (h *ReportsHandler) WarehouseLogsExport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("warehouseId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid warehouse id"))
		return
	}
	logs, svcErr := h.svc.WarehouseLogs(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	warehouseName := "Unknown"
	if len(logs) > 0 {
		warehouseName = logs[0].WarehouseName
	}
	buf, pdfErr := export.WarehouseLogsPDF(warehouseName, logs)
	if pdfErr != nil {
		respondError(c, pdfErr)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="warehouse-logs.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// parseMonths turns "1,2,3" into sorted distinct month numbers; empty means
// the whole year.
func parseMonths(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		months := make([]int, 12)
		for i := range months {
			months[i] = i + 1
		}
		return months, nil
	}
	seen := make(map[int]bool)
	var months []int
	for _, part := range strings.Split(s, ",") {
		m, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || m < 1 || m > 12 {
			return nil, fmt.Errorf("months must be a comma-separated list of 1-12 values")
		}
		if !seen[m] {
			seen[m] = true
			months = append(months, m)
		}
	}
	return months, nil
}
