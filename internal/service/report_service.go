package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"stockroom/internal/apierror"
	"stockroom/internal/dto"
	"stockroom/internal/model"
	"stockroom/internal/repository"
)

// ReportService derives reporting views from the stock ledger. The monthly
// report is reconstructed purely from transactions: the item's cached
// quantity is never consulted, so backdated entries and months in the past
// or future all fall out of the same arithmetic.
type ReportService interface {
	Monthly(ctx context.Context, year, month int, warehouseID string) ([]dto.ReportRow, error)
	LowStock(ctx context.Context, warehouseID string, threshold int) ([]dto.ItemResponse, error)
	WarehouseLogs(ctx context.Context, warehouseID uuid.UUID) ([]dto.LogEntry, error)
}

type reportService struct {
	items      repository.ItemRepository
	ledger     repository.StockTransactionRepository
	warehouses repository.WarehouseRepository
	cache      *ReportCache
	thresholds ThresholdTable
}

func NewReportService(
	items repository.ItemRepository,
	ledger repository.StockTransactionRepository,
	warehouses repository.WarehouseRepository,
	cache *ReportCache,
) ReportService {
	return &reportService{
		items:      items,
		ledger:     ledger,
		warehouses: warehouses,
		cache:      cache,
		thresholds: DefaultThresholds(),
	}
}

// Monthly builds one row per item for the half-open interval
// [first of month, first of next month):
//
//	opening = max(0, signed sum of transactions before the interval)
//	in, out = sums of IN / OUT transactions within the interval
//	closing = opening + in - out
//
// Rows where all four numbers are zero are dropped, unless that would drop
// everything; then the unfiltered rows are returned so existing data is
// never silently hidden.
func (s *reportService) Monthly(ctx context.Context, year, month int, warehouseID string) ([]dto.ReportRow, error) {
	if year <= 0 {
		return nil, apierror.Validationf("year is required")
	}
	if month < 1 || month > 12 {
		return nil, apierror.Validationf("month must be between 1 and 12")
	}

	if rows, ok := s.cache.GetMonthly(ctx, year, month, warehouseID); ok {
		return rows, nil
	}

	items, err := s.candidateItems(ctx, warehouseID)
	if err != nil {
		return nil, err
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	rows := make([]dto.ReportRow, 0, len(items))
	for _, item := range items {
		txs, err := s.ledger.ListByItem(ctx, item.ID)
		if err != nil {
			return nil, apierror.Storage(err)
		}

		opening, in, out := 0, 0, 0
		for _, t := range txs {
			switch {
			case t.Date.Before(start):
				opening += t.Signed()
			case t.Date.Before(end):
				if t.Type == model.TxTypeOut {
					out += t.Quantity
				} else {
					in += t.Quantity
				}
			}
		}
		if opening < 0 {
			opening = 0
		}

		resp := mapItem(item)
		rows = append(rows, dto.ReportRow{
			ItemName:      item.Name,
			CategoryName:  resp.CategoryName,
			WarehouseName: resp.WarehouseName,
			OpeningStock:  opening,
			StockIn:       in,
			StockOut:      out,
			ClosingStock:  opening + in - out,
		})
	}

	active := rows[:0:0]
	for _, r := range rows {
		if r.OpeningStock != 0 || r.StockIn != 0 || r.StockOut != 0 || r.ClosingStock != 0 {
			active = append(active, r)
		}
	}
	result := rows
	if len(active) > 0 {
		result = active
	}

	sort.Slice(result, func(i, j int) bool {
		return strings.ToLower(result[i].ItemName) < strings.ToLower(result[j].ItemName)
	})

	s.cache.SetMonthly(ctx, year, month, warehouseID, result)
	return result, nil
}

func (s *reportService) candidateItems(ctx context.Context, warehouseID string) ([]model.Item, error) {
	if warehouseID == "" {
		items, err := s.items.List(ctx, dto.ItemFilter{})
		if err != nil {
			return nil, apierror.Storage(err)
		}
		return items, nil
	}
	id, err := uuid.Parse(warehouseID)
	if err != nil {
		return nil, apierror.Validationf("warehouseId is not a valid id")
	}
	items, listErr := s.items.ListByWarehouse(ctx, id)
	if listErr != nil {
		return nil, apierror.Storage(listErr)
	}
	return items, nil
}

// LowStock returns the items below their restock threshold, ascending by
// quantity. The caller-supplied threshold replaces the default but never
// the elevated per-category values.
func (s *reportService) LowStock(ctx context.Context, warehouseID string, threshold int) ([]dto.ItemResponse, error) {
	items, err := s.candidateItems(ctx, warehouseID)
	if err != nil {
		return nil, err
	}

	table := s.thresholds.WithDefault(threshold)
	low := make([]dto.ItemResponse, 0)
	for _, item := range items {
		resp := mapItem(item)
		if table.IsLow(resp.Quantity, resp.CategoryName) {
			low = append(low, resp)
		}
	}
	sort.Slice(low, func(i, j int) bool { return low[i].Quantity < low[j].Quantity })
	return low, nil
}

// WarehouseLogs returns every transaction for every item in the warehouse,
// newest first, enriched with item, category and warehouse names. Dangling
// references render as "Unknown": a deleted category must never break the
// log view.
func (s *reportService) WarehouseLogs(ctx context.Context, warehouseID uuid.UUID) ([]dto.LogEntry, error) {
	warehouseName := "Unknown"
	if w, err := s.warehouses.FindByID(ctx, warehouseID); err == nil {
		warehouseName = w.Name
	}

	txs, err := s.ledger.ListByWarehouse(ctx, warehouseID)
	if err != nil {
		return nil, apierror.Storage(err)
	}

	logs := make([]dto.LogEntry, 0, len(txs))
	for _, t := range txs {
		itemName, categoryName := "Unknown", "Unknown"
		if t.Item != nil {
			itemName = t.Item.Name
			if t.Item.Category != nil {
				categoryName = t.Item.Category.Name
			}
		}
		logs = append(logs, dto.LogEntry{
			ID:            t.ID.String(),
			Date:          t.Date.UTC().Format(time.RFC3339),
			Type:          t.Type,
			Quantity:      t.Quantity,
			ItemName:      itemName,
			ItemCategory:  categoryName,
			WarehouseName: warehouseName,
			Notes:         t.Notes,
		})
	}
	return logs, nil
}
