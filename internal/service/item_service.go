package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stockroom/internal/apierror"
	"stockroom/internal/dto"
	"stockroom/internal/model"
	"stockroom/internal/repository"
	"stockroom/internal/worker"
)

// ItemService is the stock mutation engine: every quantity change goes
// through here, and every change writes the item projection and its ledger
// entry in one database transaction.
type ItemService interface {
	Create(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error)
	StockIn(ctx context.Context, id uuid.UUID, req dto.StockInRequest) (*dto.ItemResponse, error)
	StockOut(ctx context.Context, id uuid.UUID, req dto.StockOutRequest) (*dto.ItemResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*dto.ItemResponse, error)
	List(ctx context.Context, filter dto.ItemFilter) ([]dto.ItemResponse, error)
	ListByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]dto.ItemResponse, error)
}

type itemService struct {
	items      repository.ItemRepository
	ledger     repository.StockTransactionRepository
	warehouses repository.WarehouseRepository
	categories repository.CategoryRepository
	cache      *ReportCache
	dispatcher *worker.Dispatcher
	thresholds ThresholdTable
}

func NewItemService(
	items repository.ItemRepository,
	ledger repository.StockTransactionRepository,
	warehouses repository.WarehouseRepository,
	categories repository.CategoryRepository,
	cache *ReportCache,
	dispatcher *worker.Dispatcher,
) ItemService {
	return &itemService{
		items:      items,
		ledger:     ledger,
		warehouses: warehouses,
		categories: categories,
		cache:      cache,
		dispatcher: dispatcher,
		thresholds: DefaultThresholds(),
	}
}

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// translate converts storage-layer failures into domain errors. Duplicate
// keys become Conflict; unknown rows become NotFound with the given detail.
func translate(err error, notFoundDetail string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apierror.NotFoundf("%s", notFoundDetail)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apierror.Conflictf("an item with this name already exists in the selected warehouse")
	default:
		return apierror.Storage(err)
	}
}

func txDate(d *time.Time) time.Time {
	if d != nil {
		return d.UTC()
	}
	return time.Now().UTC()
}

// Create stocks in by (name, warehouse) key: it merges into the existing
// item when one exists, creates it otherwise, and appends an IN transaction
// either way.
func (s *itemService) Create(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if req.Quantity <= 0 {
		return nil, apierror.Validationf("quantity must be a positive integer")
	}
	warehouseID, err := uuid.Parse(req.WarehouseID)
	if err != nil {
		return nil, apierror.Validationf("warehouseId is not a valid id")
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, apierror.Validationf("categoryId is not a valid id")
	}

	existing, err := s.items.FindByNameAndWarehouse(ctx, req.Name, warehouseID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Storage(err)
	}

	if existing != nil {
		return s.stockInExisting(ctx, existing, req.Quantity, req.Notes, req.Date)
	}

	// Creation path: both references must exist before we write anything.
	if _, err := s.warehouses.FindByID(ctx, warehouseID); err != nil {
		return nil, translate(err, "warehouse not found")
	}
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return nil, translate(err, "category not found")
	}

	item := &model.Item{
		Name:        req.Name,
		CategoryID:  categoryID,
		WarehouseID: warehouseID,
		Quantity:    req.Quantity,
		Notes:       req.Notes,
	}
	txErr := runTx(ctx, s.items.DB(), func(tx *gorm.DB) error {
		if err := s.items.CreateTx(tx, item); err != nil {
			return err
		}
		return s.ledger.CreateTx(tx, &model.StockTransaction{
			Type:        model.TxTypeIn,
			ItemID:      item.ID,
			WarehouseID: warehouseID,
			Quantity:    req.Quantity,
			Date:        txDate(req.Date),
			Notes:       req.Notes,
		})
	})
	if txErr != nil {
		// A concurrent Create for the same (name, warehouse) may win the
		// race; the unique index reports it as a duplicate key.
		return nil, translate(txErr, "item not found")
	}

	s.cache.Invalidate(ctx)
	return s.respond(ctx, item.ID)
}

// StockIn increments an existing item by id.
func (s *itemService) StockIn(ctx context.Context, id uuid.UUID, req dto.StockInRequest) (*dto.ItemResponse, error) {
	if req.Quantity <= 0 {
		return nil, apierror.Validationf("quantity must be a positive integer")
	}
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "item not found")
	}
	return s.stockInExisting(ctx, item, req.Quantity, req.Notes, req.Date)
}

func (s *itemService) stockInExisting(ctx context.Context, item *model.Item, quantity int, notes string, date *time.Time) (*dto.ItemResponse, error) {
	txErr := runTx(ctx, s.items.DB(), func(tx *gorm.DB) error {
		if err := s.items.IncrementQuantityTx(tx, item.ID, quantity); err != nil {
			return err
		}
		if notes != "" && notes != item.Notes {
			item.Notes = notes
			if err := s.items.UpdateTx(tx, item); err != nil {
				return err
			}
		}
		return s.ledger.CreateTx(tx, &model.StockTransaction{
			Type:        model.TxTypeIn,
			ItemID:      item.ID,
			WarehouseID: item.WarehouseID,
			Quantity:    quantity,
			Date:        txDate(date),
			Notes:       notes,
		})
	})
	if txErr != nil {
		return nil, apierror.Storage(txErr)
	}

	s.cache.Invalidate(ctx)
	return s.respond(ctx, item.ID)
}

// StockOut decrements the item, failing without partial effect when the
// requested quantity exceeds what is available.
func (s *itemService) StockOut(ctx context.Context, id uuid.UUID, req dto.StockOutRequest) (*dto.ItemResponse, error) {
	if req.Quantity <= 0 {
		return nil, apierror.Validationf("quantity must be a positive integer")
	}
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "item not found")
	}

	txErr := runTx(ctx, s.items.DB(), func(tx *gorm.DB) error {
		rows, err := s.items.DecrementQuantityTx(tx, id, req.Quantity)
		if err != nil {
			return err
		}
		if rows == 0 {
			// The conditional update refused: quantity < requested at the
			// moment of the write, regardless of what we read earlier.
			return apierror.InsufficientStock(item.Quantity, req.Quantity)
		}
		return s.ledger.CreateTx(tx, &model.StockTransaction{
			Type:        model.TxTypeOut,
			ItemID:      id,
			WarehouseID: item.WarehouseID,
			Quantity:    req.Quantity,
			Date:        txDate(req.Date),
			Notes:       req.Notes,
		})
	})
	if txErr != nil {
		if apiErr := apierror.As(txErr); apiErr != nil {
			return nil, apiErr
		}
		return nil, apierror.Storage(txErr)
	}

	s.cache.Invalidate(ctx)
	resp, err := s.respond(ctx, id)
	if err != nil {
		return nil, err
	}
	s.maybeAlertLowStock(ctx, resp)
	return resp, nil
}

// maybeAlertLowStock enqueues a low-stock job when the item fell below its
// category-aware threshold. Fire and forget.
func (s *itemService) maybeAlertLowStock(ctx context.Context, item *dto.ItemResponse) {
	if s.dispatcher == nil {
		return
	}
	threshold := s.thresholds.For(item.CategoryName)
	if item.Quantity >= threshold {
		return
	}
	_ = s.dispatcher.DispatchLowStock(ctx, worker.LowStockPayload{
		ItemID:        item.ID,
		ItemName:      item.Name,
		CategoryName:  item.CategoryName,
		WarehouseName: item.WarehouseName,
		Quantity:      item.Quantity,
		Threshold:     threshold,
	})
}

// Delete removes the item and its entire ledger in one transaction.
func (s *itemService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.items.FindByID(ctx, id); err != nil {
		return translate(err, "item not found")
	}
	txErr := runTx(ctx, s.items.DB(), func(tx *gorm.DB) error {
		if err := s.ledger.DeleteByItemTx(tx, id); err != nil {
			return err
		}
		return s.items.DeleteTx(tx, id)
	})
	if txErr != nil {
		return apierror.Storage(txErr)
	}
	s.cache.Invalidate(ctx)
	return nil
}

func (s *itemService) Get(ctx context.Context, id uuid.UUID) (*dto.ItemResponse, error) {
	return s.respond(ctx, id)
}

func (s *itemService) List(ctx context.Context, filter dto.ItemFilter) ([]dto.ItemResponse, error) {
	items, err := s.items.List(ctx, filter)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	return mapItems(items), nil
}

func (s *itemService) ListByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]dto.ItemResponse, error) {
	items, err := s.items.ListByWarehouse(ctx, warehouseID)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	return mapItems(items), nil
}

func (s *itemService) respond(ctx context.Context, id uuid.UUID) (*dto.ItemResponse, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "item not found")
	}
	resp := mapItem(*item)
	return &resp, nil
}

func mapItems(items []model.Item) []dto.ItemResponse {
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, mapItem(item))
	}
	return out
}

func mapItem(item model.Item) dto.ItemResponse {
	// Dangling references render as "Unknown" rather than failing the read.
	categoryName, warehouseName := "Unknown", "Unknown"
	if item.Category != nil {
		categoryName = item.Category.Name
	}
	if item.Warehouse != nil {
		warehouseName = item.Warehouse.Name
	}
	return dto.ItemResponse{
		ID:            item.ID.String(),
		Name:          item.Name,
		CategoryID:    item.CategoryID.String(),
		CategoryName:  categoryName,
		WarehouseID:   item.WarehouseID.String(),
		WarehouseName: warehouseName,
		Quantity:      item.Quantity,
		Notes:         item.Notes,
		CreatedAt:     item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
