package repository

import (
	"context"

	"stockroom/internal/dto"
	"stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemRepository defines the data access contract for items. The ...Tx
// variants take a live *gorm.DB transaction: every write that touches
// Item.Quantity happens inside the same transaction as its ledger insert.
type ItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error)
	FindByNameAndWarehouse(ctx context.Context, name string, warehouseID uuid.UUID) (*model.Item, error)
	List(ctx context.Context, filter dto.ItemFilter) ([]model.Item, error)
	ListByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]model.Item, error)
	CountByWarehouse(ctx context.Context, warehouseID uuid.UUID) (int64, error)

	CreateTx(tx *gorm.DB, item *model.Item) error
	UpdateTx(tx *gorm.DB, item *model.Item) error
	// IncrementQuantityTx adds delta to the item's quantity unconditionally.
	IncrementQuantityTx(tx *gorm.DB, id uuid.UUID, delta int) error
	// DecrementQuantityTx subtracts qty only when the current quantity is
	// sufficient, in a single conditional UPDATE. Returns the number of rows
	// affected: zero means the check failed and nothing was written.
	DecrementQuantityTx(tx *gorm.DB, id uuid.UUID, qty int) (int64, error)
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type itemRepo struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) ItemRepository { return &itemRepo{db: db} }

func (r *itemRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).
		Preload("Category").Preload("Warehouse").
		First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepo) FindByNameAndWarehouse(ctx context.Context, name string, warehouseID uuid.UUID) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).
		Preload("Category").Preload("Warehouse").
		Where("LOWER(name) = LOWER(?) AND warehouse_id = ?", name, warehouseID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepo) List(ctx context.Context, filter dto.ItemFilter) ([]model.Item, error) {
	q := r.db.WithContext(ctx).Preload("Category").Preload("Warehouse")

	if filter.WarehouseID != "" {
		q = q.Where("warehouse_id = ?", filter.WarehouseID)
	}
	if filter.CategoryID != "" {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Search != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	var items []model.Item
	err := q.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *itemRepo) ListByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Preload("Category").Preload("Warehouse").
		Where("warehouse_id = ?", warehouseID).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *itemRepo) CountByWarehouse(ctx context.Context, warehouseID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Item{}).
		Where("warehouse_id = ?", warehouseID).
		Count(&n).Error
	return n, err
}

func (r *itemRepo) CreateTx(tx *gorm.DB, item *model.Item) error {
	return tx.Create(item).Error
}

func (r *itemRepo) UpdateTx(tx *gorm.DB, item *model.Item) error {
	return tx.Save(item).Error
}

func (r *itemRepo) IncrementQuantityTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.Item{}).Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", delta)).Error
}

func (r *itemRepo) DecrementQuantityTx(tx *gorm.DB, id uuid.UUID, qty int) (int64, error) {
	// Sufficiency check and decrement are one atomic statement: two
	// concurrent stock-outs cannot both pass the check and drive the
	// quantity negative.
	res := tx.Model(&model.Item{}).
		Where("id = ? AND quantity >= ?", id, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))
	return res.RowsAffected, res.Error
}

func (r *itemRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Item{}, "id = ?", id).Error
}

func (r *itemRepo) DB() *gorm.DB { return r.db }
