package repository

import (
	"context"

	"stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockTransactionRepository is the append-only stock ledger. There is no
// update method on purpose: entries are created once and only ever removed
// in bulk when their parent item is deleted.
type StockTransactionRepository interface {
	CreateTx(tx *gorm.DB, t *model.StockTransaction) error
	// ListByItem returns the item's full ledger ordered by date ascending.
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]model.StockTransaction, error)
	// ListByWarehouse returns every transaction of the warehouse newest
	// first, with the item and its category preloaded for log enrichment.
	ListByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]model.StockTransaction, error)
	DeleteByItemTx(tx *gorm.DB, itemID uuid.UUID) error
}

type stockTransactionRepo struct{ db *gorm.DB }

func NewStockTransactionRepository(db *gorm.DB) StockTransactionRepository {
	return &stockTransactionRepo{db: db}
}

func (r *stockTransactionRepo) CreateTx(tx *gorm.DB, t *model.StockTransaction) error {
	return tx.Create(t).Error
}

func (r *stockTransactionRepo) ListByItem(ctx context.Context, itemID uuid.UUID) ([]model.StockTransaction, error) {
	var txs []model.StockTransaction
	err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("date ASC, created_at ASC").
		Find(&txs).Error
	return txs, err
}

func (r *stockTransactionRepo) ListByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]model.StockTransaction, error) {
	var txs []model.StockTransaction
	err := r.db.WithContext(ctx).
		Preload("Item").Preload("Item.Category").
		Where("warehouse_id = ?", warehouseID).
		Order("date DESC, created_at DESC").
		Find(&txs).Error
	return txs, err
}

func (r *stockTransactionRepo) DeleteByItemTx(tx *gorm.DB, itemID uuid.UUID) error {
	return tx.Delete(&model.StockTransaction{}, "item_id = ?", itemID).Error
}
