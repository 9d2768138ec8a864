package repository

import (
	"context"

	"stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WarehouseRepository defines the data access contract for warehouses.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type WarehouseRepository interface {
	Create(ctx context.Context, w *model.Warehouse) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Warehouse, error)
	FindByName(ctx context.Context, name string) (*model.Warehouse, error)
	List(ctx context.Context) ([]model.Warehouse, error)
	Update(ctx context.Context, w *model.Warehouse) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type warehouseRepo struct{ db *gorm.DB }

func NewWarehouseRepository(db *gorm.DB) WarehouseRepository { return &warehouseRepo{db: db} }

func (r *warehouseRepo) Create(ctx context.Context, w *model.Warehouse) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *warehouseRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Warehouse, error) {
	var w model.Warehouse
	err := r.db.WithContext(ctx).First(&w, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// FindByName matches case-insensitively so "main" and "Main" are the same
// warehouse from the duplicate-check's point of view.
func (r *warehouseRepo) FindByName(ctx context.Context, name string) (*model.Warehouse, error) {
	var w model.Warehouse
	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&w).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *warehouseRepo) List(ctx context.Context) ([]model.Warehouse, error) {
	var warehouses []model.Warehouse
	err := r.db.WithContext(ctx).Order("name ASC").Find(&warehouses).Error
	return warehouses, err
}

func (r *warehouseRepo) Update(ctx context.Context, w *model.Warehouse) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *warehouseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Warehouse{}, "id = ?", id).Error
}
