package service_test

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stockroom/internal/dto"
	"stockroom/internal/model"
	"stockroom/internal/repository"
)

// ── In-memory store shared by the repository stubs ───────────────────────────

type stubStore struct {
	warehouses map[uuid.UUID]*model.Warehouse
	categories map[uuid.UUID]*model.Category
	items      map[uuid.UUID]*model.Item
	ledger     []*model.StockTransaction
}

func newStubStore() *stubStore {
	return &stubStore{
		warehouses: make(map[uuid.UUID]*model.Warehouse),
		categories: make(map[uuid.UUID]*model.Category),
		items:      make(map[uuid.UUID]*model.Item),
	}
}

func (s *stubStore) seedWarehouse(name string) *model.Warehouse {
	w := &model.Warehouse{ID: uuid.New(), Name: name}
	s.warehouses[w.ID] = w
	return w
}

func (s *stubStore) seedCategory(name string) *model.Category {
	c := &model.Category{ID: uuid.New(), Name: name}
	s.categories[c.ID] = c
	return c
}

func (s *stubStore) seedItem(name string, categoryID, warehouseID uuid.UUID, quantity int) *model.Item {
	item := &model.Item{
		ID:          uuid.New(),
		Name:        name,
		CategoryID:  categoryID,
		WarehouseID: warehouseID,
		Quantity:    quantity,
	}
	s.items[item.ID] = item
	return item
}

// resolve returns a copy with Category/Warehouse pointers populated, the way
// the real repository preloads them. Dangling references stay nil.
func (s *stubStore) resolve(item *model.Item) *model.Item {
	cp := *item
	if c, ok := s.categories[item.CategoryID]; ok {
		cc := *c
		cp.Category = &cc
	}
	if w, ok := s.warehouses[item.WarehouseID]; ok {
		ww := *w
		cp.Warehouse = &ww
	}
	return &cp
}

// ── WarehouseRepository stub ─────────────────────────────────────────────────

type stubWarehouseRepo struct{ s *stubStore }

func (r *stubWarehouseRepo) Create(_ context.Context, w *model.Warehouse) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	r.s.warehouses[w.ID] = w
	return nil
}

func (r *stubWarehouseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Warehouse, error) {
	w, ok := r.s.warehouses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return w, nil
}

func (r *stubWarehouseRepo) FindByName(_ context.Context, name string) (*model.Warehouse, error) {
	for _, w := range r.s.warehouses {
		if strings.EqualFold(w.Name, name) {
			return w, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubWarehouseRepo) List(_ context.Context) ([]model.Warehouse, error) {
	out := make([]model.Warehouse, 0, len(r.s.warehouses))
	for _, w := range r.s.warehouses {
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubWarehouseRepo) Update(_ context.Context, w *model.Warehouse) error {
	r.s.warehouses[w.ID] = w
	return nil
}

func (r *stubWarehouseRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.warehouses, id)
	return nil
}

var _ repository.WarehouseRepository = (*stubWarehouseRepo)(nil)

// ── CategoryRepository stub ──────────────────────────────────────────────────

type stubCategoryRepo struct{ s *stubStore }

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.s.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	c, ok := r.s.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range r.s.categories {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	out := make([]model.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.Category) error {
	r.s.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.categories, id)
	return nil
}

var _ repository.CategoryRepository = (*stubCategoryRepo)(nil)

// ── ItemRepository stub ──────────────────────────────────────────────────────

type stubItemRepo struct{ s *stubStore }

func (r *stubItemRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Item, error) {
	item, ok := r.s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.s.resolve(item), nil
}

func (r *stubItemRepo) FindByNameAndWarehouse(_ context.Context, name string, warehouseID uuid.UUID) (*model.Item, error) {
	for _, item := range r.s.items {
		if strings.EqualFold(item.Name, name) && item.WarehouseID == warehouseID {
			return r.s.resolve(item), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubItemRepo) List(_ context.Context, filter dto.ItemFilter) ([]model.Item, error) {
	var out []model.Item
	for _, item := range r.s.items {
		if filter.WarehouseID != "" && item.WarehouseID.String() != filter.WarehouseID {
			continue
		}
		if filter.CategoryID != "" && item.CategoryID.String() != filter.CategoryID {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, *r.s.resolve(item))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubItemRepo) ListByWarehouse(_ context.Context, warehouseID uuid.UUID) ([]model.Item, error) {
	var out []model.Item
	for _, item := range r.s.items {
		if item.WarehouseID == warehouseID {
			out = append(out, *r.s.resolve(item))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubItemRepo) CountByWarehouse(_ context.Context, warehouseID uuid.UUID) (int64, error) {
	var n int64
	for _, item := range r.s.items {
		if item.WarehouseID == warehouseID {
			n++
		}
	}
	return n, nil
}

func (r *stubItemRepo) CreateTx(_ *gorm.DB, item *model.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	for _, existing := range r.s.items {
		if strings.EqualFold(existing.Name, item.Name) && existing.WarehouseID == item.WarehouseID {
			return gorm.ErrDuplicatedKey
		}
	}
	r.s.items[item.ID] = item
	return nil
}

func (r *stubItemRepo) UpdateTx(_ *gorm.DB, item *model.Item) error {
	stored, ok := r.s.items[item.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Name = item.Name
	stored.Notes = item.Notes
	return nil
}

func (r *stubItemRepo) IncrementQuantityTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	item, ok := r.s.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.Quantity += delta
	return nil
}

func (r *stubItemRepo) DecrementQuantityTx(_ *gorm.DB, id uuid.UUID, qty int) (int64, error) {
	item, ok := r.s.items[id]
	if !ok {
		return 0, nil
	}
	if item.Quantity < qty {
		return 0, nil
	}
	item.Quantity -= qty
	return 1, nil
}

func (r *stubItemRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.s.items, id)
	return nil
}

func (r *stubItemRepo) DB() *gorm.DB { return nil }

var _ repository.ItemRepository = (*stubItemRepo)(nil)

// ── StockTransactionRepository stub ──────────────────────────────────────────

type stubLedgerRepo struct{ s *stubStore }

func (r *stubLedgerRepo) CreateTx(_ *gorm.DB, t *model.StockTransaction) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.s.ledger = append(r.s.ledger, t)
	return nil
}

func (r *stubLedgerRepo) ListByItem(_ context.Context, itemID uuid.UUID) ([]model.StockTransaction, error) {
	var out []model.StockTransaction
	for _, t := range r.s.ledger {
		if t.ItemID == itemID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *stubLedgerRepo) ListByWarehouse(_ context.Context, warehouseID uuid.UUID) ([]model.StockTransaction, error) {
	var out []model.StockTransaction
	for _, t := range r.s.ledger {
		if t.WarehouseID != warehouseID {
			continue
		}
		cp := *t
		if item, ok := r.s.items[t.ItemID]; ok {
			cp.Item = r.s.resolve(item)
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *stubLedgerRepo) DeleteByItemTx(_ *gorm.DB, itemID uuid.UUID) error {
	kept := r.s.ledger[:0]
	for _, t := range r.s.ledger {
		if t.ItemID != itemID {
			kept = append(kept, t)
		}
	}
	r.s.ledger = kept
	return nil
}

var _ repository.StockTransactionRepository = (*stubLedgerRepo)(nil)
