package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateItemRequest creates-or-merges an item by (name, warehouse) and
// records an IN transaction for the given quantity.
type CreateItemRequest struct {
	Name        string     `json:"name"        validate:"required,min=1,max=120"`
	CategoryID  string     `json:"categoryId"  validate:"required,uuid"`
	WarehouseID string     `json:"warehouseId" validate:"required,uuid"`
	Quantity    int        `json:"quantity"    validate:"required,gt=0"`
	Notes       string     `json:"notes"`
	Date        *time.Time `json:"date"`
}

type StockInRequest struct {
	Quantity int        `json:"quantity" validate:"required,gt=0"`
	Notes    string     `json:"notes"`
	Date     *time.Time `json:"date"`
}

type StockOutRequest struct {
	Quantity int        `json:"quantity" validate:"required,gt=0"`
	Notes    string     `json:"notes"`
	Date     *time.Time `json:"date"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type ItemFilter struct {
	WarehouseID string `form:"warehouseId" validate:"omitempty,uuid"`
	CategoryID  string `form:"categoryId"  validate:"omitempty,uuid"`
	// Search is a case-insensitive substring match on the item name.
	Search string `form:"search"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CategoryID    string `json:"categoryId"`
	CategoryName  string `json:"categoryName"`
	WarehouseID   string `json:"warehouseId"`
	WarehouseName string `json:"warehouseName"`
	Quantity      int    `json:"quantity"`
	Notes         string `json:"notes"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}
