package model

import (
	"time"

	"github.com/google/uuid"
)

// Item is a stocked good in a single warehouse. Quantity is a cached
// projection of the item's stock transactions: it is only ever written in
// the same database transaction as a ledger insert, and it must never go
// negative. (name, warehouse_id) is unique; stocking in an existing name
// merges into the existing row instead of creating a duplicate.
type Item struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"not null;uniqueIndex:idx_items_name_warehouse"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	WarehouseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_items_name_warehouse"`
	Quantity    int       `gorm:"not null;default:0;check:quantity >= 0"`
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category  *Category  `gorm:"foreignKey:CategoryID"`
	Warehouse *Warehouse `gorm:"foreignKey:WarehouseID"`
}
