package model

import (
	"time"

	"github.com/google/uuid"
)

// Transaction types. Quantity on a transaction is always positive; the type
// determines the sign when summing the ledger.
const (
	TxTypeIn  = "IN"
	TxTypeOut = "OUT"
)

// StockTransaction is one entry in the append-only stock ledger. Entries are
// created exactly once per stock-in/out and never mutated afterwards; they
// are bulk-deleted only together with their parent item. The ledger is the
// durable source of truth for report reconstruction: Item.Quantity is the
// signed sum of its transactions.
type StockTransaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Type        string    `gorm:"not null"`
	ItemID      uuid.UUID `gorm:"type:uuid;not null;index:idx_stock_transactions_item_date"`
	WarehouseID uuid.UUID `gorm:"type:uuid;not null;index:idx_stock_transactions_warehouse_date"`
	Quantity    int       `gorm:"not null;check:quantity > 0"`
	// Date defaults to creation time but may be backdated by the caller.
	Date      time.Time `gorm:"not null;index:idx_stock_transactions_item_date;index:idx_stock_transactions_warehouse_date"`
	Notes     string
	CreatedAt time.Time

	Item *Item `gorm:"foreignKey:ItemID"`
}

// Signed returns the quantity with the sign implied by the type.
func (t StockTransaction) Signed() int {
	if t.Type == TxTypeOut {
		return -t.Quantity
	}
	return t.Quantity
}
