package model

import (
	"time"

	"github.com/google/uuid"
)

// Warehouse is a physical storage location. Items reference it by ID;
// it never embeds them.
type Warehouse struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Location    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
