package model

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies items. Names are unique case-insensitively; the
// repository enforces this with a lower(name) lookup before insert and the
// unique index catches races.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default pluralization (categories, not categorys).
func (Category) TableName() string { return "categories" }
