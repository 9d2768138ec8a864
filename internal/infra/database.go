package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stockroom/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate for the four domain tables. TranslateError is enabled so
// unique-index violations surface as gorm.ErrDuplicatedKey and can be
// converted to a Conflict error instead of leaking driver text.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Warehouse{},
		&model.Category{},
		&model.Item{},
		&model.StockTransaction{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

// SeedDefaultCategories inserts the built-in stock categories. Existing rows
// are left untouched, so re-running on boot is a no-op.
func SeedDefaultCategories(db *gorm.DB) error {
	defaults := []string{"LAPOTHARA", "Single Segment", "Multi Segment"}
	for _, name := range defaults {
		var n int64
		if err := db.Model(&model.Category{}).
			Where("LOWER(name) = LOWER(?)", name).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		if err := db.Create(&model.Category{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
