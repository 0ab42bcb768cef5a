package gormrepo

import (
	"fmt"

	"kappaverse/internal/adapter/repo/gorm/model"

	"gorm.io/gorm"
)

// AutoMigrate brings the schema up to date for all persisted models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.PlayerState{}, &model.DomainEvent{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
