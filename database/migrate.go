package database

import (
	"github.com/voiceorder/menu-api/models"
	"github.com/voiceorder/menu-api/utils"
	"gorm.io/gorm"
)

// Migrate creates or updates the six catalog and order tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Category{},
		&models.MenuItem{},
		&models.Option{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderItemOption{},
	)
	if err != nil {
		return err
	}
	if utils.InfoLogger != nil {
		utils.InfoLogger.Println("AutoMigrate completed.")
	}
	return nil
}
