package migrations

import (
	"gorm.io/gorm"

	"dishpatch/internal/infrastructure/persistence/models"
)

func MigrateOrderTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.OrderModel{},
	)
}

func MigrateAccountTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.AccountModel{},
	)
}
