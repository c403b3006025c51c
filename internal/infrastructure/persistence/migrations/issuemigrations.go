package migrations

import (
	"gorm.io/gorm"

	"dishpatch/internal/infrastructure/persistence/models"
)

func MigrateIssueTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.IssueModel{},
		&models.IssueEventModel{},
	)
}
