package migration

import (
	"github.com/charapedia/charapedia-backend/internal/domain"
	"gorm.io/gorm"
)

// Run applies the schema for all managed tables
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Member{},
		&domain.Work{},
		&domain.Character{},
		&domain.Notification{},
	)
}
