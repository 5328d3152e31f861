package domain

import (
	"time"

	"gorm.io/gorm"
)

// StorageItem struct - One persisted key/value pair in a database backing
type StorageItem struct {
	Key       string    `gorm:"type:varchar(191);primary_key;"`
	Value     string    `gorm:"type:text;not null;"`
	UpdatedAt time.Time `gorm:"type:timestamp"`
}

// TableName func
func (s *StorageItem) TableName() string {
	return "storage_items"
}

// MigrateDatabase func - Auto-migrate the storage schema
func MigrateDatabase(db *gorm.DB) error {
	if db == nil {
		return ErrStorageUnavailable
	}
	return db.AutoMigrate(&StorageItem{})
}
