package postgres

import (
	"errors"
	"fmt"
	"time"

	"storefront-state/internal/domain"
	"storefront-state/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Compile-time check to ensure PostgresStorage implements Storage interface
var _ output.Storage = (*PostgresStorage)(nil)

// PostgresStorage struct - Secondary/Driven adapter keeping key/value pairs in PostgreSQL
type PostgresStorage struct {
	dbGorm *gorm.DB
}

// NewPostgresStorage func - Creates new PostgreSQL storage and migrates its table
func NewPostgresStorage(dbGorm *gorm.DB) (*PostgresStorage, error) {
	logrus.Info("Migrate database ...")
	if err := domain.MigrateDatabase(dbGorm); err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return &PostgresStorage{
		dbGorm: dbGorm,
	}, nil
}

// GetItem func - Reads the value stored under key
func (p *PostgresStorage) GetItem(key string) (string, bool, error) {
	var item domain.StorageItem
	err := p.dbGorm.Where("key = ?", key).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		logrus.Errorln(err)
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return item.Value, true, nil
}

// SetItem func - Upserts value under key
func (p *PostgresStorage) SetItem(key, value string) error {
	item := domain.StorageItem{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	err := p.dbGorm.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&item).Error
	if err != nil {
		logrus.Errorln(err)
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// RemoveItem func - Deletes key, missing keys are not an error
func (p *PostgresStorage) RemoveItem(key string) error {
	if err := p.dbGorm.Where("key = ?", key).Delete(&domain.StorageItem{}).Error; err != nil {
		logrus.Errorln(err)
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

// Ping func - Verifies the database connection
func (p *PostgresStorage) Ping() error {
	sqlDB, err := p.dbGorm.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}
