package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"imagestudio/internal/models"
)

type StorageRepository interface {
	Get(ctx context.Context, key string) (*models.StorageEntry, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) (bool, error)
	List(ctx context.Context) ([]models.StorageEntry, error)
}

type storageRepository struct {
	db *gorm.DB
}

func NewStorageRepository(db *gorm.DB) StorageRepository {
	return &storageRepository{db: db}
}

// Get returns nil, nil when the key is absent.
func (r *storageRepository) Get(ctx context.Context, key string) (*models.StorageEntry, error) {
	if key == "" {
		return nil, fmt.Errorf("storage key is required")
	}
	var entry models.StorageEntry
	if err := r.db.WithContext(ctx).Where("storage_key = ?", key).Take(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting storage key %s: %w", key, err)
	}
	return &entry, nil
}

func (r *storageRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("storage key is required")
	}
	entry := models.StorageEntry{Key: key, Value: value}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&entry).Error; err != nil {
		return fmt.Errorf("setting storage key %s: %w", key, err)
	}
	return nil
}

// Delete reports whether a row was removed.
func (r *storageRepository) Delete(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, fmt.Errorf("storage key is required")
	}
	res := r.db.WithContext(ctx).Where("storage_key = ?", key).Delete(&models.StorageEntry{})
	if res.Error != nil {
		return false, fmt.Errorf("deleting storage key %s: %w", key, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *storageRepository) List(ctx context.Context) ([]models.StorageEntry, error) {
	var entries []models.StorageEntry
	if err := r.db.WithContext(ctx).Order("storage_key").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("listing storage: %w", err)
	}
	return entries, nil
}
