package models

import "time"

// StorageEntry is one string-keyed, string-valued record of the local store.
type StorageEntry struct {
	Key       string `gorm:"column:storage_key;primaryKey;size:255"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
