package models

import "time"

type AppSettings struct {
	ID        uint   `gorm:"primaryKey"` // single-row table (ID=1)
	Version   int    `gorm:"not null;default:1"`
	Locale    string `gorm:"not null;default:en"` // "en" | "zh"
	UpdatedAt time.Time
}
