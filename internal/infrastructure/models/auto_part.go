package models

import "time"

// AutoPart stores price as fixed-point text (numeric 10,2) to avoid drift.
type AutoPart struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	SellerID    int64   `gorm:"not null;index"`
	Title       string  `gorm:"type:text;not null"`
	Description string  `gorm:"type:text;not null"`
	Category    string  `gorm:"type:varchar(30);not null"`
	Condition   string  `gorm:"type:varchar(30);not null"`
	Price       string  `gorm:"type:numeric(10,2);not null"`
	Make        string  `gorm:"type:text;not null"`
	Model       string  `gorm:"type:text;not null"`
	Year        int     `gorm:"not null"`
	PartNumber  *string `gorm:"type:text"`
	IsActive    bool    `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PartImage struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	PartID    int64  `gorm:"not null;index"`
	ImageURL  string `gorm:"type:text;not null"`
	IsPrimary bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
}
