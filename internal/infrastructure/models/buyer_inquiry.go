package models

import "time"

type BuyerInquiry struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	BuyerID   int64  `gorm:"not null;index"`
	SellerID  int64  `gorm:"not null;index"`
	PartID    int64  `gorm:"not null;index"`
	Message   string `gorm:"type:text;not null"`
	Status    string `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
