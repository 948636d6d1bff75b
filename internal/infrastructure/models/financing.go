package models

import "time"

// FinancingOption stores amounts as numeric(10,2) and the rate as
// numeric(5,2), both kept as fixed-point text.
type FinancingOption struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	ProviderID   int64  `gorm:"not null;index"`
	Name         string `gorm:"type:text;not null"`
	Description  string `gorm:"type:text;not null"`
	MinAmount    string `gorm:"type:numeric(10,2);not null"`
	MaxAmount    string `gorm:"type:numeric(10,2);not null"`
	InterestRate string `gorm:"type:numeric(5,2);not null"`
	TermMonths   int    `gorm:"not null"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type FinancingApplication struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	BuyerID           int64  `gorm:"not null;index"`
	ProviderID        int64  `gorm:"not null;index"`
	PartID            int64  `gorm:"not null;index"`
	FinancingOptionID int64  `gorm:"not null;index"`
	RequestedAmount   string `gorm:"type:numeric(10,2);not null"`
	Status            string `gorm:"type:varchar(20);not null;default:'pending'"`
	ApplicationData   string `gorm:"type:text;not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
