package models

import "time"

type User struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string  `gorm:"type:text;not null"`
	FirstName    string  `gorm:"type:text;not null"`
	LastName     string  `gorm:"type:text;not null"`
	UserType     string  `gorm:"type:varchar(30);not null"`
	Phone        *string `gorm:"type:text"`
	Address      *string `gorm:"type:text"`
	City         *string `gorm:"type:text"`
	State        *string `gorm:"type:text"`
	ZipCode      *string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
