package model

import "time"

type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"size:255;uniqueIndex;not null"`
	Password  string `gorm:"size:128;not null"` // bcrypt hash
	Name      string `gorm:"size:128"`
	Phone     string `gorm:"size:32"`
	Company   string `gorm:"size:128"`
	Role      string `gorm:"size:16;index;not null"` // USER, ADMIN
	CreatedAt time.Time
	UpdatedAt time.Time
}
