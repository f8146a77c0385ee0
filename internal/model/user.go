package model

import "time"

// User is a system account. Role gates the admin-only routes.
// The password hash never leaves the model layer: every response projection
// goes through dto.UserResponse, which has no password field.
type User struct {
	ID           string `gorm:"type:varchar(36);primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password;not null"`
	FullName     string `gorm:"not null"`
	Role         Role   `gorm:"type:varchar(50);not null;default:'staff'"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
