package db

import "gorm.io/gorm"

// Admin is the single administrator account gating the control panel.
type Admin struct {
	gorm.Model
	Username string `gorm:"unique;not null"`
	Password string `gorm:"not null"` // bcrypt hash
}
