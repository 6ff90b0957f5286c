package db

import "gorm.io/gorm"

// ContactInfo is the singleton contact block shown on the contacts page.
type ContactInfo struct {
	gorm.Model
	Email    string
	Phone    string
	Address  string
	Telegram string
	GitHub   string
}
