package db

import "gorm.io/gorm"

// About page section keys. Exactly one row may exist per key.
const (
	AboutSectionBiography  = "biography"
	AboutSectionPhilosophy = "philosophy"
	AboutSectionTools      = "tools"
)

// AboutSection stores one editable block of the about page.
// Body is markdown and is rendered to sanitized HTML on the public side.
type AboutSection struct {
	gorm.Model
	Section   string `gorm:"uniqueIndex;not null"`
	Body      string
	ImagePath string
}
