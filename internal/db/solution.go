package db

import "gorm.io/gorm"

// Solution categories.
const (
	SolutionCategoryPackage = "package"
	SolutionCategoryModule  = "module"
)

// Solution is a purchasable ready-made offer from the solutions catalog.
// Slug is the public URL key and never changes after creation.
type Solution struct {
	gorm.Model
	Name         string `gorm:"not null"`
	Description  string
	ImagePath    string
	Price        int
	DeliveryDays int
	IsNew        bool
	IsPopular    bool
	Category     string `gorm:"default:package"` // package, module
	Slug         string `gorm:"uniqueIndex;not null"`
}
