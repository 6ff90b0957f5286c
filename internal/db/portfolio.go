package db

import "gorm.io/gorm"

// PortfolioImage is one uploaded case-study image with its probed
// dimensions, kept for layout on the public detail page.
type PortfolioImage struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// PortfolioItem is a completed project case study.
// Images keep submission order; Slug is the public URL key and never
// changes after creation.
type PortfolioItem struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Category    string
	Package     string
	Duration    string
	Geo         string
	Images      []PortfolioImage `gorm:"serializer:json"`
	Features    []string         `gorm:"serializer:json"`
	Testimonial string
	Client      string
	LiveURL     string
	Slug        string `gorm:"uniqueIndex;not null"`
}
