package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/fesikdev/site/internal/db"
	"github.com/fesikdev/site/internal/util"
)

var (
	// ErrPortfolioNotFound is returned for unknown ids and slugs.
	ErrPortfolioNotFound = errors.New("portfolio item not found")
	// ErrPortfolioInvalidInput is returned when required fields are missing.
	ErrPortfolioInvalidInput = errors.New("invalid portfolio input")
)

// PortfolioService handles project case-study CRUD.
type PortfolioService struct {
	db *gorm.DB
}

// PortfolioInput represents fields accepted when creating or updating a
// portfolio item. Images, when non-nil, replaces the stored list in
// submission order. Features come in as raw textarea content, one feature
// per line.
type PortfolioInput struct {
	Title       string
	Category    string
	Package     string
	Duration    string
	Geo         string
	Images      []db.PortfolioImage
	FeaturesRaw string
	Testimonial string
	Client      string
	LiveURL     string
	Slug        string
}

// NewPortfolioService creates a PortfolioService instance.
func NewPortfolioService(gdb *gorm.DB) *PortfolioService {
	return &PortfolioService{db: gdb}
}

// List returns all portfolio items in creation order.
func (s *PortfolioService) List() ([]db.PortfolioItem, error) {
	var items []db.PortfolioItem
	if err := s.db.Order("created_at asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list portfolio items: %w", err)
	}
	return items, nil
}

// Get fetches a portfolio item by id.
func (s *PortfolioService) Get(id uint) (*db.PortfolioItem, error) {
	var item db.PortfolioItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPortfolioNotFound
		}
		return nil, fmt.Errorf("get portfolio item: %w", err)
	}
	return &item, nil
}

// GetBySlug fetches a portfolio item by its public URL key.
func (s *PortfolioService) GetBySlug(slug string) (*db.PortfolioItem, error) {
	var item db.PortfolioItem
	if err := s.db.Where("slug = ?", slug).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPortfolioNotFound
		}
		return nil, fmt.Errorf("get portfolio item by slug: %w", err)
	}
	return &item, nil
}

// Create inserts a new portfolio item. The slug defaults to a slugified
// Title and must be unique across portfolio items.
func (s *PortfolioService) Create(input PortfolioInput) (*db.PortfolioItem, error) {
	if err := validatePortfolioInput(input); err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = util.Slugify(input.Title)
	}
	if !util.IsValidSlug(slug) {
		return nil, fmt.Errorf("%w: %q", ErrSlugInvalid, slug)
	}

	var count int64
	if err := s.db.Model(&db.PortfolioItem{}).Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check portfolio slug: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: %s", ErrSlugTaken, slug)
	}

	item := db.PortfolioItem{
		Title:       strings.TrimSpace(input.Title),
		Category:    strings.TrimSpace(input.Category),
		Package:     strings.TrimSpace(input.Package),
		Duration:    strings.TrimSpace(input.Duration),
		Geo:         strings.TrimSpace(input.Geo),
		Images:      input.Images,
		Features:    splitFeatures(input.FeaturesRaw),
		Testimonial: strings.TrimSpace(input.Testimonial),
		Client:      strings.TrimSpace(input.Client),
		LiveURL:     strings.TrimSpace(input.LiveURL),
		Slug:        slug,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create portfolio item: %w", err)
	}
	return &item, nil
}

// Update modifies an existing portfolio item. The slug is immutable.
// When Images is non-nil the stored list is replaced and the previous
// references are returned for file cleanup.
func (s *PortfolioService) Update(id uint, input PortfolioInput) (*db.PortfolioItem, []string, error) {
	if err := validatePortfolioInput(input); err != nil {
		return nil, nil, err
	}

	var item db.PortfolioItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrPortfolioNotFound
		}
		return nil, nil, fmt.Errorf("find portfolio item: %w", err)
	}

	if slug := strings.TrimSpace(input.Slug); slug != "" && slug != item.Slug {
		return nil, nil, ErrSlugImmutable
	}

	var replaced []string
	item.Title = strings.TrimSpace(input.Title)
	item.Category = strings.TrimSpace(input.Category)
	item.Package = strings.TrimSpace(input.Package)
	item.Duration = strings.TrimSpace(input.Duration)
	item.Geo = strings.TrimSpace(input.Geo)
	item.Features = splitFeatures(input.FeaturesRaw)
	item.Testimonial = strings.TrimSpace(input.Testimonial)
	item.Client = strings.TrimSpace(input.Client)
	item.LiveURL = strings.TrimSpace(input.LiveURL)
	if input.Images != nil {
		for _, img := range item.Images {
			replaced = append(replaced, img.Path)
		}
		item.Images = input.Images
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, nil, fmt.Errorf("update portfolio item: %w", err)
	}
	return &item, replaced, nil
}

// Delete removes a portfolio item and returns its orphaned image
// references.
func (s *PortfolioService) Delete(id uint) ([]string, error) {
	var item db.PortfolioItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPortfolioNotFound
		}
		return nil, fmt.Errorf("find portfolio item: %w", err)
	}

	if err := s.db.Delete(&item).Error; err != nil {
		return nil, fmt.Errorf("delete portfolio item: %w", err)
	}

	refs := make([]string, 0, len(item.Images))
	for _, img := range item.Images {
		refs = append(refs, img.Path)
	}
	return refs, nil
}

// splitFeatures turns textarea content into a trimmed list, one feature
// per non-empty line.
func splitFeatures(raw string) []string {
	lines := strings.Split(raw, "\n")
	features := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			features = append(features, line)
		}
	}
	return features
}

func validatePortfolioInput(input PortfolioInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrPortfolioInvalidInput)
	}
	if strings.TrimSpace(input.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrPortfolioInvalidInput)
	}
	if strings.TrimSpace(input.Package) == "" {
		return fmt.Errorf("%w: package is required", ErrPortfolioInvalidInput)
	}
	return nil
}
