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
	// ErrSolutionNotFound is returned for unknown ids and slugs.
	ErrSolutionNotFound = errors.New("solution not found")
	// ErrSolutionInvalidInput is returned when required fields are missing
	// or out of range.
	ErrSolutionInvalidInput = errors.New("invalid solution input")
	// ErrCategoryInvalid is returned for categories outside package/module.
	ErrCategoryInvalid = errors.New("solution category is invalid")
	// ErrSlugTaken is returned when the slug is already used by another
	// record of the same kind.
	ErrSlugTaken = errors.New("slug is already taken")
	// ErrSlugImmutable is returned when an update tries to change the slug
	// of an existing record.
	ErrSlugImmutable = errors.New("slug cannot be changed after creation")
	// ErrSlugInvalid is returned when a slug cannot be derived or is
	// malformed.
	ErrSlugInvalid = errors.New("slug is invalid")
)

// SolutionService handles the solutions catalog CRUD.
type SolutionService struct {
	db *gorm.DB
}

// SolutionInput represents fields accepted when creating or updating a
// solution. An empty Slug on create is derived from Name. ImagePath is
// applied only when non-nil.
type SolutionInput struct {
	Name         string
	Description  string
	ImagePath    *string
	Price        int
	DeliveryDays int
	IsNew        bool
	IsPopular    bool
	Category     string
	Slug         string
}

// NewSolutionService creates a SolutionService instance.
func NewSolutionService(gdb *gorm.DB) *SolutionService {
	return &SolutionService{db: gdb}
}

// List returns all solutions in creation order.
func (s *SolutionService) List() ([]db.Solution, error) {
	var items []db.Solution
	if err := s.db.Order("created_at asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list solutions: %w", err)
	}
	return items, nil
}

// ListByCategory returns solutions of one category in creation order.
func (s *SolutionService) ListByCategory(category string) ([]db.Solution, error) {
	var items []db.Solution
	if err := s.db.Where("category = ?", category).
		Order("created_at asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list solutions by category: %w", err)
	}
	return items, nil
}

// Get fetches a solution by id.
func (s *SolutionService) Get(id uint) (*db.Solution, error) {
	var item db.Solution
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSolutionNotFound
		}
		return nil, fmt.Errorf("get solution: %w", err)
	}
	return &item, nil
}

// GetBySlug fetches a solution by its public URL key.
func (s *SolutionService) GetBySlug(slug string) (*db.Solution, error) {
	var item db.Solution
	if err := s.db.Where("slug = ?", slug).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSolutionNotFound
		}
		return nil, fmt.Errorf("get solution by slug: %w", err)
	}
	return &item, nil
}

// Create inserts a new solution; the slug defaults to a slugified Name
// and must be unique.
func (s *SolutionService) Create(input SolutionInput) (*db.Solution, error) {
	if err := validateSolutionInput(input); err != nil {
		return nil, err
	}

	slug, err := s.resolveSlug(input.Slug, input.Name)
	if err != nil {
		return nil, err
	}

	item := db.Solution{
		Name:         strings.TrimSpace(input.Name),
		Description:  strings.TrimSpace(input.Description),
		Price:        input.Price,
		DeliveryDays: input.DeliveryDays,
		IsNew:        input.IsNew,
		IsPopular:    input.IsPopular,
		Category:     normalizeCategory(input.Category),
		Slug:         slug,
	}
	if input.ImagePath != nil {
		item.ImagePath = *input.ImagePath
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create solution: %w", err)
	}
	return &item, nil
}

// Update modifies an existing solution. The slug is immutable: a
// non-empty input slug differing from the stored one is rejected.
// Returns the previous image reference when it was replaced so the caller
// can clean the file up.
func (s *SolutionService) Update(id uint, input SolutionInput) (*db.Solution, string, error) {
	if err := validateSolutionInput(input); err != nil {
		return nil, "", err
	}

	var item db.Solution
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrSolutionNotFound
		}
		return nil, "", fmt.Errorf("find solution: %w", err)
	}

	if slug := strings.TrimSpace(input.Slug); slug != "" && slug != item.Slug {
		return nil, "", ErrSlugImmutable
	}

	var replaced string
	item.Name = strings.TrimSpace(input.Name)
	item.Description = strings.TrimSpace(input.Description)
	item.Price = input.Price
	item.DeliveryDays = input.DeliveryDays
	item.IsNew = input.IsNew
	item.IsPopular = input.IsPopular
	item.Category = normalizeCategory(input.Category)
	if input.ImagePath != nil && *input.ImagePath != item.ImagePath {
		replaced = item.ImagePath
		item.ImagePath = *input.ImagePath
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, "", fmt.Errorf("update solution: %w", err)
	}
	return &item, replaced, nil
}

// Delete removes a solution and returns its orphaned image reference.
func (s *SolutionService) Delete(id uint) (string, error) {
	var item db.Solution
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrSolutionNotFound
		}
		return "", fmt.Errorf("find solution: %w", err)
	}

	if err := s.db.Delete(&item).Error; err != nil {
		return "", fmt.Errorf("delete solution: %w", err)
	}
	return item.ImagePath, nil
}

func (s *SolutionService) resolveSlug(raw, name string) (string, error) {
	slug := strings.TrimSpace(raw)
	if slug == "" {
		slug = util.Slugify(name)
	}
	if !util.IsValidSlug(slug) {
		return "", fmt.Errorf("%w: %q", ErrSlugInvalid, slug)
	}

	var count int64
	if err := s.db.Model(&db.Solution{}).Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return "", fmt.Errorf("check solution slug: %w", err)
	}
	if count > 0 {
		return "", fmt.Errorf("%w: %s", ErrSlugTaken, slug)
	}
	return slug, nil
}

func validateSolutionInput(input SolutionInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrSolutionInvalidInput)
	}
	if strings.TrimSpace(input.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrSolutionInvalidInput)
	}
	if input.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrSolutionInvalidInput)
	}
	if input.DeliveryDays <= 0 {
		return fmt.Errorf("%w: delivery days must be positive", ErrSolutionInvalidInput)
	}
	if cat := normalizeCategory(input.Category); cat != db.SolutionCategoryPackage && cat != db.SolutionCategoryModule {
		return fmt.Errorf("%w: %s", ErrCategoryInvalid, input.Category)
	}
	return nil
}

func normalizeCategory(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return db.SolutionCategoryPackage
	}
	return category
}
