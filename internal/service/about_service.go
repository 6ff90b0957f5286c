package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/fesikdev/site/internal/db"
)

var (
	// ErrUnknownSection is returned for section keys outside the fixed set.
	ErrUnknownSection = errors.New("unknown about section")
	// ErrAboutBodyRequired is returned when the section body is empty.
	ErrAboutBodyRequired = errors.New("about section body is required")
)

// aboutSections is the closed set of editable about-page blocks.
var aboutSections = map[string]struct{}{
	db.AboutSectionBiography:  {},
	db.AboutSectionPhilosophy: {},
	db.AboutSectionTools:      {},
}

// AboutService maintains the keyed about-page sections.
type AboutService struct {
	db *gorm.DB
}

// AboutInput carries the editable fields of a section. ImagePath is
// applied only when non-nil so a text-only edit keeps the current image.
type AboutInput struct {
	Body      string
	ImagePath *string
}

// NewAboutService creates an AboutService instance.
func NewAboutService(gdb *gorm.DB) *AboutService {
	return &AboutService{db: gdb}
}

// ValidSection reports whether the key belongs to the fixed section set.
func ValidSection(section string) bool {
	_, ok := aboutSections[section]
	return ok
}

// Get fetches one section by key; (nil, nil) when it was never filled in.
func (s *AboutService) Get(section string) (*db.AboutSection, error) {
	if !ValidSection(section) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}

	var content db.AboutSection
	if err := s.db.Where("section = ?", section).First(&content).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get about section: %w", err)
	}
	return &content, nil
}

// All returns the filled-in sections keyed by section name.
func (s *AboutService) All() (map[string]*db.AboutSection, error) {
	var rows []db.AboutSection
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list about sections: %w", err)
	}

	sections := make(map[string]*db.AboutSection, len(rows))
	for i := range rows {
		sections[rows[i].Section] = &rows[i]
	}
	return sections, nil
}

// Upsert creates or updates the section row for the given key. At most
// one row per key exists; the unique index backs up the lookup.
func (s *AboutService) Upsert(section string, input AboutInput) (*db.AboutSection, error) {
	if !ValidSection(section) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}

	body := strings.TrimSpace(input.Body)
	if body == "" {
		return nil, ErrAboutBodyRequired
	}

	var content db.AboutSection
	err := s.db.Where("section = ?", section).First(&content).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find about section: %w", err)
		}
		content = db.AboutSection{Section: section}
	}

	content.Body = body
	if input.ImagePath != nil {
		content.ImagePath = *input.ImagePath
	}

	if err := s.db.Save(&content).Error; err != nil {
		return nil, fmt.Errorf("save about section: %w", err)
	}
	return &content, nil
}
