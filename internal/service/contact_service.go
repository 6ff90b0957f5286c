package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/fesikdev/site/internal/db"
)

// ErrContactInvalidInput is returned when required contact fields are
// missing.
var ErrContactInvalidInput = errors.New("invalid contact info input")

// ContactService maintains the singleton contact block.
type ContactService struct {
	db *gorm.DB
}

// ContactInput carries the editable contact fields.
type ContactInput struct {
	Email    string
	Phone    string
	Address  string
	Telegram string
	GitHub   string
}

// NewContactService creates a ContactService instance.
func NewContactService(gdb *gorm.DB) *ContactService {
	return &ContactService{db: gdb}
}

// Get returns the contact row, or (nil, nil) when none was saved yet.
func (s *ContactService) Get() (*db.ContactInfo, error) {
	var info db.ContactInfo
	if err := s.db.First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact info: %w", err)
	}
	return &info, nil
}

// Upsert writes the singleton contact row, creating it on first save.
func (s *ContactService) Upsert(input ContactInput) (*db.ContactInfo, error) {
	if err := validateContactInput(input); err != nil {
		return nil, err
	}

	var info db.ContactInfo
	err := s.db.First(&info).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find contact info: %w", err)
	}

	info.Email = strings.TrimSpace(input.Email)
	info.Phone = strings.TrimSpace(input.Phone)
	info.Address = strings.TrimSpace(input.Address)
	info.Telegram = strings.TrimSpace(input.Telegram)
	info.GitHub = strings.TrimSpace(input.GitHub)

	if err := s.db.Save(&info).Error; err != nil {
		return nil, fmt.Errorf("save contact info: %w", err)
	}
	return &info, nil
}

func validateContactInput(input ContactInput) error {
	if strings.TrimSpace(input.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrContactInvalidInput)
	}
	if strings.TrimSpace(input.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrContactInvalidInput)
	}
	return nil
}
