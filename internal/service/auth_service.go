package service

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fesikdev/site/internal/db"
)

// ErrInvalidCredentials is returned for unknown usernames and wrong
// passwords alike, so a caller cannot probe which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Historical first-run credential. Kept for compatibility with existing
// deployments; EnsureDefaultAdmin reports when it is actually used so the
// operator gets told to rotate it.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "Tdutif_85"
)

// AuthService validates administrator credentials.
type AuthService struct {
	db *gorm.DB
}

// NewAuthService creates an AuthService instance.
func NewAuthService(gdb *gorm.DB) *AuthService {
	return &AuthService{db: gdb}
}

// Authenticate looks up the administrator by exact username and compares
// the password against the stored bcrypt hash.
func (s *AuthService) Authenticate(username, password string) (*db.Admin, error) {
	var admin db.Admin
	if err := s.db.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &admin, nil
}

// EnsureDefaultAdmin creates the administrator account on first run when
// none exists. username/password override the legacy default; the second
// return value reports whether the known-weak default credential was
// seeded.
func (s *AuthService) EnsureDefaultAdmin(username, password string) (created, defaultUsed bool, err error) {
	var count int64
	if err := s.db.Model(&db.Admin{}).Count(&count).Error; err != nil {
		return false, false, fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return false, false, nil
	}

	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		username = DefaultAdminUsername
		password = DefaultAdminPassword
		defaultUsed = true
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, false, fmt.Errorf("hash admin password: %w", err)
	}

	admin := db.Admin{Username: username, Password: string(hashed)}
	if err := s.db.Create(&admin).Error; err != nil {
		return false, false, fmt.Errorf("create admin: %w", err)
	}

	return true, defaultUsed, nil
}
