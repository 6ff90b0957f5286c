package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// AppConfig holds application runtime configuration, populated from the
// environment with safe development defaults.
type AppConfig struct {
	ListenAddr    string `env:"LISTEN_ADDR"`
	Port          string `env:"PORT" envDefault:"5001"`
	DatabasePath  string `env:"DATABASE_PATH" envDefault:"devsite.db"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"devsite-dev-secret"`
	GinMode       string `env:"GIN_MODE" envDefault:"release"`
	SiteBaseURL   string `env:"SITE_BASE_URL" envDefault:"https://fesik-dev.ru"`

	UploadDir     string `env:"UPLOAD_DIR" envDefault:"web/static/uploads"`
	UploadURLPath string `env:"UPLOAD_URL_PATH" envDefault:"/static/uploads"`

	// AllowedExtensions mirrors the historical upload whitelist.
	AllowedExtensions []string `env:"ALLOWED_EXTENSIONS" envSeparator:"," envDefault:"pdf,docx,txt,zip,jpg,jpeg,png,webp,py,js,json,xlsx"`
	MaxUploadSize     int64    `env:"MAX_UPLOAD_SIZE" envDefault:"16777216"`

	// AdminUsername/AdminPassword override the seeded administrator
	// credential. Leaving them empty keeps the legacy default, which is
	// reported at startup so it gets rotated.
	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
}

// Load parses the application configuration from environment variables.
func Load() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if strings.TrimSpace(cfg.ListenAddr) == "" {
		cfg.ListenAddr = fmt.Sprintf(":%s", cfg.Port)
	}

	for i, ext := range cfg.AllowedExtensions {
		cfg.AllowedExtensions[i] = strings.ToLower(strings.TrimSpace(ext))
	}

	cfg.SiteBaseURL = strings.TrimRight(strings.TrimSpace(cfg.SiteBaseURL), "/")

	return cfg, nil
}
