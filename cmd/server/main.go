package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/fesikdev/site/internal/config"
	"github.com/fesikdev/site/internal/db"
	"github.com/fesikdev/site/internal/handler"
	"github.com/fesikdev/site/internal/router"
	"github.com/fesikdev/site/internal/service"
	"github.com/fesikdev/site/internal/upload"
)

func main() {
	// .env опционален: в проде конфигурация приходит из окружения
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	gdb, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	auth := service.NewAuthService(gdb)
	created, defaultUsed, err := auth.EnsureDefaultAdmin(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("failed to ensure admin account: %v", err)
	}
	if created {
		log.Printf("administrator account created")
	}
	if defaultUsed {
		log.Printf("WARNING: seeded the default admin credential; set ADMIN_USERNAME/ADMIN_PASSWORD and rotate it before going live")
	}

	uploads := upload.NewManager(cfg.UploadDir, cfg.UploadURLPath, cfg.AllowedExtensions, cfg.MaxUploadSize)

	api := handler.NewAPI(gdb, uploads, cfg.SiteBaseURL)
	r := router.Setup(api, cfg)

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
