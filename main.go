package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/yeremiapane/travel-cafe-app/config"
	"github.com/yeremiapane/travel-cafe-app/middlewares"
	"github.com/yeremiapane/travel-cafe-app/models"
	"github.com/yeremiapane/travel-cafe-app/router"
	"github.com/yeremiapane/travel-cafe-app/services"
	"github.com/yeremiapane/travel-cafe-app/utils"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	if err := utils.InitJWT(); err != nil {
		utils.ErrorLogger.Fatalf("JWT setup failed: %v", err)
	}

	cfg := config.Load()
	if cfg.WebhookURL == "" {
		utils.InfoLogger.Println("NOTIFY_WEBHOOK_URL not set; notification outbox will park events as failed")
	}

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	utils.StartBlacklistCleanup()

	// Background dispatcher for the advisory webhook outbox.
	notifier := services.NewNotifier(cfg.WebhookURL)
	dispatcher := services.NewOutboxDispatcher(db, notifier)
	dispatcher.Start()
	defer dispatcher.Stop()

	storage := services.NewMediaStorage(filepath.Clean(cfg.UploadDir), cfg.PublicBaseURL)

	r := router.SetupRouter(db, storage)

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.GalleryItem{},
		&models.Testimonial{},
		&models.ContactInquiry{},
		&models.Reservation{},
		&models.NewsletterSubscriber{},
		&models.Plan{},
		&models.PlanFeature{},
		&models.NotificationEvent{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
