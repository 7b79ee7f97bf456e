package config

import (
	"errors"
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// App holds runtime configuration read from the environment.
type App struct {
	Port          string
	PublicBaseURL string
	UploadDir     string
	WebhookURL    string
}

// Load reads app configuration. JWT_SECRET is validated separately in utils.
func Load() *App {
	return &App{
		Port:          getEnv("PORT", "8080"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		UploadDir:     getEnv("UPLOAD_DIR", "public/uploads"),
		WebhookURL:    os.Getenv("NOTIFY_WEBHOOK_URL"),
	}
}

// InitDB opens the MySQL connection from DB_* environment variables.
// TranslateError is on so unique-key violations surface as gorm.ErrDuplicatedKey.
func InitDB() (*gorm.DB, error) {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "3306")
	name := os.Getenv("DB_NAME")

	if user == "" || name == "" {
		return nil, errors.New("DB_USER and DB_NAME must be set")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, name)

	return gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
