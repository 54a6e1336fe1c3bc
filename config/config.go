package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultImagesSubDir     = "images"
	DefaultThumbnailsSubDir = "thumbnails"
)

const (
	defaultListenAddr       = ":8080"
	defaultAdminUsername    = "admin"
	defaultAdminPassword    = "changeme"
	defaultTokenTTLHours    = 24
	defaultThumbnailMaxSize = 400
)

type Config struct {
	// HTTP listen address
	ListenAddr string

	// database path
	DatabasePath string

	// media storage configuration
	MediaStoragePath string // primary root for uploaded project images
	ImagesPath       string // full-calculated path for original images
	ThumbnailsPath   string // full-calculated path for generated thumbnails

	// thumbnail generation settings
	ThumbnailMaxSize int

	// admin credential (single account, overridable via environment)
	AdminUsername     string
	AdminPasswordHash string // bcrypt hash computed at load time

	// token settings
	JWTSecret []byte
	TokenTTL  time.Duration

	// origins allowed to call the API cross-origin
	CORSOrigins []string
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func parseCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func LoadConfig() (Config, error) {
	dbPath := getEnvOrDefault("PORTFOLIO_DB_PATH", "portfolio.db")

	mediaStorage := getEnvOrDefault("MEDIA_STORAGE_PATH", filepath.Join(".", "media_storage"))
	absMediaStorage, err := filepath.Abs(mediaStorage)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute path for media storage '%s': %w", mediaStorage, err)
	}

	imagesSubDir := getEnvOrDefault("IMAGES_SUBDIR", DefaultImagesSubDir)
	thumbSubDir := getEnvOrDefault("THUMBNAILS_SUBDIR", DefaultThumbnailsSubDir)

	adminPassword := getEnvOrDefault("ADMIN_PASSWORD", defaultAdminPassword)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return Config{}, fmt.Errorf("failed to hash admin password: %w", err)
	}

	jwtSecret := getEnvOrDefault("JWT_SECRET", "")
	if jwtSecret == "" {
		log.Printf("Warning: JWT_SECRET not set, using an insecure development default")
		jwtSecret = "portfolio-dev-secret-do-not-use-in-production"
	}

	corsOrigins := parseCSV(getEnvOrDefault("CORS_ORIGINS", "http://localhost:5000,https://localhost:5001"))

	cfg := Config{
		ListenAddr:        getEnvOrDefault("LISTEN_ADDR", defaultListenAddr),
		DatabasePath:      dbPath,
		MediaStoragePath:  absMediaStorage,
		ImagesPath:        filepath.Join(absMediaStorage, imagesSubDir),
		ThumbnailsPath:    filepath.Join(absMediaStorage, thumbSubDir),
		ThumbnailMaxSize:  getEnvIntOrDefault("THUMBNAIL_MAX_SIZE", defaultThumbnailMaxSize),
		AdminUsername:     getEnvOrDefault("ADMIN_USERNAME", defaultAdminUsername),
		AdminPasswordHash: string(passwordHash),
		JWTSecret:         []byte(jwtSecret),
		TokenTTL:          time.Duration(getEnvIntOrDefault("JWT_TTL_HOURS", defaultTokenTTLHours)) * time.Hour,
		CORSOrigins:       corsOrigins,
	}

	return cfg, nil
}
