package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds every environment-sourced setting. It is loaded once in main
// and passed down; nothing reads os.Getenv after startup.
type Config struct {
	Port      string
	SiteURL   string
	AdminPath string

	JWTSecret         string
	AdminPasswordHash string

	Cloudinary Cloudinary

	RateLimit RateLimit

	AnalyticsMaxEvents int
	FallbackDisabled   bool
}

type Cloudinary struct {
	CloudName  string
	APIKey     string
	APISecret  string
	BaseFolder string
}

// Configured reports whether the image host credentials are present. When
// they are not, host-dependent routes answer 503 instead of crashing at
// startup.
func (c Cloudinary) Configured() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

type RateLimit struct {
	APIWindow  time.Duration
	APIMax     int
	AuthWindow time.Duration
	AuthMax    int
}

func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "3000"),
		SiteURL:   getEnv("SITE_URL", "http://localhost:3000"),
		AdminPath: getEnv("ADMIN_PATH", "/admin-abanicos-abm"),

		JWTSecret:         getEnv("JWT_SECRET", "coolenergy-jwt-secret-change-in-production"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		Cloudinary: Cloudinary{
			CloudName:  os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:     os.Getenv("CLOUDINARY_API_KEY"),
			APISecret:  os.Getenv("CLOUDINARY_API_SECRET"),
			BaseFolder: getEnv("CLOUDINARY_BASE_FOLDER", "coolenergy/abanicos"),
		},

		RateLimit: RateLimit{
			APIWindow:  15 * time.Minute,
			APIMax:     getEnvInt("RATE_LIMIT_API_MAX", 100),
			AuthWindow: 15 * time.Minute,
			AuthMax:    getEnvInt("RATE_LIMIT_AUTH_MAX", 5),
		},

		AnalyticsMaxEvents: getEnvInt("ANALYTICS_MAX_EVENTS", 1000),
		FallbackDisabled:   os.Getenv("FALLBACK_DISABLED") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
