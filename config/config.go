package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries every runtime setting the server needs. It is built once
// in main and passed by reference; packages never read the environment
// themselves.
type Config struct {
	Port     string
	MongoURI string
	MongoDB  string

	RedisAddr     string
	RedisPassword string

	JWTSecret []byte
	TokenTTL  time.Duration

	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string // bcrypt hash, takes precedence over AdminPassword

	MediaHostURL     string
	MediaHostAPIKey  string
	MediaHostTimeout time.Duration

	ShippingFeeInside  float64
	ShippingFeeOutside float64
}

// Load reads the environment and fails fast: every missing required key is
// reported in one error instead of surfacing later as a nil secret.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		MongoURI:           getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:            getEnv("MONGODB_DB", "shareedb"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		JWTSecret:          []byte(os.Getenv("JWT_SECRET")),
		TokenTTL:           time.Hour,
		AdminEmail:         os.Getenv("ADMIN_EMAIL"),
		AdminPassword:      os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash:  os.Getenv("ADMIN_PASSWORD_HASH"),
		MediaHostURL:       os.Getenv("MEDIA_HOST_URL"),
		MediaHostAPIKey:    os.Getenv("MEDIA_HOST_API_KEY"),
		MediaHostTimeout:   10 * time.Second,
		ShippingFeeInside:  getEnvFloat("SHIPPING_FEE_INSIDE", 60),
		ShippingFeeOutside: getEnvFloat("SHIPPING_FEE_OUTSIDE", 120),
	}

	var missing []string
	if len(cfg.JWTSecret) == 0 {
		missing = append(missing, "JWT_SECRET")
	}
	if cfg.AdminEmail == "" {
		missing = append(missing, "ADMIN_EMAIL")
	}
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		missing = append(missing, "ADMIN_PASSWORD or ADMIN_PASSWORD_HASH")
	}
	if cfg.MediaHostURL == "" {
		missing = append(missing, "MEDIA_HOST_URL")
	}
	if cfg.MediaHostAPIKey == "" {
		missing = append(missing, "MEDIA_HOST_API_KEY")
	}
	if cfg.ShippingFeeInside < 0 || cfg.ShippingFeeOutside < 0 {
		return nil, fmt.Errorf("config: shipping fees must be non-negative")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("config: missing required environment: %s", strings.Join(missing, ", "))
	}

	if cfg.Port[0] != ':' {
		cfg.Port = ":" + cfg.Port
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
