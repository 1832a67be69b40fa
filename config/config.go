package config

import (
	"os"
	"strings"
)

// Config carries the handful of settings the service reads from the
// environment. A .env file is honored when present (loaded in main).
type Config struct {
	Port        string
	DataDir     string
	AdminUser   string
	AdminPass   string
	CorsOrigins string
}

// Load reads the configuration, falling back to defaults that match the
// original application: data files in the working directory and the
// admin/admin123 credential pair.
func Load() Config {
	return Config{
		Port:        envOrDefault("PORT", "8080"),
		DataDir:     envOrDefault("DATA_DIR", "."),
		AdminUser:   envOrDefault("ADMIN_USER", "admin"),
		AdminPass:   envOrDefault("ADMIN_PASS", "admin123"),
		CorsOrigins: strings.TrimSpace(os.Getenv("CORS_ORIGINS")),
	}
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}
