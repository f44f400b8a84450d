package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	PgHost    string
	PgPort    string
	PgUser    string
	PgPass    string
	PgDBName  string
	PgSSLMode string
	BaseURL   string

	CMSServiceDomain string
	CMSAPIKey        string

	GalleryLimit int
	GalleryDir   string
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Port:             defaultEnv("PORT", "8000"),
		PgHost:           os.Getenv("PG_HOST"),
		PgPort:           defaultEnv("PG_PORT", "5432"),
		PgUser:           os.Getenv("PG_USER"),
		PgPass:           os.Getenv("PG_PASS"),
		PgDBName:         os.Getenv("PG_DBNAME"),
		PgSSLMode:        defaultEnv("PG_SSLMODE", "disable"),
		BaseURL:          os.Getenv("BASE_URL"),
		CMSServiceDomain: os.Getenv("MICROCMS_SERVICE_DOMAIN"),
		CMSAPIKey:        os.Getenv("MICROCMS_API_KEY"),
		GalleryLimit:     10,
		GalleryDir:       defaultEnv("GALLERY_DIR", "./static/gallery"),
	}

	if raw := os.Getenv("GALLERY_LIMIT"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return nil, fmt.Errorf("invalid GALLERY_LIMIT %q", raw)
		}
		cfg.GalleryLimit = limit
	}

	return cfg, nil
}

// DatabaseEnabled reports whether a Postgres database is configured.
func (c *Config) DatabaseEnabled() bool {
	return c.PgHost != "" && c.PgDBName != ""
}

// CMSEnabled reports whether the content store credentials are present.
func (c *Config) CMSEnabled() bool {
	return c.CMSServiceDomain != "" && c.CMSAPIKey != ""
}

func defaultEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
