package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr         = ":8080"
	defaultPublicAppURL = "http://localhost:3000"
	defaultDatabaseURL  = "portal.db"
	defaultJWTSecret    = "change-me-jwt-secret"
	defaultJWTTTL       = "24h"
	defaultUploadDir    = "./uploads"
)

// Config carries everything the API binary consumes from the
// environment. PublicAppURL is the deployment origin used when
// building document proxy URLs.
type Config struct {
	AppEnv       string
	Addr         string
	PublicAppURL string
	DatabaseURL  string

	JWTSecret string
	JWTTTL    time.Duration

	// Storage selects the blob backend: "local" (disk, dev) or
	// "supabase" (storage REST API).
	StorageDriver      string
	UploadDir          string
	SupabaseURL        string
	SupabaseServiceKey string

	// CampaignAdminID owns leads arriving through the public
	// campaign funnel.
	CampaignAdminID string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = getEnv("ADDR", defaultAddr)
	cfg.PublicAppURL = strings.TrimRight(getEnv("PUBLIC_APP_URL", defaultPublicAppURL), "/")
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabaseURL)
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	cfg.StorageDriver = strings.ToLower(getEnv("STORAGE_DRIVER", "local"))
	cfg.UploadDir = getEnv("UPLOAD_DIR", defaultUploadDir)
	cfg.SupabaseURL = strings.TrimRight(strings.TrimSpace(os.Getenv("SUPABASE_URL")), "/")
	cfg.SupabaseServiceKey = strings.TrimSpace(os.Getenv("SUPABASE_SERVICE_ROLE_KEY"))
	cfg.CampaignAdminID = strings.TrimSpace(os.Getenv("CAMPAIGN_ADMIN_ID"))

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProd reports whether the config targets a prod-like environment.
func (c *Config) IsProd() bool {
	return isProdLike(c.AppEnv)
}

func validate(cfg *Config) error {
	if cfg.StorageDriver != "local" && cfg.StorageDriver != "supabase" {
		return fmt.Errorf("STORAGE_DRIVER must be one of: local, supabase")
	}
	if cfg.StorageDriver == "supabase" {
		if cfg.SupabaseURL == "" || cfg.SupabaseServiceKey == "" {
			return fmt.Errorf("STORAGE_DRIVER=supabase requires SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY")
		}
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}

	if isProdLike(cfg.AppEnv) {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.CampaignAdminID == "" {
			return fmt.Errorf("in prod/release CAMPAIGN_ADMIN_ID must be set")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
