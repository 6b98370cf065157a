package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreBolt     = "bolt"
	StorePostgres = "postgres"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	// Persistence
	StoreDriver    string
	BoltPath       string
	DatabaseURL    string
	EnableDBCheck  bool
	MigrationsPath string

	// Auth
	JWTSecret         string
	JWTIssuer         string
	JWTExpiryDuration time.Duration

	RateLimit          string // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string
	PosthogAPIKey      string

	// Location whose calendar date is "today" for catch-up runs
	Location *time.Location
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", StoreBolt)
	v.SetDefault("BOLT_PATH", "finance-tracker.db")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "finance-tracker")
	v.SetDefault("JWT_EXPIRY_DURATION", "24h")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("TIMEZONE", "UTC")
	v.AutomaticEnv()

	cfg := &Config{
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		StoreDriver:    strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		BoltPath:       v.GetString("BOLT_PATH"),
		DatabaseURL:    v.GetString("PGSQL_URL"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTIssuer:      v.GetString("JWT_ISSUER"),
		RateLimit:      v.GetString("RATE_LIMIT"),
		PosthogAPIKey:  v.GetString("POSTHOG_API_KEY"),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	switch cfg.StoreDriver {
	case StoreBolt:
		if cfg.BoltPath == "" {
			return nil, fmt.Errorf("BOLT_PATH must be set when STORE_DRIVER is %s", StoreBolt)
		}
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set when STORE_DRIVER is %s", StorePostgres)
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (want %s or %s)", cfg.StoreDriver, StoreBolt, StorePostgres)
	}

	expiryStr := v.GetString("JWT_EXPIRY_DURATION")
	expiry, err := time.ParseDuration(expiryStr)
	if err != nil {
		expiry = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", expiryStr, expiry)
	}
	cfg.JWTExpiryDuration = expiry

	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	loc, err := time.LoadLocation(v.GetString("TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.Location = loc

	return cfg, nil
}
