package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string
	Port   string

	// DB_DSN vacío => store in-memory
	DatabaseDSN string

	LogLevel  string
	LogFormat string
	AppName   string

	// JWT_SECRET vacío => modo dev (X-Debug-User-ID)
	JWTSecret string
	JWTIssuer string

	// AUTH_INTROSPECT_URL tiene prioridad sobre JWT_SECRET
	IntrospectURL     string
	IntrospectAPIKey  string
	IntrospectTimeout time.Duration

	WalkOpenHour  int
	WalkCloseHour int
	WalkDaysAhead int
	Location      *time.Location

	PageSize int

	BootstrapStaffUsername string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

// Load lee .env (si existe) y luego variables de entorno.
func Load() (*Config, error) {
	// .env es opcional (en prod vienen del entorno)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:                 getEnv("APP_ENV", "development"),
		Port:                   getEnv("PORT", "8080"),
		DatabaseDSN:            os.Getenv("DB_DSN"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogFormat:              getEnv("LOG_FORMAT", "text"),
		AppName:                getEnv("APP_NAME", "animal-shelter"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		JWTIssuer:              os.Getenv("JWT_ISSUER"),
		IntrospectURL:          strings.TrimSpace(os.Getenv("AUTH_INTROSPECT_URL")),
		IntrospectAPIKey:       os.Getenv("AUTH_INTROSPECT_API_KEY"),
		BootstrapStaffUsername: strings.TrimSpace(os.Getenv("BOOTSTRAP_STAFF_USERNAME")),
	}

	var err error
	if cfg.WalkOpenHour, err = getInt("WALK_OPEN_HOUR", 10); err != nil {
		return nil, err
	}
	if cfg.WalkCloseHour, err = getInt("WALK_CLOSE_HOUR", 17); err != nil {
		return nil, err
	}
	if cfg.WalkDaysAhead, err = getInt("WALK_DAYS_AHEAD", 1); err != nil {
		return nil, err
	}
	if cfg.PageSize, err = getInt("PAGE_SIZE", 6); err != nil {
		return nil, err
	}

	if cfg.WalkOpenHour < 0 || cfg.WalkCloseHour > 23 || cfg.WalkOpenHour > cfg.WalkCloseHour {
		return nil, fmt.Errorf("invalid walk window %d..%d", cfg.WalkOpenHour, cfg.WalkCloseHour)
	}
	if cfg.WalkDaysAhead < 0 {
		return nil, fmt.Errorf("invalid WALK_DAYS_AHEAD: %d", cfg.WalkDaysAhead)
	}
	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("invalid PAGE_SIZE: %d", cfg.PageSize)
	}

	cfg.Location = time.Local
	if tz := strings.TrimSpace(os.Getenv("SHELTER_TZ")); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid SHELTER_TZ: %w", err)
		}
		cfg.Location = loc
	}

	if cfg.ReadTimeout, err = getDuration("HTTP_READ_TIMEOUT", "5s"); err != nil {
		return nil, err
	}
	if cfg.WriteTimeout, err = getDuration("HTTP_WRITE_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getDuration("HTTP_SHUTDOWN_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.IntrospectTimeout, err = getDuration("AUTH_INTROSPECT_TIMEOUT", "5s"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
