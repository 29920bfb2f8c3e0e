// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
}

// AuthServiceConfig provides settings needed by the auth service.
type AuthServiceConfig interface {
	JWTConfig
	GetAccessTokenTTL() time.Duration
	GetRefreshTokenTTL() time.Duration
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// EmailConfig provides settings for the SMTP email sender.
type EmailConfig interface {
	GetEmailEnabled() bool
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
	GetBackofficeEmail() string
}

// SchedulerConfig provides settings for the asynq task scheduler.
type SchedulerConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
}

// MinIOConfig provides settings for MinIO S3-compatible storage.
type MinIOConfig interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinioBucketCatalogAssets() string
	IsMinIOEnabled() bool
}

// BookingConfig provides scheduling settings for the booking module.
type BookingConfig interface {
	GetBookingTimezone() string
	GetBookingWindowDays() int
	GetBookingDayStartHour() int
	GetBookingDayEndHour() int
}

// Config is the concrete configuration loaded from the environment.
type Config struct {
	Env      string
	HTTPAddr string

	DatabaseURL string

	JWTAccessSecret string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	CORSAllowAll bool
	CORSOrigins  []string

	EmailEnabled     bool
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string
	EmailFromName    string
	EmailFromAddress string
	BackofficeEmail  string

	RedisURL         string
	RedisTLSInsecure bool
	AsynqQueueName   string
	AsynqConcurrency int

	MinIOEndpoint            string
	MinIOAccessKey           string
	MinIOSecretKey           string
	MinIOUseSSL              bool
	MinioBucketCatalogAssets string

	BookingTimezone     string
	BookingWindowDays   int
	BookingDayStartHour int
	BookingDayEndHour   int
}

// Load reads configuration from the environment. A .env file is loaded first
// when present so local development does not need exported variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("APP_ENV", "development"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTAccessSecret: os.Getenv("JWT_ACCESS_SECRET"),
		AccessTokenTTL:  getEnvDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL: getEnvDuration("REFRESH_TOKEN_TTL", 30*24*time.Hour),

		CORSAllowAll: getEnvBool("CORS_ALLOW_ALL", false),
		CORSOrigins:  splitCSV(os.Getenv("CORS_ORIGINS")),

		EmailEnabled:     getEnvBool("EMAIL_ENABLED", false),
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         getEnvInt("SMTP_PORT", 587),
		SMTPUsername:     os.Getenv("SMTP_USERNAME"),
		SMTPPassword:     os.Getenv("SMTP_PASSWORD"),
		EmailFromName:    getEnv("EMAIL_FROM_NAME", "Webforge Studio"),
		EmailFromAddress: getEnv("EMAIL_FROM_ADDRESS", "no-reply@webforge.example"),
		BackofficeEmail:  os.Getenv("BACKOFFICE_EMAIL"),

		RedisURL:         os.Getenv("REDIS_URL"),
		RedisTLSInsecure: getEnvBool("REDIS_TLS_INSECURE", false),
		AsynqQueueName:   getEnv("ASYNQ_QUEUE", "default"),
		AsynqConcurrency: getEnvInt("ASYNQ_CONCURRENCY", 10),

		MinIOEndpoint:            os.Getenv("MINIO_ENDPOINT"),
		MinIOAccessKey:           os.Getenv("MINIO_ACCESS_KEY"),
		MinIOSecretKey:           os.Getenv("MINIO_SECRET_KEY"),
		MinIOUseSSL:              getEnvBool("MINIO_USE_SSL", false),
		MinioBucketCatalogAssets: getEnv("MINIO_BUCKET_CATALOG_ASSETS", "catalog-assets"),

		BookingTimezone:     getEnv("BOOKING_TIMEZONE", "Asia/Kolkata"),
		BookingWindowDays:   getEnvInt("BOOKING_WINDOW_DAYS", 60),
		BookingDayStartHour: getEnvInt("BOOKING_DAY_START_HOUR", 10),
		BookingDayEndHour:   getEnvInt("BOOKING_DAY_END_HOUR", 17),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.JWTAccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if c.BookingDayEndHour <= c.BookingDayStartHour {
		return fmt.Errorf("BOOKING_DAY_END_HOUR must be after BOOKING_DAY_START_HOUR")
	}
	return nil
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// DatabaseConfig
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// JWTConfig
func (c *Config) GetJWTAccessSecret() string { return c.JWTAccessSecret }

// AuthServiceConfig
func (c *Config) GetAccessTokenTTL() time.Duration  { return c.AccessTokenTTL }
func (c *Config) GetRefreshTokenTTL() time.Duration { return c.RefreshTokenTTL }

// HTTPConfig
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// EmailConfig
func (c *Config) GetEmailEnabled() bool       { return c.EmailEnabled }
func (c *Config) GetSMTPHost() string         { return c.SMTPHost }
func (c *Config) GetSMTPPort() int            { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string     { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string     { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string    { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }
func (c *Config) GetBackofficeEmail() string  { return c.BackofficeEmail }

// SchedulerConfig
func (c *Config) GetRedisURL() string      { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool { return c.RedisTLSInsecure }
func (c *Config) GetAsynqQueueName() string { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int  { return c.AsynqConcurrency }

// MinIOConfig
func (c *Config) GetMinIOEndpoint() string  { return c.MinIOEndpoint }
func (c *Config) GetMinIOAccessKey() string { return c.MinIOAccessKey }
func (c *Config) GetMinIOSecretKey() string { return c.MinIOSecretKey }
func (c *Config) GetMinIOUseSSL() bool      { return c.MinIOUseSSL }
func (c *Config) GetMinioBucketCatalogAssets() string {
	return c.MinioBucketCatalogAssets
}
func (c *Config) IsMinIOEnabled() bool { return c.MinIOEndpoint != "" }

// BookingConfig
func (c *Config) GetBookingTimezone() string  { return c.BookingTimezone }
func (c *Config) GetBookingWindowDays() int   { return c.BookingWindowDays }
func (c *Config) GetBookingDayStartHour() int { return c.BookingDayStartHour }
func (c *Config) GetBookingDayEndHour() int   { return c.BookingDayEndHour }

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return value
}

func splitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
