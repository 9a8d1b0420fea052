package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	MigrationsPath string
	Port           string
	IsProduction   bool
	LogLevel       string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Optional; rate limit counters stay in process memory when empty.
	RedisURL           string
	LoginRateLimit     string
	APIRateLimit       string
	CORSAllowedOrigins []string

	AgingDigestCron string
	AgingDigestTop  int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "wholesale-payments")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("API_RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("AGING_DIGEST_CRON", "0 6 * * *")
	viper.SetDefault("AGING_DIGEST_TOP", 5)

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     viper.GetString("PGSQL_URL"),
		MigrationsPath:  viper.GetString("MIGRATIONS_PATH"),
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		LogLevel:        viper.GetString("LOG_LEVEL"),
		JWTSecret:       viper.GetString("JWT_SECRET"),
		JWTIssuer:       viper.GetString("JWT_ISSUER"),
		RedisURL:        viper.GetString("REDIS_URL"),
		LoginRateLimit:  viper.GetString("LOGIN_RATE_LIMIT"),
		APIRateLimit:    viper.GetString("API_RATE_LIMIT"),
		AgingDigestCron: viper.GetString("AGING_DIGEST_CRON"),
		AgingDigestTop:  viper.GetInt("AGING_DIGEST_TOP"),
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.JWTSecret == defaultJWTSecret {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("PGSQL_URL is required")
	}

	if c.Port == "" {
		return errors.New("PORT is required")
	}

	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.IsProduction && c.JWTSecret == defaultJWTSecret {
		return errors.New("JWT_SECRET must be changed in production")
	}

	if c.JWTExpiryDuration <= 0 {
		return errors.New("JWT_EXPIRY_DURATION must be positive")
	}

	if _, err := limiter.NewRateFromFormatted(c.LoginRateLimit); err != nil {
		return fmt.Errorf("LOGIN_RATE_LIMIT is invalid: %w", err)
	}

	if _, err := limiter.NewRateFromFormatted(c.APIRateLimit); err != nil {
		return fmt.Errorf("API_RATE_LIMIT is invalid: %w", err)
	}

	if _, err := cron.ParseStandard(c.AgingDigestCron); err != nil {
		return fmt.Errorf("AGING_DIGEST_CRON is invalid: %w", err)
	}

	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", c.LogLevel)
	}

	if c.AgingDigestTop < 1 {
		return errors.New("AGING_DIGEST_TOP must be at least 1")
	}

	return nil
}

// SlogLevel maps LOG_LEVEL onto a slog level name understood by
// slog.Level.UnmarshalText. An empty value means INFO; anything Validate
// rejects is passed through so parsing it fails instead of defaulting.
func (c *Config) SlogLevel() string {
	if strings.TrimSpace(c.LogLevel) == "" {
		return "INFO"
	}
	return strings.ToUpper(c.LogLevel)
}
