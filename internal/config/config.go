package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	DatabaseDriver      string // "sqlite" or "postgres"
	DatabaseURL         string
	RedisURL            string // Empty disables session revocation storage
	JWTSecret           string // Secret key for session token signing
	SessionTTLHours     int    // Session token lifetime in hours
	SessionCookieName   string
	CookieSecure        bool
	TimeZone            string  // Location used to decide what "today" is
	RateLimitRPS        float64 // Rate limit for all endpoints (requests per second)
	RateLimitBurst      int     // Burst size for rate limiting
	RateLimitAuthRPS    float64 // Rate limit for login/register (stricter)
	RateLimitAuthBurst  int     // Burst size for login/register
	LogLevel            string
	LogFormat           string // text, json or logfmt
	envFileLoaded       bool
}

// Load reads the .env file if present and builds the configuration from
// environment variables, falling back to defaults.
func Load() *Config {
	// A missing .env file is fine, the environment may already be populated.
	loaded := godotenv.Load() == nil

	return &Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseDriver:      strings.ToLower(getEnv("DATABASE_DRIVER", "sqlite")),
		DatabaseURL:         getEnv("DATABASE_URL", "taskly.db"),
		RedisURL:            getEnv("REDIS_URL", ""),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		SessionTTLHours:     getEnvInt("SESSION_TTL_HOURS", 336), // two weeks
		SessionCookieName:   getEnv("SESSION_COOKIE_NAME", "sessionid"),
		CookieSecure:        getEnvBool("COOKIE_SECURE", false),
		TimeZone:            getEnv("TIME_ZONE", "UTC"),
		RateLimitRPS:        getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:      getEnvInt("RATE_LIMIT_BURST", 20),
		RateLimitAuthRPS:    getEnvFloat("RATE_LIMIT_AUTH_RPS", 1),
		RateLimitAuthBurst:  getEnvInt("RATE_LIMIT_AUTH_BURST", 5),
		LogLevel:            strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:           strings.ToLower(getEnv("LOG_FORMAT", "text")),
		envFileLoaded:       loaded,
	}
}

// EnvFileLoaded reports whether a .env file was found by Load.
func (c *Config) EnvFileLoaded() bool {
	return c.envFileLoaded
}

// Validate checks settings that have no usable default.
func (c *Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.DatabaseDriver != "sqlite" && c.DatabaseDriver != "postgres" {
		errs = append(errs, fmt.Errorf("DATABASE_DRIVER must be sqlite or postgres, got %q", c.DatabaseDriver))
	}
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if c.SessionTTLHours <= 0 {
		errs = append(errs, errors.New("SESSION_TTL_HOURS must be positive"))
	}
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		errs = append(errs, fmt.Errorf("TIME_ZONE: %w", err))
	}
	return errors.Join(errs...)
}

// SessionTTL returns the session lifetime as a duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

// Location resolves TimeZone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
