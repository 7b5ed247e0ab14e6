package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Provider exposes configuration to the rest of the application.
type Provider interface {
	GetServerAddr() string
	GetAppBaseURL() string
	GetAppEnv() string
	IsDevelopment() bool
	GetSessionSecret() string
	GetContentFile() string
	GetContentWatch() bool
	GetSubmitDelay() time.Duration
	GetPageIdleTTL() time.Duration
	GetPageMaxInstances() int
	GetRateLimitPerMinute() int
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr         string
	AppBaseURL         string
	AppEnv             string
	SessionSecret      string
	ContentFile        string
	ContentWatch       bool
	SubmitDelay        time.Duration
	PageIdleTTL        time.Duration
	PageMaxInstances   int
	RateLimitPerMinute int
}

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// ErrMissingSessionSecret is returned outside development when
// SESSION_SECRET is unset.
var ErrMissingSessionSecret = errors.New("SESSION_SECRET must be set outside development")

// MinPageIdleTTL is the shortest accepted PAGE_IDLE_TTL.
const MinPageIdleTTL = time.Second

// developmentSecret signs cookies when running locally without a secret.
const developmentSecret = "development-only-session-secret"

// Load reads configuration from the environment. Malformed values are
// reported rather than replaced by defaults.
func Load() (*Config, error) {
	cfg := &Config{
		ServerAddr:    getenv("APP_ADDR", ":8080"),
		AppBaseURL:    getenv("APP_BASE_URL", "http://localhost:8080"),
		AppEnv:        strings.ToLower(getenv("APP_ENV", EnvProduction)),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		ContentFile:   os.Getenv("CONTENT_FILE"),
	}

	var errs []error
	var err error
	if cfg.ContentWatch, err = boolEnv("CONTENT_WATCH", false); err != nil {
		errs = append(errs, err)
	}
	if cfg.SubmitDelay, err = durationEnv("CONTACT_SUBMIT_DELAY", 1500*time.Millisecond); err != nil {
		errs = append(errs, err)
	}
	if cfg.PageIdleTTL, err = durationEnv("PAGE_IDLE_TTL", 30*time.Minute); err != nil {
		errs = append(errs, err)
	} else if cfg.PageIdleTTL < MinPageIdleTTL {
		errs = append(errs, fmt.Errorf("PAGE_IDLE_TTL: must be at least %s, got %s", MinPageIdleTTL, cfg.PageIdleTTL))
	}
	if cfg.PageMaxInstances, err = intEnv("PAGE_MAX_INSTANCES", 5000); err != nil {
		errs = append(errs, err)
	}
	if cfg.RateLimitPerMinute, err = intEnv("RATE_LIMIT_PER_MINUTE", 10); err != nil {
		errs = append(errs, err)
	}

	if cfg.SessionSecret == "" {
		if cfg.IsDevelopment() {
			cfg.SessionSecret = developmentSecret
		} else {
			errs = append(errs, ErrMissingSessionSecret)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// New loads the .env file, if any, and the environment. It exits the process
// when the configuration is unusable.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func (c *Config) GetServerAddr() string         { return c.ServerAddr }
func (c *Config) GetAppBaseURL() string         { return c.AppBaseURL }
func (c *Config) GetAppEnv() string             { return c.AppEnv }
func (c *Config) IsDevelopment() bool           { return c.AppEnv == EnvDevelopment }
func (c *Config) GetSessionSecret() string      { return c.SessionSecret }
func (c *Config) GetContentFile() string        { return c.ContentFile }
func (c *Config) GetContentWatch() bool         { return c.ContentWatch }
func (c *Config) GetSubmitDelay() time.Duration { return c.SubmitDelay }
func (c *Config) GetPageIdleTTL() time.Duration { return c.PageIdleTTL }
func (c *Config) GetPageMaxInstances() int      { return c.PageMaxInstances }
func (c *Config) GetRateLimitPerMinute() int    { return c.RateLimitPerMinute }

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func boolEnv(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: negative duration %s", key, v)
	}
	return d, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %d", key, n)
	}
	return n, nil
}
