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

// Config is built once in the composition root and passed explicitly to
// adapter constructors.
type Config struct {
	Port   string
	AppEnv string

	ORS ORSConfig
	OTM OTMConfig

	// Applied to every outbound provider call.
	ExternalTimeout time.Duration

	// Optional; empty disables the Postgres geocode/route caches.
	DatabaseURL string
	// Optional; empty disables the Redis attraction cache.
	RedisURL           string
	AttractionCacheTTL time.Duration

	StopoverConcurrency int
}

type ORSConfig struct {
	APIKey      string
	BaseURL     string
	Profile     string
	MaxAttempts int
}

type OTMConfig struct {
	APIKey  string
	BaseURL string
}

// LoadDotEnv loads an optional .env file. A missing file is not an error.
func LoadDotEnv() bool {
	return godotenv.Load() == nil
}

// Load reads configuration from the environment and validates required keys.
func Load() (*Config, error) {
	timeout, err := GetDuration("EXTERNAL_TIMEOUT", 8*time.Second)
	if err != nil {
		return nil, err
	}
	ttl, err := GetDuration("ATTRACTION_CACHE_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	attempts, err := GetInt("ORS_MAX_ATTEMPTS", 1)
	if err != nil {
		return nil, err
	}
	concurrency, err := GetInt("STOPOVER_CONCURRENCY", 4)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:   Get("PORT", "8080"),
		AppEnv: Get("APP_ENV", "production"),
		ORS: ORSConfig{
			APIKey:      strings.TrimSpace(os.Getenv("ORS_API_KEY")),
			BaseURL:     Get("ORS_BASE_URL", "https://api.openrouteservice.org"),
			Profile:     Get("ORS_PROFILE", "driving-car"),
			MaxAttempts: attempts,
		},
		OTM: OTMConfig{
			APIKey:  strings.TrimSpace(os.Getenv("OTM_API_KEY")),
			BaseURL: Get("OTM_BASE_URL", "https://api.opentripmap.com/0.1/en"),
		},
		ExternalTimeout:     timeout,
		DatabaseURL:         strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RedisURL:            strings.TrimSpace(os.Getenv("REDIS_URL")),
		AttractionCacheTTL:  ttl,
		StopoverConcurrency: concurrency,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.ORS.APIKey == "" {
		errs = append(errs, errors.New("ORS_API_KEY is required"))
	}
	if c.OTM.APIKey == "" {
		errs = append(errs, errors.New("OTM_API_KEY is required"))
	}
	if c.ORS.MaxAttempts < 1 {
		errs = append(errs, errors.New("ORS_MAX_ATTEMPTS must be at least 1"))
	}
	if c.StopoverConcurrency < 1 {
		errs = append(errs, errors.New("STOPOVER_CONCURRENCY must be at least 1"))
	}
	if c.ExternalTimeout <= 0 {
		errs = append(errs, errors.New("EXTERNAL_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}

// Get returns the environment value for key or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func GetDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}
