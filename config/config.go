// Package config loads MarzPay SDK configuration from the environment or
// accepts it programmatically.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the production MarzPay API root.
	DefaultBaseURL = "https://wallet.wearemarzpay.com/api/v1"

	defaultTimeout  = 30 * time.Second
	defaultLogLevel = "info"

	timeoutSecondsEnvVar = "MARZPAY_TIMEOUT_SECONDS"
	timeoutDurEnvVar     = "MARZPAY_TIMEOUT"
)

// Config captures everything the SDK needs to reach the MarzPay API.
type Config struct {
	APIUser       string
	APIKey        string
	BaseURL       string
	WebhookSecret string
	LogLevel      string
	Timeout       time.Duration
}

// Load reads configuration from environment variables. API credentials
// are required; everything else falls back to defaults.
func Load() (Config, error) {
	cfg := Config{
		APIUser:       os.Getenv("MARZPAY_API_USER"),
		APIKey:        os.Getenv("MARZPAY_API_KEY"),
		BaseURL:       getEnv("MARZPAY_BASE_URL", DefaultBaseURL),
		WebhookSecret: os.Getenv("MARZPAY_WEBHOOK_SECRET"),
		LogLevel:      strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		Timeout:       defaultTimeout,
	}

	if v := os.Getenv(timeoutSecondsEnvVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", timeoutSecondsEnvVar, err)
		}
		cfg.Timeout = time.Duration(seconds) * time.Second
	} else if v := os.Getenv(timeoutDurEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", timeoutDurEnvVar, err)
		}
		cfg.Timeout = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable and fills defaults for
// programmatically built configs.
func (c *Config) Validate() error {
	if c.APIUser == "" {
		return fmt.Errorf("MARZPAY_API_USER must be set")
	}
	if c.APIKey == "" {
		return fmt.Errorf("MARZPAY_API_KEY must be set")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
