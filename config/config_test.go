package config

import (
	"testing"
	"time"
)

func TestLoadRequiresCredentials(t *testing.T) {
	t.Setenv("MARZPAY_API_USER", "")
	t.Setenv("MARZPAY_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when credentials are missing")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MARZPAY_API_USER", "user")
	t.Setenv("MARZPAY_API_KEY", "key")
	t.Setenv("MARZPAY_BASE_URL", "")
	t.Setenv("MARZPAY_TIMEOUT_SECONDS", "")
	t.Setenv("MARZPAY_TIMEOUT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.BaseURL != DefaultBaseURL {
		t.Fatalf("unexpected base url %q", cfg.BaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.Timeout)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected log level %q", cfg.LogLevel)
	}
}

func TestLoadTimeoutSeconds(t *testing.T) {
	t.Setenv("MARZPAY_API_USER", "user")
	t.Setenv("MARZPAY_API_KEY", "key")
	t.Setenv("MARZPAY_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.Timeout)
	}
}

func TestValidateTrimsTrailingSlash(t *testing.T) {
	cfg := Config{APIUser: "user", APIKey: "key", BaseURL: "https://example.com/api/v1/"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.BaseURL != "https://example.com/api/v1" {
		t.Fatalf("unexpected base url %q", cfg.BaseURL)
	}
}
