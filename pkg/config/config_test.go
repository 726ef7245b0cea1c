package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "API_TIMEOUT", "PAGE_SIZE", "IMAGE_DOMAINS", "POSTS_API_URL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" || cfg.APITimeout != 10*time.Second || cfg.PageSize != 20 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.SearchDebounce != 300*time.Millisecond || cfg.LatestCount != 6 {
		t.Fatalf("unexpected listing defaults %+v", cfg)
	}
	if len(cfg.ImageDomains) != 2 {
		t.Fatalf("unexpected image domains %v", cfg.ImageDomains)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate: %v", err)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("POSTS_API_URL", "http://posts.local/")
	t.Setenv("API_TIMEOUT", "2s")
	t.Setenv("PAGE_SIZE", "not-a-number")
	t.Setenv("IMAGE_DOMAINS", " cdn.example.com , ,img.example.org")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := Load()
	if cfg.Port != "9090" || cfg.PostsAPIURL != "http://posts.local" || cfg.APITimeout != 2*time.Second {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.PageSize != 20 {
		t.Fatalf("expected invalid page size to fall back to 20, got %d", cfg.PageSize)
	}
	if len(cfg.ImageDomains) != 2 || cfg.ImageDomains[0] != "cdn.example.com" {
		t.Fatalf("unexpected image domains %v", cfg.ImageDomains)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected lower-cased log level, got %q", cfg.LogLevel)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Load()
	cfg.CarsAPIURL = "not a url"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an invalid URL to fail validation")
	}

	cfg = Load()
	cfg.LogFormat = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an unknown log format to fail validation")
	}
}

func TestIsProduction(t *testing.T) {
	cfg := &Config{Env: "Production"}
	if !cfg.IsProduction() {
		t.Fatal("expected production")
	}
}
