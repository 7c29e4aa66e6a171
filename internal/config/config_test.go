package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("HUGGINGFACE_API_TOKEN", "")
	t.Setenv("OFF_TIMEOUT", "")
	t.Setenv("PORT", "")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8012 {
		t.Fatalf("port: want=8012 got=%d", cfg.Port)
	}
	if cfg.Gemini.APIKey != "" || cfg.HuggingFace.Token != "" {
		t.Fatalf("expected recognizer credentials to be empty")
	}
	if cfg.Gemini.Model != "gemini-1.5-flash" {
		t.Fatalf("gemini model: got=%q", cfg.Gemini.Model)
	}
	if cfg.FoodFacts.Timeout != 3*time.Second {
		t.Fatalf("off timeout: want=3s got=%s", cfg.FoodFacts.Timeout)
	}
}

func TestLoadEnvAndFlags(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("OFF_TIMEOUT", "500ms")
	t.Setenv("ENRICH_CONCURRENCY", "0")
	t.Setenv("PORT", "9100")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load([]string{"-address", "127.0.0.1", "-db-path", "/tmp/x.db"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Gemini.APIKey != "k" {
		t.Fatalf("gemini key: got=%q", cfg.Gemini.APIKey)
	}
	if cfg.FoodFacts.Timeout != 500*time.Millisecond {
		t.Fatalf("timeout: got=%s", cfg.FoodFacts.Timeout)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("log level: got=%q", cfg.LogLevel)
	}
	if cfg.FoodFacts.Concurrency != 1 {
		t.Fatalf("concurrency clamp: got=%d", cfg.FoodFacts.Concurrency)
	}
	if cfg.Port != 9100 || cfg.Host != "127.0.0.1" || cfg.DBPath != "/tmp/x.db" {
		t.Fatalf("flags: got port=%d host=%q db=%q", cfg.Port, cfg.Host, cfg.DBPath)
	}
}

func TestLoadRejectsUnknownTransport(t *testing.T) {
	if _, err := Load([]string{"-transport", "stdio"}); err == nil {
		t.Fatalf("expected error for stdio transport")
	}
}
