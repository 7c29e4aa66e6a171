// Package config loads service settings from command-line flags, the process
// environment and an optional .env file.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const Version = "1.0.0"

type Config struct {
	Transport   string
	Host        string
	Port        int
	DBPath      string
	ShowVersion bool
	LogMode     string
	LogLevel    string

	Gemini      GeminiConfig
	HuggingFace HuggingFaceConfig
	Rekognition RekognitionConfig
	CloudVision CloudVisionConfig
	FoodFacts   FoodFactsConfig
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type HuggingFaceConfig struct {
	Token   string
	Model   string
	BaseURL string
}

type RekognitionConfig struct {
	Region string
}

type CloudVisionConfig struct {
	Enabled         bool
	CredentialsFile string
}

type FoodFactsConfig struct {
	BaseURL     string
	Timeout     time.Duration
	Concurrency int
}

// Load parses args (usually os.Args[1:]) on top of the environment. A .env file
// in the working directory is loaded first when present; variables already set
// in the environment win.
func Load(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		LogMode:  envString("LOG_MODE", "dev"),
		LogLevel: envString("LOG_LEVEL", ""),
		Gemini: GeminiConfig{
			APIKey:  envString("GEMINI_API_KEY", ""),
			Model:   envString("GEMINI_MODEL", "gemini-1.5-flash"),
			BaseURL: envString("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		},
		HuggingFace: HuggingFaceConfig{
			Token:   envString("HUGGINGFACE_API_TOKEN", ""),
			Model:   envString("HUGGINGFACE_MODEL", "nateraw/food"),
			BaseURL: envString("HUGGINGFACE_BASE_URL", "https://api-inference.huggingface.co/models"),
		},
		Rekognition: RekognitionConfig{
			Region: envString("AWS_REGION", ""),
		},
		CloudVision: CloudVisionConfig{
			Enabled:         envBool("GCP_VISION_ENABLED", false),
			CredentialsFile: envString("GOOGLE_APPLICATION_CREDENTIALS", ""),
		},
		FoodFacts: FoodFactsConfig{
			BaseURL:     envString("OFF_BASE_URL", "https://world.openfoodfacts.org"),
			Timeout:     envDuration("OFF_TIMEOUT", 3*time.Second),
			Concurrency: envInt("ENRICH_CONCURRENCY", 4),
		},
	}

	fs := flag.NewFlagSet("food-vision", flag.ContinueOnError)
	fs.StringVar(&cfg.Transport, "transport", envString("TRANSPORT", "http"), "Transport mode: http")
	fs.IntVar(&cfg.Port, "port", envInt("PORT", 8012), "Port for HTTP transport")
	fs.StringVar(&cfg.Host, "host", envString("HOST", "0.0.0.0"), "Host address")
	address := fs.String("address", "", "Address (alias for host)")
	fs.StringVar(&cfg.DBPath, "db-path", envString("DB_PATH", "/data/food-vision.db"), "Database path")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *address != "" {
		cfg.Host = *address
	}

	if cfg.Transport != "http" {
		return nil, fmt.Errorf("unsupported transport %q", cfg.Transport)
	}
	if cfg.FoodFacts.Concurrency < 1 {
		cfg.FoodFacts.Concurrency = 1
	}
	return cfg, nil
}

func envString(name, def string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return def
}

func envInt(name string, def int) int {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func envBool(name string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envDuration(name string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
