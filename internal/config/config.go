package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// OpenRouter
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	LLMModel          string
	AppName           string
	Referer           string
	LLMTimeout        time.Duration

	// Storage
	DBPath string

	// Upload limits
	MaxUploadBytes int64

	// PDF
	PDFFallbackPdftotext bool
}

// fileConfig is the optional YAML overlay, pointed at by PAPERDECK_CONFIG.
// Environment variables take precedence over file values.
type fileConfig struct {
	Port              string `yaml:"port"`
	APIKey            string `yaml:"api_key"`
	OpenRouterAPIKey  string `yaml:"openrouter_api_key"`
	OpenRouterBaseURL string `yaml:"openrouter_base_url"`
	LLMModel          string `yaml:"llm_model"`
	AppName           string `yaml:"app_name"`
	Referer           string `yaml:"referer"`
	LLMTimeout        string `yaml:"llm_timeout"`
	DBPath            string `yaml:"db_path"`
	MaxUploadBytes    int64  `yaml:"max_upload_bytes"`
}

func Load() (Config, error) {
	var fc fileConfig
	if path := os.Getenv("PAPERDECK_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	fileTimeout := 120 * time.Second
	if fc.LLMTimeout != "" {
		d, err := time.ParseDuration(fc.LLMTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse llm_timeout: %w", err)
		}
		fileTimeout = d
	}

	cfg := Config{
		Port: envOr("PORT", or(fc.Port, "8080")),

		APIKey: envOr("PAPERDECK_API_KEY", fc.APIKey),

		OpenRouterAPIKey:  envOr("OPENROUTER_API_KEY", fc.OpenRouterAPIKey),
		OpenRouterBaseURL: envOr("OPENROUTER_BASE_URL", or(fc.OpenRouterBaseURL, "https://openrouter.ai/api/v1")),
		LLMModel:          envOr("LLM_MODEL", or(fc.LLMModel, "anthropic/claude-3.5-sonnet")),
		AppName:           envOr("OPENROUTER_APP_NAME", or(fc.AppName, "Paperdeck")),
		Referer:           envOr("OPENROUTER_REFERER", or(fc.Referer, "http://localhost:8080")),
		LLMTimeout:        envDuration("LLM_TIMEOUT", fileTimeout),

		DBPath: envOr("DB_PATH", or(fc.DBPath, "paperdeck.db")),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", orInt64(fc.MaxUploadBytes, 52428800)), // 50MB

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.LLMTimeout <= 0 {
		cfg.LLMTimeout = 120 * time.Second
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("PAPERDECK_API_KEY is required")
	}
	if c.OpenRouterAPIKey == "" {
		return fmt.Errorf("OPENROUTER_API_KEY is required")
	}
	return nil
}

func or(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

func orInt64(v, fallback int64) int64 {
	if v > 0 {
		return v
	}
	return fallback
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
