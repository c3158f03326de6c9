package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.OpenRouterBaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("unexpected base url %q", cfg.OpenRouterBaseURL)
	}
	if cfg.MaxUploadBytes != 52428800 {
		t.Errorf("expected default upload limit 50MB, got %d", cfg.MaxUploadBytes)
	}
	if cfg.LLMTimeout != 120*time.Second {
		t.Errorf("expected default timeout 120s, got %v", cfg.LLMTimeout)
	}
	if !cfg.PDFFallbackPdftotext {
		t.Error("expected pdftotext fallback enabled by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("LLM_MODEL", "test/model")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("LLM_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9999" {
		t.Errorf("expected port 9999, got %q", cfg.Port)
	}
	if cfg.LLMModel != "test/model" {
		t.Errorf("expected model override, got %q", cfg.LLMModel)
	}
	if cfg.MaxUploadBytes != 1024 {
		t.Errorf("expected upload limit 1024, got %d", cfg.MaxUploadBytes)
	}
	if cfg.LLMTimeout != 30*time.Second {
		t.Errorf("expected timeout 30s, got %v", cfg.LLMTimeout)
	}
}

func TestLoadYAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "port: \"7070\"\nllm_model: yaml/model\nllm_timeout: 45s\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PAPERDECK_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "7070" {
		t.Errorf("expected port from file, got %q", cfg.Port)
	}
	if cfg.LLMModel != "yaml/model" {
		t.Errorf("expected model from file, got %q", cfg.LLMModel)
	}
	if cfg.LLMTimeout != 45*time.Second {
		t.Errorf("expected timeout from file, got %v", cfg.LLMTimeout)
	}
}

func TestLoadEnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: \"7070\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PAPERDECK_CONFIG", path)
	t.Setenv("PORT", "6060")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "6060" {
		t.Errorf("expected env to win, got %q", cfg.Port)
	}
}

func TestLoadBadConfigFile(t *testing.T) {
	t.Setenv("PAPERDECK_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty config")
	}

	cfg.APIKey = "secret"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing openrouter key")
	}

	cfg.OpenRouterAPIKey = "or-key"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
