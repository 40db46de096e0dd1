package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		FileEnv, "API_PORT", "DEEPSEEK_API_KEY", "DEEPSEEK_BASE_URL", "DEEPSEEK_MODEL",
		"LLM_RETRY_MAX_ATTEMPTS", "LLM_RETRY_UNIT_MS", "LLM_BREAKER_ENABLED",
		"MAX_UPLOAD_BYTES", "CORS_ALLOWED_ORIGINS", "API_RATE_LIMIT_RPS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIPort != "8000" {
		t.Fatalf("expected default port 8000, got %q", cfg.APIPort)
	}
	if cfg.DeepSeekAPIKey != "" {
		t.Fatalf("expected empty api key")
	}
	if cfg.DeepSeekBaseURL != "https://api.deepseek.com/v1" || cfg.DeepSeekModel != "deepseek-chat" {
		t.Fatalf("unexpected deepseek defaults: %q %q", cfg.DeepSeekBaseURL, cfg.DeepSeekModel)
	}
	if cfg.LLMRetryMaxAttempts != 3 || cfg.LLMRetryUnitMS != 1000 || !cfg.LLMBreakerEnabled {
		t.Fatalf("unexpected retry defaults: %+v", cfg)
	}
	if cfg.MaxUploadBytes != 209715200 {
		t.Fatalf("expected 200 MiB upload limit, got %d", cfg.MaxUploadBytes)
	}
	if len(cfg.CORSAllowedOrigins) != 6 || cfg.CORSAllowedOrigins[2] != "http://localhost:5176" {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.APIRateLimitRPS != 0 {
		t.Fatalf("rate limit should be off by default")
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEEPSEEK_API_KEY", "sk-test")
	t.Setenv("LLM_RETRY_MAX_ATTEMPTS", "5")
	t.Setenv("LLM_BREAKER_ENABLED", "false")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("API_RATE_LIMIT_RPS", "2.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DeepSeekAPIKey != "sk-test" || cfg.LLMRetryMaxAttempts != 5 || cfg.LLMBreakerEnabled {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.MaxUploadBytes != 1024 {
		t.Fatalf("expected upload limit 1024, got %d", cfg.MaxUploadBytes)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.APIRateLimitRPS != 2.5 {
		t.Fatalf("expected rps 2.5, got %v", cfg.APIRateLimitRPS)
	}
}

func TestLoadFallsBackOnInvalidNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_RETRY_MAX_ATTEMPTS", "many")
	t.Setenv("MAX_UPLOAD_BYTES", "-1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LLMRetryMaxAttempts != 3 || cfg.MaxUploadBytes != 209715200 {
		t.Fatalf("invalid values should fall back: %+v", cfg)
	}
}

func TestLoadReadsFileWithEnvPrecedence(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "DEEPSEEK_MODEL: deepseek-reasoner\nAPI_PORT: \"9000\"\nLLM_RETRY_UNIT_MS: \"250\"\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(FileEnv, path)
	t.Setenv("API_PORT", "7000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DeepSeekModel != "deepseek-reasoner" || cfg.LLMRetryUnitMS != 250 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.APIPort != "7000" {
		t.Fatalf("environment should win over file, got %q", cfg.APIPort)
	}
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("- just\n- a list\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(FileEnv, path)

	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error")
	}

	t.Setenv(FileEnv, filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Fatalf("expected read error")
	}
}
