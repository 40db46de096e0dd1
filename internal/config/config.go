package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileEnv names an optional YAML file of KEY: value pairs. Values from the
// process environment always take precedence over the file.
const FileEnv = "APP_CONFIG_FILE"

const defaultCORSOrigins = "http://localhost,http://localhost:5173,http://localhost:5176,http://127.0.0.1,http://127.0.0.1:5173,http://127.0.0.1:5176"

type Config struct {
	APIPort  string
	LogLevel string

	DeepSeekAPIKey         string
	DeepSeekBaseURL        string
	DeepSeekModel          string
	DeepSeekTimeoutSeconds int

	LLMRetryMaxAttempts int
	LLMRetryUnitMS      int
	LLMBreakerEnabled   bool

	MaxUploadBytes int64

	CORSAllowedOrigins []string

	APIRateLimitRPS       float64
	APIRateLimitBurst     int
	APIMaxInFlight        int
	APIBackpressureWaitMS int

	MetricsEnabled bool
}

func Load() (Config, error) {
	src := source{}
	if path := os.Getenv(FileEnv); path != "" {
		values, err := readFile(path)
		if err != nil {
			return Config{}, err
		}
		src.file = values
	}

	return Config{
		APIPort:  src.str("API_PORT", "8000"),
		LogLevel: src.str("LOG_LEVEL", "info"),

		DeepSeekAPIKey:         src.str("DEEPSEEK_API_KEY", ""),
		DeepSeekBaseURL:        src.str("DEEPSEEK_BASE_URL", "https://api.deepseek.com/v1"),
		DeepSeekModel:          src.str("DEEPSEEK_MODEL", "deepseek-chat"),
		DeepSeekTimeoutSeconds: src.integer("DEEPSEEK_TIMEOUT_SECONDS", 30),

		LLMRetryMaxAttempts: src.integer("LLM_RETRY_MAX_ATTEMPTS", 3),
		LLMRetryUnitMS:      src.integer("LLM_RETRY_UNIT_MS", 1000),
		LLMBreakerEnabled:   src.boolean("LLM_BREAKER_ENABLED", true),

		MaxUploadBytes: src.int64("MAX_UPLOAD_BYTES", 200*1024*1024),

		CORSAllowedOrigins: splitList(src.str("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)),

		APIRateLimitRPS:       src.float("API_RATE_LIMIT_RPS", 0),
		APIRateLimitBurst:     src.integer("API_RATE_LIMIT_BURST", 10),
		APIMaxInFlight:        src.integer("API_MAX_IN_FLIGHT", 0),
		APIBackpressureWaitMS: src.integer("API_BACKPRESSURE_WAIT_MS", 250),

		MetricsEnabled: src.boolean("METRICS_ENABLED", true),
	}, nil
}

func readFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	values := map[string]string{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return values, nil
}

type source struct {
	file map[string]string
}

func (s source) lookup(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return s.file[key]
}

func (s source) str(key, fallback string) string {
	v := s.lookup(key)
	if v == "" {
		return fallback
	}
	return v
}

func (s source) integer(key string, fallback int) int {
	v := s.lookup(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func (s source) int64(key string, fallback int64) int64 {
	v := s.lookup(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func (s source) float(key string, fallback float64) float64 {
	v := s.lookup(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return n
}

func (s source) boolean(key string, fallback bool) bool {
	v := s.lookup(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
