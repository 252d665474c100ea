package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig
	Redis      RedisConfig
	Auth       AuthConfig
	LLM        LLMConfig
	Classifier ClassifierConfig
	Cache      CacheConfig
	CORS       CORSConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	// APIKeys is the set of accepted keys. Empty means auth is disabled.
	APIKeys      []string
	APIKeyHeader string
	JWTSecret    string
}

type LLMConfig struct {
	OpenAIKey        string
	AnthropicKey     string
	OllamaURL        string
	DefaultProvider  string
	FallbackProvider string
	MaxRetries       int
}

// ClassifierConfig selects the classifier backend for the risk engine.
// Mode "off" runs heuristics only, "remote" talks to a model-serving
// sidecar, "llm" uses an LLM judge through the gateway.
type ClassifierConfig struct {
	Mode    string
	URL     string
	Model   string
	Timeout time.Duration
}

type CacheConfig struct {
	TTL time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	port, err := getEnvInt("SERVER_PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	maxRetries, err := getEnvInt("LLM_MAX_RETRIES", 3)
	if err != nil {
		return nil, fmt.Errorf("invalid LLM_MAX_RETRIES: %w", err)
	}

	classifierTimeout, err := getEnvInt("CLASSIFIER_TIMEOUT_MS", 10000)
	if err != nil {
		return nil, fmt.Errorf("invalid CLASSIFIER_TIMEOUT_MS: %w", err)
	}

	cacheTTL, err := getEnvInt("CACHE_TTL_SECONDS", 300)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL_SECONDS: %w", err)
	}

	mode := getEnv("CLASSIFIER_MODE", "off")
	switch mode {
	case "off", "remote", "llm":
	default:
		return nil, fmt.Errorf("invalid CLASSIFIER_MODE %q (want off, remote, or llm)", mode)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Auth: AuthConfig{
			APIKeys:      getEnvList("API_KEYS"),
			APIKeyHeader: getEnv("API_KEY_HEADER", "X-API-Key"),
			JWTSecret:    getEnv("JWT_SECRET", ""),
		},
		LLM: LLMConfig{
			OpenAIKey:        getEnv("OPENAI_API_KEY", ""),
			AnthropicKey:     getEnv("ANTHROPIC_API_KEY", ""),
			OllamaURL:        getEnv("OLLAMA_URL", ""),
			DefaultProvider:  getEnv("LLM_DEFAULT_PROVIDER", "openai"),
			FallbackProvider: getEnv("LLM_FALLBACK_PROVIDER", ""),
			MaxRetries:       maxRetries,
		},
		Classifier: ClassifierConfig{
			Mode:    mode,
			URL:     getEnv("CLASSIFIER_URL", ""),
			Model:   getEnv("CLASSIFIER_MODEL", ""),
			Timeout: time.Duration(classifierTimeout) * time.Millisecond,
		},
		Cache: CacheConfig{
			TTL: time.Duration(cacheTTL) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvListDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
	}

	if cfg.Classifier.Mode == "remote" && cfg.Classifier.URL == "" {
		return nil, fmt.Errorf("CLASSIFIER_MODE=remote requires CLASSIFIER_URL")
	}

	return cfg, nil
}

// Addr returns the host:port the API server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

func getEnvList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvListDefault(key string, fallback []string) []string {
	if l := getEnvList(key); l != nil {
		return l
	}
	return fallback
}
