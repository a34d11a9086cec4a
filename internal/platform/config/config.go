package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures process-level configuration. Values come from the
// environment so main stays lean and deployments stay twelve-factor.
type Server struct {
	Addr string
	HTTP HTTPConfig

	// PostgresDSN selects the durable history store; empty means in-memory.
	PostgresDSN string

	// RedisURL enables the shared chain tip and key revocation list; empty
	// means in-process equivalents.
	RedisURL string
	Redis    RedisConfig

	// Generator is the external language-model source; a missing API key
	// disables it and every request uses the local synthesizer.
	Generator GeneratorConfig

	// KeySigningSecret signs issued API keys. Override in production.
	KeySigningSecret string
	KeyTTL           time.Duration

	// KafkaBrokers enables the audit sink; empty keeps events in memory only.
	KafkaBrokers []string
	AuditTopic   string
}

// HTTPConfig tunes the listener.
type HTTPConfig struct {
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

// RedisConfig tunes the go-redis client.
type RedisConfig struct {
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// GeneratorConfig points at an OpenAI-compatible chat completions endpoint.
type GeneratorConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	cfg := Server{
		Addr: envOr("IDENTIKIT_ADDR", ":8080"),
		HTTP: HTTPConfig{
			ReadHeaderTimeout: envDurationOr("IDENTIKIT_HTTP_READ_HEADER_TIMEOUT", 5*time.Second),
			WriteTimeout:      envDurationOr("IDENTIKIT_HTTP_WRITE_TIMEOUT", 60*time.Second),
			IdleTimeout:       envDurationOr("IDENTIKIT_HTTP_IDLE_TIMEOUT", 120*time.Second),
		},
		PostgresDSN:      os.Getenv("IDENTIKIT_POSTGRES_DSN"),
		RedisURL:         os.Getenv("IDENTIKIT_REDIS_URL"),
		KeySigningSecret: envOr("IDENTIKIT_KEY_SECRET", "dev-secret-key-change-in-production"),
		KeyTTL:           envDurationOr("IDENTIKIT_KEY_TTL", 90*24*time.Hour),
		AuditTopic:       envOr("IDENTIKIT_AUDIT_TOPIC", "identikit.audit"),
		Redis: RedisConfig{
			PoolSize:     envIntOr("IDENTIKIT_REDIS_POOL_SIZE", 10),
			MinIdleConns: envIntOr("IDENTIKIT_REDIS_MIN_IDLE", 2),
			DialTimeout:  envDurationOr("IDENTIKIT_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDurationOr("IDENTIKIT_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDurationOr("IDENTIKIT_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Generator: GeneratorConfig{
			BaseURL: envOr("IDENTIKIT_GENERATOR_BASE_URL", "https://integrate.api.nvidia.com/v1"),
			APIKey:  os.Getenv("IDENTIKIT_GENERATOR_API_KEY"),
			Model:   envOr("IDENTIKIT_GENERATOR_MODEL", "deepseek-ai/deepseek-v3.1"),
			Timeout: envDurationOr("IDENTIKIT_GENERATOR_TIMEOUT", 10*time.Second),
		},
	}

	if brokers := os.Getenv("IDENTIKIT_KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
