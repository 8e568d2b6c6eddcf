// README: Config loader with env defaults for HTTP, DB, Redis, search cache, and AI settings.
package config

import (
	"os"
	"strconv"
	"time"
)

type AIConfig struct {
	// Provider selects the generation backend: "gemini" or "openai".
	Provider  string
	GeminiKey string
	OpenAIKey string
	// Timeout bounds a single generation call. On expiry the planner
	// falls back to templated output instead of failing the run.
	Timeout time.Duration
}

type SearchConfig struct {
	// MapsKey enables the Google Places activity source when set.
	MapsKey string
	// CacheTTL controls how long search results stay in Redis.
	CacheTTL time.Duration
}

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		// DSN is optional; when empty, AI usage recording is disabled.
		DSN string
	}
	Redis struct {
		// Addr is optional; when empty, search results are not cached.
		Addr string
	}
	AI     AIConfig
	Search SearchConfig
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TRIP_HTTP_ADDR", ":8080")
	cfg.DB.DSN = envOrDefault("TRIP_DB_DSN", "")
	cfg.Redis.Addr = envOrDefault("TRIP_REDIS_ADDR", "")
	cfg.AI.Provider = envOrDefault("TRIP_AI_PROVIDER", "gemini")
	cfg.AI.GeminiKey = envOrDefault("GEMINI_API_KEY", "")
	cfg.AI.OpenAIKey = envOrDefault("OPENAI_API_KEY", "")
	cfg.AI.Timeout = time.Duration(envOrDefaultInt("TRIP_AI_TIMEOUT_SEC", 15)) * time.Second
	cfg.Search.MapsKey = envOrDefault("MAPS_API_KEY", "")
	cfg.Search.CacheTTL = time.Duration(envOrDefaultInt("TRIP_SEARCH_CACHE_TTL_SEC", 300)) * time.Second
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
