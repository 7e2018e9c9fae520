package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	AppEnv             string
	GinMode            string
	PostgresURL        string
	RedisURL           string
	RedisPassword      string
	RedisDB            int
	CacheTTL           time.Duration
	RateLimitPerMinute int
	RateLimitBurst     int
	AllowOrigins       []string
	DefaultOrigin      string
}

func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	return Config{
		Port:               getenv("PORT", "8080"),
		AppEnv:             getenv("APP_ENV", "production"),
		GinMode:            getenv("GIN_MODE", "release"),
		PostgresURL:        getenv("POSTGRES_URL", ""),
		RedisURL:           getenv("REDIS_URL", ""),
		RedisPassword:      getenv("REDIS_PASSWORD", ""),
		RedisDB:            getenvInt("REDIS_DB", 0),
		CacheTTL:           getenvDuration("CACHE_TTL", 10*time.Minute),
		RateLimitPerMinute: getenvInt("RATE_LIMIT_PER_MINUTE", 60),
		RateLimitBurst:     getenvInt("RATE_LIMIT_BURST", 10),
		AllowOrigins:       splitAndTrim(getenv("ALLOW_ORIGINS", "")),
		DefaultOrigin:      getenv("DEFAULT_ORIGIN", "NYC"),
	}
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(getenv(key, ""))
	if err != nil || v < 0 {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(getenv(key, ""))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
