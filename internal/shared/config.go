package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv         string
	LogLevel       string
	HTTPAddr       string
	MetricsAddr    string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	BackendBase    string
	BackendToken   string
	BackendRPS     int
	Workers        int
	IngestPageSize int
	CacheTTL       time.Duration
}

func Load() Config {
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		LogLevel:       env("LOG_LEVEL", "info"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ":9100"),
		MySQLDSN:       env("MYSQL_DSN", "root:root@tcp(localhost:3306)/hotel?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:      env("REDIS_ADDR", "localhost:6379"),
		RedisDB:        atoi("REDIS_DB", 0),
		RedisPass:      env("REDIS_PASSWORD", ""),
		BackendBase:    env("BACKEND_BASE_URL", "http://localhost:8000/api"),
		BackendToken:   env("BACKEND_TOKEN", ""),
		BackendRPS:     atoi("BACKEND_RPS", 5),
		Workers:        atoi("INGEST_WORKERS", 4),
		IngestPageSize: atoi("INGEST_PAGE_SIZE", 6),
		CacheTTL:       time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if c.BackendToken == "" {
		log.Warn().Msg("BACKEND_TOKEN is empty; property endpoints are called anonymously")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
