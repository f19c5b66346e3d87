package shared

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "HTTP_ADDR", "REDIS_DB", "BACKEND_RPS", "INGEST_PAGE_SIZE", "CACHE_TTL_SECONDS"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.AppEnv != "prod" || c.HTTPAddr != ":8080" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.RedisDB != 0 || c.BackendRPS != 5 || c.IngestPageSize != 6 {
		t.Fatalf("unexpected numeric defaults: %+v", c)
	}
	if c.CacheTTL != 15*time.Minute {
		t.Fatalf("ttl: %v", c.CacheTTL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("REDIS_DB", "3")
	t.Setenv("INGEST_WORKERS", "16")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("BACKEND_RPS", "not-a-number")

	c := Load()
	if c.RedisDB != 3 || c.Workers != 16 || c.CacheTTL != time.Minute {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.BackendRPS != 5 {
		t.Fatalf("bad int should fall back to default, got %d", c.BackendRPS)
	}
}
