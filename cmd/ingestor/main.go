package main

import (
	"context"
	"database/sql"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotel_pricing/internal/adapters/backend"
	"hotel_pricing/internal/adapters/observability"
	redisad "hotel_pricing/internal/adapters/redis"
	"hotel_pricing/internal/app"
	"hotel_pricing/internal/domain"
	"hotel_pricing/internal/shared"
	mysqlrepo "hotel_pricing/internal/storage/mysql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	log.Info().
		Str("base", cfg.BackendBase).
		Int("workers", cfg.Workers).
		Int("page_size", cfg.IngestPageSize).
		Msg("ingestor starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	client, err := backend.New(cfg.BackendBase, cfg.BackendToken, cfg.BackendRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize backend client")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cache.Close()

	syncer := app.NewSyncService(client, repo, cache)
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))

	for _, kind := range []string{domain.KindRoom, domain.KindArea} {
		syncKind(ctx, syncer, sem, kind, cfg.IngestPageSize)
	}
	log.Info().Msg("ingestion completed")
}

// syncKind reads page 1 to learn the page count, then fans out the rest.
func syncKind(ctx context.Context, s *app.SyncService, sem *semaphore.Weighted, kind string, pageSize int) {
	total, err := s.SyncPage(ctx, kind, 1, pageSize)
	if err != nil {
		log.Error().Str("kind", kind).Err(err).Msg("first page failed; skipping kind")
		return
	}
	log.Info().Str("kind", kind).Int("pages", total).Msg("page 1 synced")

	var wg sync.WaitGroup
	for page := 2; page <= total; page++ {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Warn().Err(err).Msg("sync interrupted")
			break
		}
		wg.Add(1)
		go func(page int) {
			defer wg.Done()
			defer sem.Release(1)

			if _, err := s.SyncPage(ctx, kind, page, pageSize); err != nil {
				log.Warn().Str("kind", kind).Int("page", page).Err(err).Msg("page sync failed")
				return
			}
			log.Debug().Str("kind", kind).Int("page", page).Msg("page synced")
		}(page)
	}
	wg.Wait()
}
