package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"hotel_pricing/internal/domain"
)

type SyncService struct {
	client domain.CatalogClient
	repo   domain.CatalogRepository
	cache  domain.Cache
}

func NewSyncService(c domain.CatalogClient, r domain.CatalogRepository, cache domain.Cache) *SyncService {
	return &SyncService{client: c, repo: r, cache: cache}
}

// SyncPage copies one page of rooms or areas from the hotel backend into the
// catalog and returns the backend's page count. A 404/401/403 from the backend
// is recorded as a miss and reported as zero pages so callers stop that kind.
func (s *SyncService) SyncPage(ctx context.Context, kind string, page, pageSize int) (int, error) {
	var (
		raw domain.RawPage
		err error
	)
	switch kind {
	case domain.KindRoom:
		raw, err = s.client.GetRooms(ctx, page, pageSize)
	case domain.KindArea:
		raw, err = s.client.GetAreas(ctx, page, pageSize)
	default:
		return 0, fmt.Errorf("unknown catalog kind %q", kind)
	}
	if err != nil {
		if status, ok := missStatus(err); ok {
			_ = s.repo.LogMiss(ctx, kind, 0, status, fmt.Sprintf("page %d", page))
			return 0, nil
		}
		return 0, fmt.Errorf("fetch %s page %d: %w", kind, page, err)
	}

	for _, item := range raw.Items {
		if err := s.upsert(ctx, kind, item); err != nil {
			return 0, err
		}
	}
	return raw.Pagination.TotalPages, nil
}

func (s *SyncService) upsert(ctx context.Context, kind string, item map[string]any) error {
	switch kind {
	case domain.KindRoom:
		r, ok := mapRoom(item)
		if !ok {
			_ = s.repo.LogMiss(ctx, kind, 0, 422, "missing id")
			log.Warn().Str("kind", kind).Msg("skipping payload without id")
			return nil
		}
		if err := s.repo.UpsertRoom(ctx, r); err != nil {
			return fmt.Errorf("upsert room %d: %w", r.ID, err)
		}
		s.invalidate(ctx, roomKey(r.ID))
	case domain.KindArea:
		a, ok := mapArea(item)
		if !ok {
			_ = s.repo.LogMiss(ctx, kind, 0, 422, "missing id")
			log.Warn().Str("kind", kind).Msg("skipping payload without id")
			return nil
		}
		if err := s.repo.UpsertArea(ctx, a); err != nil {
			return fmt.Errorf("upsert area %d: %w", a.ID, err)
		}
		s.invalidate(ctx, areaKey(a.ID))
	}
	return nil
}

// Price changes must never be served from a stale snapshot.
func (s *SyncService) invalidate(ctx context.Context, key string) {
	if s.cache != nil {
		_ = s.cache.Del(ctx, key)
	}
}

// missStatus maps the backend client's terminal errors to the status recorded
// in the miss log.
func missStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return 404, true
	case errors.Is(err, domain.ErrUnauthorized):
		return 401, true
	case errors.Is(err, domain.ErrForbidden):
		return 403, true
	default:
		return 0, false
	}
}
