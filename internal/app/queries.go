package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hotel_pricing/internal/adapters/observability"
	"hotel_pricing/internal/domain"
	"hotel_pricing/internal/pricing"
)

type QuoteService struct {
	repo     domain.CatalogRepository
	cache    domain.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

func NewQuoteService(r domain.CatalogRepository, c domain.Cache, ttl time.Duration) *QuoteService {
	return &QuoteService{repo: r, cache: c, cacheTTL: ttl, now: time.Now}
}

func roomKey(id int64) string { return fmt.Sprintf("room:%d", id) }
func areaKey(id int64) string { return fmt.Sprintf("area:%d", id) }

func (s *QuoteService) GetRoom(ctx context.Context, id int64) (domain.Room, error) {
	key := roomKey(id)
	var r domain.Room
	if ok, _ := s.cache.Get(ctx, key, &r); ok {
		return r, nil
	}
	r, err := s.repo.GetRoom(ctx, id)
	if err != nil {
		return domain.Room{}, err
	}
	_ = s.cache.Set(ctx, key, r, int(s.cacheTTL.Seconds()))
	return r, nil
}

func (s *QuoteService) GetArea(ctx context.Context, id int64) (domain.Area, error) {
	key := areaKey(id)
	var a domain.Area
	if ok, _ := s.cache.Get(ctx, key, &a); ok {
		return a, nil
	}
	a, err := s.repo.GetArea(ctx, id)
	if err != nil {
		return domain.Area{}, err
	}
	_ = s.cache.Set(ctx, key, a, int(s.cacheTTL.Seconds()))
	return a, nil
}

// Listings change on every sync, so they are read straight from the repo.
func (s *QuoteService) ListRooms(ctx context.Context, pg domain.PageQuery) (domain.RoomsPage, error) {
	return s.repo.ListRooms(ctx, pg)
}

func (s *QuoteService) ListAreas(ctx context.Context, pg domain.PageQuery) (domain.AreasPage, error) {
	return s.repo.ListAreas(ctx, pg)
}

func (s *QuoteService) QuoteRoom(ctx context.Context, req domain.RoomQuoteRequest) (domain.Quote, error) {
	if req.Nights < 0 {
		return domain.Quote{}, domain.ErrInvalidDuration
	}

	var room domain.Room
	switch {
	case req.Room != nil:
		room = *req.Room
	case req.RoomID > 0:
		r, err := s.GetRoom(ctx, req.RoomID)
		if err != nil {
			return domain.Quote{}, fmt.Errorf("load room %d: %w", req.RoomID, err)
		}
		room = r
	default:
		return domain.Quote{}, domain.ErrMissingEntity
	}

	res := pricing.CalculateRoomPricing(pricing.RoomPricingInput{Room: room, Guest: req.Guest, Nights: req.Nights})
	return s.quote(domain.KindRoom, room.ID, "night", req.Nights, res), nil
}

func (s *QuoteService) QuoteArea(ctx context.Context, req domain.AreaQuoteRequest) (domain.Quote, error) {
	if req.Hours < 0 {
		return domain.Quote{}, domain.ErrInvalidDuration
	}

	var area domain.Area
	switch {
	case req.Area != nil:
		area = *req.Area
	case req.AreaID > 0:
		a, err := s.GetArea(ctx, req.AreaID)
		if err != nil {
			return domain.Quote{}, fmt.Errorf("load area %d: %w", req.AreaID, err)
		}
		area = a
	default:
		return domain.Quote{}, domain.ErrMissingEntity
	}

	res := pricing.CalculateAreaPricing(pricing.AreaPricingInput{Area: area, Guest: req.Guest, Hours: req.Hours})
	return s.quote(domain.KindArea, area.ID, "hour", req.Hours, res), nil
}

func (s *QuoteService) quote(kind string, id int64, unit string, units int, res domain.PricingResult) domain.Quote {
	observability.ObserveQuote(kind, string(res.DiscountType))
	return domain.Quote{
		ID:       uuid.NewString(),
		Kind:     kind,
		EntityID: id,
		Units:    units,
		Unit:     unit,
		Pricing:  res,
		Label:    pricing.DiscountLabel(res.DiscountType, res.DiscountPercent),
		Display: domain.QuoteDisplay{
			Original: pricing.FormatPrice(res.OriginalPrice),
			Final:    pricing.FormatPrice(res.FinalPrice),
			Total:    pricing.FormatPrice(res.TotalPrice),
		},
		Savings:  (res.OriginalPrice - res.FinalPrice) * float64(units),
		QuotedAt: s.now().UTC(),
	}
}
