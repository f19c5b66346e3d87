package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel_pricing/internal/app"
	"hotel_pricing/internal/domain"
)

// ---- fakes ----

type fakeRepo struct {
	rooms  map[int64]domain.Room
	areas  map[int64]domain.Area
	misses []miss
	reads  int
}

type miss struct {
	kind   string
	status int
	reason string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rooms: map[int64]domain.Room{}, areas: map[int64]domain.Area{}}
}

func (f *fakeRepo) UpsertRoom(ctx context.Context, r domain.Room) error {
	f.rooms[r.ID] = r
	return nil
}
func (f *fakeRepo) UpsertArea(ctx context.Context, a domain.Area) error {
	f.areas[a.ID] = a
	return nil
}
func (f *fakeRepo) LogMiss(ctx context.Context, kind string, id int64, status int, reason string) error {
	f.misses = append(f.misses, miss{kind: kind, status: status, reason: reason})
	return nil
}
func (f *fakeRepo) GetRoom(ctx context.Context, id int64) (domain.Room, error) {
	f.reads++
	r, ok := f.rooms[id]
	if !ok {
		return domain.Room{}, domain.ErrNotFound
	}
	return r, nil
}
func (f *fakeRepo) GetArea(ctx context.Context, id int64) (domain.Area, error) {
	f.reads++
	a, ok := f.areas[id]
	if !ok {
		return domain.Area{}, domain.ErrNotFound
	}
	return a, nil
}
func (f *fakeRepo) ListRooms(ctx context.Context, pg domain.PageQuery) (domain.RoomsPage, error) {
	var out domain.RoomsPage
	for _, r := range f.rooms {
		out.Items = append(out.Items, r)
	}
	return out, nil
}
func (f *fakeRepo) ListAreas(ctx context.Context, pg domain.PageQuery) (domain.AreasPage, error) {
	var out domain.AreasPage
	for _, a := range f.areas {
		out.Items = append(out.Items, a)
	}
	return out, nil
}

type fakeCache struct {
	store   map[string]any
	deleted []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *domain.Room:
		*d = v.(domain.Room)
	case *domain.Area:
		*d = v.(domain.Area)
	}
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	c.deleted = append(c.deleted, key)
	return nil
}

// ---- tests ----

func TestGetRoom_CacheMissThenHit(t *testing.T) {
	repo := newFakeRepo()
	repo.rooms[7] = domain.Room{ID: 7, Name: "Deluxe", PricePerNight: domain.PriceNumber(1500)}
	cache := &fakeCache{}
	q := app.NewQuoteService(repo, cache, 10*time.Minute)

	r, err := q.GetRoom(context.Background(), 7)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if r.ID != 7 || r.Name != "Deluxe" {
		t.Fatalf("unexpected room: %+v", r)
	}

	// Mutate repo to ensure second read comes from cache
	repo.rooms[7] = domain.Room{ID: 7, Name: "SHOULD NOT SEE THIS"}

	r2, err := q.GetRoom(context.Background(), 7)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if r2.Name != "Deluxe" {
		t.Fatalf("expected cached name, got %s", r2.Name)
	}
	if repo.reads != 1 {
		t.Fatalf("expected 1 repo read, got %d", repo.reads)
	}
}

func TestGetArea_NotFound(t *testing.T) {
	q := app.NewQuoteService(newFakeRepo(), &fakeCache{}, time.Minute)
	if _, err := q.GetArea(context.Background(), 99); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestQuoteRoom_ByID(t *testing.T) {
	repo := newFakeRepo()
	repo.rooms[3] = domain.Room{
		ID:                    3,
		PricePerNight:         domain.PriceNumber(1500),
		SeniorDiscountedPrice: domain.PriceNumber(1200),
	}
	q := app.NewQuoteService(repo, &fakeCache{}, time.Minute)

	senior := true
	quote, err := q.QuoteRoom(context.Background(), domain.RoomQuoteRequest{
		RoomID: 3,
		Guest:  &domain.Guest{IsSeniorOrPWD: &senior},
		Nights: 2,
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if quote.Pricing.DiscountType != domain.DiscountSenior || quote.Pricing.FinalPrice != 1200 {
		t.Fatalf("unexpected pricing: %+v", quote.Pricing)
	}
	if quote.Pricing.TotalPrice != 2400 || quote.Savings != 600 {
		t.Fatalf("total=%v savings=%v", quote.Pricing.TotalPrice, quote.Savings)
	}
	if quote.Label != "Senior/PWD Discount (20%)" {
		t.Fatalf("label: %q", quote.Label)
	}
	if quote.Display.Total != "₱2,400.00" {
		t.Fatalf("display total: %q", quote.Display.Total)
	}
	if quote.ID == "" || quote.Kind != domain.KindRoom || quote.Unit != "night" || quote.EntityID != 3 {
		t.Fatalf("unexpected quote envelope: %+v", quote)
	}
}

func TestQuoteRoom_InlineWinsOverID(t *testing.T) {
	repo := newFakeRepo()
	repo.rooms[1] = domain.Room{ID: 1, PricePerNight: domain.PriceNumber(9999)}
	q := app.NewQuoteService(repo, &fakeCache{}, time.Minute)

	quote, err := q.QuoteRoom(context.Background(), domain.RoomQuoteRequest{
		RoomID: 1,
		Room:   &domain.Room{ID: 1, RoomPrice: domain.PriceText("₱1,000.00")},
		Nights: 7,
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if repo.reads != 0 {
		t.Fatalf("inline room should not hit the repo")
	}
	if quote.Pricing.OriginalPrice != 1000 || quote.Pricing.DiscountType != domain.DiscountLongStay {
		t.Fatalf("unexpected pricing: %+v", quote.Pricing)
	}
	if quote.Pricing.FinalPrice != 900 || quote.Pricing.TotalPrice != 6300 {
		t.Fatalf("unexpected pricing: %+v", quote.Pricing)
	}
}

func TestQuoteRoom_Errors(t *testing.T) {
	q := app.NewQuoteService(newFakeRepo(), &fakeCache{}, time.Minute)
	ctx := context.Background()

	if _, err := q.QuoteRoom(ctx, domain.RoomQuoteRequest{Nights: 1}); !errors.Is(err, domain.ErrMissingEntity) {
		t.Fatalf("expected ErrMissingEntity, got %v", err)
	}
	if _, err := q.QuoteRoom(ctx, domain.RoomQuoteRequest{RoomID: 1, Nights: -1}); !errors.Is(err, domain.ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}
	if _, err := q.QuoteRoom(ctx, domain.RoomQuoteRequest{RoomID: 404, Nights: 1}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestQuoteArea_AdminDiscount(t *testing.T) {
	repo := newFakeRepo()
	repo.areas[5] = domain.Area{
		ID:                     5,
		PricePerHourNumeric:    domain.PriceNumber(1000),
		DiscountedPriceNumeric: domain.PriceNumber(700),
	}
	q := app.NewQuoteService(repo, &fakeCache{}, time.Minute)

	quote, err := q.QuoteArea(context.Background(), domain.AreaQuoteRequest{AreaID: 5, Hours: 3})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	p := quote.Pricing
	if p.DiscountType != domain.DiscountAdmin || p.DiscountPercent != 30 || p.FinalPrice != 700 || p.TotalPrice != 2100 {
		t.Fatalf("unexpected pricing: %+v", p)
	}
	if quote.Unit != "hour" || quote.Units != 3 || quote.Label != "Special Discount (30%)" {
		t.Fatalf("unexpected quote: %+v", quote)
	}
}

func TestQuoteArea_NoDiscountHasNoLabel(t *testing.T) {
	q := app.NewQuoteService(newFakeRepo(), &fakeCache{}, time.Minute)
	quote, err := q.QuoteArea(context.Background(), domain.AreaQuoteRequest{
		Area:  &domain.Area{ID: 2, PricePerHour: domain.PriceText("500")},
		Hours: 1,
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if quote.Pricing.DiscountType != domain.DiscountNone || quote.Label != "" || quote.Savings != 0 {
		t.Fatalf("unexpected quote: %+v", quote)
	}
}
