package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "hotel_pricing/internal/adapters/redis"
	"hotel_pricing/internal/domain"
)

func newCache(t *testing.T) (*redisad.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCache_RoundTripKeepsPriceVariants(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	in := domain.Room{
		ID:                    7,
		Name:                  "Deluxe",
		RoomPrice:             domain.PriceText("₱1,500.00"),
		PricePerNight:         domain.PriceNumber(1500),
		SeniorDiscountedPrice: domain.PriceInput{},
	}
	if err := c.Set(ctx, "room:7", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out domain.Room
	ok, err := c.Get(ctx, "room:7", &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if txt, isText := out.RoomPrice.Text(); !isText || txt != "₱1,500.00" {
		t.Fatalf("room_price: %v", out.RoomPrice)
	}
	if n, isNum := out.PricePerNight.Number(); !isNum || n != 1500 {
		t.Fatalf("price_per_night: %v", out.PricePerNight)
	}
	if !out.SeniorDiscountedPrice.IsNull() {
		t.Fatalf("senior price should stay null")
	}
}

func TestCache_MissAndDelete(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	var a domain.Area
	if ok, err := c.Get(ctx, "area:1", &a); ok || err != nil {
		t.Fatalf("expected clean miss, ok=%v err=%v", ok, err)
	}

	if err := c.Set(ctx, "area:1", domain.Area{ID: 1}, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Del(ctx, "area:1"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := c.Get(ctx, "area:1", &a); ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "room:1", domain.Room{ID: 1}, 30); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(31 * time.Second)

	var r domain.Room
	if ok, _ := c.Get(ctx, "room:1", &r); ok {
		t.Fatalf("expected key to expire")
	}
}

func TestCache_CorruptPayloadIsMiss(t *testing.T) {
	c, mr := newCache(t)
	if err := mr.Set("room:2", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var r domain.Room
	ok, err := c.Get(context.Background(), "room:2", &r)
	if ok || err == nil {
		t.Fatalf("expected decode error miss, ok=%v err=%v", ok, err)
	}
}
