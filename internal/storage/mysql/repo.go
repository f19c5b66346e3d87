package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"hotel_pricing/internal/domain"
)

// roomPrices is the JSON document stored in rooms.prices. Each field keeps
// the upstream variant so a reload prices exactly like the upstream payload.
type roomPrices struct {
	PricePerNight          domain.PriceInput `json:"price_per_night"`
	RoomPrice              domain.PriceInput `json:"room_price"`
	DiscountedPrice        domain.PriceInput `json:"discounted_price"`
	DiscountedPriceNumeric domain.PriceInput `json:"discounted_price_numeric"`
	SeniorDiscountedPrice  domain.PriceInput `json:"senior_discounted_price"`
}

type areaPrices struct {
	PricePerHour           domain.PriceInput `json:"price_per_hour"`
	PricePerHourNumeric    domain.PriceInput `json:"price_per_hour_numeric"`
	DiscountedPrice        domain.PriceInput `json:"discounted_price"`
	DiscountedPriceNumeric domain.PriceInput `json:"discounted_price_numeric"`
	SeniorDiscountedPrice  domain.PriceInput `json:"senior_discounted_price"`
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

type scanner interface {
	Scan(dest ...any) error
}

func (r *Repo) UpsertRoom(ctx context.Context, rm domain.Room) error {
	prices, err := json.Marshal(roomPrices{
		PricePerNight:          rm.PricePerNight,
		RoomPrice:              rm.RoomPrice,
		DiscountedPrice:        rm.DiscountedPrice,
		DiscountedPriceNumeric: rm.DiscountedPriceNumeric,
		SeniorDiscountedPrice:  rm.SeniorDiscountedPrice,
	})
	if err != nil {
		return fmt.Errorf("encode room %d prices: %w", rm.ID, err)
	}
	_, err = r.db.ExecContext(ctx, upsertRoomSQL,
		rm.ID,
		rm.Name,
		rm.Type,
		rm.Status,
		rm.MaxGuests,
		rm.DiscountPercent,
		string(prices),
	)
	return err
}

func (r *Repo) UpsertArea(ctx context.Context, a domain.Area) error {
	prices, err := json.Marshal(areaPrices{
		PricePerHour:           a.PricePerHour,
		PricePerHourNumeric:    a.PricePerHourNumeric,
		DiscountedPrice:        a.DiscountedPrice,
		DiscountedPriceNumeric: a.DiscountedPriceNumeric,
		SeniorDiscountedPrice:  a.SeniorDiscountedPrice,
	})
	if err != nil {
		return fmt.Errorf("encode area %d prices: %w", a.ID, err)
	}
	_, err = r.db.ExecContext(ctx, upsertAreaSQL,
		a.ID,
		a.Name,
		a.Status,
		a.Capacity,
		a.DiscountPercent,
		string(prices),
	)
	return err
}

func (r *Repo) LogMiss(ctx context.Context, kind string, id int64, status int, reason string) error {
	_, err := r.db.ExecContext(ctx, insertMissSQL, kind, id, status, reason)
	return err
}

func (r *Repo) GetRoom(ctx context.Context, id int64) (domain.Room, error) {
	rm, err := scanRoom(r.db.QueryRowContext(ctx, getRoomSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Room{}, domain.ErrNotFound
	}
	return rm, err
}

func (r *Repo) GetArea(ctx context.Context, id int64) (domain.Area, error) {
	a, err := scanArea(r.db.QueryRowContext(ctx, getAreaSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Area{}, domain.ErrNotFound
	}
	return a, err
}

func (r *Repo) ListRooms(ctx context.Context, pg domain.PageQuery) (domain.RoomsPage, error) {
	rows, err := r.db.QueryContext(ctx, listRoomsSQL, pg.Limit)
	if err != nil {
		return domain.RoomsPage{}, err
	}
	defer rows.Close()

	out := domain.RoomsPage{Items: []domain.Room{}}
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return domain.RoomsPage{}, err
		}
		out.Items = append(out.Items, rm)
	}
	return out, rows.Err()
}

func (r *Repo) ListAreas(ctx context.Context, pg domain.PageQuery) (domain.AreasPage, error) {
	rows, err := r.db.QueryContext(ctx, listAreasSQL, pg.Limit)
	if err != nil {
		return domain.AreasPage{}, err
	}
	defer rows.Close()

	out := domain.AreasPage{Items: []domain.Area{}}
	for rows.Next() {
		a, err := scanArea(rows)
		if err != nil {
			return domain.AreasPage{}, err
		}
		out.Items = append(out.Items, a)
	}
	return out, rows.Err()
}

func scanRoom(s scanner) (domain.Room, error) {
	var rm domain.Room
	var pricesJSON []byte
	if err := s.Scan(&rm.ID, &rm.Name, &rm.Type, &rm.Status, &rm.MaxGuests, &rm.DiscountPercent, &pricesJSON); err != nil {
		return domain.Room{}, err
	}
	var p roomPrices
	if err := json.Unmarshal(pricesJSON, &p); err != nil {
		return domain.Room{}, fmt.Errorf("decode room %d prices: %w", rm.ID, err)
	}
	rm.PricePerNight = p.PricePerNight
	rm.RoomPrice = p.RoomPrice
	rm.DiscountedPrice = p.DiscountedPrice
	rm.DiscountedPriceNumeric = p.DiscountedPriceNumeric
	rm.SeniorDiscountedPrice = p.SeniorDiscountedPrice
	return rm, nil
}

func scanArea(s scanner) (domain.Area, error) {
	var a domain.Area
	var pricesJSON []byte
	if err := s.Scan(&a.ID, &a.Name, &a.Status, &a.Capacity, &a.DiscountPercent, &pricesJSON); err != nil {
		return domain.Area{}, err
	}
	var p areaPrices
	if err := json.Unmarshal(pricesJSON, &p); err != nil {
		return domain.Area{}, fmt.Errorf("decode area %d prices: %w", a.ID, err)
	}
	a.PricePerHour = p.PricePerHour
	a.PricePerHourNumeric = p.PricePerHourNumeric
	a.DiscountedPrice = p.DiscountedPrice
	a.DiscountedPriceNumeric = p.DiscountedPriceNumeric
	a.SeniorDiscountedPrice = p.SeniorDiscountedPrice
	return a, nil
}
