package domain

import "context"

type CatalogRepository interface {
	// Write paths
	UpsertRoom(ctx context.Context, r Room) error
	UpsertArea(ctx context.Context, a Area) error
	LogMiss(ctx context.Context, kind string, id int64, status int, reason string) error

	// Read paths
	GetRoom(ctx context.Context, id int64) (Room, error)
	GetArea(ctx context.Context, id int64) (Area, error)
	ListRooms(ctx context.Context, pg PageQuery) (RoomsPage, error)
	ListAreas(ctx context.Context, pg PageQuery) (AreasPage, error)
}

// CatalogClient talks to the hotel backend that owns rooms and areas.
type CatalogClient interface {
	GetRooms(ctx context.Context, page, pageSize int) (RawPage, error)
	GetAreas(ctx context.Context, page, pageSize int) (RawPage, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// RawPage is one page of the backend's {data, pagination} envelope.
type RawPage struct {
	Items      []map[string]any
	Pagination Pagination
}

type Pagination struct {
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	TotalItems  int `json:"total_items"`
	PageSize    int `json:"page_size"`
}

type PageQuery struct {
	Limit int
}

type RoomsPage struct {
	Items []Room `json:"items"`
}

type AreasPage struct {
	Items []Area `json:"items"`
}
