package app

import (
	"encoding/json"
	"strconv"
	"strings"

	"hotel_pricing/internal/domain"
)

/********** alias registries (single source of truth) **********/

var roomAliases = map[string][]string{
	"id":     {"id", "room_id", "roomId"},
	"name":   {"room_name", "name", "roomName"},
	"type":   {"room_type", "type", "roomType"},
	"status": {"status", "room_status"},
	"guests": {"max_guests", "capacity", "maxGuests"},
}

var areaAliases = map[string][]string{
	"id":       {"id", "area_id", "areaId"},
	"name":     {"area_name", "name", "areaName"},
	"status":   {"status", "area_status"},
	"capacity": {"capacity", "max_guests"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns string at path or "".
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// firstNonEmptyAlias: first non-empty string for a named alias set.
func firstNonEmptyAlias(m map[string]any, aliases map[string][]string, key string) string {
	for _, p := range aliases[key] {
		if s := strings.TrimSpace(lookupStr(m, p)); s != "" {
			return s
		}
	}
	return ""
}

// getFloatFlexible: number from several paths (float64/int/json.Number/string like "15").
func getFloatFlexible(m map[string]any, paths ...string) *float64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		case json.Number:
			if f, err := v.Float64(); err == nil {
				return &f
			}
		case string:
			s := strings.TrimSpace(v)
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

// firstInt64Flexible: int64 from several paths (float64/int/string).
func firstInt64Flexible(m map[string]any, paths ...string) *int64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			x := int64(v)
			return &x
		case int:
			x := int64(v)
			return &x
		case int64:
			x := v
			return &x
		case json.Number:
			if n, err := v.Int64(); err == nil {
				return &n
			}
		case string:
			s := strings.TrimSpace(v)
			if s == "" {
				continue
			}
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				return &n
			}
		}
	}
	return nil
}

func intOrZero(p *float64) int {
	if p == nil {
		return 0
	}
	return int(*p)
}

func floatOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// priceAt keeps the upstream variant of a price field: numbers stay numbers,
// display strings stay strings, anything else is null.
func priceAt(m map[string]any, key string) domain.PriceInput {
	switch v := m[key].(type) {
	case float64:
		return domain.PriceNumber(v)
	case int:
		return domain.PriceNumber(float64(v))
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return domain.PriceNumber(f)
		}
		return domain.PriceText(v.String())
	case string:
		return domain.PriceText(v)
	default:
		return domain.PriceInput{}
	}
}

/********** room mapper **********/

// mapRoom returns ok=false when the payload carries no usable id.
func mapRoom(p map[string]any) (domain.Room, bool) {
	id := firstInt64Flexible(p, roomAliases["id"]...)
	if id == nil || *id <= 0 {
		return domain.Room{}, false
	}
	return domain.Room{
		ID:                     *id,
		Name:                   firstNonEmptyAlias(p, roomAliases, "name"),
		Type:                   firstNonEmptyAlias(p, roomAliases, "type"),
		Status:                 firstNonEmptyAlias(p, roomAliases, "status"),
		MaxGuests:              intOrZero(getFloatFlexible(p, roomAliases["guests"]...)),
		PricePerNight:          priceAt(p, "price_per_night"),
		RoomPrice:              priceAt(p, "room_price"),
		DiscountPercent:        floatOrZero(getFloatFlexible(p, "discount_percent")),
		DiscountedPrice:        priceAt(p, "discounted_price"),
		DiscountedPriceNumeric: priceAt(p, "discounted_price_numeric"),
		SeniorDiscountedPrice:  priceAt(p, "senior_discounted_price"),
	}, true
}

/********** area mapper **********/

func mapArea(p map[string]any) (domain.Area, bool) {
	id := firstInt64Flexible(p, areaAliases["id"]...)
	if id == nil || *id <= 0 {
		return domain.Area{}, false
	}
	return domain.Area{
		ID:                     *id,
		Name:                   firstNonEmptyAlias(p, areaAliases, "name"),
		Status:                 firstNonEmptyAlias(p, areaAliases, "status"),
		Capacity:               intOrZero(getFloatFlexible(p, areaAliases["capacity"]...)),
		PricePerHour:           priceAt(p, "price_per_hour"),
		PricePerHourNumeric:    priceAt(p, "price_per_hour_numeric"),
		DiscountPercent:        floatOrZero(getFloatFlexible(p, "discount_percent")),
		DiscountedPrice:        priceAt(p, "discounted_price"),
		DiscountedPriceNumeric: priceAt(p, "discounted_price_numeric"),
		SeniorDiscountedPrice:  priceAt(p, "senior_discounted_price"),
	}, true
}
