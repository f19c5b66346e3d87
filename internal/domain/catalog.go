package domain

// Room mirrors the room payload of the hotel backend. Base and admin prices
// arrive under two field names each (a numeric one and a legacy display one).
type Room struct {
	ID                     int64      `json:"id"`
	Name                   string     `json:"room_name"`
	Type                   string     `json:"room_type,omitempty"`
	Status                 string     `json:"status,omitempty"`
	MaxGuests              int        `json:"max_guests,omitempty"`
	PricePerNight          PriceInput `json:"price_per_night"`
	RoomPrice              PriceInput `json:"room_price"`
	DiscountPercent        float64    `json:"discount_percent"`
	DiscountedPrice        PriceInput `json:"discounted_price"`
	DiscountedPriceNumeric PriceInput `json:"discounted_price_numeric"`
	SeniorDiscountedPrice  PriceInput `json:"senior_discounted_price"`
}

// Area is a venue booked by the hour.
type Area struct {
	ID                     int64      `json:"id"`
	Name                   string     `json:"area_name"`
	Status                 string     `json:"status,omitempty"`
	Capacity               int        `json:"capacity,omitempty"`
	PricePerHour           PriceInput `json:"price_per_hour"`
	PricePerHourNumeric    PriceInput `json:"price_per_hour_numeric"`
	DiscountPercent        float64    `json:"discount_percent"`
	DiscountedPrice        PriceInput `json:"discounted_price"`
	DiscountedPriceNumeric PriceInput `json:"discounted_price_numeric"`
	SeniorDiscountedPrice  PriceInput `json:"senior_discounted_price"`
}

// Guest is the subset of the signed-in user that pricing cares about.
// A nil *Guest is an anonymous booking.
type Guest struct {
	ID            int64  `json:"id,omitempty"`
	Email         string `json:"email,omitempty"`
	IsSeniorOrPWD *bool  `json:"is_senior_or_pwd,omitempty"`
}

func (g *Guest) SeniorOrPWD() bool {
	return g != nil && g.IsSeniorOrPWD != nil && *g.IsSeniorOrPWD
}

const (
	KindRoom = "room"
	KindArea = "area"
)
