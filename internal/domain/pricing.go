package domain

import "time"

type DiscountType string

const (
	DiscountAdmin    DiscountType = "admin"
	DiscountSenior   DiscountType = "senior"
	DiscountLongStay DiscountType = "long_stay"
	DiscountNone     DiscountType = "none"
)

type PricingResult struct {
	OriginalPrice   float64      `json:"original_price"`
	FinalPrice      float64      `json:"final_price"`
	DiscountType    DiscountType `json:"discount_type"`
	DiscountPercent float64      `json:"discount_percent"`
	TotalPrice      float64      `json:"total_price"`
}

type RoomQuoteRequest struct {
	RoomID int64
	Room   *Room // inline data wins over RoomID
	Guest  *Guest
	Nights int
}

type AreaQuoteRequest struct {
	AreaID int64
	Area   *Area
	Guest  *Guest
	Hours  int
}

type Quote struct {
	ID       string        `json:"id"`
	Kind     string        `json:"kind"`
	EntityID int64         `json:"entity_id"`
	Units    int           `json:"units"`
	Unit     string        `json:"unit"`
	Pricing  PricingResult `json:"pricing"`
	Label    string        `json:"label,omitempty"`
	Display  QuoteDisplay  `json:"display"`
	Savings  float64       `json:"savings"`
	QuotedAt time.Time     `json:"quoted_at"`
}

type QuoteDisplay struct {
	Original string `json:"original"`
	Final    string `json:"final"`
	Total    string `json:"total"`
}
