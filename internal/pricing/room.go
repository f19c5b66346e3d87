package pricing

import (
	"math"

	"hotel_pricing/internal/domain"
)

type RoomPricingInput struct {
	Room   domain.Room
	Guest  *domain.Guest
	Nights int
}

// LongStayPercent is the long-stay tier for a stay length: 10 from seven
// nights, 5 from three, otherwise 0 (no tier).
func LongStayPercent(nights int) float64 {
	switch {
	case nights >= 7:
		return 10
	case nights >= 3:
		return 5
	default:
		return 0
	}
}

// CalculateRoomPricing resolves the nightly price of a room stay. The long-stay
// tier competes with the admin and senior discounts; it is never stacked on them.
func CalculateRoomPricing(in RoomPricingInput) domain.PricingResult {
	e := roomEntity(in.Room)
	if e.base == 0 {
		return zeroResult()
	}

	cands := e.candidates(in.Guest, wholePercent)
	if pct := LongStayPercent(in.Nights); pct > 0 {
		if price := e.base * (1 - pct/100); price < e.base {
			cands = append(cands, Candidate{Price: price, Type: domain.DiscountLongStay, Percent: pct})
		}
	}

	res := e.resolve(cands, in.Nights)
	res.DiscountPercent = math.Round(res.DiscountPercent*100) / 100
	return res
}

func roomEntity(r domain.Room) entity {
	return entity{
		base:         ParsePrice(domain.FirstTruthy(r.PricePerNight, r.RoomPrice)),
		adminPrice:   ParsePrice(domain.FirstTruthy(r.DiscountedPriceNumeric, r.DiscountedPrice)),
		adminPercent: r.DiscountPercent,
		seniorPrice:  ParsePrice(r.SeniorDiscountedPrice),
	}
}
