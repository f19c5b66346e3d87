package pricing

import "hotel_pricing/internal/domain"

type AreaPricingInput struct {
	Area  domain.Area
	Guest *domain.Guest
	Hours int
}

// CalculateAreaPricing resolves the hourly price of an area booking. Areas
// have no duration-based tier, so only admin and senior discounts compete.
func CalculateAreaPricing(in AreaPricingInput) domain.PricingResult {
	e := areaEntity(in.Area)
	if e.base == 0 {
		return zeroResult()
	}
	return e.resolve(e.candidates(in.Guest, exactPercent), in.Hours)
}

func areaEntity(a domain.Area) entity {
	return entity{
		base:         ParsePrice(domain.FirstTruthy(a.PricePerHourNumeric, a.PricePerHour)),
		adminPrice:   ParsePrice(domain.FirstTruthy(a.DiscountedPriceNumeric, a.DiscountedPrice)),
		adminPercent: a.DiscountPercent,
		seniorPrice:  ParsePrice(a.SeniorDiscountedPrice),
	}
}
