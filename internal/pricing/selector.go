package pricing

import (
	"math"

	"hotel_pricing/internal/domain"
)

// seniorPercent is the statutory senior citizen / PWD discount.
const seniorPercent = 20

// Candidate is one discounted per-unit price the guest is eligible for.
type Candidate struct {
	Price   float64
	Type    domain.DiscountType
	Percent float64
}

// SelectBest returns the cheapest candidate priced below original. Exact ties
// keep the earlier candidate, so evaluation order (admin, senior, long stay)
// decides them. With nothing eligible the original price is returned as "none".
func SelectBest(original float64, candidates []Candidate) Candidate {
	best := Candidate{Price: original, Type: domain.DiscountNone}
	found := false
	for _, c := range candidates {
		if !(c.Price < original) {
			continue
		}
		if !found || c.Price < best.Price {
			best, found = c, true
		}
	}
	return best
}

// entity is a room or area after the legacy field names have been resolved
// and every price parsed.
type entity struct {
	base         float64
	adminPrice   float64
	adminPercent float64
	seniorPrice  float64
}

// percentFunc derives a discount percent when upstream did not supply one.
type percentFunc func(original, discounted float64) float64

func exactPercent(original, discounted float64) float64 {
	return (original - discounted) / original * 100
}

func wholePercent(original, discounted float64) float64 {
	return math.Round(exactPercent(original, discounted))
}

// candidates builds the admin and senior candidates shared by rooms and areas.
func (e entity) candidates(guest *domain.Guest, derive percentFunc) []Candidate {
	out := make([]Candidate, 0, 3)

	if e.adminPrice != 0 && e.adminPrice < e.base {
		pct := e.adminPercent
		if pct == 0 {
			// 0 means "not supplied"; a configured 0% is recomputed too.
			pct = derive(e.base, e.adminPrice)
		}
		out = append(out, Candidate{Price: e.adminPrice, Type: domain.DiscountAdmin, Percent: pct})
	}

	if guest.SeniorOrPWD() && e.seniorPrice != 0 && e.seniorPrice < e.base {
		out = append(out, Candidate{Price: e.seniorPrice, Type: domain.DiscountSenior, Percent: seniorPercent})
	}

	return out
}

// resolve applies the selection and scales by the booked units.
func (e entity) resolve(candidates []Candidate, units int) domain.PricingResult {
	best := SelectBest(e.base, candidates)
	return domain.PricingResult{
		OriginalPrice:   e.base,
		FinalPrice:      best.Price,
		DiscountType:    best.Type,
		DiscountPercent: best.Percent,
		TotalPrice:      best.Price * float64(units),
	}
}

func zeroResult() domain.PricingResult {
	return domain.PricingResult{DiscountType: domain.DiscountNone}
}
