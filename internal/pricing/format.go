package pricing

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"hotel_pricing/internal/domain"
)

const pesoSign = "₱"

// FormatPrice renders a peso amount with thousands separators and two decimals.
func FormatPrice(price float64) string {
	p := message.NewPrinter(language.English)
	return pesoSign + p.Sprint(number.Decimal(roundCentavos(price), number.Scale(2)))
}

// roundCentavos rounds half away from zero on the shortest decimal form of
// price, so 0.125 shows as 0.13 and 1.005 as 1.01.
func roundCentavos(price float64) float64 {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return price
	}
	s := strconv.FormatFloat(math.Abs(price), 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 || len(s)-dot-1 <= 2 {
		return price
	}
	cents, err := strconv.ParseInt(s[:dot]+s[dot+1:dot+3], 10, 64)
	if err != nil {
		return price
	}
	if s[dot+3] >= '5' {
		cents++
	}
	return math.Copysign(float64(cents)/100, price)
}

// DiscountLabel is the guest-facing name of the applied discount.
func DiscountLabel(t domain.DiscountType, percent float64) string {
	switch t {
	case domain.DiscountAdmin:
		return "Special Discount (" + formatPercent(percent) + "%)"
	case domain.DiscountSenior:
		return "Senior/PWD Discount (20%)"
	case domain.DiscountLongStay:
		return "Long Stay Discount (" + formatPercent(percent) + "%)"
	default:
		return ""
	}
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
