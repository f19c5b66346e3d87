// Package pricing resolves the per-unit and total price of a room stay or an
// area booking. Every function here is pure: no I/O, no shared state, no errors.
package pricing

import (
	"math"
	"strconv"
	"strings"

	"hotel_pricing/internal/domain"
)

// ParsePrice normalizes an upstream price to a number. Absent or unparsable
// prices become 0; numbers pass through untouched.
func ParsePrice(p domain.PriceInput) float64 {
	if !p.Truthy() {
		return 0
	}
	if n, ok := p.Number(); ok {
		return n
	}
	s, _ := p.Text()
	return ParsePriceText(s)
}

// ParsePriceText keeps only ASCII digits and dots, then reads the longest
// leading decimal ("₱1,234.50" -> 1234.5, "1.2.3" -> 1.2).
func ParsePriceText(s string) float64 {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; (c >= '0' && c <= '9') || c == '.' {
			b.WriteByte(c)
		}
	}
	f, err := strconv.ParseFloat(leadingDecimal(b.String()), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return f
}

// leadingDecimal cuts s (digits and dots only) at its second dot.
func leadingDecimal(s string) string {
	first := strings.IndexByte(s, '.')
	if first < 0 {
		return s
	}
	if second := strings.IndexByte(s[first+1:], '.'); second >= 0 {
		return s[:first+1+second]
	}
	return s
}
