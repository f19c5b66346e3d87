package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

type priceKind uint8

const (
	priceNull priceKind = iota
	priceNumber
	priceText
)

// PriceInput is a price exactly as the upstream supplied it: a number, a display
// string such as "₱1,500.00", or nothing at all. Coercion to a number lives in
// pricing.ParsePrice; this type only carries the variant.
type PriceInput struct {
	kind priceKind
	num  float64
	text string
}

func PriceNumber(f float64) PriceInput { return PriceInput{kind: priceNumber, num: f} }
func PriceText(s string) PriceInput    { return PriceInput{kind: priceText, text: s} }

func (p PriceInput) IsNull() bool { return p.kind == priceNull }

func (p PriceInput) Number() (float64, bool) {
	return p.num, p.kind == priceNumber
}

func (p PriceInput) Text() (string, bool) {
	return p.text, p.kind == priceText
}

// Truthy reports whether the value counts as "present" for the legacy field
// fallback: null, 0, NaN and "" do not.
func (p PriceInput) Truthy() bool {
	switch p.kind {
	case priceNumber:
		return p.num != 0 && !math.IsNaN(p.num)
	case priceText:
		return p.text != ""
	default:
		return false
	}
}

// FirstTruthy returns the first truthy input, or a null input when none is.
func FirstTruthy(in ...PriceInput) PriceInput {
	for _, p := range in {
		if p.Truthy() {
			return p
		}
	}
	return PriceInput{}
}

func (p PriceInput) String() string {
	switch p.kind {
	case priceNumber:
		return strconv.FormatFloat(p.num, 'f', -1, 64)
	case priceText:
		return p.text
	default:
		return "<null>"
	}
}

func (p PriceInput) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case priceNumber:
		if math.IsNaN(p.num) || math.IsInf(p.num, 0) {
			return []byte("null"), nil
		}
		return json.Marshal(p.num)
	case priceText:
		return json.Marshal(p.text)
	default:
		return []byte("null"), nil
	}
}

func (p *PriceInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*p = PriceInput{}
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = PriceText(s)
	default:
		var f float64
		if err := json.Unmarshal(b, &f); err != nil {
			return fmt.Errorf("price: %w", err)
		}
		*p = PriceNumber(f)
	}
	return nil
}
