package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel_pricing/internal/domain"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "₱0.00", FormatPrice(0))
	assert.Equal(t, "₱950.00", FormatPrice(950))
	assert.Equal(t, "₱1,234.50", FormatPrice(1234.5))
	assert.Equal(t, "₱21,600.00", FormatPrice(21600))
	assert.Equal(t, "₱1,234,567.89", FormatPrice(1234567.89))
}

func TestFormatPrice_HalfCentavoRoundsUp(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.125, "₱0.13"},
		{1234.625, "₱1,234.63"},
		{1170.875, "₱1,170.88"},
		{3512.625, "₱3,512.63"},
		{1.005, "₱1.01"},
		{2.675, "₱2.68"},
		{0.124, "₱0.12"},
		{99.999, "₱100.00"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatPrice(tc.in), "FormatPrice(%v)", tc.in)
	}
}

func TestFormatPrice_LongStayTotal(t *testing.T) {
	res := CalculateRoomPricing(RoomPricingInput{
		Room:   domain.Room{ID: 1, PricePerNight: domain.PriceNumber(1232.50)},
		Nights: 3,
	})
	assert.Equal(t, domain.DiscountLongStay, res.DiscountType)
	assert.Equal(t, "₱1,170.88", FormatPrice(res.FinalPrice))
	assert.Equal(t, "₱3,512.63", FormatPrice(res.TotalPrice))
}

func TestDiscountLabel(t *testing.T) {
	assert.Equal(t, "Special Discount (15%)", DiscountLabel(domain.DiscountAdmin, 15))
	assert.Equal(t, "Special Discount (12.5%)", DiscountLabel(domain.DiscountAdmin, 12.5))
	assert.Equal(t, "Senior/PWD Discount (20%)", DiscountLabel(domain.DiscountSenior, 20))
	assert.Equal(t, "Long Stay Discount (10%)", DiscountLabel(domain.DiscountLongStay, 10))
	assert.Equal(t, "", DiscountLabel(domain.DiscountNone, 0))
	assert.Equal(t, "", DiscountLabel("mystery", 5))
}
