package billing

import (
	"math"
	"strings"

	billingerrors "workcurb/internal/billing/errors"
)

// Monthly price per seat.
var planPrices = map[string]float64{
	"starter":      4.00,
	"professional": 8.00,
	"enterprise":   12.00,
}

type DiscountTier struct {
	MinSeats int
	MaxSeats int // 0 means no upper bound
	Percent  float64
}

var discountTiers = []DiscountTier{
	{MinSeats: 1, MaxSeats: 9, Percent: 0},
	{MinSeats: 10, MaxSeats: 49, Percent: 10},
	{MinSeats: 50, MaxSeats: 99, Percent: 15},
	{MinSeats: 100, MaxSeats: 0, Percent: 20},
}

// DiscountPercent returns the percent of the first tier that contains seats.
func DiscountPercent(seats int) float64 {
	for _, t := range discountTiers {
		if seats >= t.MinSeats && (t.MaxSeats == 0 || seats <= t.MaxSeats) {
			return t.Percent
		}
	}
	return 0
}

// Quote prices seats of plan. Amounts are rounded to cents.
func Quote(plan string, seats int) (QuoteResponse, error) {
	plan = strings.ToLower(strings.TrimSpace(plan))
	unit, ok := planPrices[plan]
	if !ok {
		return QuoteResponse{}, billingerrors.ErrUnknownPlan
	}
	if seats < 1 {
		return QuoteResponse{}, billingerrors.ErrInvalidSeats
	}

	subtotal := round2(unit * float64(seats))
	pct := DiscountPercent(seats)
	discount := round2(subtotal * pct / 100)

	return QuoteResponse{
		Plan:            plan,
		Seats:           seats,
		UnitPrice:       unit,
		Subtotal:        subtotal,
		DiscountPercent: pct,
		DiscountAmount:  discount,
		Total:           round2(subtotal - discount),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
