package pricing

import (
	"booking-engine/internal/domain/booking"
)

// PriceCalculator prices a reservation before it is committed.
type PriceCalculator interface {
	LodgingTotal(basePrice Money, stay booking.StayWindow) (Money, error)
	DiningTotal(supplied Money) (Money, error)
}

type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

// LodgingTotal is nights × base price. A StayWindow always has at least one night.
func (DefaultPriceCalculator) LodgingTotal(basePrice Money, stay booking.StayWindow) (Money, error) {
	nights := stay.Nights()
	if nights <= 0 {
		return Money{}, booking.ErrEmptyStay
	}
	return basePrice.Mul(int64(nights))
}

// DiningTotal passes the caller-supplied total through once it is positive.
// Package price × covers is computed client side and not re-derived here.
func (DefaultPriceCalculator) DiningTotal(supplied Money) (Money, error) {
	if !supplied.IsPositive() {
		return Money{}, ErrNonPositive
	}
	if supplied.Cents() > MaxCents {
		return Money{}, ErrAmountOverflow
	}
	return supplied, nil
}
