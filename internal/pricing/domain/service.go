package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

type Service interface {
	Hourly(ctx context.Context, req HourlyRequest) (Breakdown, error)
	Dual(ctx context.Context, req DualRequest) (Breakdown, error)
	Journey(ctx context.Context, req DualRequest) (Breakdown, error)
	Trip(ctx context.Context, req TripRequest) (Breakdown, error)
}

var (
	ErrUnknownTier      = errors.New("unknown_tier")
	ErrInvalidHours     = errors.New("invalid_hours")
	ErrInvalidMiles     = errors.New("invalid_miles")
	ErrInvalidDiscount  = errors.New("invalid_discount_percent")
	ErrInvalidTimeOfDay = errors.New("invalid_time_of_day")
	ErrInvalidFrequency = errors.New("invalid_frequency")
)

var hundred = decimal.NewFromInt(100)

// ValidateTrip rejects negative durations and distances. The engine itself
// does not check its inputs; callers run this first.
func ValidateTrip(hours, miles decimal.Decimal) error {
	if hours.IsNegative() {
		return ErrInvalidHours
	}
	if miles.IsNegative() {
		return ErrInvalidMiles
	}
	return nil
}

// ValidatePercent rejects discount percentages outside 0..100.
func ValidatePercent(pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(hundred) {
		return ErrInvalidDiscount
	}
	return nil
}
