// Package domain holds the pricing value objects shared by the engine and
// its callers.
package domain

import (
	"strings"

	"github.com/armora/quote/pkg/money"
	"github.com/shopspring/decimal"
)

// Mode names the pricing path that produced a breakdown.
type Mode string

const (
	ModeHourly  Mode = "hourly"
	ModeDual    Mode = "dual"
	ModeJourney Mode = "journey"
	ModeTrip    Mode = "trip"
)

type TimeOfDay string

const (
	TimeOfDayStandard TimeOfDay = "standard"
	TimeOfDayEvening  TimeOfDay = "evening"
	TimeOfDayNight    TimeOfDay = "night"
)

// ParseTimeOfDay accepts the empty string as standard.
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	switch TimeOfDay(strings.ToLower(strings.TrimSpace(raw))) {
	case "", TimeOfDayStandard:
		return TimeOfDayStandard, nil
	case TimeOfDayEvening:
		return TimeOfDayEvening, nil
	case TimeOfDayNight:
		return TimeOfDayNight, nil
	default:
		return "", ErrInvalidTimeOfDay
	}
}

type Frequency string

const (
	FrequencyOnce    Frequency = "once"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyDaily   Frequency = "daily"
	FrequencyMonthly Frequency = "monthly"
)

// ParseFrequency accepts the empty string as once.
func ParseFrequency(raw string) (Frequency, error) {
	switch Frequency(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FrequencyOnce:
		return FrequencyOnce, nil
	case FrequencyWeekly:
		return FrequencyWeekly, nil
	case FrequencyDaily:
		return FrequencyDaily, nil
	case FrequencyMonthly:
		return FrequencyMonthly, nil
	default:
		return "", ErrInvalidFrequency
	}
}

// DiscountSource records which discount won in the trip variant.
type DiscountSource string

const (
	DiscountNone      DiscountSource = "none"
	DiscountMember    DiscountSource = "member"
	DiscountFrequency DiscountSource = "frequency"
	DiscountManual    DiscountSource = "manual"
)

// HourlyRequest prices time only.
type HourlyRequest struct {
	TierID          string          `json:"tier_id"`
	Hours           decimal.Decimal `json:"hours"`
	HasDiscount     bool            `json:"has_discount"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

// DualRequest prices a trip with a time and a distance component. An unset
// MemberDiscountPercent falls back to the policy default.
type DualRequest struct {
	TierID                string              `json:"tier_id"`
	Hours                 decimal.Decimal     `json:"hours"`
	Miles                 decimal.Decimal     `json:"miles"`
	IsMember              bool                `json:"is_member"`
	MemberDiscountPercent decimal.NullDecimal `json:"member_discount_percent"`
}

// TripRequest is the interactive calculator variant with time-of-day and
// booking frequency.
type TripRequest struct {
	TierID                string              `json:"tier_id"`
	Hours                 decimal.Decimal     `json:"hours"`
	Miles                 decimal.Decimal     `json:"miles"`
	IsMember              bool                `json:"is_member"`
	MemberDiscountPercent decimal.NullDecimal `json:"member_discount_percent"`
	TimeOfDay             TimeOfDay           `json:"time_of_day"`
	Frequency             Frequency           `json:"frequency"`
}

// Breakdown is a priced quote. FinalPrice equals Subtotal minus
// DiscountAmount, floored at zero.
type Breakdown struct {
	TierID          string          `json:"tier_id"`
	Mode            Mode            `json:"mode"`
	ProtectionFee   decimal.Decimal `json:"protection_fee"`
	VehicleFee      decimal.Decimal `json:"vehicle_fee"`
	BookingFee      decimal.Decimal `json:"booking_fee"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	DiscountSource  DiscountSource  `json:"discount_source"`
	FinalPrice      decimal.Decimal `json:"final_price"`
	MinimumCharge   decimal.Decimal `json:"minimum_charge"`
	EffectiveHours  decimal.Decimal `json:"effective_hours"`
	EffectiveMiles  decimal.Decimal `json:"effective_miles"`
	MileageRate     decimal.Decimal `json:"mileage_rate"`
	TimeMultiplier  decimal.Decimal `json:"time_multiplier"`
}

// ZeroBreakdown is returned for unknown tiers.
func ZeroBreakdown(mode Mode) Breakdown {
	return Breakdown{
		Mode:            mode,
		ProtectionFee:   money.Zero,
		VehicleFee:      money.Zero,
		BookingFee:      money.Zero,
		Subtotal:        money.Zero,
		DiscountPercent: money.Zero,
		DiscountAmount:  money.Zero,
		DiscountSource:  DiscountNone,
		FinalPrice:      money.Zero,
		MinimumCharge:   money.Zero,
		EffectiveHours:  money.Zero,
		EffectiveMiles:  money.Zero,
		MileageRate:     money.Zero,
		TimeMultiplier:  money.Zero,
	}
}

// IsZero reports the unknown-tier sentinel: nothing was priced.
func (b Breakdown) IsZero() bool {
	return b.FinalPrice.IsZero() && b.ProtectionFee.IsZero()
}
