package domain

import (
	"github.com/armora/quote/pkg/money"
	"github.com/shopspring/decimal"
)

// Named pricing constants. Journey mode bills distance at a flat rate that
// differs from the tiers' own mileage rates; both stay explicit until the
// product decision on unifying them is made.
var (
	DefaultBookingFee            = money.Units(10)
	DefaultMemberDiscountPercent = money.Units(20)
	JourneyMileageRate           = money.MustParse("0.50")
)

// Policy is the tunable part of pricing: fees, discounts and multipliers.
type Policy struct {
	BookingFee            decimal.Decimal
	MemberDiscountPercent decimal.Decimal
	JourneyMileageRate    decimal.Decimal
	TimeOfDayMultipliers  map[TimeOfDay]decimal.Decimal
	FrequencyDiscounts    map[Frequency]decimal.Decimal
}

func DefaultPolicy() Policy {
	return Policy{
		BookingFee:            DefaultBookingFee,
		MemberDiscountPercent: DefaultMemberDiscountPercent,
		JourneyMileageRate:    JourneyMileageRate,
		TimeOfDayMultipliers: map[TimeOfDay]decimal.Decimal{
			TimeOfDayStandard: money.Units(1),
			TimeOfDayEvening:  money.MustParse("1.15"),
			TimeOfDayNight:    money.MustParse("1.25"),
		},
		FrequencyDiscounts: map[Frequency]decimal.Decimal{
			FrequencyOnce:    money.Zero,
			FrequencyWeekly:  money.Units(5),
			FrequencyDaily:   money.Units(10),
			FrequencyMonthly: money.Units(15),
		},
	}
}

// Multiplier returns the protection fee multiplier for t, 1 when unset.
func (p Policy) Multiplier(t TimeOfDay) decimal.Decimal {
	if m, ok := p.TimeOfDayMultipliers[t]; ok {
		return m
	}
	return money.Units(1)
}

// FrequencyDiscount returns the discount percent for f, 0 when unset.
func (p Policy) FrequencyDiscount(f Frequency) decimal.Decimal {
	if d, ok := p.FrequencyDiscounts[f]; ok {
		return d
	}
	return money.Zero
}

// PolicyProvider serves the current policy. Implementations must be safe for
// concurrent use.
type PolicyProvider interface {
	Policy() Policy
}

// StaticPolicy is a fixed PolicyProvider.
type StaticPolicy Policy

func (s StaticPolicy) Policy() Policy { return Policy(s) }
