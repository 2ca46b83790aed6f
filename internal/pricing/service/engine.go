package service

import (
	catalogdomain "github.com/armora/quote/internal/catalog/domain"
	"github.com/armora/quote/internal/pricing/domain"
	"github.com/armora/quote/pkg/money"
	"github.com/shopspring/decimal"
)

// Engine computes price breakdowns. It holds no mutable state and every
// method is a pure function of its inputs, the catalog and the current
// policy snapshot.
//
// Each component (protection fee, vehicle fee, discount) is rounded half-up
// to whole units on its own, so the parts may differ by one unit from
// rounding their sum.
type Engine struct {
	catalog catalogdomain.Catalog
	policy  domain.PolicyProvider
}

func NewEngine(catalog catalogdomain.Catalog, policy domain.PolicyProvider) *Engine {
	if policy == nil {
		policy = domain.StaticPolicy(domain.DefaultPolicy())
	}
	return &Engine{catalog: catalog, policy: policy}
}

// ComputeHourlyPrice prices time only. Unknown tiers yield a zero breakdown.
func (e *Engine) ComputeHourlyPrice(tierID string, hours decimal.Decimal, hasDiscount bool, discountPercent decimal.Decimal) domain.Breakdown {
	tier, ok := e.catalog.Get(tierID)
	if !ok {
		return domain.ZeroBreakdown(domain.ModeHourly)
	}

	effectiveHours := money.Max(hours, tier.MinimumHours)
	base := money.Round(tier.HourlyRate.Mul(effectiveHours))

	pct := money.Zero
	discount := money.Zero
	source := domain.DiscountNone
	if hasDiscount {
		pct = discountPercent
		discount = money.Round(money.Percent(base, pct))
		source = domain.DiscountManual
	}

	b := domain.ZeroBreakdown(domain.ModeHourly)
	b.TierID = tier.ID
	b.ProtectionFee = base
	b.Subtotal = base
	b.DiscountPercent = pct
	b.DiscountAmount = discount
	b.DiscountSource = source
	b.FinalPrice = money.NonNegative(base.Sub(discount))
	b.MinimumCharge = money.Round(tier.HourlyRate.Mul(tier.MinimumHours))
	b.EffectiveHours = effectiveHours
	b.TimeMultiplier = money.Units(1)
	return b
}

// ComputeDualPrice prices a live trip with both a time and a distance
// component at the tier's own mileage rate.
func (e *Engine) ComputeDualPrice(tierID string, hours, miles decimal.Decimal, isMember bool, memberDiscountPercent decimal.Decimal) domain.Breakdown {
	tier, ok := e.catalog.Get(tierID)
	if !ok {
		return domain.ZeroBreakdown(domain.ModeDual)
	}
	return e.dual(domain.ModeDual, tier, tier.MileageRate, hours, miles, isMember, memberDiscountPercent)
}

// ComputeJourneyPrice is the dual-rate calculation with distance billed at
// the flat journey mileage rate instead of the tier's rate.
func (e *Engine) ComputeJourneyPrice(tierID string, hours, miles decimal.Decimal, isMember bool, memberDiscountPercent decimal.Decimal) domain.Breakdown {
	tier, ok := e.catalog.Get(tierID)
	if !ok {
		return domain.ZeroBreakdown(domain.ModeJourney)
	}
	rate := e.policy.Policy().JourneyMileageRate
	return e.dual(domain.ModeJourney, tier, rate, hours, miles, isMember, memberDiscountPercent)
}

func (e *Engine) dual(mode domain.Mode, tier catalogdomain.ServiceTier, mileageRate, hours, miles decimal.Decimal, isMember bool, memberDiscountPercent decimal.Decimal) domain.Breakdown {
	policy := e.policy.Policy()

	effectiveHours := money.Max(hours, tier.MinimumHours)
	protection := money.Round(tier.HourlyRate.Mul(effectiveHours))
	vehicle := money.Round(mileageRate.Mul(miles))

	booking := policy.BookingFee
	pct := money.Zero
	discount := money.Zero
	source := domain.DiscountNone
	if isMember {
		booking = money.Zero
		pct = memberDiscountPercent
		// booking fee is never part of the discount base
		discount = money.Round(money.Percent(protection.Add(vehicle), pct))
		source = domain.DiscountMember
	}

	subtotal := protection.Add(vehicle).Add(booking)

	b := domain.ZeroBreakdown(mode)
	b.TierID = tier.ID
	b.ProtectionFee = protection
	b.VehicleFee = vehicle
	b.BookingFee = booking
	b.Subtotal = subtotal
	b.DiscountPercent = pct
	b.DiscountAmount = discount
	b.DiscountSource = source
	b.FinalPrice = money.NonNegative(subtotal.Sub(discount))
	b.MinimumCharge = money.Round(tier.HourlyRate.Mul(tier.MinimumHours)).Add(vehicle)
	b.EffectiveHours = effectiveHours
	b.EffectiveMiles = miles
	b.MileageRate = mileageRate
	b.TimeMultiplier = money.Units(1)
	return b
}

// ComputeTripPrice is the calculator variant. The time-of-day multiplier
// applies to the protection fee only. Frequency and membership discounts
// never stack: the larger percentage wins.
func (e *Engine) ComputeTripPrice(req domain.TripRequest) domain.Breakdown {
	tier, ok := e.catalog.Get(req.TierID)
	if !ok {
		return domain.ZeroBreakdown(domain.ModeTrip)
	}
	policy := e.policy.Policy()

	timeOfDay := req.TimeOfDay
	if timeOfDay == "" {
		timeOfDay = domain.TimeOfDayStandard
	}
	frequency := req.Frequency
	if frequency == "" {
		frequency = domain.FrequencyOnce
	}

	multiplier := policy.Multiplier(timeOfDay)
	effectiveHours := money.Max(req.Hours, tier.MinimumHours)
	protection := money.Round(tier.HourlyRate.Mul(effectiveHours).Mul(multiplier))
	vehicle := money.Round(tier.MileageRate.Mul(req.Miles))

	booking := policy.BookingFee
	memberPct := money.Zero
	if req.IsMember {
		booking = money.Zero
		memberPct = policy.MemberDiscountPercent
		if req.MemberDiscountPercent.Valid {
			memberPct = req.MemberDiscountPercent.Decimal
		}
	}
	frequencyPct := policy.FrequencyDiscount(frequency)

	pct, source := money.Zero, domain.DiscountNone
	switch {
	case memberPct.IsPositive() && memberPct.GreaterThanOrEqual(frequencyPct):
		pct, source = memberPct, domain.DiscountMember
	case frequencyPct.IsPositive():
		pct, source = frequencyPct, domain.DiscountFrequency
	}

	discount := money.Round(money.Percent(protection.Add(vehicle), pct))
	subtotal := protection.Add(vehicle).Add(booking)

	b := domain.ZeroBreakdown(domain.ModeTrip)
	b.TierID = tier.ID
	b.ProtectionFee = protection
	b.VehicleFee = vehicle
	b.BookingFee = booking
	b.Subtotal = subtotal
	b.DiscountPercent = pct
	b.DiscountAmount = discount
	b.DiscountSource = source
	b.FinalPrice = money.NonNegative(subtotal.Sub(discount))
	b.MinimumCharge = money.Round(tier.HourlyRate.Mul(tier.MinimumHours)).Add(vehicle)
	b.EffectiveHours = effectiveHours
	b.EffectiveMiles = req.Miles
	b.MileageRate = tier.MileageRate
	b.TimeMultiplier = multiplier
	return b
}
