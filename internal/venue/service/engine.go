package service

import (
	"github.com/armora/quote/internal/venue/domain"
	"github.com/armora/quote/pkg/money"
	"github.com/shopspring/decimal"
)

// Flat per-officer block rates. The two-day and yearly figures already carry
// their multi-day and annual discounts.
var baseRates = map[domain.DurationTier]decimal.Decimal{
	domain.DurationDay:    money.Units(450),
	domain.DurationTwoDay: money.Units(850),
	domain.DurationMonth:  money.Units(12500),
	domain.DurationYear:   money.Units(135000),
}

var highRiskMultiplier = money.MustParse("1.5")

// BaseRate returns the flat per-officer rate for a duration tier.
func BaseRate(tier domain.DurationTier) (decimal.Decimal, bool) {
	rate, ok := baseRates[tier]
	return rate, ok
}

// ComputeVenueQuote prices an officer block. Total price is linear in the
// officer count; an unknown duration tier yields a zero quote. The count is
// not validated here.
func ComputeVenueQuote(durationTier domain.DurationTier, officerCount int, riskType domain.RiskType) domain.Quote {
	q := domain.Quote{
		DurationTier:       durationTier,
		OfficerCount:       officerCount,
		VenueRiskType:      riskType,
		BaseRatePerOfficer: money.Zero,
		RiskMultiplier:     money.Zero,
		PricePerOfficer:    money.Zero,
		TotalPrice:         money.Zero,
	}

	base, ok := BaseRate(durationTier)
	if !ok {
		return q
	}

	multiplier := money.Units(1)
	if riskType == domain.RiskHigh {
		multiplier = highRiskMultiplier
	}

	perOfficer := money.Round(base.Mul(multiplier))
	q.BaseRatePerOfficer = base
	q.RiskMultiplier = multiplier
	q.PricePerOfficer = perOfficer
	q.TotalPrice = perOfficer.Mul(decimal.NewFromInt(int64(officerCount)))
	return q
}
