package service

import (
	"github.com/armora/quote/internal/config"
	"github.com/armora/quote/internal/pricing/domain"
	"github.com/shopspring/decimal"
)

// configPolicy adapts the hot-reloaded pricing config to a PolicyProvider.
type configPolicy struct {
	holder *config.PricingConfigHolder
}

func NewConfigPolicy(holder *config.PricingConfigHolder) domain.PolicyProvider {
	return &configPolicy{holder: holder}
}

func (p *configPolicy) Policy() domain.Policy {
	return PolicyFromConfig(p.holder.Get())
}

// PolicyFromConfig converts a validated PricingConfig into decimal policy
// values. Keys missing from the config keep their defaults.
func PolicyFromConfig(cfg config.PricingConfig) domain.Policy {
	policy := domain.DefaultPolicy()
	policy.BookingFee = decimal.NewFromFloat(cfg.BookingFee)
	policy.MemberDiscountPercent = decimal.NewFromFloat(cfg.MemberDiscountPercent)
	policy.JourneyMileageRate = decimal.NewFromFloat(cfg.JourneyMileageRate)

	for key, value := range cfg.TimeOfDayMultipliers {
		if t, err := domain.ParseTimeOfDay(key); err == nil {
			policy.TimeOfDayMultipliers[t] = decimal.NewFromFloat(value)
		}
	}
	for key, value := range cfg.FrequencyDiscounts {
		if f, err := domain.ParseFrequency(key); err == nil {
			policy.FrequencyDiscounts[f] = decimal.NewFromFloat(value)
		}
	}
	return policy
}
