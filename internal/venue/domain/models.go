package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type DurationTier string

const (
	DurationDay    DurationTier = "day"
	DurationTwoDay DurationTier = "two_day"
	DurationMonth  DurationTier = "month"
	DurationYear   DurationTier = "year"
)

func ParseDurationTier(raw string) (DurationTier, error) {
	switch v := DurationTier(strings.ToLower(strings.TrimSpace(raw))); v {
	case DurationDay, DurationTwoDay, DurationMonth, DurationYear:
		return v, nil
	default:
		return "", ErrInvalidDurationTier
	}
}

type RiskType string

const (
	RiskStandard RiskType = "standard"
	RiskHigh     RiskType = "high_risk"
)

// ParseRiskType accepts the empty string as standard.
func ParseRiskType(raw string) (RiskType, error) {
	switch v := RiskType(strings.ToLower(strings.TrimSpace(raw))); v {
	case "", RiskStandard:
		return RiskStandard, nil
	case RiskHigh:
		return RiskHigh, nil
	default:
		return "", ErrInvalidRiskType
	}
}

type QuoteRequest struct {
	DurationTier  DurationTier `json:"duration_tier"`
	OfficerCount  int          `json:"officer_count"`
	VenueRiskType RiskType     `json:"venue_risk_type"`
}

// Quote is a flat-rate officer block price for static venue protection.
type Quote struct {
	DurationTier       DurationTier    `json:"duration_tier"`
	OfficerCount       int             `json:"officer_count"`
	VenueRiskType      RiskType        `json:"venue_risk_type"`
	BaseRatePerOfficer decimal.Decimal `json:"base_rate_per_officer"`
	RiskMultiplier     decimal.Decimal `json:"risk_multiplier"`
	PricePerOfficer    decimal.Decimal `json:"price_per_officer"`
	TotalPrice         decimal.Decimal `json:"total_price"`
}

type Service interface {
	Quote(ctx context.Context, req QuoteRequest) (Quote, error)
}

var (
	ErrInvalidDurationTier = errors.New("invalid_duration_tier")
	ErrInvalidRiskType     = errors.New("invalid_venue_risk_type")
	ErrInvalidOfficerCount = errors.New("invalid_officer_count")
)
