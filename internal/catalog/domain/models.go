// Package domain contains the protection service tier catalog model.
package domain

import "github.com/shopspring/decimal"

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// Tier ids of the compiled-in catalog.
const (
	TierStandard      = "standard"
	TierExecutive     = "executive"
	TierShadow        = "shadow"
	TierClientVehicle = "client-vehicle"

	DefaultTierID = TierStandard
)

// ServiceTier is a named protection product with its own rates. Tiers are
// built once at startup and never mutated.
type ServiceTier struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"`
	MileageRate    decimal.Decimal `json:"mileage_rate"`
	MinimumHours   decimal.Decimal `json:"minimum_hours"`
	RiskLevel      RiskLevel       `json:"risk_level"`
	TargetProfiles []string        `json:"target_profiles"`
	PopularityRank int             `json:"popularity_rank"`
}

// Targets reports whether profile is one of the tier's target profile tags.
func (t ServiceTier) Targets(profile string) bool {
	for _, p := range t.TargetProfiles {
		if p == profile {
			return true
		}
	}
	return false
}
