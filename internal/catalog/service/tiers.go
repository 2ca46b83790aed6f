package service

import (
	"github.com/armora/quote/internal/catalog/domain"
	"github.com/armora/quote/pkg/money"
)

// DefaultTiers returns the compiled-in catalog in declaration order.
func DefaultTiers() []domain.ServiceTier {
	two := money.Units(2)
	return []domain.ServiceTier{
		{
			ID:             domain.TierStandard,
			Name:           "Standard Protection",
			Description:    "Close protection officer with a security-trained driver.",
			HourlyRate:     money.Units(65),
			MileageRate:    money.MustParse("2.00"),
			MinimumHours:   two,
			RiskLevel:      domain.RiskLevelLow,
			TargetProfiles: []string{"general", "business-traveller", "airport-transfer", "first-time"},
			PopularityRank: 1,
		},
		{
			ID:             domain.TierExecutive,
			Name:           "Executive Protection",
			Description:    "Senior officer and executive vehicle for corporate travel.",
			HourlyRate:     money.Units(75),
			MileageRate:    money.MustParse("2.50"),
			MinimumHours:   two,
			RiskLevel:      domain.RiskLevelMedium,
			TargetProfiles: []string{"executive", "corporate", "high-net-worth", "vip"},
			PopularityRank: 2,
		},
		{
			ID:             domain.TierShadow,
			Name:           "Shadow Protection",
			Description:    "Discreet follow-car team for high-profile clients.",
			HourlyRate:     money.Units(95),
			MileageRate:    money.MustParse("2.50"),
			MinimumHours:   two,
			RiskLevel:      domain.RiskLevelHigh,
			TargetProfiles: []string{"celebrity", "public-figure", "high-profile", "high-risk"},
			PopularityRank: 3,
		},
		{
			ID:             domain.TierClientVehicle,
			Name:           "Client Vehicle Protection",
			Description:    "Protection officer drives the client's own vehicle.",
			HourlyRate:     money.Units(55),
			MileageRate:    money.Units(0),
			MinimumHours:   two,
			RiskLevel:      domain.RiskLevelMedium,
			TargetProfiles: []string{"own-vehicle", "vehicle-owner", "family"},
			PopularityRank: 3,
		},
	}
}
