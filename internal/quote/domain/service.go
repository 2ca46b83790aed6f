// Package domain defines the recommend-then-price entry point used by
// booking flows.
package domain

import (
	"context"

	catalogdomain "github.com/armora/quote/internal/catalog/domain"
	pricingdomain "github.com/armora/quote/internal/pricing/domain"
)

// Recommendation is a resolved tier together with the priced trip.
type Recommendation struct {
	Tier      catalogdomain.ServiceTier `json:"tier"`
	Breakdown pricingdomain.Breakdown   `json:"breakdown"`
}

type Service interface {
	// ForProfile resolves a tier from a profile tag and prices trip on it.
	// Any TierID already set on trip is ignored.
	ForProfile(ctx context.Context, profileTag string, trip pricingdomain.TripRequest) (Recommendation, error)
	// ForQuestionnaire does the same from an external questionnaire code.
	ForQuestionnaire(ctx context.Context, code string, trip pricingdomain.TripRequest) (Recommendation, error)
}
