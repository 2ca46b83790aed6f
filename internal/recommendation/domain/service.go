package domain

import catalogdomain "github.com/armora/quote/internal/catalog/domain"

// Resolver maps a profile tag or an external questionnaire result onto a
// catalog tier. Resolution never fails; unmatched input lands on the
// catalog default.
type Resolver interface {
	ResolveByProfile(profileTag string) catalogdomain.ServiceTier
	ResolveFromQuestionnaireCode(code string) string
}

// Questionnaire result codes issued by the external assessment.
const (
	CodeStandard      = "armora-standard"
	CodeExecutive     = "armora-executive"
	CodeShadow        = "armora-shadow"
	CodeClientVehicle = "armora-client-vehicle"

	// Legacy codes still emitted by older questionnaire versions.
	CodeEssential = "armora-essential"
	CodePremium   = "armora-premium"
)
