package service

import (
	"strings"

	catalogdomain "github.com/armora/quote/internal/catalog/domain"
	"github.com/armora/quote/internal/recommendation/domain"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

var questionnaireCodes = map[string]string{
	domain.CodeStandard:      catalogdomain.TierStandard,
	domain.CodeExecutive:     catalogdomain.TierExecutive,
	domain.CodeShadow:        catalogdomain.TierShadow,
	domain.CodeClientVehicle: catalogdomain.TierClientVehicle,
	domain.CodeEssential:     catalogdomain.TierStandard,
	domain.CodePremium:       catalogdomain.TierExecutive,
}

type Resolver struct {
	log     *zap.Logger
	catalog catalogdomain.Catalog
}

func NewResolver(log *zap.Logger, catalog catalogdomain.Catalog) domain.Resolver {
	return &Resolver{
		log:     log.Named("recommendation.resolver"),
		catalog: catalog,
	}
}

// NormalizeProfile turns free-form tags such as "Business Traveller" into the
// slug form used by catalog target profiles.
func NormalizeProfile(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}
	return slug.Make(tag)
}

func (r *Resolver) ResolveByProfile(profileTag string) catalogdomain.ServiceTier {
	profile := NormalizeProfile(profileTag)
	if profile != "" {
		for _, tier := range r.catalog.Declared() {
			if tier.Targets(profile) {
				return tier
			}
		}
	}
	r.log.Debug("profile fell back to default tier", zap.String("profile", profile))
	return r.catalog.Default()
}

func (r *Resolver) ResolveFromQuestionnaireCode(code string) string {
	key := strings.ToLower(strings.TrimSpace(code))
	if tierID, ok := questionnaireCodes[key]; ok {
		return tierID
	}
	if key != "" {
		r.log.Debug("unrecognised questionnaire code", zap.String("code", key))
	}
	return r.catalog.Default().ID
}
