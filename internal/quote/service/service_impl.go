package service

import (
	"context"
	"fmt"

	catalogdomain "github.com/armora/quote/internal/catalog/domain"
	"github.com/armora/quote/internal/observability/logger"
	pricingdomain "github.com/armora/quote/internal/pricing/domain"
	"github.com/armora/quote/internal/quote/domain"
	recommendationdomain "github.com/armora/quote/internal/recommendation/domain"
	"github.com/armora/quote/pkg/telemetry/correlation"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service struct {
	log      *zap.Logger
	catalog  catalogdomain.Catalog
	resolver recommendationdomain.Resolver
	pricing  pricingdomain.Service
	tracer   trace.Tracer
}

type ServiceParam struct {
	fx.In

	Log      *zap.Logger
	Catalog  catalogdomain.Catalog
	Resolver recommendationdomain.Resolver
	Pricing  pricingdomain.Service
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		log:      p.Log.Named("quote.service"),
		catalog:  p.Catalog,
		resolver: p.Resolver,
		pricing:  p.Pricing,
		tracer:   otel.Tracer("armora/quote"),
	}
}

func (s *Service) ForProfile(ctx context.Context, profileTag string, trip pricingdomain.TripRequest) (domain.Recommendation, error) {
	ctx, span := s.tracer.Start(ctx, "quote.for_profile",
		trace.WithAttributes(attribute.String("profile", profileTag)),
	)
	defer span.End()

	tier := s.resolver.ResolveByProfile(profileTag)
	ctx = correlation.WithTier(ctx, tier.ID)
	logger.WithContext(ctx, s.log).Debug("tier resolved from profile", zap.String("profile", profileTag))
	return s.price(ctx, span, tier, trip)
}

func (s *Service) ForQuestionnaire(ctx context.Context, code string, trip pricingdomain.TripRequest) (domain.Recommendation, error) {
	ctx, span := s.tracer.Start(ctx, "quote.for_questionnaire",
		trace.WithAttributes(attribute.String("questionnaire_code", code)),
	)
	defer span.End()

	tierID := s.resolver.ResolveFromQuestionnaireCode(code)
	tier, ok := s.catalog.Get(tierID)
	if !ok {
		span.SetStatus(codes.Error, "resolved tier missing from catalog")
		return domain.Recommendation{}, fmt.Errorf("%w: %s", pricingdomain.ErrUnknownTier, tierID)
	}
	ctx = correlation.WithTier(ctx, tier.ID)
	logger.WithContext(ctx, s.log).Debug("tier resolved from questionnaire", zap.String("code", code))
	return s.price(ctx, span, tier, trip)
}

func (s *Service) price(ctx context.Context, span trace.Span, tier catalogdomain.ServiceTier, trip pricingdomain.TripRequest) (domain.Recommendation, error) {
	span.SetAttributes(attribute.String("tier", tier.ID))

	trip.TierID = tier.ID
	breakdown, err := s.pricing.Trip(ctx, trip)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "pricing failed")
		logger.WithContext(ctx, s.log).Warn("recommended tier could not be priced", zap.Error(err))
		return domain.Recommendation{}, fmt.Errorf("price %s: %w", tier.ID, err)
	}
	return domain.Recommendation{Tier: tier, Breakdown: breakdown}, nil
}
