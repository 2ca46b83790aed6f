package service

import (
	"context"
	"fmt"

	catalogdomain "github.com/armora/quote/internal/catalog/domain"
	"github.com/armora/quote/internal/observability/logger"
	"github.com/armora/quote/internal/observability/metrics"
	"github.com/armora/quote/internal/pricing/domain"
	"github.com/armora/quote/pkg/money"
	"github.com/armora/quote/pkg/telemetry/correlation"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service struct {
	log     *zap.Logger
	engine  *Engine
	policy  domain.PolicyProvider
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type ServiceParam struct {
	fx.In

	Log     *zap.Logger
	Engine  *Engine
	Policy  domain.PolicyProvider
	Metrics *metrics.Metrics `optional:"true"`
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		log:     p.Log.Named("pricing.service"),
		engine:  p.Engine,
		policy:  p.Policy,
		metrics: p.Metrics,
		tracer:  otel.Tracer("armora/pricing"),
	}
}

// ProvideEngine builds the engine from the catalog and current policy.
func ProvideEngine(catalog catalogdomain.Catalog, policy domain.PolicyProvider) *Engine {
	return NewEngine(catalog, policy)
}

func (s *Service) Hourly(ctx context.Context, req domain.HourlyRequest) (domain.Breakdown, error) {
	if err := domain.ValidateTrip(req.Hours, money.Zero); err != nil {
		return domain.Breakdown{}, err
	}
	if req.HasDiscount {
		if err := domain.ValidatePercent(req.DiscountPercent); err != nil {
			return domain.Breakdown{}, err
		}
	}

	return s.run(ctx, domain.ModeHourly, req.TierID, func() domain.Breakdown {
		return s.engine.ComputeHourlyPrice(req.TierID, req.Hours, req.HasDiscount, req.DiscountPercent)
	})
}

func (s *Service) Dual(ctx context.Context, req domain.DualRequest) (domain.Breakdown, error) {
	pct, err := s.validateDual(req)
	if err != nil {
		return domain.Breakdown{}, err
	}

	return s.run(ctx, domain.ModeDual, req.TierID, func() domain.Breakdown {
		return s.engine.ComputeDualPrice(req.TierID, req.Hours, req.Miles, req.IsMember, pct)
	})
}

func (s *Service) Journey(ctx context.Context, req domain.DualRequest) (domain.Breakdown, error) {
	pct, err := s.validateDual(req)
	if err != nil {
		return domain.Breakdown{}, err
	}

	return s.run(ctx, domain.ModeJourney, req.TierID, func() domain.Breakdown {
		return s.engine.ComputeJourneyPrice(req.TierID, req.Hours, req.Miles, req.IsMember, pct)
	})
}

func (s *Service) Trip(ctx context.Context, req domain.TripRequest) (domain.Breakdown, error) {
	if err := domain.ValidateTrip(req.Hours, req.Miles); err != nil {
		return domain.Breakdown{}, err
	}
	if req.MemberDiscountPercent.Valid {
		if err := domain.ValidatePercent(req.MemberDiscountPercent.Decimal); err != nil {
			return domain.Breakdown{}, err
		}
	}
	timeOfDay, err := domain.ParseTimeOfDay(string(req.TimeOfDay))
	if err != nil {
		return domain.Breakdown{}, err
	}
	frequency, err := domain.ParseFrequency(string(req.Frequency))
	if err != nil {
		return domain.Breakdown{}, err
	}
	req.TimeOfDay = timeOfDay
	req.Frequency = frequency

	return s.run(ctx, domain.ModeTrip, req.TierID, func() domain.Breakdown {
		return s.engine.ComputeTripPrice(req)
	})
}

func (s *Service) validateDual(req domain.DualRequest) (decimal.Decimal, error) {
	if err := domain.ValidateTrip(req.Hours, req.Miles); err != nil {
		return decimal.Decimal{}, err
	}
	pct := s.policy.Policy().MemberDiscountPercent
	if req.MemberDiscountPercent.Valid {
		pct = req.MemberDiscountPercent.Decimal
	}
	if err := domain.ValidatePercent(pct); err != nil {
		return decimal.Decimal{}, err
	}
	return pct, nil
}

func (s *Service) run(ctx context.Context, mode domain.Mode, tierID string, compute func() domain.Breakdown) (domain.Breakdown, error) {
	ctx = correlation.WithTier(ctx, tierID)
	ctx, span := s.tracer.Start(ctx, "pricing."+string(mode))
	defer span.End()

	log := logger.WithContext(ctx, s.log).With(zap.String("mode", string(mode)))

	b := compute()
	if b.TierID == "" {
		s.metrics.RecordUnknownTier(ctx, string(mode))
		span.SetStatus(codes.Error, "unknown tier")
		log.Warn("quote requested for unknown tier")
		return b, fmt.Errorf("%w: %s", domain.ErrUnknownTier, tierID)
	}

	final := b.FinalPrice.InexactFloat64()
	s.metrics.RecordQuote(ctx, string(mode), b.TierID, final)
	span.SetAttributes(attribute.Float64("final_price", final))
	log.Debug("quote computed",
		zap.String("subtotal", b.Subtotal.String()),
		zap.String("discount", b.DiscountAmount.String()),
		zap.String("final_price", b.FinalPrice.String()),
	)
	return b, nil
}
