package service

import (
	"context"

	"github.com/armora/quote/internal/observability/logger"
	"github.com/armora/quote/internal/observability/metrics"
	"github.com/armora/quote/internal/venue/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service struct {
	log     *zap.Logger
	metrics *metrics.Metrics
}

type ServiceParam struct {
	fx.In

	Log     *zap.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		log:     p.Log.Named("venue.service"),
		metrics: p.Metrics,
	}
}

func (s *Service) Quote(ctx context.Context, req domain.QuoteRequest) (domain.Quote, error) {
	duration, err := domain.ParseDurationTier(string(req.DurationTier))
	if err != nil {
		return domain.Quote{}, err
	}
	risk, err := domain.ParseRiskType(string(req.VenueRiskType))
	if err != nil {
		return domain.Quote{}, err
	}
	if req.OfficerCount < 1 {
		return domain.Quote{}, domain.ErrInvalidOfficerCount
	}

	q := ComputeVenueQuote(duration, req.OfficerCount, risk)
	s.metrics.RecordVenueQuote(ctx, string(duration), string(risk))
	logger.WithContext(ctx, s.log).Debug("venue quote computed",
		zap.String("duration_tier", string(duration)),
		zap.Int("officers", req.OfficerCount),
		zap.String("total_price", q.TotalPrice.String()),
	)
	return q, nil
}
