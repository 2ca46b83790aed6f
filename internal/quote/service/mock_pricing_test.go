package service

import (
	"context"
	"errors"
	"testing"

	catalogservice "github.com/armora/quote/internal/catalog/service"
	pricingdomain "github.com/armora/quote/internal/pricing/domain"
	recommendationservice "github.com/armora/quote/internal/recommendation/service"
	"github.com/armora/quote/pkg/money"
	"github.com/armora/quote/pkg/telemetry/correlation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type mockPricing struct {
	mock.Mock
}

func (m *mockPricing) Hourly(ctx context.Context, req pricingdomain.HourlyRequest) (pricingdomain.Breakdown, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(pricingdomain.Breakdown), args.Error(1)
}

func (m *mockPricing) Dual(ctx context.Context, req pricingdomain.DualRequest) (pricingdomain.Breakdown, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(pricingdomain.Breakdown), args.Error(1)
}

func (m *mockPricing) Journey(ctx context.Context, req pricingdomain.DualRequest) (pricingdomain.Breakdown, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(pricingdomain.Breakdown), args.Error(1)
}

func (m *mockPricing) Trip(ctx context.Context, req pricingdomain.TripRequest) (pricingdomain.Breakdown, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(pricingdomain.Breakdown), args.Error(1)
}

func newMockedService(t *testing.T, log *zap.Logger) (*Service, *mockPricing) {
	t.Helper()
	catalog, err := catalogservice.New(catalogservice.DefaultTiers())
	require.NoError(t, err)

	pricing := &mockPricing{}
	svc := NewService(ServiceParam{
		Log:      log,
		Catalog:  catalog,
		Resolver: recommendationservice.NewResolver(log, catalog),
		Pricing:  pricing,
	}).(*Service)
	return svc, pricing
}

func TestForProfile_PricingFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	svc, pricing := newMockedService(t, zap.New(core))

	pricingErr := errors.New("policy unavailable")
	pricing.On("Trip", mock.Anything, mock.MatchedBy(func(req pricingdomain.TripRequest) bool {
		return req.TierID == "shadow"
	})).Return(pricingdomain.Breakdown{}, pricingErr).Once()

	ctx := correlation.Start(context.Background())
	rec, err := svc.ForProfile(ctx, "celebrity", pricingdomain.TripRequest{Hours: money.Units(2)})
	require.ErrorIs(t, err, pricingErr)
	assert.Empty(t, rec.Tier.ID)
	pricing.AssertExpectations(t)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "shadow", fields["tier"])
	assert.Equal(t, correlation.FromContext(ctx).ID, fields["correlation_id"])
}

func TestForQuestionnaire_PassesTripThroughWithResolvedTier(t *testing.T) {
	svc, pricing := newMockedService(t, zap.NewNop())

	trip := pricingdomain.TripRequest{
		TierID:    "standard",
		Hours:     money.Units(4),
		Miles:     money.Units(12),
		IsMember:  true,
		TimeOfDay: pricingdomain.TimeOfDayEvening,
		Frequency: pricingdomain.FrequencyWeekly,
	}
	want := trip
	want.TierID = "executive"
	priced := pricingdomain.Breakdown{TierID: "executive", FinalPrice: money.Units(321)}
	pricing.On("Trip", mock.Anything, want).Return(priced, nil).Once()

	rec, err := svc.ForQuestionnaire(context.Background(), "armora-premium", trip)
	require.NoError(t, err)
	assert.Equal(t, "executive", rec.Tier.ID)
	assert.True(t, rec.Breakdown.FinalPrice.Equal(money.Units(321)))
	pricing.AssertExpectations(t)
}
