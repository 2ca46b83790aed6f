package service

import (
	"context"
	"testing"

	"github.com/armora/quote/internal/venue/domain"
	"github.com/armora/quote/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestComputeVenueQuote_Table(t *testing.T) {
	cases := []struct {
		duration domain.DurationTier
		risk     domain.RiskType
		officers int
		perHead  int64
		total    int64
	}{
		{domain.DurationDay, domain.RiskStandard, 1, 450, 450},
		{domain.DurationDay, domain.RiskHigh, 2, 675, 1350},
		{domain.DurationTwoDay, domain.RiskStandard, 3, 850, 2550},
		{domain.DurationTwoDay, domain.RiskHigh, 1, 1275, 1275},
		{domain.DurationMonth, domain.RiskHigh, 4, 18750, 75000},
		{domain.DurationYear, domain.RiskStandard, 2, 135000, 270000},
		{domain.DurationYear, domain.RiskHigh, 1, 202500, 202500},
	}

	for _, tc := range cases {
		t.Run(string(tc.duration)+"_"+string(tc.risk), func(t *testing.T) {
			q := ComputeVenueQuote(tc.duration, tc.officers, tc.risk)
			assert.True(t, q.PricePerOfficer.Equal(money.Units(tc.perHead)), "per officer %s", q.PricePerOfficer)
			assert.True(t, q.TotalPrice.Equal(money.Units(tc.total)), "total %s", q.TotalPrice)
		})
	}
}

func TestComputeVenueQuote_LinearInOfficerCount(t *testing.T) {
	for _, duration := range []domain.DurationTier{domain.DurationDay, domain.DurationTwoDay, domain.DurationMonth, domain.DurationYear} {
		for _, risk := range []domain.RiskType{domain.RiskStandard, domain.RiskHigh} {
			single := ComputeVenueQuote(duration, 1, risk).TotalPrice
			for _, n := range []int{1, 2, 7, 25, 100} {
				got := ComputeVenueQuote(duration, n, risk).TotalPrice
				assert.True(t, got.Equal(single.Mul(money.Units(int64(n)))), "%s %s n=%d", duration, risk, n)
			}
		}
	}
}

func TestComputeVenueQuote_ZeroOfficersNotRejected(t *testing.T) {
	q := ComputeVenueQuote(domain.DurationDay, 0, domain.RiskStandard)
	assert.True(t, q.TotalPrice.IsZero())
	assert.True(t, q.PricePerOfficer.Equal(money.Units(450)))
}

func TestComputeVenueQuote_UnknownDuration(t *testing.T) {
	q := ComputeVenueQuote("fortnight", 3, domain.RiskHigh)
	assert.True(t, q.TotalPrice.IsZero())
	assert.True(t, q.BaseRatePerOfficer.IsZero())
}

func TestService_Quote(t *testing.T) {
	svc := NewService(ServiceParam{Log: zap.NewNop()})
	ctx := context.Background()

	q, err := svc.Quote(ctx, domain.QuoteRequest{DurationTier: "Month", OfficerCount: 2, VenueRiskType: "high_risk"})
	require.NoError(t, err)
	assert.True(t, q.TotalPrice.Equal(money.Units(37500)))

	_, err = svc.Quote(ctx, domain.QuoteRequest{DurationTier: "day", OfficerCount: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidOfficerCount)

	_, err = svc.Quote(ctx, domain.QuoteRequest{DurationTier: "week", OfficerCount: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidDurationTier)

	_, err = svc.Quote(ctx, domain.QuoteRequest{DurationTier: "day", OfficerCount: 1, VenueRiskType: "extreme"})
	assert.ErrorIs(t, err, domain.ErrInvalidRiskType)
}
