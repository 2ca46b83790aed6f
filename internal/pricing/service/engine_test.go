package service

import (
	"testing"

	catalogservice "github.com/armora/quote/internal/catalog/service"
	"github.com/armora/quote/internal/pricing/domain"
	"github.com/armora/quote/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal { return money.MustParse(v) }

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	catalog, err := catalogservice.New(catalogservice.DefaultTiers())
	require.NoError(t, err)
	return NewEngine(catalog, nil)
}

func assertMoney(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, got.Equal(d(want)), "%s: want %s, got %s", field, want, got)
}

func TestDualPrice_ExecutiveNonMember(t *testing.T) {
	e := newTestEngine(t)

	b := e.ComputeDualPrice("executive", d("1"), d("10"), false, d("20"))

	assertMoney(t, "2", b.EffectiveHours, "effective_hours")
	assertMoney(t, "150", b.ProtectionFee, "protection_fee")
	assertMoney(t, "25", b.VehicleFee, "vehicle_fee")
	assertMoney(t, "10", b.BookingFee, "booking_fee")
	assertMoney(t, "185", b.Subtotal, "subtotal")
	assertMoney(t, "0", b.DiscountAmount, "discount_amount")
	assertMoney(t, "185", b.FinalPrice, "final_price")
	assertMoney(t, "175", b.MinimumCharge, "minimum_charge")
	assert.Equal(t, domain.DiscountNone, b.DiscountSource)
}

// The member booking fee is waived, so the executive member quote is
// 175 - 35 = 140. The commonly quoted figure of 150 keeps the fee and is
// wrong for members; do not change this expectation back to 150.
func TestDualPrice_ExecutiveMemberWaivesBookingFeeSo140Not150(t *testing.T) {
	e := newTestEngine(t)

	b := e.ComputeDualPrice("executive", d("1"), d("10"), true, d("20"))

	assertMoney(t, "0", b.BookingFee, "booking_fee")
	assertMoney(t, "175", b.Subtotal, "subtotal")
	assertMoney(t, "35", b.DiscountAmount, "discount_amount")
	assertMoney(t, "140", b.FinalPrice, "final_price")
	assert.False(t, b.FinalPrice.Equal(d("150")), "booking fee must not be charged to members")
	assert.Equal(t, domain.DiscountMember, b.DiscountSource)
}

func TestDualPrice_RoundsEachComponent(t *testing.T) {
	e := newTestEngine(t)

	// 95 × 2.5 = 237.5 and 2.5 × 1.1 = 2.75 round to 238 and 3 separately;
	// rounding the raw sum 240.25 would give 240.
	b := e.ComputeDualPrice("shadow", d("2.5"), d("1.1"), false, d("0"))
	assertMoney(t, "238", b.ProtectionFee, "protection_fee")
	assertMoney(t, "3", b.VehicleFee, "vehicle_fee")
	assertMoney(t, "251", b.Subtotal, "subtotal")

	b = e.ComputeDualPrice("standard", d("2.25"), d("3.3"), true, d("15"))
	assertMoney(t, "146", b.ProtectionFee, "protection_fee")
	assertMoney(t, "7", b.VehicleFee, "vehicle_fee")
	assertMoney(t, "23", b.DiscountAmount, "discount_amount")
	assertMoney(t, "130", b.FinalPrice, "final_price")
}

func TestDualPrice_FinalPriceFlooredAtZero(t *testing.T) {
	e := newTestEngine(t)

	b := e.ComputeDualPrice("executive", d("1"), d("10"), true, d("150"))
	assertMoney(t, "263", b.DiscountAmount, "discount_amount")
	assertMoney(t, "0", b.FinalPrice, "final_price")
}

func TestEffectiveHoursNeverBelowTierMinimum(t *testing.T) {
	e := newTestEngine(t)

	for _, tier := range e.catalog.Declared() {
		for _, hours := range []string{"0", "0.5", "1", "1.99"} {
			dual := e.ComputeDualPrice(tier.ID, d(hours), d("5"), false, d("0"))
			assert.True(t, dual.EffectiveHours.Equal(tier.MinimumHours), "%s dual %s", tier.ID, hours)

			hourly := e.ComputeHourlyPrice(tier.ID, d(hours), false, d("0"))
			assert.True(t, hourly.EffectiveHours.Equal(tier.MinimumHours), "%s hourly %s", tier.ID, hours)
			assert.True(t, hourly.ProtectionFee.Equal(money.Round(tier.HourlyRate.Mul(tier.MinimumHours))))
		}

		above := e.ComputeDualPrice(tier.ID, d("3.5"), d("0"), false, d("0"))
		assertMoney(t, "3.5", above.EffectiveHours, tier.ID)
	}
}

func TestDualPrice_DiscountProperties(t *testing.T) {
	e := newTestEngine(t)

	hours := []string{"0", "1", "2.75", "8"}
	miles := []string{"0", "1.5", "10", "133.3"}
	percents := []string{"0", "5", "20", "33.3", "100"}

	for _, tier := range e.catalog.Declared() {
		for _, h := range hours {
			for _, m := range miles {
				nonMember := e.ComputeDualPrice(tier.ID, d(h), d(m), false, d("20"))
				assert.True(t, nonMember.DiscountAmount.IsZero())
				assert.True(t, nonMember.FinalPrice.Equal(nonMember.Subtotal.Sub(nonMember.DiscountAmount)))

				for _, p := range percents {
					member := e.ComputeDualPrice(tier.ID, d(h), d(m), true, d(p))
					base := member.ProtectionFee.Add(member.VehicleFee)
					want := money.Round(money.Percent(base, d(p)))
					assert.True(t, member.DiscountAmount.Equal(want), "%s h=%s m=%s p=%s", tier.ID, h, m, p)
					assert.True(t, member.FinalPrice.Equal(member.Subtotal.Sub(member.DiscountAmount)))
					assert.False(t, member.DiscountAmount.IsNegative())
				}
			}
		}
	}
}

func TestHourlyPrice(t *testing.T) {
	e := newTestEngine(t)

	b := e.ComputeHourlyPrice("executive", d("3"), true, d("10"))
	assertMoney(t, "225", b.ProtectionFee, "protection_fee")
	assertMoney(t, "23", b.DiscountAmount, "discount_amount")
	assertMoney(t, "202", b.FinalPrice, "final_price")
	assert.Equal(t, domain.DiscountManual, b.DiscountSource)

	b = e.ComputeHourlyPrice("executive", d("1"), false, d("50"))
	assertMoney(t, "150", b.FinalPrice, "final_price")
	assertMoney(t, "0", b.DiscountAmount, "discount_amount")
	assertMoney(t, "0", b.VehicleFee, "vehicle_fee")
	assertMoney(t, "0", b.BookingFee, "booking_fee")
}

func TestUnknownTierYieldsZeroBreakdown(t *testing.T) {
	e := newTestEngine(t)

	cases := map[string]domain.Breakdown{
		"hourly":  e.ComputeHourlyPrice("armoured-convoy", d("4"), true, d("10")),
		"dual":    e.ComputeDualPrice("armoured-convoy", d("4"), d("10"), true, d("20")),
		"journey": e.ComputeJourneyPrice("armoured-convoy", d("4"), d("10"), false, d("20")),
		"trip":    e.ComputeTripPrice(domain.TripRequest{TierID: "armoured-convoy", Hours: d("4"), Miles: d("10")}),
	}
	for name, b := range cases {
		assert.True(t, b.IsZero(), name)
		assert.Empty(t, b.TierID, name)
		assert.True(t, b.FinalPrice.IsZero(), name)
	}
}

func TestJourneyPriceUsesFlatMileageRate(t *testing.T) {
	e := newTestEngine(t)

	b := e.ComputeJourneyPrice("executive", d("3"), d("20"), false, d("20"))
	assertMoney(t, "225", b.ProtectionFee, "protection_fee")
	assertMoney(t, "10", b.VehicleFee, "vehicle_fee")
	assertMoney(t, "245", b.FinalPrice, "final_price")
	assert.True(t, b.MileageRate.Equal(domain.JourneyMileageRate))
	assert.Equal(t, domain.ModeJourney, b.Mode)

	dual := e.ComputeDualPrice("executive", d("3"), d("20"), false, d("20"))
	assertMoney(t, "50", dual.VehicleFee, "dual vehicle_fee")
}

func TestTripPrice(t *testing.T) {
	e := newTestEngine(t)

	cases := []struct {
		name     string
		req      domain.TripRequest
		protect  string
		booking  string
		pct      string
		discount string
		final    string
		source   domain.DiscountSource
	}{
		{
			name:     "evening_non_member_once",
			req:      domain.TripRequest{TierID: "executive", Hours: d("2"), Miles: d("10"), TimeOfDay: domain.TimeOfDayEvening, Frequency: domain.FrequencyOnce},
			protect:  "173",
			booking:  "10",
			pct:      "0",
			discount: "0",
			final:    "208",
			source:   domain.DiscountNone,
		},
		{
			name:     "night_member_weekly_member_wins",
			req:      domain.TripRequest{TierID: "executive", Hours: d("2"), Miles: d("10"), IsMember: true, TimeOfDay: domain.TimeOfDayNight, Frequency: domain.FrequencyWeekly},
			protect:  "188",
			booking:  "0",
			pct:      "20",
			discount: "43",
			final:    "170",
			source:   domain.DiscountMember,
		},
		{
			name:     "non_member_monthly",
			req:      domain.TripRequest{TierID: "executive", Hours: d("1"), Miles: d("10"), Frequency: domain.FrequencyMonthly},
			protect:  "150",
			booking:  "10",
			pct:      "15",
			discount: "26",
			final:    "159",
			source:   domain.DiscountFrequency,
		},
		{
			name: "member_override_below_frequency",
			req: domain.TripRequest{
				TierID: "executive", Hours: d("1"), Miles: d("10"), IsMember: true,
				MemberDiscountPercent: decimal.NewNullDecimal(d("10")),
				Frequency:             domain.FrequencyMonthly,
			},
			protect:  "150",
			booking:  "0",
			pct:      "15",
			discount: "26",
			final:    "149",
			source:   domain.DiscountFrequency,
		},
		{
			name:     "defaults_when_unset",
			req:      domain.TripRequest{TierID: "standard", Hours: d("0"), Miles: d("0")},
			protect:  "130",
			booking:  "10",
			pct:      "0",
			discount: "0",
			final:    "140",
			source:   domain.DiscountNone,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := e.ComputeTripPrice(tc.req)
			assertMoney(t, tc.protect, b.ProtectionFee, "protection_fee")
			assertMoney(t, tc.booking, b.BookingFee, "booking_fee")
			assertMoney(t, tc.pct, b.DiscountPercent, "discount_percent")
			assertMoney(t, tc.discount, b.DiscountAmount, "discount_amount")
			assertMoney(t, tc.final, b.FinalPrice, "final_price")
			assert.Equal(t, tc.source, b.DiscountSource)
			assert.True(t, b.FinalPrice.Equal(b.Subtotal.Sub(b.DiscountAmount)))
		})
	}
}

func TestTripPrice_DiscountsNeverStack(t *testing.T) {
	e := newTestEngine(t)

	for _, freq := range []domain.Frequency{domain.FrequencyOnce, domain.FrequencyWeekly, domain.FrequencyDaily, domain.FrequencyMonthly} {
		b := e.ComputeTripPrice(domain.TripRequest{
			TierID: "shadow", Hours: d("4"), Miles: d("30"), IsMember: true, Frequency: freq,
		})
		assertMoney(t, "20", b.DiscountPercent, string(freq))
	}
}

func TestTripPrice_MultiplierOnlyTouchesProtectionFee(t *testing.T) {
	e := newTestEngine(t)

	standard := e.ComputeTripPrice(domain.TripRequest{TierID: "shadow", Hours: d("3"), Miles: d("12")})
	night := e.ComputeTripPrice(domain.TripRequest{TierID: "shadow", Hours: d("3"), Miles: d("12"), TimeOfDay: domain.TimeOfDayNight})

	assert.True(t, standard.VehicleFee.Equal(night.VehicleFee))
	assertMoney(t, "285", standard.ProtectionFee, "standard")
	assertMoney(t, "356", night.ProtectionFee, "night")
	assertMoney(t, "1.25", night.TimeMultiplier, "multiplier")
}

func TestEngineReadsPolicyProvider(t *testing.T) {
	catalog, err := catalogservice.New(catalogservice.DefaultTiers())
	require.NoError(t, err)

	policy := domain.DefaultPolicy()
	policy.BookingFee = d("12")
	policy.JourneyMileageRate = d("1")
	e := NewEngine(catalog, domain.StaticPolicy(policy))

	b := e.ComputeJourneyPrice("standard", d("2"), d("10"), false, d("0"))
	assertMoney(t, "12", b.BookingFee, "booking_fee")
	assertMoney(t, "10", b.VehicleFee, "vehicle_fee")
	assertMoney(t, "152", b.FinalPrice, "final_price")
}
