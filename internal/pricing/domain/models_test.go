package domain

import (
	"testing"

	"github.com/armora/quote/pkg/money"
	"github.com/stretchr/testify/assert"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := map[string]TimeOfDay{
		"":          TimeOfDayStandard,
		"standard":  TimeOfDayStandard,
		" Evening ": TimeOfDayEvening,
		"NIGHT":     TimeOfDayNight,
	}
	for in, want := range cases {
		got, err := ParseTimeOfDay(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseTimeOfDay("dusk")
	assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
}

func TestParseFrequency(t *testing.T) {
	got, err := ParseFrequency("")
	assert.NoError(t, err)
	assert.Equal(t, FrequencyOnce, got)

	got, err = ParseFrequency("Monthly")
	assert.NoError(t, err)
	assert.Equal(t, FrequencyMonthly, got)

	_, err = ParseFrequency("fortnightly")
	assert.ErrorIs(t, err, ErrInvalidFrequency)
}

func TestValidateTripAndPercent(t *testing.T) {
	assert.NoError(t, ValidateTrip(money.Zero, money.Zero))
	assert.ErrorIs(t, ValidateTrip(money.Units(-1), money.Zero), ErrInvalidHours)
	assert.ErrorIs(t, ValidateTrip(money.Zero, money.Units(-1)), ErrInvalidMiles)

	assert.NoError(t, ValidatePercent(money.Units(100)))
	assert.ErrorIs(t, ValidatePercent(money.MustParse("100.01")), ErrInvalidDiscount)
	assert.ErrorIs(t, ValidatePercent(money.Units(-1)), ErrInvalidDiscount)
}

func TestZeroBreakdownIsSentinel(t *testing.T) {
	b := ZeroBreakdown(ModeDual)
	assert.True(t, b.IsZero())
	assert.Equal(t, ModeDual, b.Mode)

	b.ProtectionFee = money.Units(130)
	assert.False(t, b.IsZero())
}

func TestDefaultPolicyLookups(t *testing.T) {
	p := DefaultPolicy()
	assert.True(t, p.Multiplier("unknown").Equal(money.Units(1)))
	assert.True(t, p.FrequencyDiscount("unknown").IsZero())
	assert.True(t, StaticPolicy(p).Policy().BookingFee.Equal(money.Units(10)))
}
