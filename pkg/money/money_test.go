package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"34.5", 35},
		{"34.49", 34},
		{"0.5", 1},
		{"185", 185},
		{"12.999", 13},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := Round(MustParse(tc.in))
			assert.True(t, got.Equal(Units(tc.want)), "got %s", got)
		})
	}
}

func TestPercent(t *testing.T) {
	got := Percent(Units(175), Units(20))
	assert.True(t, got.Equal(Units(35)))

	got = Percent(Units(33), MustParse("15"))
	assert.True(t, got.Equal(MustParse("4.95")))
}

func TestNonNegativeAndMax(t *testing.T) {
	assert.True(t, NonNegative(Units(-5)).Equal(decimal.Zero))
	assert.True(t, NonNegative(Units(5)).Equal(Units(5)))
	assert.True(t, Max(Units(5), Units(10)).Equal(Units(10)))
	assert.True(t, Max(Units(15), Units(10)).Equal(Units(15)))
}
