package rational

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		num, den   int64
		wantNum    int64
		wantDen    int64
	}{
		{"simple fraction", 3, 4, 3, 4},
		{"reduces to lowest terms", 6, 8, 3, 4},
		{"negative numerator", -3, 4, -3, 4},
		{"negative denominator", 3, -4, -3, 4},
		{"both negative", -3, -4, 3, 4},
		{"zero numerator", 0, 5, 0, 1},
		{"integer", 5, 1, 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.num, tt.den)
			assert.Equal(t, tt.wantNum, r.Num())
			assert.Equal(t, tt.wantDen, r.Den())
		})
	}
}

func TestNewPanicsOnZeroDenominator(t *testing.T) {
	assert.Panics(t, func() { New(1, 0) })
}

func TestArithmetic(t *testing.T) {
	half := New(1, 2)
	third := New(1, 3)

	assert.True(t, half.Add(third).Eq(New(5, 6)))
	assert.True(t, half.Sub(third).Eq(New(1, 6)))
	assert.True(t, half.Mul(third).Eq(New(1, 6)))
	assert.True(t, half.Neg().Eq(New(-1, 2)))
}

func TestOrderingAndInfinities(t *testing.T) {
	require.True(t, negativeInfinite().Lt(New(-1000000, 1)))
	require.True(t, positiveInfinite().Gt(New(1000000, 1)))
	require.True(t, negativeInfinite().Lt(positiveInfinite()))
	require.True(t, Zero().Lt(New(1, 3)))
	assert.True(t, positiveInfinite().IsInfinite())
	assert.False(t, Zero().IsInfinite())
}

func TestSignPredicates(t *testing.T) {
	assert.True(t, New(1, 2).IsPositive())
	assert.True(t, New(-1, 2).IsNegative())
	assert.True(t, Zero().IsZero())
	assert.False(t, Zero().IsPositive())
	assert.False(t, Zero().IsNegative())
}

func TestArithmeticPanicsOnInfinity(t *testing.T) {
	assert.Panics(t, func() { positiveInfinite().Add(New(1, 1)) })
}

func TestString(t *testing.T) {
	assert.Equal(t, "3/4", New(3, 4).String())
	assert.Equal(t, "5", New(5, 1).String())
	assert.Equal(t, "+inf", positiveInfinite().String())
	assert.Equal(t, "-inf", negativeInfinite().String())
}
