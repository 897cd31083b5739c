package rational

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfRationalOrdering(t *testing.T) {
	q := FromRational(New(1, 1))
	qPlusDelta := InfRational{Value: New(1, 1), Eps: New(1, 1)}
	qMinusDelta := InfRational{Value: New(1, 1), Eps: New(-1, 1)}

	assert.True(t, qMinusDelta.Lt(q))
	assert.True(t, q.Lt(qPlusDelta))
	assert.True(t, qMinusDelta.Lt(qPlusDelta))

	qEpsilon := FromRational(New(1, 1).Add(New(1, 1000)))
	assert.True(t, qPlusDelta.Lt(qEpsilon))
}

func TestInfRationalArithmetic(t *testing.T) {
	a := InfRational{Value: New(1, 2), Eps: New(1, 1)}
	b := InfRational{Value: New(1, 3), Eps: New(-1, 1)}
	sum := a.Add(b)
	assert.True(t, sum.Value.Eq(New(5, 6)))
	assert.True(t, sum.Eps.IsZero())

	scaled := a.Scale(New(2, 1))
	assert.True(t, scaled.Value.Eq(New(1, 1)))
	assert.True(t, scaled.Eps.Eq(New(2, 1)))
}

func TestInfRationalInfinities(t *testing.T) {
	assert.True(t, NegativeInfinite().Lt(FromInt(0)))
	assert.True(t, PositiveInfinite().Gt(FromInt(0)))
	assert.True(t, PositiveInfinite().IsInfinite())
}

func TestInfRationalString(t *testing.T) {
	assert.Equal(t, "3/4", FromRational(New(3, 4)).String())
	assert.Equal(t, "1+1δ", InfRational{Value: New(1, 1), Eps: New(1, 1)}.String())
	assert.Equal(t, "1-1δ", InfRational{Value: New(1, 1), Eps: New(-1, 1)}.String())
}
