package lin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratioSolver/LinSpire/pkg/rational"
)

func r(n, d int64) rational.Rational { return rational.New(n, d) }

func TestExprAddSub(t *testing.T) {
	x, y := Var(0), Var(1)
	e1 := NewExpr(map[Var]rational.Rational{x: r(1, 1), y: r(2, 1)}, r(3, 1))
	e2 := NewExpr(map[Var]rational.Rational{x: r(-1, 1), y: r(1, 1)}, r(1, 1))

	sum := e1.Add(e2)
	assert.True(t, sum.Coef(x).IsZero())
	assert.True(t, sum.Coef(y).Eq(r(3, 1)))
	assert.True(t, sum.KnownTerm().Eq(r(4, 1)))

	diff := e1.Sub(e2)
	assert.True(t, diff.Coef(x).Eq(r(2, 1)))
	assert.True(t, diff.Coef(y).Eq(r(1, 1)))
	assert.True(t, diff.KnownTerm().Eq(r(2, 1)))
}

func TestExprScale(t *testing.T) {
	x := Var(0)
	e := NewExpr(map[Var]rational.Rational{x: r(2, 1)}, r(3, 1))
	scaled := e.Scale(r(1, 2))
	assert.True(t, scaled.Coef(x).Eq(r(1, 1)))
	assert.True(t, scaled.KnownTerm().Eq(r(3, 2)))

	zeroed := e.Scale(rational.Zero())
	assert.Equal(t, 0, zeroed.NumVars())
	assert.True(t, zeroed.KnownTerm().IsZero())
}

func TestExprSubstituteTerm(t *testing.T) {
	// e = 2*x1 + 3, row: x1 = y0 + 1 (a basic x1 in terms of non-basic y0)
	x1, y0 := Var(1), Var(0)
	e := NewExpr(map[Var]rational.Rational{x1: r(2, 1)}, r(3, 1))
	row := NewExpr(map[Var]rational.Rational{y0: r(1, 1)}, r(1, 1))

	sub := e.SubstituteTerm(x1, row)
	require.False(t, sub.Has(x1))
	assert.True(t, sub.Coef(y0).Eq(r(2, 1)))
	assert.True(t, sub.KnownTerm().Eq(r(5, 1))) // 3 + 2*1
}

func TestExprStringIsCanonical(t *testing.T) {
	x, y := Var(0), Var(2)
	e1 := NewExpr(map[Var]rational.Rational{y: r(1, 1), x: r(2, 1)}, r(0, 1))
	e2 := NewExpr(map[Var]rational.Rational{x: r(2, 1), y: r(1, 1)}, r(0, 1))
	assert.Equal(t, e1.String(), e2.String())
}

func TestExprEq(t *testing.T) {
	x := Var(0)
	e1 := NewExpr(map[Var]rational.Rational{x: r(1, 2)}, r(1, 1))
	e2 := NewExpr(map[Var]rational.Rational{x: r(2, 4)}, r(1, 1))
	assert.True(t, e1.Eq(e2))
}
