package simplex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratioSolver/LinSpire/pkg/lin"
	"github.com/ratioSolver/LinSpire/pkg/rational"
)

// Five of the tests below (TestEqAndLtOnConstantsAndASingleVariable,
// TestSlackVariablesDetectInfeasibility,
// TestSharedReasonRetractionResetsBounds,
// TestRetractThenReassertStaysConsistent and
// TestConflictExtractionAndRecovery) are a direct translation of
// original_source/tests/test_linspire.cpp's test0-test4, the only
// ground truth this module has for expected solver behavior end to end.

func TestEqAndLtOnConstantsAndASingleVariable(t *testing.T) {
	s := NewSolver()

	ok := s.NewEq(lin.Const(rational.Zero()), rational.Zero(), nil)
	assert.True(t, ok)

	ok = s.NewLt(lin.Const(rational.NewInt(1)), rational.Zero(), true, nil)
	assert.False(t, ok)

	x0 := s.NewVar()
	e := lin.NewExpr(map[Var]rational.Rational{x0: rational.NewInt(2)}, rational.NewInt(3))
	ok = s.NewEq(e, rational.NewInt(7), nil)
	require.True(t, ok)

	assert.True(t, s.Lb(x0).Eq(rational.FromInt(2)))
	assert.True(t, s.Ub(x0).Eq(rational.FromInt(2)))
	assert.True(t, s.Val(x0).Eq(rational.FromInt(2)))

	assert.True(t, s.Check())
}

func TestSlackVariablesDetectInfeasibility(t *testing.T) {
	s := NewSolver()
	x := s.NewVar()
	y := s.NewVar()
	s1 := s.NewVarExpr(lin.NewExpr(map[Var]rational.Rational{x: rational.NewInt(-1), y: rational.NewInt(1)}, rational.Zero()))
	s2 := s.NewVarExpr(lin.NewExpr(map[Var]rational.Rational{x: rational.NewInt(1), y: rational.NewInt(1)}, rational.Zero()))

	require.True(t, s.NewLt(lin.FromVar(x), rational.NewInt(-4), false, nil))  // x <= -4
	require.True(t, s.NewGt(lin.FromVar(x), rational.NewInt(-8), false, nil))  // x >= -8
	require.True(t, s.NewLt(lin.FromVar(s1), rational.NewInt(1), false, nil))  // s1 <= 1
	require.True(t, s.NewGt(lin.FromVar(s2), rational.NewInt(-3), false, nil)) // s2 >= -3

	assert.False(t, s.Check())
}

func TestSharedReasonRetractionResetsBounds(t *testing.T) {
	s := NewSolver()
	x := s.NewVar()
	c0 := NewConstraint()

	require.True(t, s.NewGt(lin.FromVar(x), rational.Zero(), false, c0)) // x >= 0
	require.True(t, s.NewGt(lin.FromVar(x), rational.NewInt(1), false, c0)) // x >= 1, same reason

	assert.True(t, s.Check())

	s.Retract(c0)
	assert.True(t, s.Lb(x).Eq(rational.NegativeInfinite()))
	assert.True(t, s.Ub(x).Eq(rational.PositiveInfinite()))
}

func TestRetractThenReassertStaysConsistent(t *testing.T) {
	s := NewSolver()
	x := s.NewVar()
	y := s.NewVar()
	z := s.NewVar()
	c0 := NewConstraint()
	c1 := NewConstraint()

	yMinusX := lin.NewExpr(map[Var]rational.Rational{y: rational.NewInt(1), x: rational.NewInt(-1)}, rational.Zero())
	require.True(t, s.NewGt(yMinusX, rational.NewInt(1), false, c0)) // y >= x + 1

	zMinusY := lin.NewExpr(map[Var]rational.Rational{z: rational.NewInt(1), y: rational.NewInt(-1)}, rational.Zero())
	require.True(t, s.NewGt(zMinusY, rational.NewInt(1), false, c1)) // z >= y + 1

	require.True(t, s.Check())

	s.Retract(c0)

	xMinusZ := lin.NewExpr(map[Var]rational.Rational{x: rational.NewInt(1), z: rational.NewInt(-1)}, rational.Zero())
	require.True(t, s.NewGt(xMinusZ, rational.NewInt(1), false, nil)) // x >= z + 1 (anonymous)

	assert.True(t, s.Check())
}

func TestRetractAfterAnonymousTighteningDroppedTheBound(t *testing.T) {
	s := NewSolver()
	x := s.NewVar()
	c0 := NewConstraint()

	require.True(t, s.NewGt(lin.FromVar(x), rational.Zero(), false, c0)) // x >= 0, reasoned
	require.True(t, s.NewGt(lin.FromVar(x), rational.NewInt(5), false, nil)) // x >= 5, anonymous, drops the x>=0 entry

	assert.True(t, s.Lb(x).Eq(rational.FromInt(5)))
	assert.NotPanics(t, func() { s.Retract(c0) })
	assert.True(t, s.Lb(x).Eq(rational.FromInt(5))) // the anonymous bound survives retraction
}

func TestAddConstraintReplaysOwnedBounds(t *testing.T) {
	s := NewSolver()
	x := s.NewVar()
	c0 := NewConstraint()
	require.True(t, s.NewGt(lin.FromVar(x), rational.NewInt(1), false, c0)) // x >= 1
	s.Retract(c0)
	assert.True(t, s.Lb(x).Eq(rational.NegativeInfinite()))

	c0.recordLower(x, rational.FromInt(1))
	assert.True(t, s.AddConstraint(c0))
	assert.True(t, s.Lb(x).Eq(rational.FromInt(1)))
}

func TestAddConstraintOnEmptyHandleIsNoOp(t *testing.T) {
	s := NewSolver()
	assert.True(t, s.AddConstraint(NewConstraint()))
	assert.True(t, s.AddConstraint(nil))
}

func TestConflictExtractionAndRecovery(t *testing.T) {
	s := NewSolver()
	x := s.NewVar()
	y := s.NewVar()
	c0 := NewConstraint()
	c1 := NewConstraint()
	c2 := NewConstraint()

	xPlusY := lin.NewExpr(map[Var]rational.Rational{x: rational.NewInt(1), y: rational.NewInt(1)}, rational.Zero())
	require.True(t, s.NewGt(xPlusY, rational.NewInt(1), false, c0)) // x + y >= 1
	require.True(t, s.NewGt(lin.FromVar(x), rational.NewInt(2), false, c1)) // x >= 2
	require.True(t, s.Check())

	require.True(t, s.NewLt(xPlusY, rational.Zero(), false, c2)) // x + y <= 0
	assert.False(t, s.Check())

	conflict := s.GetConflict()
	require.Len(t, conflict, 2)
	assert.ElementsMatch(t, []*Constraint{c0, c2}, conflict)

	s.Retract(c0)
	assert.True(t, s.Check())
}
