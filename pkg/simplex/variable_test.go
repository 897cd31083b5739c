package simplex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratioSolver/LinSpire/pkg/rational"
)

func TestNewVariableChoosesInRangeValue(t *testing.T) {
	v := newVariable(rational.NegativeInfinite(), rational.PositiveInfinite())
	assert.True(t, v.val.Eq(rational.FromInt(0)))

	v = newVariable(rational.NegativeInfinite(), rational.FromInt(-3))
	assert.True(t, v.val.Eq(rational.FromInt(-3)))

	v = newVariable(rational.FromInt(5), rational.PositiveInfinite())
	assert.True(t, v.val.Eq(rational.FromInt(5)))
}

func TestNewVariablePanicsOnCrossedBounds(t *testing.T) {
	assert.Panics(t, func() { newVariable(rational.FromInt(5), rational.FromInt(1)) })
}

func TestBoundSetReasonedInsertKeepsBothReasons(t *testing.T) {
	var bs boundSet
	c0, c1 := NewConstraint(), NewConstraint()
	bs.insertReasoned(rational.FromInt(3), c0)
	bs.insertReasoned(rational.FromInt(3), c1)

	reasons := bs.reasonsAt(rational.FromInt(3))
	require.Len(t, reasons, 2)
	_, ok0 := reasons[c0]
	_, ok1 := reasons[c1]
	assert.True(t, ok0)
	assert.True(t, ok1)

	max, ok := bs.effectiveMax()
	require.True(t, ok)
	assert.True(t, max.Eq(rational.FromInt(3)))
}

func TestBoundSetAnonymousTighteningDropsWeakerLowerEntries(t *testing.T) {
	var bs boundSet
	bs.insertAnonymous(rational.FromInt(1), false)
	bs.insertAnonymous(rational.FromInt(5), false)
	bs.insertAnonymous(rational.FromInt(3), false)

	// inserting 5 drops 1; inserting 3 drops nothing (5 is not weaker) and
	// installs 3 beside 5, leaving [3, 5].
	max, ok := bs.effectiveMax()
	require.True(t, ok)
	assert.True(t, max.Eq(rational.FromInt(5)))
	assert.Len(t, bs.entries, 2)
}

func TestBoundSetAnonymousTighteningDropsWeakerUpperEntries(t *testing.T) {
	var bs boundSet
	bs.insertAnonymous(rational.FromInt(5), true)
	bs.insertAnonymous(rational.FromInt(1), true)
	bs.insertAnonymous(rational.FromInt(3), true)

	// inserting 1 drops 5; inserting 3 drops nothing (1 is not weaker) and
	// installs 3 beside 1, leaving [1, 3].
	min, ok := bs.effectiveMin()
	require.True(t, ok)
	assert.True(t, min.Eq(rational.FromInt(1)))
	assert.Len(t, bs.entries, 2)
}

func TestBoundSetUnsetRemovesEmptyKey(t *testing.T) {
	var bs boundSet
	c0 := NewConstraint()
	bs.insertReasoned(rational.FromInt(2), c0)
	bs.unset(rational.FromInt(2), c0)
	assert.Empty(t, bs.entries)
}

func TestBoundSetUnsetToleratesValueAlreadyDropped(t *testing.T) {
	var bs boundSet
	assert.NotPanics(t, func() { bs.unset(rational.FromInt(1), NewConstraint()) })
}
