package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerFeasibleScript(t *testing.T) {
	src := `
# x + y >= 1, x >= 2 is feasible
var x
var y
ge c0 x+y 1
ge c1 x 2
check
`
	r := NewRunner()
	results, err := r.Run(strings.NewReader(src))
	require.NoError(t, err)
	last := results[len(results)-1]
	assert.True(t, last.Ok)
}

func TestRunnerDetectsInfeasibility(t *testing.T) {
	src := `
var x
var y
ge c0 x+y 1
ge c1 x 2
check
le c2 x+y 0
check
`
	r := NewRunner()
	results, err := r.Run(strings.NewReader(src))
	require.NoError(t, err)
	assert.True(t, results[2].Ok)
	assert.False(t, results[6].Ok)
}

func TestRunnerRetract(t *testing.T) {
	src := `
var x
ge c0 x 0
ge c0 x 1
check
retract c0
`
	r := NewRunner()
	results, err := r.Run(strings.NewReader(src))
	require.NoError(t, err)
	for _, res := range results {
		assert.True(t, res.Ok)
	}
}

func TestRunnerRejectsUnknownVariable(t *testing.T) {
	r := NewRunner()
	_, err := r.Run(strings.NewReader("eq - x 0\n"))
	assert.Error(t, err)
}

func TestRunnerParsesNegativeAndConstantTerms(t *testing.T) {
	src := `
var x
var y
eq c0 2*x-3*y+7 0
check
`
	r := NewRunner()
	results, err := r.Run(strings.NewReader(src))
	require.NoError(t, err)
	assert.True(t, results[len(results)-1].Ok)
}
