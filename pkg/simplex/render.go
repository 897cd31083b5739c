package simplex

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ratioSolver/LinSpire/pkg/rational"
)

// String renders every variable's bounds and current value, one per
// line, sorted by id — the human-readable dump spec.md §6 names as
// `to_string`, grounded on original_source/src/linspire.cpp's plain-text
// renderer.
func (s *Solver) String() string {
	var b strings.Builder
	for x := 0; x < len(s.vars); x++ {
		v := Var(x)
		vx := s.vars[x]
		fmt.Fprintf(&b, "%s: [%s, %s] = %s", v, vx.effectiveLB(), vx.effectiveUB(), vx.val)
		if row, ok := s.tableau[v]; ok {
			fmt.Fprintf(&b, " = %s", row)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// jsonVariable mirrors original_source/src/linspire.cpp's
// to_json(var&): a variable's bounds and current value, plus whether it
// is currently basic.
type jsonVariable struct {
	Id    int                  `json:"id"`
	Lb    rational.InfRational `json:"lb"`
	Ub    rational.InfRational `json:"ub"`
	Val   rational.InfRational `json:"val"`
	Basic bool                 `json:"basic"`
}

type jsonSolver struct {
	Vars []jsonVariable `json:"vars"`
}

// ToJSON renders the solver's full variable state as JSON, the
// machine-readable counterpart to String.
func (s *Solver) ToJSON() ([]byte, error) {
	out := jsonSolver{Vars: make([]jsonVariable, len(s.vars))}
	for x := range s.vars {
		v := Var(x)
		vx := s.vars[x]
		out.Vars[x] = jsonVariable{
			Id:    x,
			Lb:    vx.effectiveLB(),
			Ub:    vx.effectiveUB(),
			Val:   vx.val,
			Basic: s.isBasic(v),
		}
	}
	return json.Marshal(out)
}
