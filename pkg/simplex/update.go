package simplex

import (
	"github.com/sirupsen/logrus"

	"github.com/ratioSolver/LinSpire/pkg/rational"
)

// update implements spec.md §4.5's update(x, v): x must be non-basic;
// every basic row watching x has its value adjusted incrementally by
// coef(row, x) * (v - val(x)), and x's own value is then set to v. This
// is the propagation step that both bound installation (bounds.go) and
// pivoting (pivotAndUpdate below) use to keep every basic value in
// algebraic agreement with the tableau without ever recomputing a row's
// value from scratch.
func (s *Solver) update(x Var, v rational.InfRational) {
	if s.isBasic(x) {
		panic("simplex: update requires a non-basic variable")
	}
	vx := s.variable(x)
	delta := v.Sub(vx.val)
	if !delta.IsZero() {
		for basic := range s.watchCopy(x) {
			row := s.tableau[basic]
			coef := row.Coef(x)
			if coef.IsZero() {
				continue
			}
			bv := s.variable(basic)
			bv.val = bv.val.Add(delta.Scale(coef))
		}
	}
	vx.val = v
	s.log.WithFields(logrus.Fields{"var": x, "val": v.String()}).Debug("simplex: update")
}

// pivotAndUpdate implements spec.md §4.2's pivot_and_update(x_i, x_j, v):
// bring basic x_i to the target value v by first computing what x_j's
// new value must be to make that true under the current row, updating
// every value via update (which also repairs every other row watching
// x_j), and only then performing the structural pivot so x_j becomes
// basic in x_i's place.
//
// x_i must be basic and x_j a non-basic variable occurring in x_i's row
// with a nonzero coefficient; violating either is a precondition error
// (spec.md §7) and panics, via pivot's own checks.
func (s *Solver) pivotAndUpdate(xi, xj Var, v rational.InfRational) {
	row, ok := s.tableau[xi]
	if !ok {
		panic("simplex: pivotAndUpdate requires a basic x_i")
	}
	aij := row.Coef(xj)
	if aij.IsZero() {
		panic("simplex: pivotAndUpdate requires x_j to occur in x_i's row")
	}

	theta := v.Sub(s.variable(xi).val).Scale(aij.Inv())
	newXj := s.variable(xj).val.Add(theta)

	s.update(xj, newXj)
	s.pivot(xi, xj)
}
