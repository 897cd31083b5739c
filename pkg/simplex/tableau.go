package simplex

import (
	"github.com/sirupsen/logrus"

	"github.com/ratioSolver/LinSpire/pkg/lin"
)

// installRow makes x basic with row x = e, where e mentions only
// non-basic variables (spec.md §3, "Tableau row"). It is the caller's
// responsibility to ensure e's known term is whatever the caller intends
// to persist — the expression cache's slack rows are always installed
// with a zero constant (see internSlack in solver.go).
func (s *Solver) installRow(x Var, e lin.Expr) {
	s.tableau[x] = e
	for _, v := range e.Vars() {
		s.addWatch(v, x)
	}
}

// removeRow deletes x's row from the tableau and drops every watch entry
// it held, the last step of pivot (spec.md §4.2 step 4).
func (s *Solver) removeRow(x Var) {
	row, ok := s.tableau[x]
	if !ok {
		return
	}
	for _, v := range row.Vars() {
		s.removeWatch(v, x)
	}
	delete(s.tableau, x)
}

func (s *Solver) addWatch(nonBasic, basic Var) {
	set, ok := s.watch[nonBasic]
	if !ok {
		set = make(map[Var]struct{})
		s.watch[nonBasic] = set
	}
	set[basic] = struct{}{}
}

func (s *Solver) removeWatch(nonBasic, basic Var) {
	set, ok := s.watch[nonBasic]
	if !ok {
		return
	}
	delete(set, basic)
	if len(set) == 0 {
		delete(s.watch, nonBasic)
	}
}

// pivot swaps the basic/non-basic roles of x_i and x_j, rewriting every
// other row that referenced x_j, per spec.md §4.2. x_i must currently be
// basic, x_j non-basic, and coef(row(x_i), x_j) must be nonzero —
// violating any of these is a precondition error (spec.md §7) and panics.
//
// pivot does not touch any variable's value: it is a pure structural
// rewrite of the tableau, safe to call only once the caller (ordinarily
// pivotAndUpdate) has already brought every value into algebraic
// agreement with the rewritten rows.
func (s *Solver) pivot(xi, xj Var) {
	rowXi, ok := s.tableau[xi]
	if !ok {
		panic("simplex: pivot requires a basic x_i")
	}
	if s.isBasic(xj) {
		panic("simplex: pivot requires a non-basic x_j")
	}
	aij := rowXi.Coef(xj)
	if aij.IsZero() {
		panic("simplex: pivot requires a nonzero pivot coefficient")
	}

	inv := aij.Inv()
	rest := rowXi.WithoutVar(xj)
	rowXj := lin.FromVar(xi).Sub(rest).Scale(inv)

	for basic := range s.watchCopy(xj) {
		if basic == xi {
			continue
		}
		rowR := s.tableau[basic]
		b := rowR.Coef(xj)
		newRow := rowR.WithoutVar(xj).Add(rowXj.Scale(b))
		s.rewriteRow(basic, rowR, newRow)
	}

	s.removeRow(xi)
	s.tableau[xj] = rowXj
	for _, v := range rowXj.Vars() {
		s.addWatch(v, xj)
	}

	s.log.WithFields(logrus.Fields{"out": xi, "in": xj}).Debug("simplex: pivot")
}

// watchCopy returns a snapshot of the basic rows currently watching v, so
// callers can safely mutate the watch index (via rewriteRow/removeRow)
// while iterating.
func (s *Solver) watchCopy(v Var) map[Var]struct{} {
	out := make(map[Var]struct{}, len(s.watch[v]))
	for basic := range s.watch[v] {
		out[basic] = struct{}{}
	}
	return out
}

// rewriteRow replaces basic's row, adjusting the watch index for exactly
// the variables whose presence changed between old and new.
func (s *Solver) rewriteRow(basic Var, old, new lin.Expr) {
	oldVars := make(map[Var]struct{}, old.NumVars())
	for _, v := range old.Vars() {
		oldVars[v] = struct{}{}
	}
	newVars := make(map[Var]struct{}, new.NumVars())
	for _, v := range new.Vars() {
		newVars[v] = struct{}{}
	}
	for v := range oldVars {
		if _, still := newVars[v]; !still {
			s.removeWatch(v, basic)
		}
	}
	for v := range newVars {
		if _, before := oldVars[v]; !before {
			s.addWatch(v, basic)
		}
	}
	s.tableau[basic] = new
}
