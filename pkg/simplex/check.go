package simplex

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// direction names which way a basic variable's value must move to
// become feasible again.
type direction int

const (
	increase direction = 1
	decrease direction = -1
)

// Check implements spec.md §4.4's Bland's-rule pivot loop: repeatedly
// find the least-id basic variable violating its bounds, look for the
// least-id non-basic variable in its row that can absorb the needed
// change, and pivot. Returns true once no basic variable violates its
// bounds (feasible), or false once a violating row admits no eligible
// pivot (infeasible) — in which case GetConflict names the reasons.
//
// Choosing the least id at both steps (rather than, say, the most
// improving pivot) is what gives the loop its termination guarantee:
// Bland's rule forbids cycling regardless of how degenerate the
// tableau is, at the cost of being slower per step than steepest-edge
// or Dantzig pivoting. spec.md §4.4 fixes this tradeoff explicitly.
func (s *Solver) Check() bool {
	s.conflict = nil
	for {
		xi, dir, ok := s.firstViolation()
		if !ok {
			return true
		}
		xj, ok := s.findPivot(xi, dir)
		if !ok {
			s.conflict = s.extractConflict(xi, dir)
			s.log.WithFields(logrus.Fields{"var": xi, "conflict": len(s.conflict)}).Debug("simplex: infeasible")
			return false
		}
		target := s.variable(xi).effectiveLB()
		if dir == decrease {
			target = s.variable(xi).effectiveUB()
		}
		s.pivotAndUpdate(xi, xj, target)
	}
}

// firstViolation returns the least-id basic variable currently outside
// its bounds, and which way it must move to come back inside.
func (s *Solver) firstViolation() (Var, direction, bool) {
	basics := make([]Var, 0, len(s.tableau))
	for x := range s.tableau {
		basics = append(basics, x)
	}
	sort.Slice(basics, func(i, j int) bool { return basics[i] < basics[j] })
	for _, x := range basics {
		vx := s.variable(x)
		if vx.val.Lt(vx.effectiveLB()) {
			return x, increase, true
		}
		if vx.val.Gt(vx.effectiveUB()) {
			return x, decrease, true
		}
	}
	return 0, 0, false
}

// findPivot returns the least-id non-basic variable in row(xi) that can
// absorb a change in the required direction without itself leaving its
// own bounds, per spec.md §4.4's Bland's-rule candidate test.
func (s *Solver) findPivot(xi Var, dir direction) (Var, bool) {
	row := s.tableau[xi]
	for _, xj := range row.Vars() {
		aij := row.Coef(xj)
		vj := s.variable(xj)
		positive := aij.IsPositive()
		// increasing xi needs: (aij>0 && xj can increase) || (aij<0 && xj can decrease)
		// decreasing xi needs: (aij>0 && xj can decrease) || (aij<0 && xj can increase)
		wantIncreaseXj := (dir == increase) == positive
		if wantIncreaseXj {
			if vj.val.Lt(vj.effectiveUB()) {
				return xj, true
			}
		} else {
			if vj.val.Gt(vj.effectiveLB()) {
				return xj, true
			}
		}
	}
	return 0, false
}

// extractConflict collects the reasons responsible for xi's infeasible
// row: xi's own violated bound, plus, for every non-basic xj in xi's
// row, whichever of xj's bounds blocked the movement findPivot needed
// (spec.md §4.4, "Conflict extraction"). The result need not be
// minimal, only sound: every returned reason genuinely participates in
// the contradiction.
func (s *Solver) extractConflict(xi Var, dir direction) []*Constraint {
	seen := make(map[*Constraint]struct{})
	var out []*Constraint
	add := func(reasons map[*Constraint]struct{}) {
		for r := range reasons {
			if r == nil {
				continue
			}
			if _, ok := seen[r]; !ok {
				seen[r] = struct{}{}
				out = append(out, r)
			}
		}
	}

	vxi := s.variable(xi)
	if dir == increase {
		add(vxi.lbs.reasonsAt(vxi.effectiveLB()))
	} else {
		add(vxi.ubs.reasonsAt(vxi.effectiveUB()))
	}

	row := s.tableau[xi]
	for _, xj := range row.Vars() {
		aij := row.Coef(xj)
		vj := s.variable(xj)
		positive := aij.IsPositive()
		wantIncreaseXj := (dir == increase) == positive
		if wantIncreaseXj {
			add(vj.ubs.reasonsAt(vj.effectiveUB()))
		} else {
			add(vj.lbs.reasonsAt(vj.effectiveLB()))
		}
	}
	return out
}

// GetConflict returns the reasons recorded by the most recent Check when
// that Check failed, or nil if it succeeded (or Check has not yet been
// called): every Check clears the previous conflict.
func (s *Solver) GetConflict() []*Constraint { return s.conflict }
