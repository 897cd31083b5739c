package simplex

import (
	"github.com/sirupsen/logrus"

	"github.com/ratioSolver/LinSpire/pkg/rational"
)

// setLB implements spec.md §4.1's set_lb(x, v, reason): install v as a
// lower bound on x, reasoned or anonymous depending on whether reason is
// nil, failing iff v exceeds x's effective upper bound. On success, a
// non-basic x whose value now violates its bounds is repaired via update
// (the "Success side effect on non-basic x" of spec.md §4.1); a basic x
// is left for the next Check to repair.
func (s *Solver) setLB(x Var, v rational.InfRational, reason *Constraint) bool {
	vx := s.variable(x)
	if v.Gt(vx.effectiveUB()) {
		s.log.WithFields(logrus.Fields{"var": x, "lb": v.String(), "ub": vx.effectiveUB().String()}).
			Debug("simplex: rejected lower bound above upper bound")
		return false
	}
	if reason != nil {
		vx.lbs.insertReasoned(v, reason)
		reason.recordLower(x, v)
	} else {
		vx.lbs.insertAnonymous(v, false)
	}
	s.log.WithFields(logrus.Fields{"var": x, "lb": v.String()}).Debug("simplex: installed lower bound")
	s.repairNonBasic(x)
	return true
}

// setUB implements spec.md §4.1's set_ub(x, v, reason), symmetric to
// setLB.
func (s *Solver) setUB(x Var, v rational.InfRational, reason *Constraint) bool {
	vx := s.variable(x)
	if v.Lt(vx.effectiveLB()) {
		s.log.WithFields(logrus.Fields{"var": x, "ub": v.String(), "lb": vx.effectiveLB().String()}).
			Debug("simplex: rejected upper bound below lower bound")
		return false
	}
	if reason != nil {
		vx.ubs.insertReasoned(v, reason)
		reason.recordUpper(x, v)
	} else {
		vx.ubs.insertAnonymous(v, true)
	}
	s.log.WithFields(logrus.Fields{"var": x, "ub": v.String()}).Debug("simplex: installed upper bound")
	s.repairNonBasic(x)
	return true
}

// repairNonBasic pushes a non-basic variable's value back inside its
// (possibly just-tightened) bounds, propagating the delta through the
// watch index. Basic variables are left alone: Check repairs them.
func (s *Solver) repairNonBasic(x Var) {
	if s.isBasic(x) {
		return
	}
	vx := s.variable(x)
	lb, ub := vx.effectiveLB(), vx.effectiveUB()
	switch {
	case vx.val.Lt(lb):
		s.update(x, lb)
	case vx.val.Gt(ub):
		s.update(x, ub)
	}
}

// unsetLB implements spec.md §4.1's "Unset is symmetric" rule and
// spec.md §4.7 step 1: remove reason from v's reason set on x's lower
// bound, dropping the key entirely if it becomes empty. A no-op if v is
// no longer a key at all — an anonymous tightening may have already
// dropped it out from under reason.
func (s *Solver) unsetLB(x Var, v rational.InfRational, reason *Constraint) {
	s.variable(x).lbs.unset(v, reason)
}

// unsetUB is the upper-bound counterpart of unsetLB.
func (s *Solver) unsetUB(x Var, v rational.InfRational, reason *Constraint) {
	s.variable(x).ubs.unset(v, reason)
}
