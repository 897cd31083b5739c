package simplex

import "github.com/ratioSolver/LinSpire/pkg/rational"

// Constraint is the externally owned handle of spec.md §3: its only state
// is a record of which variable bounds the solver installed on its
// behalf, so that Solver.Retract can undo exactly those bounds regardless
// of the order in which they (or other constraints sharing the same
// bounds) were installed.
//
// lbsOwned/ubsOwned track a *set* of owned values per variable, not one:
// spec §8 scenario C (original test2) asserts two successive lower bounds
// on the same x under the same reason (x>=0, then x>=1), both of which
// must be retractable independently of each other.
//
// Constraint mirrors original_source/include/linspire.hpp's
// `class constraint { std::map<var, inf_rational> lbs, ubs; }`: a
// caller-owned, solver-written ledger. The solver holds non-owning
// references to Constraint values in its bound sets and conflict list
// (spec.md §5, "Reasons are borrowed handles, not owned nodes" — spec.md
// §9) — Go's garbage collector makes the "weak reference" from the
// original an ordinary pointer, since nothing here needs to outlive a
// Constraint's own owner to be collected.
type Constraint struct {
	lbsOwned map[Var][]rational.InfRational
	ubsOwned map[Var][]rational.InfRational
}

// NewConstraint returns a fresh, empty constraint handle. The handle must
// exist before any assertion cites it as a reason (spec.md §3,
// "Lifecycle").
func NewConstraint() *Constraint {
	return &Constraint{
		lbsOwned: make(map[Var][]rational.InfRational),
		ubsOwned: make(map[Var][]rational.InfRational),
	}
}

// recordLower notes that the solver installed lower bound v on x on
// behalf of this constraint, so Retract can later undo it. A value
// already recorded for x is not duplicated: InfRational is not
// comparable (it wraps big.Rat), so membership is checked via Eq.
func (c *Constraint) recordLower(x Var, v rational.InfRational) {
	if c == nil {
		return
	}
	c.lbsOwned[x] = appendOwned(c.lbsOwned[x], v)
}

// recordUpper notes that the solver installed upper bound v on x on
// behalf of this constraint.
func (c *Constraint) recordUpper(x Var, v rational.InfRational) {
	if c == nil {
		return
	}
	c.ubsOwned[x] = appendOwned(c.ubsOwned[x], v)
}

func appendOwned(vs []rational.InfRational, v rational.InfRational) []rational.InfRational {
	for _, existing := range vs {
		if existing.Eq(v) {
			return vs
		}
	}
	return append(vs, v)
}

// Empty reports whether c owns no bounds at all — the case spec.md §5
// says the solver treats "an externally supplied empty-bound constraint"
// as a no-op assertion.
func (c *Constraint) Empty() bool {
	return c == nil || (len(c.lbsOwned) == 0 && len(c.ubsOwned) == 0)
}

// clear drops every bound this constraint owns, the last step of
// Solver.Retract (spec.md §4.7 step 3). The handle itself survives and
// may be reused by a later assertion or AddConstraint call (spec.md §3,
// "Lifecycle").
func (c *Constraint) clear() {
	c.lbsOwned = make(map[Var][]rational.InfRational)
	c.ubsOwned = make(map[Var][]rational.InfRational)
}
