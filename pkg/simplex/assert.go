package simplex

import (
	"github.com/sirupsen/logrus"

	"github.com/ratioSolver/LinSpire/pkg/lin"
	"github.com/ratioSolver/LinSpire/pkg/rational"
)

// Relation names the comparison an asserted expression is checked
// against zero, per spec.md §4.3's normalized assertion shape "e OP 0".
type Relation int

const (
	LE Relation = iota // e <= 0
	GE                 // e >= 0
	EQ                 // e == 0
	LT                 // e < 0, encoded as e <= 0 - δ
	GT                 // e > 0, encoded as e >= 0 + δ
)

func (r Relation) String() string {
	switch r {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "=="
	case LT:
		return "<"
	case GT:
		return ">"
	default:
		return "?"
	}
}

// reduceExpr substitutes every basic variable occurring in e with its
// tableau row, per spec.md §4.3 step 2. Since every row mentions only
// non-basic variables, one pass over e's current variables is enough:
// substitution can never reintroduce a basic variable.
func (s *Solver) reduceExpr(e lin.Expr) lin.Expr {
	for _, v := range e.Vars() {
		if row, ok := s.tableau[v]; ok {
			e = e.SubstituteTerm(v, row)
		}
	}
	return e
}

// strictBound shifts a plain rational bound value by one infinitesimal
// unit in the direction dir (-1 for a strict upper bound, +1 for a
// strict lower bound), the δ-encoding of spec.md §3 that turns `<`/`>`
// into non-strict comparisons against ⟨value, ±1⟩.
func strictBound(value rational.Rational, dir int64) rational.InfRational {
	return rational.InfRational{Value: value, Eps: rational.NewInt(dir)}
}

// assertReduced implements spec.md §4.3 step 3: dispatch on the reduced
// expression's variable count and install whatever bound(s) the
// relation requires, tagged with reason. Returns false iff the
// assertion is immediately refutable (a 0-var constant contradiction,
// or a bound crossing the opposing bound already in effect) — deeper
// infeasibility is only found by a later Check.
func (s *Solver) assertReduced(rel Relation, e lin.Expr, reason *Constraint) bool {
	switch e.NumVars() {
	case 0:
		return s.assertConstant(rel, e.KnownTerm())
	case 1:
		x := e.Vars()[0]
		c := e.Coef(x)
		return s.assertSingleVar(rel, x, c, e.KnownTerm(), reason)
	default:
		slack := s.internSlack(e)
		return s.assertSingleVar(rel, slack, rational.NewInt(1), e.KnownTerm(), reason)
	}
}

// assertConstant checks a variable-free reduced expression's constant
// term against the relation directly; there is no bound to install, and
// no reason is consulted, since no variable state changes.
func (s *Solver) assertConstant(rel Relation, k rational.Rational) bool {
	zero := rational.Zero()
	switch rel {
	case LE:
		return k.Le(zero)
	case GE:
		return k.Ge(zero)
	case EQ:
		return k.Eq(zero)
	case LT:
		return k.Lt(zero)
	case GT:
		return k.Gt(zero)
	default:
		panic("simplex: unknown relation")
	}
}

// assertSingleVar installs the bound(s) on x implied by c*x + k OP 0,
// flipping the relation's direction when c is negative (spec.md §4.3
// step 3, "1 var" case: x OP' (-k/c) where OP' = OP if c > 0, else the
// mirror of OP).
func (s *Solver) assertSingleVar(rel Relation, x Var, c, k rational.Rational, reason *Constraint) bool {
	bound := k.Neg().Div(c)
	if c.IsNegative() {
		rel = mirror(rel)
	}
	switch rel {
	case LE:
		return s.setUB(x, rational.FromRational(bound), reason)
	case GE:
		return s.setLB(x, rational.FromRational(bound), reason)
	case LT:
		return s.setUB(x, strictBound(bound, -1), reason)
	case GT:
		return s.setLB(x, strictBound(bound, 1), reason)
	case EQ:
		return s.setLB(x, rational.FromRational(bound), reason) && s.setUB(x, rational.FromRational(bound), reason)
	default:
		panic("simplex: unknown relation")
	}
}

func mirror(rel Relation) Relation {
	switch rel {
	case LE:
		return GE
	case GE:
		return LE
	case LT:
		return GT
	case GT:
		return LT
	default:
		return rel
	}
}

// assertExpr asserts rel(e, 0) on behalf of reason, per spec.md §4.3.
// reason may be nil (an anonymous, unretractable assertion); a non-nil
// but Empty reason asserts normally and only starts accumulating owned
// bounds from this call on. Returns false iff the assertion is
// immediately refutable. This is the low-level primitive NewEq/NewLt/
// NewGt are built from.
func (s *Solver) assertExpr(rel Relation, e lin.Expr, reason *Constraint) bool {
	reduced := s.reduceExpr(e)
	ok := s.assertReduced(rel, reduced, reason)
	s.log.WithFields(logrus.Fields{"rel": rel.String(), "expr": e.String(), "ok": ok}).Debug("simplex: assert")
	return ok
}

// NewEq asserts e == rhs on behalf of reason (nil for an anonymous,
// unretractable assertion), per original_source's `new_eq(lin, rhs,
// reason)`.
func (s *Solver) NewEq(e lin.Expr, rhs rational.Rational, reason *Constraint) bool {
	return s.assertExpr(EQ, e.Sub(lin.Const(rhs)), reason)
}

// NewLt asserts e <= rhs, or e < rhs when strict is true, per
// original_source's `new_lt(lin, rhs, strict, reason)`.
func (s *Solver) NewLt(e lin.Expr, rhs rational.Rational, strict bool, reason *Constraint) bool {
	rel := LE
	if strict {
		rel = LT
	}
	return s.assertExpr(rel, e.Sub(lin.Const(rhs)), reason)
}

// NewGt asserts e >= rhs, or e > rhs when strict is true, per
// original_source's `new_gt(lin, rhs, strict, reason)`.
func (s *Solver) NewGt(e lin.Expr, rhs rational.Rational, strict bool, reason *Constraint) bool {
	rel := GE
	if strict {
		rel = GT
	}
	return s.assertExpr(rel, e.Sub(lin.Const(rhs)), reason)
}

// AddConstraint replays a constraint handle's already-owned bounds
// directly into the variable store, per original_source/include/
// linspire.hpp's implied `solver::add_constraint` (a retracted handle
// may be re-asserted, spec.md §5's "Retracted handles may be
// re-asserted" — this is the concrete implementation the distillation
// names in its operation table but does not elaborate). Unlike NewEq/
// NewLt/NewGt, no expression or reduction is involved: c's own
// lbsOwned/ubsOwned maps are the source of truth, replayed through the
// same setLB/setUB path an expression-driven assertion would use. A nil
// or Empty c is a no-op success.
func (s *Solver) AddConstraint(c *Constraint) bool {
	if c.Empty() {
		return true
	}
	ok := true
	for x, vs := range c.lbsOwned {
		for _, v := range vs {
			ok = s.setLB(x, v, c) && ok
		}
	}
	for x, vs := range c.ubsOwned {
		for _, v := range vs {
			ok = s.setUB(x, v, c) && ok
		}
	}
	return ok
}
