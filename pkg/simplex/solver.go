package simplex

import (
	"github.com/sirupsen/logrus"

	"github.com/ratioSolver/LinSpire/pkg/lin"
	"github.com/ratioSolver/LinSpire/pkg/rational"
)

// Solver is the incremental, retractable linear feasibility solver over
// the rationals described by spec.md §1. It is single-threaded and
// synchronous (spec.md §5): every exported method must be called from one
// goroutine at a time, with no concurrent access to the same Solver.
//
// Solver owns every variable, tableau row, watch-index entry, and cached
// slack it has ever allocated; ids are never recycled (spec.md §3,
// "Lifecycle"). Constraint handles are shared with the caller: the
// Solver only ever holds a non-owning *Constraint pointer (spec.md §5,
// "Ownership").
type Solver struct {
	vars []*variable // index is the variable id

	tableau map[Var]lin.Expr      // basic variable -> its row, over non-basic variables only
	watch   map[Var]map[Var]struct{} // non-basic variable -> set of basic variables whose row mentions it
	exprs   map[string]Var        // expression cache: canonical Expr.String() -> slack variable id

	conflict []*Constraint // the reasons recorded by the most recent Check; nil if it succeeded

	log *logrus.Logger
}

// NewSolver returns an empty solver with no variables and no constraints.
func NewSolver() *Solver {
	return &Solver{
		tableau: make(map[Var]lin.Expr),
		watch:   make(map[Var]map[Var]struct{}),
		exprs:   make(map[string]Var),
		log:     logrus.StandardLogger(),
	}
}

// SetLogger overrides the logrus logger used for the solver's internal
// tracing (pivots, bound installs, conflicts). Intended for callers that
// want solver diagnostics routed into their own logging pipeline; the
// zero value (NewSolver's default) logs to logrus's standard logger.
func (s *Solver) SetLogger(l *logrus.Logger) { s.log = l }

// VarOption configures a new variable's initial bounds, the idiomatic Go
// replacement for original_source/include/linspire.hpp's C++ default
// arguments `new_var(lb = -inf, ub = +inf)`.
type VarOption func(*varOptions)

type varOptions struct {
	lb, ub rational.InfRational
}

// WithLowerBound sets a new variable's initial lower bound.
func WithLowerBound(lb rational.InfRational) VarOption {
	return func(o *varOptions) { o.lb = lb }
}

// WithUpperBound sets a new variable's initial upper bound.
func WithUpperBound(ub rational.InfRational) VarOption {
	return func(o *varOptions) { o.ub = ub }
}

// NewVar creates a fresh non-basic variable with optional bounds,
// defaulting to (-∞, +∞) (spec.md §6, `new_var(lb, ub)`). Panics if
// lb > ub, a precondition violation per spec.md §7.
func (s *Solver) NewVar(opts ...VarOption) Var {
	o := varOptions{lb: rational.NegativeInfinite(), ub: rational.PositiveInfinite()}
	for _, opt := range opts {
		opt(&o)
	}
	v := newVariable(o.lb, o.ub)
	s.vars = append(s.vars, v)
	id := Var(len(s.vars) - 1)
	s.log.WithFields(logrus.Fields{"var": id, "lb": o.lb.String(), "ub": o.ub.String()}).Debug("simplex: new variable")
	return id
}

// NewVarExpr creates (or returns a cached) slack variable naming the
// compound linear expression e (spec.md §6, `new_var(lin)`). e must
// mention at least two variables; a single-variable or constant
// expression has no need of a slack and should be asserted directly.
// The slack stands for e's variable part: a nonzero constant term of e is
// not included in its row, bounds or value.
func (s *Solver) NewVarExpr(e lin.Expr) Var {
	if e.NumVars() < 2 {
		panic("simplex: NewVarExpr requires an expression with at least two variables")
	}
	return s.internSlack(e)
}

// internSlack implements the expression-cache lookup of spec.md §3 and
// §4.3's "≥2 vars" case: return the existing slack for e's canonical
// string if one exists, else allocate a fresh slack.
//
// The slack names e's variable part only: its tableau row is
// e.ZeroConstant(), and its bounds and value at birth are that row's
// derived bounds and value, so every row, slack or not, satisfies
// spec.md §8's testable invariant 2 (val(x_i) = Σ a_ij·val(x_j), no
// constant term). e's constant term k is not part of the slack; the
// assertion engine carries it into the bound it places on the slack
// (assertReduced in assert.go). The cache key is e.String(), constant
// included, so expressions that differ only in their constant get
// separate slacks with identical rows.
func (s *Solver) internSlack(e lin.Expr) Var {
	key := e.String()
	if v, ok := s.exprs[key]; ok {
		return v
	}
	row := e.ZeroConstant()
	sv := newVariable(s.lbExpr(row), s.ubExpr(row))
	sv.val = s.valExpr(row)
	s.vars = append(s.vars, sv)
	id := Var(len(s.vars) - 1)
	s.installRow(id, row)
	s.exprs[key] = id
	s.log.WithFields(logrus.Fields{"slack": id, "expr": key}).Debug("simplex: allocated slack")
	return id
}

// isBasic reports whether x currently appears as a tableau row's key.
func (s *Solver) isBasic(x Var) bool {
	_, ok := s.tableau[x]
	return ok
}

func (s *Solver) variable(x Var) *variable {
	if int(x) < 0 || int(x) >= len(s.vars) {
		panic("simplex: unknown variable")
	}
	return s.vars[x]
}

// Lb returns x's effective lower bound.
func (s *Solver) Lb(x Var) rational.InfRational { return s.variable(x).effectiveLB() }

// Ub returns x's effective upper bound.
func (s *Solver) Ub(x Var) rational.InfRational { return s.variable(x).effectiveUB() }

// Val returns x's current value.
func (s *Solver) Val(x Var) rational.InfRational { return s.variable(x).val }

// LbExpr returns the derived lower bound of expression e, evaluating each
// term against the lower or upper bound of its variable depending on the
// sign of its coefficient (spec.md §6).
func (s *Solver) LbExpr(e lin.Expr) rational.InfRational { return s.lbExpr(e) }

// UbExpr returns the derived upper bound of expression e (spec.md §6).
func (s *Solver) UbExpr(e lin.Expr) rational.InfRational { return s.ubExpr(e) }

// ValExpr returns the derived current value of expression e (spec.md
// §6).
func (s *Solver) ValExpr(e lin.Expr) rational.InfRational { return s.valExpr(e) }

func (s *Solver) lbExpr(e lin.Expr) rational.InfRational {
	b := rational.FromRational(e.KnownTerm())
	e.Each(func(v Var, c rational.Rational) {
		if c.IsPositive() {
			b = b.Add(s.Lb(v).Scale(c))
		} else {
			b = b.Add(s.Ub(v).Scale(c))
		}
	})
	return b
}

func (s *Solver) ubExpr(e lin.Expr) rational.InfRational {
	b := rational.FromRational(e.KnownTerm())
	e.Each(func(v Var, c rational.Rational) {
		if c.IsPositive() {
			b = b.Add(s.Ub(v).Scale(c))
		} else {
			b = b.Add(s.Lb(v).Scale(c))
		}
	})
	return b
}

func (s *Solver) valExpr(e lin.Expr) rational.InfRational {
	b := rational.FromRational(e.KnownTerm())
	e.Each(func(v Var, c rational.Rational) {
		b = b.Add(s.Val(v).Scale(c))
	})
	return b
}

// Match reports whether the bounds on l0 - l1 admit zero (spec.md §6,
// `match(l0, l1)`): true iff lb(l0-l1) <= 0 <= ub(l0-l1).
func (s *Solver) Match(l0, l1 lin.Expr) bool {
	diff := l0.Sub(l1)
	lb, ub := s.lbExpr(diff), s.ubExpr(diff)
	zero := rational.FromInt(0)
	return lb.Le(zero) && zero.Le(ub)
}
