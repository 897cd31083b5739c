// Package lin implements the linear-expression algebra that spec.md §1
// names as an external collaborator of the simplex core: a mapping from
// variable to nonzero rational coefficient plus a rational constant term,
// with add, subtract, scale, equality, and canonical stringification.
//
// There is no lin.hpp in original_source/ (spec.md §1 is explicit that
// this algebra is assumed, not specified), so this package is grounded on
// how original_source/include/linspire.hpp *uses* a lin value (iterating
// `l.vars` as (var, coefficient) pairs alongside a `known_term`) and on
// gokando's RationalLinearSum (pkg/minikanren/rational_linear_sum.go),
// which shapes a linear constraint the same way: coefficients keyed by
// variable, summed against a constant.
package lin

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ratioSolver/LinSpire/pkg/rational"
)

// Var identifies a solver variable by a dense, nonnegative integer id, per
// spec.md §9 ("dense variable ids + index arrays, not pointers").
type Var int

// String renders a variable as "x<id>", the naming spec.md §6 requires of
// every renderer.
func (v Var) String() string { return fmt.Sprintf("x%d", int(v)) }

// Expr is a linear expression Σ coef·var + const over the rationals.
// The zero value is the constant expression 0.
type Expr struct {
	vars  map[Var]rational.Rational
	known rational.Rational
}

// NewExpr builds an expression from a coefficient map and a constant term.
// Zero coefficients are dropped, matching the invariant that Expr.vars
// never holds an explicit zero (lookups of an absent variable already
// mean "coefficient zero").
func NewExpr(coeffs map[Var]rational.Rational, known rational.Rational) Expr {
	e := Expr{vars: make(map[Var]rational.Rational, len(coeffs)), known: known}
	for v, c := range coeffs {
		if !c.IsZero() {
			e.vars[v] = c
		}
	}
	return e
}

// Const returns the constant expression 0 + known, with no variables.
func Const(known rational.Rational) Expr { return Expr{known: known} }

// FromVar returns the expression 1·x + 0.
func FromVar(x Var) Expr {
	return Expr{vars: map[Var]rational.Rational{x: rational.NewInt(1)}}
}

// Term returns the expression c·x + 0.
func Term(c rational.Rational, x Var) Expr {
	if c.IsZero() {
		return Expr{}
	}
	return Expr{vars: map[Var]rational.Rational{x: c}}
}

// KnownTerm returns the constant term of e.
func (e Expr) KnownTerm() rational.Rational { return e.known }

// Coef returns the coefficient of x in e (zero if x does not occur).
func (e Expr) Coef(x Var) rational.Rational {
	if e.vars == nil {
		return rational.Zero()
	}
	c, ok := e.vars[x]
	if !ok {
		return rational.Zero()
	}
	return c
}

// Has reports whether x occurs in e with a nonzero coefficient.
func (e Expr) Has(x Var) bool {
	if e.vars == nil {
		return false
	}
	_, ok := e.vars[x]
	return ok
}

// Vars returns the variables occurring in e in ascending id order, the
// iteration order spec.md §4.4 requires for Bland's rule.
func (e Expr) Vars() []Var {
	vs := make([]Var, 0, len(e.vars))
	for v := range e.vars {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	return vs
}

// NumVars returns the number of variables occurring in e with a nonzero
// coefficient, the quantity spec.md §4.3 step 3 dispatches on.
func (e Expr) NumVars() int { return len(e.vars) }

// Each calls f for every (variable, coefficient) pair in e, in ascending
// variable-id order.
func (e Expr) Each(f func(v Var, c rational.Rational)) {
	for _, v := range e.Vars() {
		f(v, e.vars[v])
	}
}

// clone returns a deep copy of e's coefficient map; every mutator below
// returns a fresh Expr rather than aliasing e's map.
func (e Expr) clone() map[Var]rational.Rational {
	m := make(map[Var]rational.Rational, len(e.vars))
	for v, c := range e.vars {
		m[v] = c
	}
	return m
}

// Add returns e + o.
func (e Expr) Add(o Expr) Expr {
	m := e.clone()
	for v, c := range o.vars {
		sum := m[v].Add(c)
		if sum.IsZero() {
			delete(m, v)
		} else {
			m[v] = sum
		}
	}
	return Expr{vars: m, known: e.known.Add(o.known)}
}

// Sub returns e - o.
func (e Expr) Sub(o Expr) Expr { return e.Add(o.Negate()) }

// Scale returns e scaled by the rational r. Scaling by zero yields the
// empty expression (constant 0), since every term's coefficient becomes
// zero.
func (e Expr) Scale(r rational.Rational) Expr {
	if r.IsZero() {
		return Expr{}
	}
	m := make(map[Var]rational.Rational, len(e.vars))
	for v, c := range e.vars {
		m[v] = c.Mul(r)
	}
	return Expr{vars: m, known: e.known.Mul(r)}
}

// Negate returns -e.
func (e Expr) Negate() Expr { return e.Scale(rational.NewInt(-1)) }

// WithoutVar returns e with x's term removed, used by the assertion
// engine to substitute out a basic variable (spec.md §4.3 step 2).
func (e Expr) WithoutVar(x Var) Expr {
	if !e.Has(x) {
		return e
	}
	m := e.clone()
	delete(m, x)
	return Expr{vars: m, known: e.known}
}

// SubstituteTerm replaces coef(e,x)·x with coef(e,x)·row, the row-install
// substitution spec.md §4.3 step 2 performs for each basic variable x
// occurring in e.
func (e Expr) SubstituteTerm(x Var, row Expr) Expr {
	c := e.Coef(x)
	if c.IsZero() {
		return e
	}
	return e.WithoutVar(x).Add(row.Scale(c))
}

// ZeroConstant returns e with its constant term dropped, keeping the same
// variable coefficients. Used by the slack allocator (pkg/simplex) as a
// slack's tableau row: the row holds only the variable part of a compound
// expression, and the expression's constant is carried by the bound
// asserted on the slack.
func (e Expr) ZeroConstant() Expr {
	return Expr{vars: e.clone(), known: rational.Zero()}
}

// Eq reports whether e and o have identical coefficients and constant
// term.
func (e Expr) Eq(o Expr) bool {
	if !e.known.Eq(o.known) || len(e.vars) != len(o.vars) {
		return false
	}
	for v, c := range e.vars {
		oc, ok := o.vars[v]
		if !ok || !c.Eq(oc) {
			return false
		}
	}
	return true
}

// String renders e canonically as "<c0>*x<id0> + <c1>*x<id1> + ... + k",
// variables sorted by ascending id. This is also the expression-cache key
// (spec.md §3 "Expression cache"): two structurally identical expressions
// — same variables, same coefficients, same constant — always produce the
// same string, and so always resolve to the same slack.
func (e Expr) String() string {
	var b strings.Builder
	for i, v := range e.Vars() {
		if i > 0 {
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "%s*%s", e.vars[v].String(), v.String())
	}
	if !e.known.IsZero() || b.Len() == 0 {
		if b.Len() > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(e.known.String())
	}
	return b.String()
}
