package rational

import (
	"encoding/json"
	"fmt"
)

// InfRational is the pair ⟨q, k⟩ = value + k·δ from spec.md §3, where δ is
// a positive infinitesimal smaller than every positive rational. It is
// used throughout pkg/simplex to encode strict inequalities (`<`, `>`) as
// non-strict ones: `x < k` becomes `x <= k - δ`.
//
// Ordering is lexicographic on (value, eps): ⟨q,0⟩ < ⟨q,1⟩ < ⟨q+ε,k⟩ for
// every positive rational ε and every k, matching
// original_source/include/var.hpp's utils::inf_rational.
type InfRational struct {
	Value Rational
	Eps   Rational
}

// FromRational lifts a plain rational to an InfRational with zero
// infinitesimal coefficient.
func FromRational(v Rational) InfRational { return InfRational{Value: v, Eps: Zero()} }

// FromInt lifts a plain integer to an InfRational with zero infinitesimal
// coefficient.
func FromInt(n int64) InfRational { return FromRational(NewInt(n)) }

// PositiveInfinite is +∞ (infinitesimal coefficient is irrelevant at an
// infinite value, and is kept at zero).
func PositiveInfinite() InfRational { return FromRational(Rational{s: posInf}) }

// NegativeInfinite is -∞.
func NegativeInfinite() InfRational { return FromRational(Rational{s: negInf}) }

// IsInfinite reports whether the value component is one of the two
// infinity sentinels.
func (ir InfRational) IsInfinite() bool { return ir.Value.IsInfinite() }

// Cmp returns -1, 0, or 1 per the lexicographic order on (Value, Eps).
// An infinite Value short-circuits the comparison: the Eps coordinate of
// an infinity carries no meaning.
func (ir InfRational) Cmp(o InfRational) int {
	if ir.Value.s != finite || o.Value.s != finite {
		return ir.Value.Cmp(o.Value)
	}
	if c := ir.Value.Cmp(o.Value); c != 0 {
		return c
	}
	return ir.Eps.Cmp(o.Eps)
}

func (ir InfRational) Lt(o InfRational) bool { return ir.Cmp(o) < 0 }
func (ir InfRational) Le(o InfRational) bool { return ir.Cmp(o) <= 0 }
func (ir InfRational) Gt(o InfRational) bool { return ir.Cmp(o) > 0 }
func (ir InfRational) Ge(o InfRational) bool { return ir.Cmp(o) >= 0 }
func (ir InfRational) Eq(o InfRational) bool { return ir.Cmp(o) == 0 }

// Add returns ⟨a,b⟩ + ⟨c,d⟩ = ⟨a+c, b+d⟩ per spec.md §6.
func (ir InfRational) Add(o InfRational) InfRational {
	if ir.Value.IsInfinite() {
		return ir
	}
	if o.Value.IsInfinite() {
		return o
	}
	return InfRational{Value: ir.Value.Add(o.Value), Eps: ir.Eps.Add(o.Eps)}
}

// Sub returns ir - o.
func (ir InfRational) Sub(o InfRational) InfRational { return ir.Add(o.Neg()) }

// Neg returns -ir.
func (ir InfRational) Neg() InfRational {
	if ir.Value.IsInfinite() {
		return InfRational{Value: ir.Value.Neg()}
	}
	return InfRational{Value: ir.Value.Neg(), Eps: ir.Eps.Neg()}
}

// Scale returns ⟨a,b⟩ · r = ⟨a·r, b·r⟩ per spec.md §6. Scaling by a
// negative rational flips which sentinel an infinite Value maps to.
func (ir InfRational) Scale(r Rational) InfRational {
	if ir.Value.IsInfinite() {
		if r.IsZero() {
			panic("rational: scaling an infinity by zero is undefined")
		}
		if r.IsNegative() {
			return InfRational{Value: ir.Value.Neg()}
		}
		return ir
	}
	return InfRational{Value: ir.Value.Mul(r), Eps: ir.Eps.Mul(r)}
}

// IsZero reports whether both coordinates are exactly zero.
func (ir InfRational) IsZero() bool { return ir.Value.IsZero() && ir.Eps.IsZero() }

// IsPositive reports ir > 0.
func (ir InfRational) IsPositive() bool { return ir.Gt(FromInt(0)) }

// IsNegative reports ir < 0.
func (ir InfRational) IsNegative() bool { return ir.Lt(FromInt(0)) }

// String renders ir as "<value>" when Eps is zero, else
// "<value>+<eps>δ", matching the shape implied by
// original_source/src/linspire.cpp's to_json(inf_rational) (num/den of
// the value, plus an optional "inf" component).
func (ir InfRational) String() string {
	if ir.Eps.IsZero() {
		return ir.Value.String()
	}
	return fmt.Sprintf("%s%s%sδ", ir.Value.String(), signPrefix(ir.Eps), absString(ir.Eps))
}

func signPrefix(r Rational) string {
	if r.IsNegative() {
		return "-"
	}
	return "+"
}

func absString(r Rational) string {
	if r.IsNegative() {
		return r.Neg().String()
	}
	return r.String()
}

// jsonInfRational mirrors original_source/src/linspire.cpp's
// to_json(utils::inf_rational): the value's num/den flattened alongside an
// optional nested "inf" object for a nonzero infinitesimal coefficient.
type jsonInfRational struct {
	Num int64         `json:"num"`
	Den int64         `json:"den"`
	Inf *jsonRational `json:"inf,omitempty"`
}

// MarshalJSON renders ir per jsonInfRational.
func (ir InfRational) MarshalJSON() ([]byte, error) {
	out := jsonInfRational{}
	if ir.Value.s != finite {
		if ir.Value.s == posInf {
			out.Num, out.Den = 1, 0
		} else {
			out.Num, out.Den = -1, 0
		}
	} else {
		out.Num, out.Den = ir.Value.r.Num().Int64(), ir.Value.r.Denom().Int64()
	}
	if !ir.Eps.IsZero() {
		out.Inf = &jsonRational{Num: ir.Eps.r.Num().Int64(), Den: ir.Eps.r.Denom().Int64()}
	}
	return json.Marshal(out)
}
