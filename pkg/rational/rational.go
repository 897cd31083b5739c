// Package rational provides exact rational arithmetic with a total order,
// the sign predicates, and the distinguished +/-infinity sentinels that the
// simplex core in pkg/simplex treats as an external collaborator (see
// spec.md §6, "Required from the numeric collaborator").
//
// Rational wraps math/big.Rat rather than reimplementing gcd-reduced
// fraction arithmetic by hand: every exact-arithmetic component retrieved
// alongside this module (Consensys-gnark, fegge-ecdsa-scanner,
// njchilds90-gosymbol) reaches for math/big, and no third-party rational
// type appears anywhere in the pack.
package rational

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// sign marks a Rational as a finite value or one of the two infinities.
// A finite Rational always has sign == finite; its magnitude lives in r.
type sign int8

const (
	finite sign = 0
	negInf sign = -1
	posInf sign = 1
)

// Rational is an exact, totally ordered rational number, or one of the
// distinguished +Inf/-Inf sentinels.
type Rational struct {
	r big.Rat
	s sign
}

// Zero is the rational 0/1.
func Zero() Rational { return Rational{} }

// NewInt returns the rational n/1.
func NewInt(n int64) Rational {
	var out Rational
	out.r.SetInt64(n)
	return out
}

// New returns the rational num/den, reduced to lowest terms. Panics if den
// is zero, matching the teacher's rational.go (github.com/gitrdm/gokanlogic
// pkg/minikanren/rational.go NewRational) and utils::rational's assumed
// exact-construction contract in original_source/include/var.hpp.
func New(num, den int64) Rational {
	if den == 0 {
		panic("rational: division by zero")
	}
	var out Rational
	out.r.SetFrac64(num, den)
	return out
}

// positiveInfinite is the +∞ sentinel named in spec.md §6.
func positiveInfinite() Rational { return Rational{s: posInf} }

// negativeInfinite is the -∞ sentinel named in spec.md §6.
func negativeInfinite() Rational { return Rational{s: negInf} }

// IsInfinite reports whether r is one of the two infinity sentinels.
func (r Rational) IsInfinite() bool { return r.s != finite }

// IsPositiveInfinite reports whether r is +∞.
func (r Rational) IsPositiveInfinite() bool { return r.s == posInf }

// IsNegativeInfinite reports whether r is -∞.
func (r Rational) IsNegativeInfinite() bool { return r.s == negInf }

// IsZero reports whether r is exactly zero.
func (r Rational) IsZero() bool { return r.s == finite && r.r.Sign() == 0 }

// IsPositive reports whether r is strictly greater than zero (infinities
// included).
func (r Rational) IsPositive() bool {
	if r.s != finite {
		return r.s == posInf
	}
	return r.r.Sign() > 0
}

// IsNegative reports whether r is strictly less than zero (infinities
// included).
func (r Rational) IsNegative() bool {
	if r.s != finite {
		return r.s == negInf
	}
	return r.r.Sign() < 0
}

// Cmp returns -1, 0, or 1 as r is less than, equal to, or greater than o,
// with the usual total order over {-∞} ∪ ℚ ∪ {+∞}.
func (r Rational) Cmp(o Rational) int {
	if r.s != o.s {
		if r.s < o.s {
			return -1
		}
		return 1
	}
	if r.s != finite {
		return 0 // both are the same infinity
	}
	return r.r.Cmp(&o.r)
}

// Lt reports r < o.
func (r Rational) Lt(o Rational) bool { return r.Cmp(o) < 0 }

// Le reports r <= o.
func (r Rational) Le(o Rational) bool { return r.Cmp(o) <= 0 }

// Gt reports r > o.
func (r Rational) Gt(o Rational) bool { return r.Cmp(o) > 0 }

// Ge reports r >= o.
func (r Rational) Ge(o Rational) bool { return r.Cmp(o) >= 0 }

// Eq reports r == o.
func (r Rational) Eq(o Rational) bool { return r.Cmp(o) == 0 }

func mustFinite(op string, rs ...Rational) {
	for _, r := range rs {
		if r.s != finite {
			panic(fmt.Sprintf("rational: %s is undefined on an infinite operand", op))
		}
	}
}

// Add returns r + o. Panics if either operand is infinite: the core never
// adds infinities, it only compares against them (spec.md §6).
func (r Rational) Add(o Rational) Rational {
	mustFinite("Add", r, o)
	var out Rational
	out.r.Add(&r.r, &o.r)
	return out
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	mustFinite("Sub", r, o)
	var out Rational
	out.r.Sub(&r.r, &o.r)
	return out
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational {
	mustFinite("Mul", r, o)
	var out Rational
	out.r.Mul(&r.r, &o.r)
	return out
}

// Inv returns 1/r. Panics if r is zero or infinite.
func (r Rational) Inv() Rational {
	mustFinite("Inv", r)
	if r.r.Sign() == 0 {
		panic("rational: division by zero")
	}
	var out Rational
	out.r.Inv(&r.r)
	return out
}

// Div returns r / o. Panics if o is zero or either operand is infinite.
func (r Rational) Div(o Rational) Rational {
	mustFinite("Div", r, o)
	if o.r.Sign() == 0 {
		panic("rational: division by zero")
	}
	var out Rational
	out.r.Quo(&r.r, &o.r)
	return out
}

// Neg returns -r. Flips the sign of an infinity sentinel too.
func (r Rational) Neg() Rational {
	if r.s != finite {
		return Rational{s: -r.s}
	}
	var out Rational
	out.r.Neg(&r.r)
	return out
}

// Num returns the numerator of the reduced fraction. Undefined for an
// infinite Rational.
func (r Rational) Num() int64 {
	mustFinite("Num", r)
	return r.r.Num().Int64()
}

// Den returns the denominator of the reduced fraction (always positive).
// Undefined for an infinite Rational.
func (r Rational) Den() int64 {
	mustFinite("Den", r)
	return r.r.Denom().Int64()
}

// String renders r the way original_source's utils::to_string(rational)
// is implied to (a plain "num/den", collapsing to "num" when den is 1), or
// "+inf"/"-inf" for the sentinels.
func (r Rational) String() string {
	switch r.s {
	case posInf:
		return "+inf"
	case negInf:
		return "-inf"
	}
	if r.r.IsInt() {
		return r.r.Num().String()
	}
	return r.r.RatString()
}

// jsonRational mirrors the {"num":..,"den":..} shape used by
// original_source/src/linspire.cpp's to_json(utils::inf_rational) for its
// rational component.
type jsonRational struct {
	Num int64 `json:"num"`
	Den int64 `json:"den"`
}

// MarshalJSON renders r as {"num":.., "den":..}. Infinite values marshal
// their sentinel sign as a degenerate denominator-0 extreme (there is no
// canonical JSON representation of infinity; callers that need to
// distinguish should check IsInfinite before rendering).
func (r Rational) MarshalJSON() ([]byte, error) {
	if r.s != finite {
		if r.s == posInf {
			return json.Marshal(jsonRational{Num: 1, Den: 0})
		}
		return json.Marshal(jsonRational{Num: -1, Den: 0})
	}
	return json.Marshal(jsonRational{Num: r.r.Num().Int64(), Den: r.r.Denom().Int64()})
}
