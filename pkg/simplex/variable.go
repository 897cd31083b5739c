// Package simplex implements the General Simplex with bounds algorithm of
// Dutertre–de Moura, extended with δ-infinitesimal strictness,
// reason-tagged multi-set bounds, and slack-variable reuse for
// structurally identical linear expressions (spec.md §1).
//
// This is the translation of original_source/include/{var,linspire}.hpp
// into idiomatic Go: dense integer variable ids instead of pointer-linked
// nodes (spec.md §9), exported Boolean results instead of C++ asserts for
// the inconsistency cases spec.md §7 classifies as detectable failures,
// and panics for the precondition violations spec.md §7 allows the core
// to treat as fatal.
package simplex

import (
	"sort"

	"github.com/ratioSolver/LinSpire/pkg/lin"
	"github.com/ratioSolver/LinSpire/pkg/rational"
)

// Var is a solver variable id. Re-exported from pkg/lin so callers never
// need to import both packages just to name a variable.
type Var = lin.Var

// boundEntry is one key of an ordered bound multimap: a bound value and
// the set of reasons that installed it (spec.md §3, "lbs"/"ubs").
type boundEntry struct {
	value   rational.InfRational
	reasons map[*Constraint]struct{}
}

// boundSet is the ordered mapping from bound values to sets of reasons
// described in spec.md §3. Entries are kept sorted ascending by value;
// lower-bound sets read their effective bound from the last entry (the
// greatest key), upper-bound sets from the first (the least key).
type boundSet struct {
	entries []boundEntry
}

func (bs *boundSet) search(v rational.InfRational) (idx int, found bool) {
	idx = sort.Search(len(bs.entries), func(i int) bool { return !bs.entries[i].value.Lt(v) })
	if idx < len(bs.entries) && bs.entries[idx].value.Eq(v) {
		return idx, true
	}
	return idx, false
}

// effectiveMax returns the greatest key (the effective lower bound), or
// ok=false when the set is empty.
func (bs *boundSet) effectiveMax() (rational.InfRational, bool) {
	if len(bs.entries) == 0 {
		return rational.InfRational{}, false
	}
	return bs.entries[len(bs.entries)-1].value, true
}

// effectiveMin returns the least key (the effective upper bound), or
// ok=false when the set is empty.
func (bs *boundSet) effectiveMin() (rational.InfRational, bool) {
	if len(bs.entries) == 0 {
		return rational.InfRational{}, false
	}
	return bs.entries[0].value, true
}

// insertReasoned adds v -> {reason} per spec.md §4.1: if v is already a
// key, the reason is folded into its set (so the dominated reason
// persists for later retraction even though it does not change the
// effective bound); otherwise a new entry is created.
func (bs *boundSet) insertReasoned(v rational.InfRational, reason *Constraint) {
	idx, found := bs.search(v)
	if found {
		bs.entries[idx].reasons[reason] = struct{}{}
		return
	}
	entry := boundEntry{value: v, reasons: map[*Constraint]struct{}{reason: {}}}
	bs.entries = append(bs.entries, boundEntry{})
	copy(bs.entries[idx+1:], bs.entries[idx:])
	bs.entries[idx] = entry
}

// insertAnonymous performs the anonymous-tightening path of spec.md §4.1:
// remove all weaker entries and install v with an empty reason set. For a
// lower-bound set "weaker" means strictly below v; for an upper-bound set
// it means strictly above v, selected via the descending flag.
func (bs *boundSet) insertAnonymous(v rational.InfRational, descending bool) {
	if descending {
		// upper-bound set: drop keys strictly greater than v.
		idx, found := bs.search(v)
		if found {
			bs.entries = bs.entries[:idx+1]
			bs.entries[idx].reasons = map[*Constraint]struct{}{}
			return
		}
		bs.entries = bs.entries[:idx]
		bs.entries = append(bs.entries, boundEntry{value: v, reasons: map[*Constraint]struct{}{}})
		return
	}
	// lower-bound set: drop keys strictly less than v.
	idx, found := bs.search(v)
	if found {
		bs.entries = bs.entries[idx:]
		bs.entries[0].reasons = map[*Constraint]struct{}{}
		return
	}
	rest := append([]boundEntry{{value: v, reasons: map[*Constraint]struct{}{}}}, bs.entries[idx:]...)
	bs.entries = rest
}

// unset removes reason from v's reason set; if the set becomes empty the
// key itself is removed, per spec.md §4.1's "Unset is symmetric" rule.
// v may already be gone from the set: an anonymous tightening
// (insertAnonymous) legitimately drops weaker reasoned entries outright,
// and a later Retract of the reason that owned one of those entries must
// still succeed, so a missing v is a silent no-op rather than a
// precondition error.
func (bs *boundSet) unset(v rational.InfRational, reason *Constraint) {
	idx, found := bs.search(v)
	if !found {
		return
	}
	delete(bs.entries[idx].reasons, reason)
	if len(bs.entries[idx].reasons) == 0 {
		bs.entries = append(bs.entries[:idx], bs.entries[idx+1:]...)
	}
}

// reasonsAt returns the reason set recorded at exactly v, or nil if v is
// not a key.
func (bs *boundSet) reasonsAt(v rational.InfRational) map[*Constraint]struct{} {
	idx, found := bs.search(v)
	if !found {
		return nil
	}
	return bs.entries[idx].reasons
}

// variable holds the per-variable state of spec.md §3: its current value
// and its two ordered, reason-tagged bound multisets.
type variable struct {
	val rational.InfRational
	lbs boundSet
	ubs boundSet
}

func newVariable(lb, ub rational.InfRational) *variable {
	if lb.Gt(ub) {
		panic("simplex: lower bound greater than upper bound")
	}
	v := &variable{val: lb}
	if !lb.Eq(rational.NegativeInfinite()) {
		v.lbs.entries = append(v.lbs.entries, boundEntry{value: lb, reasons: map[*Constraint]struct{}{}})
	}
	if !ub.Eq(rational.PositiveInfinite()) {
		v.ubs.entries = append(v.ubs.entries, boundEntry{value: ub, reasons: map[*Constraint]struct{}{}})
	}
	// A variable with both bounds infinite starts at 0, matching the "sound
	// valuation always available" contract of spec.md §1; otherwise it
	// starts at its lower bound, or at its upper bound when only that one
	// is finite.
	switch {
	case lb.Eq(rational.NegativeInfinite()) && ub.Eq(rational.PositiveInfinite()):
		v.val = rational.FromInt(0)
	case lb.Eq(rational.NegativeInfinite()):
		v.val = ub
	default:
		v.val = lb
	}
	return v
}

// effectiveLB returns the variable's effective lower bound: the greatest
// key of lbs, or -∞ when empty (spec.md §3).
func (v *variable) effectiveLB() rational.InfRational {
	if b, ok := v.lbs.effectiveMax(); ok {
		return b
	}
	return rational.NegativeInfinite()
}

// effectiveUB returns the variable's effective upper bound: the least key
// of ubs, or +∞ when empty (spec.md §3).
func (v *variable) effectiveUB() rational.InfRational {
	if b, ok := v.ubs.effectiveMin(); ok {
		return b
	}
	return rational.PositiveInfinite()
}
