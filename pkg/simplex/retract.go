package simplex

// Retract implements spec.md §4.7: undo every bound reason installed on
// behalf of c, in any order, then clear c so it can be reused by a later
// assertion. Retraction never repairs a basic variable's value and never
// re-runs Check — spec.md §4.7's Open Question is resolved as "leave val
// unchanged": a variable that is now out of its (possibly now looser)
// bounds is left for the next Check to discover and repair, exactly as
// a freshly tightened bound would be.
//
// Retracting an empty or nil c is a no-op, matching AddConstraint's own
// "empty handle" leniency (spec.md §4.6).
func (s *Solver) Retract(c *Constraint) {
	if c.Empty() {
		return
	}
	for x, vs := range c.lbsOwned {
		for _, v := range vs {
			s.unsetLB(x, v, c)
		}
	}
	for x, vs := range c.ubsOwned {
		for _, v := range vs {
			s.unsetUB(x, v, c)
		}
	}
	s.log.WithField("constraint", c).Debug("simplex: retract")
	c.clear()
}
