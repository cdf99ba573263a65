package machine

// sweepGenerator walks the multiplier through the residues the prime-factor
// stages cannot reach. Each pass decrements the multiplier once: if the
// decremented value passes the divisibility test against the larger
// co-factor radix, the stage falls through (those residues belong to a later
// generator); otherwise the multiplier is restored and the per-g sub-problem
// divides it by g. The final generator tests for exact zero instead, which
// is the halt condition of the whole automaton: the multiplier was 1 and
// stays drained.
func (m *Machine) sweepGenerator(g int, last bool) {
	for {
		m.dec(&m.b)
		if last {
			if m.isZero(&m.b) {
				return
			}
		} else if m.divisible(&m.b, m.cfg.Cofactors[1]) {
			m.inc(&m.b)
			return
		}
		m.inc(&m.b)
		m.reduceProblem(g)
	}
}
