package machine

// reduceByFactor strips the prime k out of the multiplier. The multiplier is
// transferred into scratch k units at a time; hitting zero on the cadence
// boundary means it is divisible by k, so the per-k sub-problem runs and the
// stage recurses to strip the next power of k. Hitting zero mid-cadence
// means it is not divisible, and the stage falls through to its successor.
// Recursion depth is at most log_k(N).
func (m *Machine) reduceByFactor(k int) {
	for {
		for i := 1; i <= k; i++ {
			m.dec(&m.b)
			m.inc(&m.c)
			if !m.isZero(&m.b) {
				continue
			}
			// The whole multiplier now sits in scratch; restore it.
			m.transferAll(&m.c, &m.b)
			if i < k {
				return
			}
			m.reduceProblem(k)
			m.reduceByFactor(k)
			return
		}
	}
}

// reduceProblem folds one divisor step: the multiplier becomes b/k (b*k^-1
// mod N when k is coprime to N) while the multiplicand becomes a*k mod N,
// preserving a*b mod N. Scratch is 0 on entry and on exit.
//
// Termination of the step-counting loop needs the caller to guarantee that
// stepping the multiplier down by k, wrapping mod N, reaches 0: true when k
// divides both N and the multiplier (the factor stages) and for any k
// coprime to N (the generator stages).
func (m *Machine) reduceProblem(k int) {
	if m.isZero(&m.b) {
		// Multiplier exhausted: the product is already folded, so empty the
		// multiplicand. Unreachable from the driver pipeline, kept so every
		// transition stays a total function of register state.
		m.drain(&m.a)
		return
	}
	m.dec(&m.b)
	if m.isZero(&m.b) {
		// Multiplier is 1: nothing left to fold.
		m.inc(&m.b)
		return
	}
	m.inc(&m.b)

	// Re-express the multiplier as a count of k-sized steps.
	for !m.isZero(&m.b) {
		m.subConst(&m.b, k)
		m.inc(&m.c)
	}
	m.carryInto(&m.b)

	// Scale the multiplicand by k through scratch, then fold it back.
	for !m.isZero(&m.a) {
		m.dec(&m.a)
		m.addConst(&m.c, k)
	}
	m.carryInto(&m.a)
}
