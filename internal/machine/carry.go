package machine

// carryInto folds the scratch register into target by re-expressing its
// value in the co-factor radix (r1, r2): the sub-r1 remainder transfers one
// unit at a time, then r1-sized chunks are peeled off into a tally
// (necessarily below r2 since scratch is below N = r1*r2), and the tally is
// re-drained crediting r1 units per step. No intermediate value ever leaves
// [0, N) and no native multiply or divide is needed. Scratch reads 0 on
// exit; target has grown by the folded value, mod N.
func (m *Machine) carryInto(target *int) {
	r1 := m.cfg.Cofactors[0]
	for !m.divisible(&m.c, r1) {
		m.dec(&m.c)
		m.inc(target)
	}
	tally := 0
	for !m.isZero(&m.c) {
		m.subConst(&m.c, r1)
		m.inc(&tally)
	}
	for !m.isZero(&tally) {
		m.dec(&tally)
		m.addConst(target, r1)
	}
}
