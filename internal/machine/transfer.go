package machine

// transferAll moves the whole count of from onto to, one unit at a time.
// Postcondition: from reads 0 and to has grown by the original value of
// from, mod N.
func (m *Machine) transferAll(from, to *int) {
	for !m.isZero(from) {
		m.dec(from)
		m.inc(to)
	}
}

// drain steps a register down to 0.
func (m *Machine) drain(r *int) {
	for !m.isZero(r) {
		m.dec(r)
	}
}

// addConst applies the compile-time offset k to a register in unit steps.
// Negative k subtracts.
func (m *Machine) addConst(r *int, k int) {
	if k < 0 {
		m.subConst(r, -k)
		return
	}
	for i := 0; i < k; i++ {
		m.inc(r)
	}
}

// subConst removes k units from a register, wrapping below zero like any
// other decrement.
func (m *Machine) subConst(r *int, k int) {
	for i := 0; i < k; i++ {
		m.dec(r)
	}
}
