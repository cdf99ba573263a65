package machine

import (
	"strconv"

	"github.com/ArhanChaudhary/qter/internal/core"
)

// Machine is one run of the multiplier automaton: a register triple, the
// configuration it is specialized for, and the instrumentation counters.
// The registers are mutated only through unit increments and decrements,
// both reducing into [0, N) immediately; control flow observes them only
// through zero and divisibility tests.
type Machine struct {
	cfg      core.Config
	a, b, c  int
	counters core.Counters
}

// New prepares a run over the residues (a, b) with the given initial scratch
// value. The configuration is assumed validated and the inputs in [0, N);
// pkg/multiply enforces both.
func New(cfg core.Config, a, b, scratch int) *Machine {
	return &Machine{cfg: cfg, a: a, b: b, c: scratch}
}

// Run drives the stage pipeline to halt and returns the product together
// with the instrumentation counters. At halt the multiplier and scratch
// registers read 0 and the multiplicand holds (a*b) mod N.
func (m *Machine) Run() (int, core.Counters) {
	m.enter("start")
	// Whatever scratch the caller seeded is drained before anything else.
	m.drain(&m.c)
	if m.isZero(&m.a) || m.isZero(&m.b) {
		// Trivial product: empty both inputs and halt.
		m.enter("drain")
		m.drain(&m.a)
		m.drain(&m.b)
		m.enter("halt")
		return m.a, m.counters
	}
	for _, k := range m.cfg.Factors {
		m.enter("reduce-by-" + strconv.Itoa(k))
		m.reduceByFactor(k)
	}
	for i, g := range m.cfg.Generators {
		m.enter("generator-" + strconv.Itoa(g))
		m.sweepGenerator(g, i == len(m.cfg.Generators)-1)
	}
	m.enter("halt")
	return m.a, m.counters
}

// enter records a stage transition.
func (m *Machine) enter(stage string) {
	m.counters.Branches++
	if m.cfg.Trace != nil {
		m.cfg.Trace(stage, m.a, m.b, m.c)
	}
}

// inc adds one unit to a register, wrapping into [0, N).
func (m *Machine) inc(r *int) {
	*r++
	if *r == m.cfg.Modulus {
		*r = 0
	}
	m.counters.Ops++
}

// dec removes one unit from a register, wrapping into [0, N).
func (m *Machine) dec(r *int) {
	if *r == 0 {
		*r = m.cfg.Modulus - 1
	} else {
		*r--
	}
	m.counters.Ops++
}

// isZero is the conditional-jump test primitive.
func (m *Machine) isZero(r *int) bool {
	m.counters.Branches++
	return *r == 0
}

// divisible is the zero test applied after a constant modular reduction.
func (m *Machine) divisible(r *int, d int) bool {
	m.counters.Branches++
	return *r%d == 0
}
