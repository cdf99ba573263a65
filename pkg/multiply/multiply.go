// Package multiply exposes the counter-machine modular multiplier: a
// three-register automaton that computes (a*b) mod N using only unit
// increments, unit decrements, and zero/divisibility tests, exploiting the
// factorization of the fixed smooth modulus N instead of a native multiply.
package multiply

import (
	"github.com/pkg/errors"

	"github.com/ArhanChaudhary/qter/internal/core"
	"github.com/ArhanChaudhary/qter/internal/machine"
)

// Result carries the product of one run together with the instrumentation
// counters: total unit register operations performed and total control
// transitions taken. Both are deterministic for a given operand pair,
// scratch seed, and configuration.
type Result struct {
	Product  int
	Ops      uint64
	Branches uint64
}

// Multiplier is a validated automaton configuration. It holds no run state;
// every call owns its own register triple for its entire lifetime, so a
// Multiplier may be shared freely.
type Multiplier struct {
	cfg core.Config
}

// New validates the configuration once and returns a Multiplier for it.
// Validation includes the generator coverage walk, so a configuration
// accepted here cannot make Multiply loop forever.
func New(cfg core.Config) (*Multiplier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid multiplier configuration")
	}
	return &Multiplier{cfg: cfg}, nil
}

// Modulus returns N.
func (m *Multiplier) Modulus() int {
	return m.cfg.Modulus
}

// Multiply computes (a*b) mod N with a clean scratch register.
func (m *Multiplier) Multiply(a, b int) (Result, error) {
	return m.MultiplyWithScratch(a, b, 0)
}

// MultiplyWithScratch computes (a*b) mod N starting from a caller-seeded
// scratch value, which the automaton drains before computing. The product is
// unaffected by the seed; only the counters change.
func (m *Multiplier) MultiplyWithScratch(a, b, scratch int) (Result, error) {
	for _, v := range [...]int{a, b, scratch} {
		if v < 0 || v >= m.cfg.Modulus {
			return Result{}, errors.Errorf("operand %d outside [0, %d)", v, m.cfg.Modulus)
		}
	}
	product, counters := machine.New(m.cfg, a, b, scratch).Run()
	return Result{Product: product, Ops: counters.Ops, Branches: counters.Branches}, nil
}
