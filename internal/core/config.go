package core

import (
	"github.com/pkg/errors"
)

// Config fixes the modulus and the stage constants the multiplier automaton
// is specialized for. All of these are build-time choices in the sense of the
// machine model: they select the stage structure, they are never read from a
// register at run time.
type Config struct {
	// Modulus is N. Registers hold residues in [0, N).
	Modulus int `yaml:"modulus"`

	// Factors are the distinct primes dividing N, ascending. Each one gets a
	// reduction stage; a prime of multiplicity > 1 (e.g. 3 for N = 90) is
	// handled by the stage looping until the multiplier is no longer
	// divisible by it.
	Factors []int `yaml:"factors"`

	// Generators are constants coprime to N, applied in order by the sweep
	// stages. The last generator owns the halt condition.
	Generators []int `yaml:"generators"`

	// Cofactors is a pair (r1, r2) with r1*r2 = N. r1 sizes the chunks of
	// the radix carry; r2 is the divisibility radix the sweep stages test
	// the multiplier against.
	Cofactors [2]int `yaml:"cofactors"`

	// Trace, if non-nil, observes every driver stage transition. It receives
	// the stage name and the register triple at entry.
	Trace TraceFunc `yaml:"-"`
}

// DefaultConfig returns the reference configuration: N = 30 = 2*3*5 with
// generators 7 and 11 and carry radix 3*10.
func DefaultConfig() Config {
	return Config{
		Modulus:    30,
		Factors:    []int{2, 3, 5},
		Generators: []int{7, 11},
		Cofactors:  [2]int{3, 10},
	}
}

// Legacy90Config returns the earlier N = 90 = 2*3*3*5 configuration. The
// generator set is the same; only the modulus and carry radix change.
func Legacy90Config() Config {
	return Config{
		Modulus:    90,
		Factors:    []int{2, 3, 5},
		Generators: []int{7, 11},
		Cofactors:  [2]int{9, 10},
	}
}

// Validate checks the structural constraints on the configuration and then
// proves the coverage invariant: every residue coprime to N must drive the
// generator sweep chain to 1. A generator set that fails coverage would make
// the automaton loop forever on some inputs, so this is the one check that
// must happen before any multiplication runs.
func (c *Config) Validate() error {
	if c.Modulus < 2 {
		return errors.Errorf("modulus must be at least 2, got %d", c.Modulus)
	}
	if c.Cofactors[0] < 1 || c.Cofactors[1] < 1 || c.Cofactors[0]*c.Cofactors[1] != c.Modulus {
		return errors.Errorf("cofactors %dx%d do not factor modulus %d",
			c.Cofactors[0], c.Cofactors[1], c.Modulus)
	}
	if len(c.Factors) == 0 {
		return errors.New("no prime factors configured")
	}
	rem := c.Modulus
	prev := 1
	for _, f := range c.Factors {
		if f <= prev {
			return errors.Errorf("factors must be distinct and ascending, got %v", c.Factors)
		}
		prev = f
		if !isPrime(f) {
			return errors.Errorf("factor %d is not prime", f)
		}
		if rem%f != 0 {
			return errors.Errorf("factor %d does not divide modulus %d", f, c.Modulus)
		}
		for rem%f == 0 {
			rem /= f
		}
	}
	if rem != 1 {
		return errors.Errorf("modulus %d is not smooth over factors %v (leftover %d)",
			c.Modulus, c.Factors, rem)
	}
	if len(c.Generators) == 0 {
		return errors.New("no generators configured")
	}
	for _, g := range c.Generators {
		if g <= 1 || g >= c.Modulus {
			return errors.Errorf("generator %d outside (1, %d)", g, c.Modulus)
		}
		if gcd(g, c.Modulus) != 1 {
			return errors.Errorf("generator %d shares a factor with modulus %d", g, c.Modulus)
		}
	}
	for u := 1; u < c.Modulus; u++ {
		if gcd(u, c.Modulus) != 1 {
			continue
		}
		if !c.sweepReaches(u) {
			return errors.Errorf("generators %v never drive unit %d to 1 mod %d",
				c.Generators, u, c.Modulus)
		}
	}
	return nil
}

// sweepReaches walks the abstract multiplier dynamics of the sweep chain
// starting from unit u: non-final stages divide by their generator until the
// multiplier is 1 mod r2, the final stage until it is exactly 1. The step
// budget bounds the walk; a configuration that exhausts it cannot terminate.
func (c *Config) sweepReaches(u int) bool {
	b := u
	steps := 0
	budget := c.Modulus * c.Modulus
	for i, g := range c.Generators {
		inv := modInverse(g, c.Modulus)
		last := i == len(c.Generators)-1
		for {
			if last {
				if b == 1 {
					return true
				}
			} else if (b-1)%c.Cofactors[1] == 0 {
				break
			}
			b = b * inv % c.Modulus
			steps++
			if steps > budget {
				return false
			}
		}
	}
	return false
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// modInverse returns g^-1 mod n by scan; n is small and this only runs
// during validation. Returns 0 when no inverse exists.
func modInverse(g, n int) int {
	for x := 1; x < n; x++ {
		if g*x%n == 1 {
			return x
		}
	}
	return 0
}
