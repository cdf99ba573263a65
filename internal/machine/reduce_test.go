package machine

import (
	"testing"

	"github.com/ArhanChaudhary/qter/internal/core"
)

// reduceProblem must preserve a*b mod N, leave scratch empty, and keep the
// multiplier nonzero whenever it was nonzero on entry.
func TestReduceProblemPreservesProduct(t *testing.T) {
	for _, cfg := range validConfigs(t) {
		n := cfg.Modulus
		for _, k := range cfg.Factors {
			for b := k; b < n; b += k {
				for a := 0; a < n; a++ {
					m := New(cfg, a, b, 0)
					m.reduceProblem(k)
					checkReduced(t, n, k, a, b, m)
				}
			}
		}
		for _, g := range cfg.Generators {
			for b := 1; b < n; b++ {
				for a := 0; a < n; a += 3 {
					m := New(cfg, a, b, 0)
					m.reduceProblem(g)
					checkReduced(t, n, g, a, b, m)
				}
			}
		}
	}
}

func checkReduced(t *testing.T, n, k, a, b int, m *Machine) {
	t.Helper()
	if m.c != 0 {
		t.Fatalf("N=%d k=%d: reduceProblem(%d, %d) left scratch=%d", n, k, a, b, m.c)
	}
	if m.b == 0 {
		t.Fatalf("N=%d k=%d: reduceProblem(%d, %d) zeroed the multiplier", n, k, a, b)
	}
	if got, want := m.a*m.b%n, a*b%n; got != want {
		t.Fatalf("N=%d k=%d: reduceProblem(%d, %d) gave a=%d b=%d (product %d), want product %d",
			n, k, a, b, m.a, m.b, got, want)
	}
}

func TestReduceProblemMultiplierOne(t *testing.T) {
	cfg := core.DefaultConfig()
	m := New(cfg, 19, 1, 0)
	m.reduceProblem(7)
	if m.a != 19 || m.b != 1 || m.c != 0 {
		t.Errorf("reduceProblem on multiplier 1 mutated registers: a=%d b=%d c=%d", m.a, m.b, m.c)
	}
}

func TestReduceProblemMultiplierZero(t *testing.T) {
	cfg := core.DefaultConfig()
	m := New(cfg, 19, 0, 0)
	m.reduceProblem(7)
	if m.a != 0 || m.b != 0 || m.c != 0 {
		t.Errorf("reduceProblem on multiplier 0 should empty the multiplicand: a=%d b=%d c=%d",
			m.a, m.b, m.c)
	}
}

// reduceByFactor must strip every power of k from the multiplier while
// preserving the product, with scratch empty on exit.
func TestReduceByFactor(t *testing.T) {
	for _, cfg := range validConfigs(t) {
		n := cfg.Modulus
		for _, k := range cfg.Factors {
			for b := 1; b < n; b++ {
				for a := 1; a < n; a += 5 {
					m := New(cfg, a, b, 0)
					m.reduceByFactor(k)
					if m.c != 0 {
						t.Fatalf("N=%d k=%d: stage left scratch=%d", n, k, m.c)
					}
					if m.b%k == 0 {
						t.Fatalf("N=%d k=%d: stage exited with multiplier %d still divisible",
							n, k, m.b)
					}
					if got, want := m.a*m.b%n, a*b%n; got != want {
						t.Fatalf("N=%d k=%d: stage on (%d, %d) gave product %d, want %d",
							n, k, a, b, got, want)
					}
				}
			}
		}
	}
}
