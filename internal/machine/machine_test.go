package machine

import (
	"testing"

	"github.com/ArhanChaudhary/qter/internal/core"
)

// validConfigs returns the two reference configurations, validated.
func validConfigs(t *testing.T) []core.Config {
	t.Helper()
	cfgs := []core.Config{core.DefaultConfig(), core.Legacy90Config()}
	for _, cfg := range cfgs {
		if err := cfg.Validate(); err != nil {
			t.Fatalf("preset N=%d rejected: %v", cfg.Modulus, err)
		}
	}
	return cfgs
}

func TestRunExhaustive(t *testing.T) {
	for _, cfg := range validConfigs(t) {
		n := cfg.Modulus
		for a := 0; a < n; a++ {
			for b := 0; b < n; b++ {
				m := New(cfg, a, b, (a*13+b*7)%n)
				product, _ := m.Run()
				if want := a * b % n; product != want {
					t.Fatalf("N=%d: %d*%d = %d, want %d", n, a, b, product, want)
				}
				if m.b != 0 || m.c != 0 {
					t.Fatalf("N=%d: %d*%d halted with b=%d c=%d, want 0/0", n, a, b, m.b, m.c)
				}
			}
		}
	}
}

func TestRunDegenerate(t *testing.T) {
	cfg := core.DefaultConfig()
	n := cfg.Modulus
	for v := 0; v < n; v++ {
		for scratch := 0; scratch < n; scratch += 7 {
			if p, _ := New(cfg, 0, v, scratch).Run(); p != 0 {
				t.Errorf("0*%d = %d, want 0", v, p)
			}
			if p, _ := New(cfg, v, 0, scratch).Run(); p != 0 {
				t.Errorf("%d*0 = %d, want 0", v, p)
			}
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	cfg := core.DefaultConfig()
	first, firstCounters := New(cfg, 17, 23, 5).Run()
	second, secondCounters := New(cfg, 17, 23, 5).Run()
	if first != second {
		t.Fatalf("products differ across runs: %d vs %d", first, second)
	}
	if firstCounters != secondCounters {
		t.Fatalf("counters differ across runs: %v vs %v", firstCounters, secondCounters)
	}

	// A different scratch seed changes the counters but never the product.
	reseeded, reseededCounters := New(cfg, 17, 23, 11).Run()
	if reseeded != first {
		t.Fatalf("scratch seed changed the product: %d vs %d", reseeded, first)
	}
	if reseededCounters == firstCounters {
		t.Errorf("expected scratch seed to change the counters, both %v", firstCounters)
	}
}

func TestRunTraceStages(t *testing.T) {
	cfg := core.DefaultConfig()
	var stages []string
	cfg.Trace = func(stage string, a, b, c int) {
		stages = append(stages, stage)
	}

	if _, _ = New(cfg, 7, 13, 0).Run(); len(stages) == 0 {
		t.Fatal("trace hook never fired")
	}
	want := []string{"start", "reduce-by-2", "reduce-by-3", "reduce-by-5",
		"generator-7", "generator-11", "halt"}
	if len(stages) != len(want) {
		t.Fatalf("stage sequence %v, want %v", stages, want)
	}
	for i := range want {
		if stages[i] != want[i] {
			t.Fatalf("stage sequence %v, want %v", stages, want)
		}
	}

	stages = nil
	want = []string{"start", "drain", "halt"}
	if _, _ = New(cfg, 0, 13, 0).Run(); len(stages) != len(want) {
		t.Fatalf("degenerate stage sequence %v, want %v", stages, want)
	}
	for i := range want {
		if stages[i] != want[i] {
			t.Fatalf("degenerate stage sequence %v, want %v", stages, want)
		}
	}
}
