package core

import "fmt"

// Counters accumulates the two instrumentation totals a run reports: unit
// register operations (increments and decrements) and control transitions
// (conditional tests and stage changes). Both are pure functions of the
// inputs and the configuration.
type Counters struct {
	Ops      uint64
	Branches uint64
}

func (c Counters) String() string {
	return fmt.Sprintf("{Ops: %d, Branches: %d}", c.Ops, c.Branches)
}

// TraceFunc observes driver stage transitions.
type TraceFunc func(stage string, a, b, c int)
