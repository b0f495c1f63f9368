// Package dfa builds a deterministic finite automaton from a combined
// nfa.NFA via Rabin-Scott subset construction, then minimizes it by
// merging structurally-identical states, per spec.md section 4.4. Each
// NFA-state subset is deduplicated through a map keyed on bitset.Set
// equality, and the whole DFA is built eagerly up front rather than on
// demand.
package dfa

import (
	"errors"
	"fmt"
)

// ErrCapacity is returned when subset construction would need more
// states than the compiler's state cap allows (spec.md section 6: 64
// DFA states).
var ErrCapacity = errors.New("DFA state capacity exceeded")

// CapacityError wraps ErrCapacity with the limit that was hit.
type CapacityError struct {
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%v (limit %d)", ErrCapacity, e.Limit)
}

func (e *CapacityError) Unwrap() error { return ErrCapacity }
