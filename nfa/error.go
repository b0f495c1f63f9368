// Package nfa implements Thompson construction from a regex ast.Node,
// and the multi-regex combiner that unions several regexes under one
// shared, epsilon-branching start state, per spec.md section 4.3.
package nfa

import (
	"errors"
	"fmt"
)

// ErrCapacity is returned when a combined NFA would exceed its state
// cap (spec.md section 6: 64 states).
var ErrCapacity = errors.New("NFA state capacity exceeded")

// BuildError wraps a capacity failure during NFA construction, naming
// which regex (by input-list index) triggered it.
type BuildError struct {
	RegexIndex int
	Limit      int
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("combining regex %d: %v (limit %d)", e.RegexIndex, ErrCapacity, e.Limit)
}

func (e *BuildError) Unwrap() error { return ErrCapacity }
