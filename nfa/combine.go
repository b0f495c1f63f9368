package nfa

import "github.com/coregx/lexgen/ast"

// CombineOrdered builds one NFA unioning every regex in regexes under a
// shared start state, per spec.md section 4.3's "Combined NFA" rule.
// Each regex's accepting state is tagged with its position in regexes,
// which package dfa later uses to break simultaneous-accept ties by
// picking the lowest index (priority-by-input-order, not longest-match).
func CombineOrdered(regexes []ast.Node, opts ...Option) (*NFA, error) {
	b := NewBuilder(opts...)

	start, err := b.newState()
	if err != nil {
		return nil, err
	}

	for i, re := range regexes {
		s, e, err := b.compile(re)
		if err != nil {
			return nil, &BuildError{RegexIndex: i, Limit: b.limits.MaxStates}
		}
		b.AddEpsilon(start, s)
		b.SetEnd(e, i)
	}

	return &NFA{States: b.states, Start: start}, nil
}
