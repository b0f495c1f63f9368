package prefilter

import (
	"fmt"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/lexgen/ast"
)

// Filter wraps a multi-literal Aho-Corasick automaton built over the
// subset of regexes that are pure literals. It is an optional
// optimization layered in front of dfa.DFA.Classify: it never changes
// whether a string matches, only how quickly a caller can decide "this
// cannot possibly be one of the literal keywords" before bothering to
// walk the automaton.
type Filter struct {
	automaton *ahocorasick.Automaton
	present   bool
}

// Build constructs a Filter from the literal patterns among regexes.
// If none of regexes are pure literals, Build returns a Filter whose
// MayMatch always defers to the caller's full matcher.
func Build(regexes []ast.Node) (*Filter, error) {
	lits := ExtractLiterals(regexes)
	if len(lits) == 0 {
		return &Filter{}, nil
	}

	b := ahocorasick.NewBuilder()
	for _, lit := range lits {
		b.AddPattern([]byte(lit))
	}
	automaton, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("building literal prefilter: %w", err)
	}
	return &Filter{automaton: automaton, present: true}, nil
}

// MayMatch reports whether input could possibly be one of the filter's
// literal patterns. A false result only means "not a literal hit"; the
// caller still needs the full DFA to classify inputs matched by
// non-literal patterns (character classes, repetition).
func (f *Filter) MayMatch(input string) bool {
	if !f.present {
		return true
	}
	return f.automaton.IsMatch([]byte(input))
}
