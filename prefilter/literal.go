// Package prefilter builds a fast literal-match shortcut in front of
// the minimized DFA, for the common case where some (or all) of a
// token set's patterns are plain literals (keywords, punctuation): it
// walks each pattern's AST to find the patterns that are, as a whole,
// one exact literal string (patterns using any other operator are
// skipped), then wraps a multi-pattern literal matcher
// (github.com/coregx/ahocorasick) as a pre-check ahead of the full DFA
// walk.
package prefilter

import "github.com/coregx/lexgen/ast"

// ExtractLiterals returns, for each regex in regexes that denotes
// exactly one fixed byte string (no alternation, repetition, or
// character class), that literal string. Regexes that are not pure
// literals are skipped; the caller ends up with a (possibly empty,
// possibly partial) list of exact keywords to fast-path.
func ExtractLiterals(regexes []ast.Node) []string {
	var out []string
	for _, n := range regexes {
		if lit, ok := literalOf(n); ok {
			out = append(out, lit)
		}
	}
	return out
}

// literalOf reports the exact literal string n denotes, if it is built
// entirely from string concatenation with no other operator.
func literalOf(n ast.Node) (string, bool) {
	switch n.Kind {
	case ast.KindStr:
		return string(n.Bytes), true
	case ast.KindSeq:
		var b []byte
		for _, k := range n.Kids {
			s, ok := literalOf(k)
			if !ok {
				return "", false
			}
			b = append(b, s...)
		}
		return string(b), true
	default:
		return "", false
	}
}
