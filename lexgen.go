// Package lexgen compiles an ordered list of regex source strings into
// one minimized DFA that classifies whole input strings by which regex
// (by input-list position) accepts them, per spec.md.
//
// The pipeline is thin and strictly sequential, per spec.md section 5:
// parse each regex to an AST, combine the ASTs into one NFA via
// Thompson construction, build a DFA from the NFA by Rabin-Scott subset
// construction, then minimize it. There is no retry and no partial
// result: any parse error or capacity overflow aborts the whole call.
package lexgen

import (
	"fmt"

	"github.com/coregx/lexgen/ast"
	"github.com/coregx/lexgen/dfa"
	"github.com/coregx/lexgen/nfa"
	"github.com/coregx/lexgen/parser"
	"github.com/coregx/lexgen/prefilter"
)

// Lexer is a compiled classifier over a fixed, ordered list of regexes.
// Classify reports which regex (if any) accepts an input string in
// full.
type Lexer struct {
	dfa        *dfa.DFA
	filter     *prefilter.Filter
	allLiteral bool
}

// Config bundles the per-stage capacity limits Generate threads through
// the parser, NFA builder, and DFA builder, per spec.md section 6.
// The zero value is not useful; use DefaultConfig.
type Config struct {
	Parser parser.Limits
	NFA    nfa.Limits
	DFA    dfa.Limits
}

// DefaultConfig returns the capacity limits spec.md section 6
// specifies: 100-byte regexes, 100 tokens, 20 AST children, 64 NFA
// states, 64 DFA states.
func DefaultConfig() Config {
	return Config{
		Parser: parser.DefaultLimits(),
		NFA:    nfa.DefaultLimits(),
		DFA:    dfa.DefaultLimits(),
	}
}

// Option configures Generate's Config.
type Option func(*Config)

// WithConfig overrides the default Config.
func WithConfig(c Config) Option {
	return func(dst *Config) { *dst = c }
}

// Generate compiles regexes, in order, into a Lexer. Token identifiers
// in the returned Lexer's Classify results are positions in regexes
// (0-based), per spec.md section 6.
func Generate(regexes []string, opts ...Option) (*Lexer, error) {
	cfg := DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	nodes := make([]ast.Node, len(regexes))
	for i, src := range regexes {
		n, err := parser.Parse(src, parser.WithLimits(cfg.Parser))
		if err != nil {
			return nil, fmt.Errorf("parsing regex %d (%q): %w", i, src, err)
		}
		if err := ast.Validate(n); err != nil {
			return nil, fmt.Errorf("validating regex %d (%q): %w", i, src, err)
		}
		nodes[i] = n
	}

	combined, err := nfa.CombineOrdered(nodes, nfa.WithLimits(cfg.NFA))
	if err != nil {
		return nil, fmt.Errorf("combining %d regexes into one NFA: %w", len(regexes), err)
	}

	built, err := dfa.Build(combined, dfa.WithLimits(cfg.DFA))
	if err != nil {
		return nil, fmt.Errorf("building DFA: %w", err)
	}
	minimized := dfa.Minimize(built)

	filter, err := prefilter.Build(nodes)
	if err != nil {
		return nil, fmt.Errorf("building literal prefilter: %w", err)
	}
	allLiteral := len(prefilter.ExtractLiterals(nodes)) == len(nodes)

	return &Lexer{dfa: minimized, filter: filter, allLiteral: allLiteral}, nil
}

// MustGenerate is like Generate but panics on error, for package-level
// Lexer variables initialized from a fixed, known-good regex list.
func MustGenerate(regexes []string, opts ...Option) *Lexer {
	l, err := Generate(regexes, opts...)
	if err != nil {
		panic(err)
	}
	return l
}

// Classify reports whether input is accepted by the compiled DFA in
// its entirety, and if so, the 0-based index (in the original regexes
// slice) of the pattern that matched, honoring priority-by-input-order
// when more than one pattern could have matched.
//
// When every compiled regex is a pure literal, a negative prefilter
// result is decisive and Classify skips the DFA walk entirely; a regex
// list mixing literals with classes or repetition always falls through
// to the DFA, since the prefilter only covers the literal subset.
func (l *Lexer) Classify(input string) (matched bool, token int) {
	if l.allLiteral && !l.filter.MayMatch(input) {
		return false, -1
	}
	return l.dfa.Classify(input)
}

// DFA returns the Lexer's underlying minimized DFA, for callers that
// want to inspect its structure (e.g. dfa.DFA.Dot) or drive it
// directly.
func (l *Lexer) DFA() *dfa.DFA {
	return l.dfa
}
