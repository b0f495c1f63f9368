package dfa

import (
	"testing"

	"github.com/coregx/lexgen/ast"
	"github.com/coregx/lexgen/nfa"
	"github.com/coregx/lexgen/parser"
)

func mustParse(t *testing.T, src string) ast.Node {
	t.Helper()
	n, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return n
}

func buildDFA(t *testing.T, regexes ...string) *DFA {
	t.Helper()
	var nodes []ast.Node
	for _, r := range regexes {
		nodes = append(nodes, mustParse(t, r))
	}
	n, err := nfa.CombineOrdered(nodes)
	if err != nil {
		t.Fatalf("CombineOrdered: %v", err)
	}
	d, err := Build(n)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return d
}

func TestBuildClassifyLiteral(t *testing.T) {
	d := buildDFA(t, "int")
	if ok, _ := d.Classify("int"); !ok {
		t.Error("expected match on \"int\"")
	}
	if ok, _ := d.Classify("in"); ok {
		t.Error("expected no match on \"in\"")
	}
	if ok, _ := d.Classify("ints"); ok {
		t.Error("expected no match on \"ints\"")
	}
}

func TestBuildClassifyOperators(t *testing.T) {
	tests := []struct {
		src   string
		s     string
		match bool
	}{
		{"a|b", "a", true},
		{"a|b", "c", false},
		{"a*", "", true},
		{"a*", "aaaaa", true},
		{"(ab)+", "ababab", true},
		{"(ab)+", "aba", false},
		{"colo(u)?r", "color", true},
		{"colo(u)?r", "colour", true},
		{"[a-c]", "b", true},
		{"[a-c]", "z", false},
	}
	for _, tt := range tests {
		t.Run(tt.src+"/"+tt.s, func(t *testing.T) {
			d := buildDFA(t, tt.src)
			if ok, _ := d.Classify(tt.s); ok != tt.match {
				t.Errorf("Classify(%q) on %q = %v, want %v", tt.src, tt.s, ok, tt.match)
			}
		})
	}
}

func TestBuildClassifyPriority(t *testing.T) {
	d := buildDFA(t, "int", "[a-z]+")
	if ok, output := d.Classify("int"); !ok || output != 0 {
		t.Errorf("Classify(\"int\") = (%v, %d), want (true, 0)", ok, output)
	}
	if ok, output := d.Classify("interval"); !ok || output != 1 {
		t.Errorf("Classify(\"interval\") = (%v, %d), want (true, 1)", ok, output)
	}
}

func TestBuildClassifyDeterminism(t *testing.T) {
	d := buildDFA(t, "a|a|a")
	if ok, output := d.Classify("a"); !ok || output != 0 {
		t.Errorf("Classify(\"a\") = (%v, %d), want (true, 0)", ok, output)
	}
}

func TestBuildCapacity(t *testing.T) {
	var nodes []ast.Node
	for _, c := range "abcdefghij" {
		nodes = append(nodes, mustParse(t, string(c)+"*"))
	}
	n, err := nfa.CombineOrdered(nodes, nfa.WithLimits(nfa.Limits{MaxStates: 64}))
	if err != nil {
		t.Fatalf("CombineOrdered: %v", err)
	}
	_, err = Build(n, WithLimits(Limits{MaxStates: 2}))
	if err == nil {
		t.Fatal("expected capacity error")
	}
}

func TestDot(t *testing.T) {
	d := buildDFA(t, "ab")
	out := d.Dot()
	if out == "" {
		t.Fatal("Dot() returned empty string")
	}
	if out[:7] != "digraph" {
		t.Errorf("Dot() = %q, want it to start with \"digraph\"", out[:7])
	}
}
