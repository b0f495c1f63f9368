package prefilter

import (
	"testing"

	"github.com/coregx/lexgen/ast"
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

func TestExtractLiterals(t *testing.T) {
	regexes := []ast.Node{
		mustParse(t, "int"),
		mustParse(t, "[a-z]+"),
		mustParse(t, "return"),
		mustParse(t, "a|b"),
	}
	got := ExtractLiterals(regexes)
	want := []string{"int", "return"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("literal %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractLiteralsNone(t *testing.T) {
	regexes := []ast.Node{mustParse(t, "[a-z]+"), mustParse(t, "a*")}
	got := ExtractLiterals(regexes)
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
