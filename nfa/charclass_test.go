package nfa

import "testing"

func TestCompileByteRange(t *testing.T) {
	b := NewBuilder()
	start, end, err := b.compileByteRange('a', 'c')
	if err != nil {
		t.Fatalf("compileByteRange: %v", err)
	}
	for c := byte('a'); c <= 'c'; c++ {
		if got := b.states[start].Trans[c]; got != end {
			t.Errorf("Trans[%q] = %v, want %v", c, got, end)
		}
	}
	if got := b.states[start].Trans['d']; got != NoState {
		t.Errorf("Trans['d'] = %v, want NoState", got)
	}
}

func TestCompileByteRangeSingleByte(t *testing.T) {
	b := NewBuilder()
	start, end, err := b.compileByteRange('x', 'x')
	if err != nil {
		t.Fatalf("compileByteRange: %v", err)
	}
	if got := b.states[start].Trans['x']; got != end {
		t.Errorf("Trans['x'] = %v, want %v", got, end)
	}
}
