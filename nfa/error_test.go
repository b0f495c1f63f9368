package nfa

import (
	"errors"
	"testing"
)

func TestBuildErrorUnwraps(t *testing.T) {
	err := &BuildError{RegexIndex: 2, Limit: 64}
	if !errors.Is(err, ErrCapacity) {
		t.Errorf("errors.Is(%v, ErrCapacity) = false, want true", err)
	}
	if err.Error() == "" {
		t.Error("Error() returned empty string")
	}
}
