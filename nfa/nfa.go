package nfa

import "github.com/coregx/lexgen/bitset"

// StateID identifies a state within an NFA's States slice.
type StateID int32

// NoState is the sentinel for "no such state", used as a Trans
// sentinel meaning "no byte transition defined".
const NoState StateID = -1

// State is one NFA state. A state transitions on a byte value via
// Trans, and on epsilon via Eps (a set of directly-reachable state
// indices, per spec.md section 4.1). IsEnd marks an accepting state for
// one of the combined regexes; Output is that regex's input-list index,
// used to break accept ties by priority (lower wins).
type State struct {
	Trans  [256]StateID
	Eps    bitset.Set
	IsEnd  bool
	Output int
}

// NFA is a combined nondeterministic finite automaton over byte input,
// built by CombineOrdered from an ordered list of regex ASTs. Start is
// the shared entry state every regex's own start is epsilon-reachable
// from.
type NFA struct {
	States []State
	Start  StateID
}
