package dfa

import (
	"github.com/coregx/lexgen/bitset"
	"github.com/coregx/lexgen/internal/conv"
	"github.com/coregx/lexgen/internal/sparse"
	"github.com/coregx/lexgen/nfa"
)

// Build runs Rabin-Scott subset construction over n, producing a DFA
// whose states are NFA-state subsets, per spec.md section 4.4.2. Each
// subset's accept status and Output are resolved at discovery time by
// taking the minimum Output among that subset's accepting NFA states,
// which is how priority-by-input-order survives the subset step
// (earlier-declared patterns keep a lower Output all the way through
// Thompson construction).
func Build(n *nfa.NFA, opts ...Option) (*DFA, error) {
	limits := DefaultLimits()
	for _, o := range opts {
		o(&limits)
	}

	startSubset := closure(n, bitset.Set(0).Add(int(n.Start)))

	subsetIndex := map[bitset.Set]StateID{startSubset: 0}
	states := []State{newDfaState(n, startSubset)}
	worklist := []bitset.Set{startSubset}

	for len(worklist) > 0 {
		subset := worklist[0]
		worklist = worklist[1:]
		id := subsetIndex[subset]

		for c := 0; c < 256; c++ {
			next := closure(n, step(n, subset, byte(c)))
			if next.IsEmpty() {
				continue
			}
			nextID, ok := subsetIndex[next]
			if !ok {
				if len(states) >= limits.MaxStates {
					return nil, &CapacityError{Limit: limits.MaxStates}
				}
				nextID = StateID(conv.IntToUint16(len(states)))
				subsetIndex[next] = nextID
				states = append(states, newDfaState(n, next))
				worklist = append(worklist, next)
			}
			states[id].Trans[c] = nextID
		}
	}

	return &DFA{States: states, Start: 0}, nil
}

// newDfaState allocates a State with Trans fully NoState and its accept
// status resolved from subset's member NFA states.
func newDfaState(n *nfa.NFA, subset bitset.Set) State {
	s := State{}
	for i := range s.Trans {
		s.Trans[i] = NoState
	}
	s.IsEnd, s.Output = acceptInfo(n, subset)
	return s
}

// acceptInfo reports whether subset contains any accepting NFA state,
// and if so, the lowest Output among them.
func acceptInfo(n *nfa.NFA, subset bitset.Set) (isEnd bool, output int) {
	best := -1
	for _, s := range subset.Members() {
		if st := n.States[s]; st.IsEnd && (best == -1 || st.Output < best) {
			best = st.Output
		}
	}
	if best == -1 {
		return false, 0
	}
	return true, best
}

// step returns the set of NFA states directly reachable from subset on
// byte c, before taking the epsilon closure.
func step(n *nfa.NFA, subset bitset.Set, c byte) bitset.Set {
	var next bitset.Set
	for _, s := range subset.Members() {
		if t := n.States[s].Trans[c]; t != nfa.NoState {
			next = next.Add(int(t))
		}
	}
	return next
}

// closure computes the epsilon-closure of start: every NFA state
// reachable from a member of start via zero or more epsilon
// transitions. The BFS worklist uses a sparse.SparseSet as its
// visited-tracker, per spec.md section 4.4.1.
func closure(n *nfa.NFA, start bitset.Set) bitset.Set {
	visited := sparse.NewSparseSet(uint32(len(n.States)))
	var queue []uint32
	for _, s := range start.Members() {
		visited.Insert(uint32(s))
		queue = append(queue, uint32(s))
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, e := range n.States[s].Eps.Members() {
			if !visited.Contains(uint32(e)) {
				visited.Insert(uint32(e))
				queue = append(queue, uint32(e))
			}
		}
	}
	var result bitset.Set
	for _, v := range visited.Values() {
		result = result.Add(int(v))
	}
	return result
}
