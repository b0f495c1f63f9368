package nfa

import (
	"github.com/coregx/lexgen/ast"
	"github.com/coregx/lexgen/internal/conv"
)

// Builder assembles an NFA one state at a time via Thompson
// construction, per spec.md section 4.3: a one-method-per-state-kind
// mutation API over a states slice, with capacity enforced on every
// new state.
type Builder struct {
	states []State
	limits Limits
}

// NewBuilder returns a Builder with no states yet.
func NewBuilder(opts ...Option) *Builder {
	limits := DefaultLimits()
	for _, o := range opts {
		o(&limits)
	}
	return &Builder{limits: limits}
}

// newState appends a fresh state with no transitions and returns its
// id, failing if doing so would exceed the builder's state cap.
func (b *Builder) newState() (StateID, error) {
	if len(b.states) >= b.limits.MaxStates {
		return NoState, ErrCapacity
	}
	// conv.IntToUint16 turns a would-be silent StateID overflow into an
	// immediate panic; MaxStates is checked above specifically so this
	// narrowing never actually fires in practice.
	id := StateID(conv.IntToUint16(len(b.states)))
	s := State{}
	for i := range s.Trans {
		s.Trans[i] = NoState
	}
	b.states = append(b.states, s)
	return id, nil
}

// AddEpsilon adds an epsilon transition from -> to.
func (b *Builder) AddEpsilon(from, to StateID) {
	b.states[from].Eps = b.states[from].Eps.Add(int(to))
}

// SetByte sets the byte transition from -> to on input c, per spec.md
// section 4.1's deterministic-per-literal-state convention: within one
// compiled literal or range, a state transitions on a given byte to at
// most one target, so overwriting is never observed in practice.
func (b *Builder) SetByte(from StateID, c byte, to StateID) {
	b.states[from].Trans[c] = to
}

// SetEnd marks id as accepting for the regex at input-list index
// output.
func (b *Builder) SetEnd(id StateID, output int) {
	b.states[id].IsEnd = true
	b.states[id].Output = output
}

// compile builds a Thompson-construction fragment for n, returning its
// entry and exit states. Every rule below implements one row of spec.md
// section 4.3's construction table.
func (b *Builder) compile(n ast.Node) (start, end StateID, err error) {
	switch n.Kind {
	case ast.KindStr:
		return b.compileLiteral(n.Bytes)
	case ast.KindByteRange:
		return b.compileByteRange(n.L.Bytes[0], n.R.Bytes[0])
	case ast.KindSeq:
		return b.compileSeq(n.Kids)
	case ast.KindOr:
		return b.compileAlt([]ast.Node{*n.L, *n.R})
	case ast.KindOneOf:
		return b.compileAlt(n.Kids)
	case ast.KindOpt:
		return b.compileOpt(*n.Sub)
	case ast.KindStar:
		return b.compileStar(*n.Sub)
	case ast.KindPlus:
		return b.compilePlus(*n.Sub)
	default:
		return NoState, NoState, ErrCapacity
	}
}

// compileLiteral chains one state transition per byte of lit.
func (b *Builder) compileLiteral(lit []byte) (start, end StateID, err error) {
	start, err = b.newState()
	if err != nil {
		return NoState, NoState, err
	}
	cur := start
	for _, c := range lit {
		next, err := b.newState()
		if err != nil {
			return NoState, NoState, err
		}
		b.SetByte(cur, c, next)
		cur = next
	}
	return start, cur, nil
}

// compileSeq chains fragments for each child, epsilon-joining each
// fragment's exit to the next fragment's entry.
func (b *Builder) compileSeq(kids []ast.Node) (start, end StateID, err error) {
	if len(kids) == 0 {
		return NoState, NoState, ErrCapacity
	}
	start, end, err = b.compile(kids[0])
	if err != nil {
		return NoState, NoState, err
	}
	for _, k := range kids[1:] {
		s, e, err := b.compile(k)
		if err != nil {
			return NoState, NoState, err
		}
		b.AddEpsilon(end, s)
		end = e
	}
	return start, end, nil
}

// compileAlt builds a new entry state epsilon-branching into every
// branch's entry, and a new exit state every branch's exit
// epsilon-joins, per spec.md section 4.3's alternation rule. Used for
// both '|' (two branches) and bracketed classes (N branches).
func (b *Builder) compileAlt(branches []ast.Node) (start, end StateID, err error) {
	start, err = b.newState()
	if err != nil {
		return NoState, NoState, err
	}
	end, err = b.newState()
	if err != nil {
		return NoState, NoState, err
	}
	for _, br := range branches {
		s, e, err := b.compile(br)
		if err != nil {
			return NoState, NoState, err
		}
		b.AddEpsilon(start, s)
		b.AddEpsilon(e, end)
	}
	return start, end, nil
}

// compileOpt builds "zero or one": a direct epsilon bypass from start
// to end alongside the sub fragment.
func (b *Builder) compileOpt(sub ast.Node) (start, end StateID, err error) {
	s, e, err := b.compile(sub)
	if err != nil {
		return NoState, NoState, err
	}
	start, err = b.newState()
	if err != nil {
		return NoState, NoState, err
	}
	end, err = b.newState()
	if err != nil {
		return NoState, NoState, err
	}
	b.AddEpsilon(start, s)
	b.AddEpsilon(e, end)
	b.AddEpsilon(start, end)
	return start, end, nil
}

// compileStar builds "zero or more": like compileOpt, but the sub
// fragment's exit also loops back to its own entry.
func (b *Builder) compileStar(sub ast.Node) (start, end StateID, err error) {
	s, e, err := b.compile(sub)
	if err != nil {
		return NoState, NoState, err
	}
	start, err = b.newState()
	if err != nil {
		return NoState, NoState, err
	}
	end, err = b.newState()
	if err != nil {
		return NoState, NoState, err
	}
	b.AddEpsilon(start, s)
	b.AddEpsilon(e, s)
	b.AddEpsilon(e, end)
	b.AddEpsilon(start, end)
	return start, end, nil
}

// compilePlus builds "one or more": the sub fragment must be traversed
// at least once, then its exit loops back to its own entry.
func (b *Builder) compilePlus(sub ast.Node) (start, end StateID, err error) {
	s, e, err := b.compile(sub)
	if err != nil {
		return NoState, NoState, err
	}
	end, err = b.newState()
	if err != nil {
		return NoState, NoState, err
	}
	b.AddEpsilon(e, s)
	b.AddEpsilon(e, end)
	return s, end, nil
}
