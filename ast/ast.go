// Package ast defines the regex abstract syntax tree produced by package
// parser and consumed by package nfa.
//
// Node is a tagged sum type, one Kind per spec.md section 3's operator
// table. Each Kind only ever populates the fields it needs: a Sequence
// or OneOf uses Kids, Optional/ZeroOrMore/OneOrMore use Sub, Or and
// ByteRange use L/R, and Str uses Bytes — a tagged struct with unused
// fields left zero, rather than a C-style union.
package ast

import "fmt"

// MaxChildren bounds the number of children a Sequence or OneOf node may
// hold, and the number of components a bracketed character class may
// list, per spec.md section 6's capacity limits.
const MaxChildren = 20

// Kind identifies which regex operator a Node represents.
type Kind uint8

const (
	// KindSeq is concatenation: match Kids in order.
	KindSeq Kind = iota
	// KindOr is alternation: match L or R.
	KindOr
	// KindOpt is "?": match Sub zero or one times.
	KindOpt
	// KindStar is "*": match Sub zero or more times.
	KindStar
	// KindPlus is "+": match Sub one or more times.
	KindPlus
	// KindOneOf is a bracketed class "[...]": match any one of Kids.
	KindOneOf
	// KindByteRange is an inclusive byte range "a-b" inside a class.
	// L and R are both KindStr nodes of length 1, with L.Bytes[0] <= R.Bytes[0].
	KindByteRange
	// KindStr is a literal byte sequence.
	KindStr
)

// String returns the operator name, for diagnostics and test failure
// messages.
func (k Kind) String() string {
	switch k {
	case KindSeq:
		return "Sequence"
	case KindOr:
		return "Or"
	case KindOpt:
		return "Optional"
	case KindStar:
		return "ZeroOrMore"
	case KindPlus:
		return "OneOrMore"
	case KindOneOf:
		return "OneOf"
	case KindByteRange:
		return "Range"
	case KindStr:
		return "String"
	default:
		return "Unknown"
	}
}

// Node is one node of a regex AST. The tree is acyclic and exclusively
// owned by its root; there is no node-sharing across subtrees.
type Node struct {
	Kind  Kind
	Kids  []Node // KindSeq, KindOneOf
	Sub   *Node  // KindOpt, KindStar, KindPlus
	L, R  *Node  // KindOr, KindByteRange
	Bytes []byte // KindStr
}

// Seq builds a concatenation node. Per spec.md section 3, Kids holds
// 1..MaxChildren components; a single-component Sequence is benign but
// callers (the parser) normally collapse it to the component itself.
func Seq(kids ...Node) Node {
	return Node{Kind: KindSeq, Kids: kids}
}

// Or builds an alternation node.
func Or(l, r Node) Node {
	return Node{Kind: KindOr, L: &l, R: &r}
}

// Opt builds a "zero or one" node.
func Opt(sub Node) Node {
	return Node{Kind: KindOpt, Sub: &sub}
}

// Star builds a "zero or more" node.
func Star(sub Node) Node {
	return Node{Kind: KindStar, Sub: &sub}
}

// Plus builds a "one or more" node.
func Plus(sub Node) Node {
	return Node{Kind: KindPlus, Sub: &sub}
}

// OneOf builds a bracketed-class node over its ordered components.
func OneOf(kids ...Node) Node {
	return Node{Kind: KindOneOf, Kids: kids}
}

// ByteRange builds an inclusive byte-range node. lo and hi must each be
// KindStr nodes of length 1; Validate enforces this.
func ByteRange(lo, hi Node) Node {
	return Node{Kind: KindByteRange, L: &lo, R: &hi}
}

// Str builds a literal node over a nonempty byte sequence.
func Str(b []byte) Node {
	return Node{Kind: KindStr, Bytes: b}
}

// Validate walks n and checks the invariants spec.md section 3 and
// section 6 require: ByteRange endpoints are single bytes with lo <= hi,
// and no Sequence/OneOf exceeds MaxChildren children.
func Validate(n Node) error {
	switch n.Kind {
	case KindSeq, KindOneOf:
		if len(n.Kids) == 0 {
			return fmt.Errorf("%s node has no children", n.Kind)
		}
		if len(n.Kids) > MaxChildren {
			return fmt.Errorf("%s node has %d children, exceeds limit of %d", n.Kind, len(n.Kids), MaxChildren)
		}
		for _, k := range n.Kids {
			if err := Validate(k); err != nil {
				return err
			}
		}
	case KindOr:
		if err := Validate(*n.L); err != nil {
			return err
		}
		if err := Validate(*n.R); err != nil {
			return err
		}
	case KindOpt, KindStar, KindPlus:
		if err := Validate(*n.Sub); err != nil {
			return err
		}
	case KindByteRange:
		if n.L.Kind != KindStr || len(n.L.Bytes) != 1 {
			return fmt.Errorf("range has non-single-character left endpoint")
		}
		if n.R.Kind != KindStr || len(n.R.Bytes) != 1 {
			return fmt.Errorf("range has non-single-character right endpoint")
		}
		if n.L.Bytes[0] > n.R.Bytes[0] {
			return fmt.Errorf("range endpoints reversed: %q > %q", n.L.Bytes[0], n.R.Bytes[0])
		}
	case KindStr:
		if len(n.Bytes) == 0 {
			return fmt.Errorf("string node is empty")
		}
	default:
		return fmt.Errorf("unknown node kind %d", n.Kind)
	}
	return nil
}
