// Package syntax turns a regular-expression pattern into an abstract
// syntax tree.
//
// The grammar surface is deliberately small: literal characters,
// alternation (|), implicit concatenation, Kleene star (*), grouping via
// parentheses, and the escape set {\, (, ), |, *}. A pattern either
// parses to a well-formed *Node or fails with a *ParseError describing
// exactly what went wrong and where.
package syntax

import "fmt"

// Op identifies the variant of an AST node.
type Op uint8

const (
	// OpChar matches a single concrete character.
	OpChar Op = iota

	// OpEmpty matches the zero-length input.
	OpEmpty

	// OpStar matches zero or more repetitions of its operand.
	OpStar

	// OpUnion matches either of its two operands.
	OpUnion

	// OpConcat matches its left operand followed by its right operand.
	OpConcat
)

// String returns a human-readable representation of the Op
func (op Op) String() string {
	switch op {
	case OpChar:
		return "Char"
	case OpEmpty:
		return "Empty"
	case OpStar:
		return "Star"
	case OpUnion:
		return "Union"
	case OpConcat:
		return "Concat"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(op))
	}
}

// Node is one node of a parsed pattern. It is a tagged union: Op selects
// the variant, and only the fields that variant uses are meaningful.
//
//   - OpChar uses Char
//   - OpStar uses Left (the repeated operand)
//   - OpUnion and OpConcat use Left and Right
//   - OpEmpty uses no fields
type Node struct {
	Op    Op
	Char  rune
	Left  *Node
	Right *Node
}

// Char returns a node matching the single character r.
func Char(r rune) *Node {
	return &Node{Op: OpChar, Char: r}
}

// Empty returns a node matching the zero-length input.
func Empty() *Node {
	return &Node{Op: OpEmpty}
}

// Star returns a node matching zero or more repetitions of sub.
func Star(sub *Node) *Node {
	return &Node{Op: OpStar, Left: sub}
}

// Union returns a node matching either left or right.
func Union(left, right *Node) *Node {
	return &Node{Op: OpUnion, Left: left, Right: right}
}

// Concat returns a node matching left followed by right.
func Concat(left, right *Node) *Node {
	return &Node{Op: OpConcat, Left: left, Right: right}
}

// String returns a compact representation of the tree for debugging
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Op {
	case OpChar:
		return fmt.Sprintf("Char(%c)", n.Char)
	case OpEmpty:
		return "Empty"
	case OpStar:
		return fmt.Sprintf("Star(%s)", n.Left)
	case OpUnion:
		return fmt.Sprintf("Union(%s, %s)", n.Left, n.Right)
	case OpConcat:
		return fmt.Sprintf("Concat(%s, %s)", n.Left, n.Right)
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(n.Op))
	}
}
