package nfa

import (
	"fmt"

	"github.com/shu-kitamura/regex-dfa/syntax"
)

// fragment is a partially assembled automaton: a start state, the set of
// states that accept at this stage of assembly, and (implicitly, in the
// shared Builder) its transitions.
//
// Fragments obey a composability contract: all of a fragment's
// transitions stay within the states it allocated, so fragments can be
// linked by epsilon edges at their start/accept boundary without
// interfering with one another.
type fragment struct {
	start   StateID
	accepts []StateID
}

// Compile assembles an NFA from a well-formed AST via Thompson
// construction. It is total: given any tree built from the five AST
// variants it cannot fail. Malformed input is rejected upstream by the
// parser; an unknown node op here is a programming defect and panics.
func Compile(ast *syntax.Node) *NFA {
	b := NewBuilder()
	f := compileNode(b, ast)
	return b.Build(f.start, f.accepts)
}

func compileNode(b *Builder, node *syntax.Node) fragment {
	switch node.Op {
	case syntax.OpChar:
		// s0 --c--> s1
		s0 := b.NewState()
		s1 := b.NewState()
		b.AddTransition(s0, node.Char, s1)
		return fragment{start: s0, accepts: []StateID{s1}}

	case syntax.OpEmpty:
		// s0 --ε--> s1, matching the zero-length input.
		s0 := b.NewState()
		s1 := b.NewState()
		b.AddEpsilon(s0, s1)
		return fragment{start: s0, accepts: []StateID{s1}}

	case syntax.OpStar:
		// A fresh start state accepts immediately (zero repetitions)
		// and epsilon-links into the inner fragment; every inner accept
		// loops back to the inner start for further repetitions.
		inner := compileNode(b, node.Left)
		s0 := b.NewState()
		b.AddEpsilon(s0, inner.start)
		for _, a := range inner.accepts {
			b.AddEpsilon(a, inner.start)
		}
		accepts := make([]StateID, 0, len(inner.accepts)+1)
		accepts = append(accepts, s0)
		accepts = append(accepts, inner.accepts...)
		return fragment{start: s0, accepts: accepts}

	case syntax.OpUnion:
		// A fresh start state epsilon-branches into both arms; the
		// union accepts wherever either arm accepts.
		left := compileNode(b, node.Left)
		right := compileNode(b, node.Right)
		s0 := b.NewState()
		b.AddEpsilon(s0, left.start)
		b.AddEpsilon(s0, right.start)
		accepts := make([]StateID, 0, len(left.accepts)+len(right.accepts))
		accepts = append(accepts, left.accepts...)
		accepts = append(accepts, right.accepts...)
		return fragment{start: s0, accepts: accepts}

	case syntax.OpConcat:
		// The left fragment's accepts become pass-through states
		// epsilon-linked to the right fragment's start.
		left := compileNode(b, node.Left)
		right := compileNode(b, node.Right)
		for _, a := range left.accepts {
			b.AddEpsilon(a, right.start)
		}
		return fragment{start: left.start, accepts: right.accepts}

	default:
		panic(fmt.Sprintf("nfa: unknown ast op %s", node.Op))
	}
}
