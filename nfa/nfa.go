// Package nfa provides a Thompson NFA (Non-deterministic Finite Automaton)
// built from a parsed pattern's AST.
//
// The NFA is pure construction scaffolding: it exists to be determinized
// into a DFA and is discarded afterwards. Its transition relation is a
// flat many-to-many mapping from (state, label) to a set of destination
// states, where the label is either a concrete character or Epsilon.
package nfa

import (
	"fmt"
	"io"
	"sort"
)

// StateID uniquely identifies an NFA state within one construction.
// Ids are issued sequentially by a Builder and are never reused, even if
// the state is later unreachable.
type StateID uint32

// Epsilon labels a transition consumed without reading an input symbol.
// It is outside the valid Unicode code point range and can never collide
// with a character label.
const Epsilon rune = -1

// NFA is an immutable nondeterministic automaton: a start state, a set of
// accept states, and the transition relation.
type NFA struct {
	start      StateID
	accepts    map[StateID]struct{}
	trans      map[StateID]map[rune][]StateID
	stateCount int
}

// Start returns the start state.
func (n *NFA) Start() StateID {
	return n.start
}

// States returns the number of allocated states. State ids are dense:
// every id in [0, States()) was issued by the builder.
func (n *NFA) States() int {
	return n.stateCount
}

// IsAccept returns true if id is an accept state.
func (n *NFA) IsAccept(id StateID) bool {
	_, ok := n.accepts[id]
	return ok
}

// Accepts returns the accept states in ascending order.
func (n *NFA) Accepts() []StateID {
	out := make([]StateID, 0, len(n.accepts))
	for id := range n.accepts {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Next returns the destination states for the given source state and
// label. The label is either a concrete character or Epsilon. Returns nil
// when there is no such transition.
func (n *NFA) Next(id StateID, label rune) []StateID {
	return n.trans[id][label]
}

// Labels returns the distinct non-epsilon labels with at least one
// transition out of id, in ascending order.
func (n *NFA) Labels(id StateID) []rune {
	row := n.trans[id]
	if len(row) == 0 {
		return nil
	}
	labels := make([]rune, 0, len(row))
	for label := range row {
		if label != Epsilon {
			labels = append(labels, label)
		}
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}

// WriteDOT writes a Graphviz representation of the NFA to w.
// Accept states are drawn as double circles; epsilon edges are labeled ε.
func (n *NFA) WriteDOT(w io.Writer) {
	fmt.Fprintln(w, "digraph NFA {")
	fmt.Fprintln(w, "    rankdir=LR;")
	for id := StateID(0); int(id) < n.stateCount; id++ {
		shape := "circle"
		if n.IsAccept(id) {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    n%d [shape=%s];\n", id, shape)

		if eps := n.Next(id, Epsilon); len(eps) > 0 {
			for _, to := range sortedIDs(eps) {
				fmt.Fprintf(w, "    n%d -> n%d [label=\"ε\"];\n", id, to)
			}
		}
		for _, label := range n.Labels(id) {
			for _, to := range sortedIDs(n.Next(id, label)) {
				fmt.Fprintf(w, "    n%d -> n%d [label=%q];\n", id, to, string(label))
			}
		}
	}
	fmt.Fprintf(w, "    _start [shape=point]; _start -> n%d;\n", n.start)
	fmt.Fprintln(w, "}")
}

// String returns a human-readable summary of the NFA
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, start: %d, accepts: %d}",
		n.stateCount, n.start, len(n.accepts))
}

func sortedIDs(ids []StateID) []StateID {
	out := make([]StateID, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
