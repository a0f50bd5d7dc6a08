package dfa

import (
	"fmt"
	"io"
	"sort"
)

// DFA is the terminal artifact of compilation: a deterministic automaton
// with at most one transition per (state, symbol). It is immutable once
// built and safe to share across concurrent readers without locking.
type DFA struct {
	start      StateID
	accepts    map[StateID]struct{}
	trans      map[StateID]map[rune]StateID
	stateCount int
}

// Start returns the start state.
func (d *DFA) Start() StateID {
	return d.start
}

// States returns the number of reachable DFA states.
func (d *DFA) States() int {
	return d.stateCount
}

// IsAccept returns true if id is an accept state.
func (d *DFA) IsAccept(id StateID) bool {
	_, ok := d.accepts[id]
	return ok
}

// NextState returns the successor of id on symbol r. The second return
// value is false when no transition exists, which means the automaton
// rejects on this symbol from this state.
func (d *DFA) NextState(id StateID, r rune) (StateID, bool) {
	next, ok := d.trans[id][r]
	return next, ok
}

// MatchString reports whether the entire input is accepted.
//
// The run starts at the start state and consumes one rune per step; an
// undefined transition fails the match immediately. The empty input is
// accepted iff the start state itself accepts.
func (d *DFA) MatchString(input string) bool {
	cur := d.start
	for _, r := range input {
		next, ok := d.NextState(cur, r)
		if !ok {
			return false
		}
		cur = next
	}
	return d.IsAccept(cur)
}

// Match reports whether the entire input is accepted, decoding b as UTF-8.
func (d *DFA) Match(b []byte) bool {
	return d.MatchString(string(b))
}

// WriteDOT writes a Graphviz representation of the DFA to w.
func (d *DFA) WriteDOT(w io.Writer) {
	fmt.Fprintln(w, "digraph DFA {")
	fmt.Fprintln(w, "    rankdir=LR;")
	for id := StateID(0); int(id) < d.stateCount; id++ {
		shape := "circle"
		if d.IsAccept(id) {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    q%d [shape=%s];\n", id, shape)

		row := d.trans[id]
		labels := make([]rune, 0, len(row))
		for label := range row {
			labels = append(labels, label)
		}
		sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
		for _, label := range labels {
			fmt.Fprintf(w, "    q%d -> q%d [label=%q];\n", id, row[label], string(label))
		}
	}
	fmt.Fprintf(w, "    _start [shape=point]; _start -> q%d;\n", d.start)
	fmt.Fprintln(w, "}")
}

// String returns a human-readable summary of the DFA
func (d *DFA) String() string {
	return fmt.Sprintf("DFA{states: %d, start: %d, accepts: %d}",
		d.stateCount, d.start, len(d.accepts))
}
