package nfa

import "fmt"

// Builder allocates states and accumulates the transition relation during
// construction. One Builder serves one compilation: every fragment of the
// automaton draws fresh ids from the same Builder, so independently built
// fragments occupy disjoint id ranges and merging their transitions is
// plain relation union.
type Builder struct {
	next  StateID
	trans map[StateID]map[rune][]StateID
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		trans: make(map[StateID]map[rune][]StateID),
	}
}

// NewState issues a fresh state id. Ids increase monotonically and are
// never reused, even if the state is later discarded.
func (b *Builder) NewState() StateID {
	id := b.next
	b.next++
	return id
}

// AddTransition records a transition from -> to on the given character.
func (b *Builder) AddTransition(from StateID, label rune, to StateID) {
	b.add(from, label, to)
}

// AddEpsilon records an epsilon transition from -> to.
func (b *Builder) AddEpsilon(from, to StateID) {
	b.add(from, Epsilon, to)
}

func (b *Builder) add(from StateID, label rune, to StateID) {
	// A transition referencing an unallocated state is a programming
	// defect in the assembly rules, not a recoverable condition.
	if from >= b.next || to >= b.next {
		panic(fmt.Sprintf("nfa: transition %d -> %d references an unallocated state", from, to))
	}
	row := b.trans[from]
	if row == nil {
		row = make(map[rune][]StateID)
		b.trans[from] = row
	}
	row[label] = append(row[label], to)
}

// States returns the number of states allocated so far.
func (b *Builder) States() int {
	return int(b.next)
}

// Build finalizes the automaton with the given start state and accept
// set. The Builder must not be used after Build.
func (b *Builder) Build(start StateID, accepts []StateID) *NFA {
	if start >= b.next {
		panic(fmt.Sprintf("nfa: start state %d was never allocated", start))
	}
	acceptSet := make(map[StateID]struct{}, len(accepts))
	for _, id := range accepts {
		if id >= b.next {
			panic(fmt.Sprintf("nfa: accept state %d was never allocated", id))
		}
		acceptSet[id] = struct{}{}
	}
	return &NFA{
		start:      start,
		accepts:    acceptSet,
		trans:      b.trans,
		stateCount: int(b.next),
	}
}
