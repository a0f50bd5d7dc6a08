// Package dfa determinizes a Thompson NFA into a deterministic finite
// automaton via subset construction.
//
// Each DFA state stands for a canonical set of NFA states. The transition
// table is partial: the absence of an entry for (state, symbol) means the
// automaton rejects on that symbol from that state; there is no implicit
// dead state.
package dfa

import (
	"github.com/shu-kitamura/regex-dfa/nfa"
)

// StateID uniquely identifies a DFA state. The numbering is independent
// from NFA state numbering.
type StateID uint32

// registrar maps sets of NFA states to stable DFA state identities.
//
// Identity is a pure function of the canonical form of the set: the same
// elements, in any order and with any duplicates, always yield the same
// StateID. A previously unseen set allocates the next sequential id.
// The registrar also records each canonical set so the accept set can be
// derived once determinization finishes.
type registrar struct {
	ids  map[string]StateID
	sets [][]nfa.StateID
}

func newRegistrar() *registrar {
	return &registrar{ids: make(map[string]StateID)}
}

// getOrCreate canonicalizes states and returns its DFA identity,
// allocating a fresh one on first sight. The input slice is not modified.
func (r *registrar) getOrCreate(states []nfa.StateID) StateID {
	canonical := canonicalize(states)
	key := stateKey(canonical)
	if id, ok := r.ids[key]; ok {
		return id
	}
	id := StateID(len(r.sets))
	r.ids[key] = id
	r.sets = append(r.sets, canonical)
	return id
}

// count returns the number of registered DFA states.
func (r *registrar) count() int {
	return len(r.sets)
}

// set returns the canonical NFA-state set behind a DFA state.
func (r *registrar) set(id StateID) []nfa.StateID {
	return r.sets[id]
}

// canonicalize returns a sorted, duplicate-free copy of states.
// Using anything less than the canonical form as the registrar key would
// let set-equal inputs receive distinct identities, silently duplicating
// automaton states.
func canonicalize(states []nfa.StateID) []nfa.StateID {
	sorted := make([]nfa.StateID, len(states))
	copy(sorted, states)
	sortStateIDs(sorted)

	out := sorted[:0]
	for i, id := range sorted {
		if i == 0 || id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}

// stateKey encodes a canonical set as a byte-exact map key. An exact key
// rather than a hash: identity must hold for every set, not merely with
// high probability.
func stateKey(canonical []nfa.StateID) string {
	buf := make([]byte, 0, len(canonical)*4)
	for _, id := range canonical {
		buf = append(buf,
			byte(id>>24),
			byte(id>>16),
			byte(id>>8),
			byte(id),
		)
	}
	return string(buf)
}

// sortStateIDs performs insertion sort on NFA state ids.
// State sets are typically small and often nearly sorted already
// (epsilon closures are built from ascending worklists), so insertion
// sort beats the generic sort here.
func sortStateIDs(states []nfa.StateID) {
	for i := 1; i < len(states); i++ {
		key := states[i]
		j := i - 1
		for j >= 0 && states[j] > key {
			states[j+1] = states[j]
			j--
		}
		states[j+1] = key
	}
}
