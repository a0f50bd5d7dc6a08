package dfa

import (
	"sort"

	"github.com/shu-kitamura/regex-dfa/internal/sparse"
	"github.com/shu-kitamura/regex-dfa/nfa"
)

// Determinize converts an NFA into an equivalent DFA via subset
// construction. Only subsets reachable from the start closure are
// populated. The resulting transition structure and accept membership
// depend solely on the NFA; state ids are assigned in breadth-first
// discovery order.
func Determinize(n *nfa.NFA) *DFA {
	reg := newRegistrar()

	startSet := epsilonClosure(n, []nfa.StateID{n.Start()})
	start := reg.getOrCreate(startSet)

	trans := make(map[StateID]map[rune]StateID)
	visited := make(map[StateID]bool)
	worklist := [][]nfa.StateID{startSet}

	for len(worklist) > 0 {
		set := worklist[0]
		worklist = worklist[1:]

		id := reg.getOrCreate(set)
		// The same logical subset can be enqueued more than once before
		// it is expanded; skip duplicates.
		if visited[id] {
			continue
		}
		visited[id] = true

		for _, label := range moveLabels(n, set) {
			var raw []nfa.StateID
			for _, s := range set {
				raw = append(raw, n.Next(s, label)...)
			}
			next := epsilonClosure(n, raw)
			nextID := reg.getOrCreate(next)

			row := trans[id]
			if row == nil {
				row = make(map[rune]StateID)
				trans[id] = row
			}
			row[label] = nextID

			if !visited[nextID] {
				worklist = append(worklist, next)
			}
		}
	}

	// Derive the accept set once: a DFA state accepts iff its subset
	// intersects the NFA accept set.
	accepts := make(map[StateID]struct{})
	for i := 0; i < reg.count(); i++ {
		id := StateID(i)
		for _, s := range reg.set(id) {
			if n.IsAccept(s) {
				accepts[id] = struct{}{}
				break
			}
		}
	}

	return &DFA{
		start:      start,
		accepts:    accepts,
		trans:      trans,
		stateCount: reg.count(),
	}
}

// epsilonClosure computes the smallest superset of states closed under
// epsilon transitions, including the input states themselves.
//
// The traversal tracks already-included states in a sparse set and never
// re-expands one; epsilon graphs are cyclic in general (the star
// construction introduces a loop), so this guard is what makes the
// traversal terminate.
func epsilonClosure(n *nfa.NFA, states []nfa.StateID) []nfa.StateID {
	seen := sparse.NewSet(uint32(n.States()))
	stack := make([]nfa.StateID, 0, len(states))
	for _, s := range states {
		if seen.Insert(uint32(s)) {
			stack = append(stack, s)
		}
	}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range n.Next(cur, nfa.Epsilon) {
			if seen.Insert(uint32(next)) {
				stack = append(stack, next)
			}
		}
	}

	out := make([]nfa.StateID, 0, seen.Len())
	for _, v := range seen.Values() {
		out = append(out, nfa.StateID(v))
	}
	return out
}

// moveLabels returns the distinct non-epsilon labels leaving any state in
// the set, in ascending order. Sorted iteration keeps the construction
// independent of map iteration order.
func moveLabels(n *nfa.NFA, set []nfa.StateID) []rune {
	distinct := make(map[rune]struct{})
	for _, s := range set {
		for _, label := range n.Labels(s) {
			distinct[label] = struct{}{}
		}
	}
	if len(distinct) == 0 {
		return nil
	}
	labels := make([]rune, 0, len(distinct))
	for label := range distinct {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}
