package nfa

import "testing"

func TestBuilder_NewState(t *testing.T) {
	b := NewBuilder()
	if got := b.NewState(); got != 0 {
		t.Errorf("first id = %d, want 0", got)
	}
	if got := b.NewState(); got != 1 {
		t.Errorf("second id = %d, want 1", got)
	}
	if b.States() != 2 {
		t.Errorf("States() = %d, want 2", b.States())
	}
}

func TestBuilder_TransitionsAccumulate(t *testing.T) {
	b := NewBuilder()
	s0 := b.NewState()
	s1 := b.NewState()
	s2 := b.NewState()

	// Two destinations for the same (state, label) pair are allowed;
	// this is the source of nondeterminism.
	b.AddTransition(s0, 'a', s1)
	b.AddTransition(s0, 'a', s2)
	b.AddEpsilon(s1, s2)

	n := b.Build(s0, []StateID{s2})

	dests := n.Next(s0, 'a')
	if len(dests) != 2 {
		t.Fatalf("Next(s0, 'a') has %d destinations, want 2", len(dests))
	}
	if eps := n.Next(s1, Epsilon); len(eps) != 1 || eps[0] != s2 {
		t.Errorf("Next(s1, ε) = %v, want [%d]", eps, s2)
	}
	if n.Next(s2, 'a') != nil {
		t.Error("Next(s2, 'a') should be nil")
	}
}

func TestBuilder_UnallocatedStatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on transition to unallocated state")
		}
	}()
	b := NewBuilder()
	s0 := b.NewState()
	b.AddTransition(s0, 'a', 99)
}

func TestNFA_Labels(t *testing.T) {
	b := NewBuilder()
	s0 := b.NewState()
	s1 := b.NewState()
	b.AddTransition(s0, 'c', s1)
	b.AddTransition(s0, 'a', s1)
	b.AddTransition(s0, 'b', s1)
	b.AddEpsilon(s0, s1)
	n := b.Build(s0, []StateID{s1})

	labels := n.Labels(s0)
	want := []rune{'a', 'b', 'c'}
	if len(labels) != len(want) {
		t.Fatalf("Labels(s0) = %v, want %v", labels, want)
	}
	for i, r := range want {
		if labels[i] != r {
			t.Errorf("label %d = %q, want %q", i, labels[i], r)
		}
	}
	if got := n.Labels(s1); got != nil {
		t.Errorf("Labels(s1) = %v, want nil", got)
	}
}
