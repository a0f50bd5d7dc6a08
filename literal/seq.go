// Package literal analyzes a parsed pattern for the finite set of
// literal strings it denotes.
//
// A pattern without repetition denotes a finite language; when that
// language is small, the full literal set can be handed to a
// multi-pattern string matcher as a fast path in front of the DFA.
package literal

// Seq is a set of alternative literals extracted from a pattern.
//
// When Complete is true the literals are the pattern's entire language:
// an input matches the pattern iff it equals one of them. An incomplete
// Seq carries no literals and makes no claim about the language.
type Seq struct {
	literals [][]byte
	complete bool
}

// Complete returns true if the literals are exactly the pattern's
// language.
func (s *Seq) Complete() bool {
	return s.complete
}

// Len returns the number of literals.
func (s *Seq) Len() int {
	return len(s.literals)
}

// IsEmpty returns true if the sequence holds no literals.
func (s *Seq) IsEmpty() bool {
	return len(s.literals) == 0
}

// Get returns the i-th literal.
func (s *Seq) Get(i int) []byte {
	return s.literals[i]
}

// HasEmpty returns true if one of the literals is the empty string.
func (s *Seq) HasEmpty() bool {
	for _, lit := range s.literals {
		if len(lit) == 0 {
			return true
		}
	}
	return false
}
