// Package sparse provides a sparse set data structure for efficient membership testing.
//
// A sparse set supports O(1) insertion and membership testing while
// maintaining a dense list of elements in insertion order. It is used to
// track already-visited NFA states during epsilon-closure computation,
// where the universe of possible values (state ids) is known up front.
package sparse

// Set is a set of uint32 values backed by a sparse/dense array pair.
// The sparse array maps values to indices in the dense array; an entry is
// a member only if the dense slot it points at holds the value back.
type Set struct {
	sparse []uint32
	dense  []uint32
}

// NewSet creates a new sparse set that can hold values in [0, capacity).
func NewSet(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds a value to the set. It reports whether the value was newly
// added. Panics if value >= capacity.
func (s *Set) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// Contains returns true if the value is in the set
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < uint32(len(s.dense)) && s.dense[idx] == value
}

// Len returns the number of elements in the set
func (s *Set) Len() int {
	return len(s.dense)
}

// Values returns the elements in insertion order.
// The returned slice is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}

// Clear removes all elements from the set in O(1) time
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}
