package randsource

import "fmt"

// Sequence replays a fixed list of draws. It makes sampling runs
// reproducible in tests and from the command line.
type Sequence struct {
	values []float64
	next   int
}

func NewSequence(values ...float64) *Sequence {
	v := make([]float64, len(values))
	copy(v, values)
	return &Sequence{values: v}
}

// Float64 returns the next stored value. Reading past the end panics:
// callers are expected to size the sequence with Remaining.
func (s *Sequence) Float64() float64 {
	if s.next >= len(s.values) {
		panic(fmt.Sprintf("randsource: sequence exhausted after %d draws", len(s.values)))
	}
	v := s.values[s.next]
	s.next++
	return v
}

// Remaining returns the number of draws left.
func (s *Sequence) Remaining() int {
	return len(s.values) - s.next
}

// Len returns the total number of stored draws.
func (s *Sequence) Len() int {
	return len(s.values)
}
