package sink

// PlainSink stores decoded values with no predictor applied.
type PlainSink struct {
	Values []uint64
}

// NewPlainSink creates an empty PlainSink.
func NewPlainSink() *PlainSink {
	return &PlainSink{}
}

// Reserve grows the backing slice's capacity by n without changing its length.
func (s *PlainSink) Reserve(n int) {
	s.Values = growUint64(s.Values, n)
}

// Process appends one decoded value.
func (s *PlainSink) Process(v uint64) {
	s.Values = append(s.Values, v)
}

// Process8 appends eight copies of v. The decoder only calls this for an
// all-zero group, so v is always 0 in practice.
func (s *PlainSink) Process8(v uint64) {
	for range 8 {
		s.Values = append(s.Values, v)
	}
}

// Clear empties Values, retaining the underlying array for reuse.
func (s *PlainSink) Clear() {
	s.Values = s.Values[:0]
}

func growUint64(values []uint64, n int) []uint64 {
	if cap(values)-len(values) >= n {
		return values
	}

	grown := make([]uint64, len(values), len(values)+n)
	copy(grown, values)

	return grown
}
