package sink

// DeltaSink reconstructs a non-decreasing u64 sequence from its delta
// encoding by accumulating each decoded delta onto a running total.
type DeltaSink struct {
	Values []uint64
	acc    uint64
}

// NewDeltaSink creates a DeltaSink with its accumulator at zero.
func NewDeltaSink() *DeltaSink {
	return &DeltaSink{}
}

// Reserve grows the backing slice's capacity by n without changing its length.
func (s *DeltaSink) Reserve(n int) {
	s.Values = growUint64(s.Values, n)
}

// Process adds decoded delta d onto the accumulator and appends the result.
func (s *DeltaSink) Process(d uint64) {
	s.acc += d
	s.Values = append(s.Values, s.acc)
}

// Process8 appends eight copies of the current accumulator. A zero delta
// leaves the accumulator unchanged, so this is valid whenever the decoder
// invokes it (an all-zero group).
func (s *DeltaSink) Process8(uint64) {
	for range 8 {
		s.Values = append(s.Values, s.acc)
	}
}

// Clear empties Values and resets the accumulator to zero.
func (s *DeltaSink) Clear() {
	s.Values = s.Values[:0]
	s.acc = 0
}
