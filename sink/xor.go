package sink

import "math"

// XorDoubleSink reconstructs float64 values from an XOR-delta encoding.
// last tracks the raw IEEE-754 bit pattern of the most recently
// reconstructed value, not the float itself, so bit-exact reconstruction
// (including NaN payloads and signed zeros) falls out of plain XOR.
type XorDoubleSink struct {
	Values []float64
	last   uint64
}

// NewXorDoubleSink creates an XorDoubleSink with no seed applied yet.
// Callers must call Reset with the stream's seed bits before decoding.
func NewXorDoubleSink() *XorDoubleSink {
	return &XorDoubleSink{}
}

// Reserve grows the backing slice's capacity by n without changing its length.
func (s *XorDoubleSink) Reserve(n int) {
	if cap(s.Values)-len(s.Values) >= n {
		return
	}

	grown := make([]float64, len(s.Values), len(s.Values)+n)
	copy(grown, s.Values)
	s.Values = grown
}

// Process XORs decoded delta d onto last and appends the reconstructed float.
func (s *XorDoubleSink) Process(d uint64) {
	s.last ^= d
	s.Values = append(s.Values, math.Float64frombits(s.last))
}

// Process8 appends eight copies of the current float. A zero XOR delta
// leaves last unchanged, so this is valid whenever the decoder invokes it
// (an all-zero group).
func (s *XorDoubleSink) Process8(uint64) {
	f := math.Float64frombits(s.last)
	for range 8 {
		s.Values = append(s.Values, f)
	}
}

// Reset clears Values, seeds last with the stream's raw first-value bits,
// and pushes the seed's float value as the first reconstructed entry.
func (s *XorDoubleSink) Reset(seed uint64) {
	s.Values = s.Values[:0]
	s.last = seed
	s.Values = append(s.Values, math.Float64frombits(seed))
}
