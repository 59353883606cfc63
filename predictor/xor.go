package predictor

import (
	"math"

	"github.com/nibblepack/nibblepack/group"
)

// XorEncode requires at least one value and returns group.ErrInputTooShort
// otherwise. It returns the first value's raw bit pattern as seed, and the
// XOR of each consecutive pair of raw bit patterns as deltas. prev tracks
// the raw bits, not the reconstructed float, so NaN payloads and signed
// zeros survive exactly.
func XorEncode(values []float64) (seed uint64, deltas []uint64, err error) {
	if len(values) == 0 {
		return 0, nil, group.ErrInputTooShort
	}

	seed = math.Float64bits(values[0])
	deltas = make([]uint64, len(values)-1)

	last := seed
	for i := 1; i < len(values); i++ {
		bits := math.Float64bits(values[i])
		deltas[i-1] = last ^ bits
		last = bits
	}

	return seed, deltas, nil
}
