package predictor

// DeltaEncode transforms values into deltas against a running accumulator
// initialized to zero. A decreasing input clamps its delta to zero rather
// than underflowing; this is lossy and callers that need a true inverse
// must guard the input with their own monotonicity check.
func DeltaEncode(values []uint64) []uint64 {
	deltas := make([]uint64, len(values))

	var last uint64
	for i, v := range values {
		if v >= last {
			deltas[i] = v - last
		}
		last = v
	}

	return deltas
}
