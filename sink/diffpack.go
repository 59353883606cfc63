package sink

import (
	"fmt"

	"github.com/nibblepack/nibblepack/group"
	"github.com/nibblepack/nibblepack/internal/options"
	"github.com/nibblepack/nibblepack/internal/pool"
)

// DiffPackOption configures a DeltaDiffPackSink at construction time.
type DiffPackOption = options.Option[*DeltaDiffPackSink]

// WithInitialDeltas seeds lastDeltas from a prior pass's bucket values,
// e.g. when resuming a sink after a restart instead of starting the diff
// baseline from zero. len(initial) must equal the sink's bucket count.
func WithInitialDeltas(initial []uint64) DiffPackOption {
	return options.New(func(s *DeltaDiffPackSink) error {
		if len(initial) != len(s.lastDeltas) {
			return fmt.Errorf("nibblepack: initial deltas length %d does not match bucket count %d", len(initial), len(s.lastDeltas))
		}
		copy(s.lastDeltas, initial)

		return nil
	})
}

// DeltaDiffPackSink re-encodes a decoded value stream as the difference
// against the previous pass's values, then immediately re-runs that diff
// through the group encoder. It is built for repeated histogram snapshots:
// one Process call per bucket, one pass per arriving histogram, with
// lastDeltas carrying each bucket's prior value across passes.
//
// If an incoming value is smaller than the bucket's last observed value,
// the diff would underflow; DeltaDiffPackSink clamps by emitting the raw
// value instead and records the drop in ValueDropped.
type DeltaDiffPackSink struct {
	lastDeltas   []uint64
	buf          [8]uint64
	i            int
	valueDropped bool
	out          *pool.ByteBuffer
}

// NewDeltaDiffPackSink creates a sink for histograms of bucketCount buckets,
// writing re-encoded group frames to out.
func NewDeltaDiffPackSink(bucketCount int, out *pool.ByteBuffer, opts ...DiffPackOption) (*DeltaDiffPackSink, error) {
	s := &DeltaDiffPackSink{
		lastDeltas: make([]uint64, bucketCount),
		out:        out,
	}

	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

// Reserve is a no-op: all state lives in the fixed-size lastDeltas vector
// and the 8-slot re-encode buffer, neither of which grows with n.
func (s *DeltaDiffPackSink) Reserve(int) {}

// Process consumes one decoded bucket value, diffs it against the value
// last observed at this bucket position, and enqueues the diff for
// re-encoding.
func (s *DeltaDiffPackSink) Process(v uint64) {
	idx := s.i % len(s.lastDeltas)

	var diff uint64
	if v < s.lastDeltas[idx] {
		s.valueDropped = true
		diff = v
	} else {
		diff = v - s.lastDeltas[idx]
	}
	s.lastDeltas[idx] = v

	s.buf[s.i%8] = diff
	s.i++

	if s.i%8 == 0 {
		group.Encode(s.buf, s.out)
		s.buf = [8]uint64{}
	}
}

// Process8 is defined as eight scalar Process calls; the shortcut the
// other sinks use for an all-zero group is not valid here, since v == 0
// can still underflow against a nonzero lastDeltas entry.
func (s *DeltaDiffPackSink) Process8(v uint64) {
	for range 8 {
		s.Process(v)
	}
}

// Finish flushes a partial trailing group, zero-padding the unused slots,
// and advances the internal counter past it so the next Process call
// starts a fresh group frame.
func (s *DeltaDiffPackSink) Finish() {
	if s.i%8 == 0 {
		return
	}

	group.Encode(s.buf, s.out)
	s.buf = [8]uint64{}
	s.i += 8 - (s.i % 8)
}

// ValueDropped reports whether any Process call since the last Clear
// observed a value smaller than its bucket's prior observation.
func (s *DeltaDiffPackSink) ValueDropped() bool {
	return s.valueDropped
}

// Clear resets lastDeltas to zero, discards the partially-filled
// re-encode buffer, and clears the drop flag.
func (s *DeltaDiffPackSink) Clear() {
	for i := range s.lastDeltas {
		s.lastDeltas[i] = 0
	}
	s.buf = [8]uint64{}
	s.i = 0
	s.valueDropped = false
}
