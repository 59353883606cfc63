package stream

import (
	"github.com/nibblepack/nibblepack/group"
	"github.com/nibblepack/nibblepack/internal/pool"
	"github.com/nibblepack/nibblepack/internal/wire"
	"github.com/nibblepack/nibblepack/predictor"
)

// EncodePlain appends values to out as a plain stream: ceil(len(values)/8)
// group frames, the last zero-padded.
func EncodePlain(values []uint64, out *pool.ByteBuffer) {
	encodeGroups(values, out)
}

// EncodeDelta appends values to out as a delta stream: identical byte
// layout to a plain stream of the per-element deltas.
func EncodeDelta(values []uint64, out *pool.ByteBuffer) {
	encodeGroups(predictor.DeltaEncode(values), out)
}

// EncodeXorFloat64 appends values to out as an XOR-f64 stream: the first
// value's raw bits, little-endian, followed by a plain stream of the XOR
// deltas over the remaining values. It fails with group.ErrInputTooShort
// if values is empty.
func EncodeXorFloat64(values []float64, out *pool.ByteBuffer) error {
	seed, deltas, err := predictor.XorEncode(values)
	if err != nil {
		return err
	}

	wire.AppendLE(out, seed, 8)
	encodeGroups(deltas, out)

	return nil
}

func encodeGroups(values []uint64, out *pool.ByteBuffer) {
	var buf [8]uint64

	n := 0
	for _, v := range values {
		buf[n] = v
		n++

		if n == 8 {
			group.Encode(buf, out)
			buf = [8]uint64{}
			n = 0
		}
	}

	if n > 0 {
		for i := n; i < 8; i++ {
			buf[i] = 0
		}
		group.Encode(buf, out)
	}
}

// Decode drives the group decoder across ceil(n/8) groups, feeding every
// decoded value to sink in order, and returns the unread suffix of buf.
func Decode(buf []byte, sink group.Sink, n int) ([]byte, error) {
	numGroups := (n + 7) / 8

	rest := buf
	var err error
	for range numGroups {
		rest, err = group.Decode(rest, sink)
		if err != nil {
			return nil, err
		}
	}

	return rest, nil
}

// DecodeXorFloat64 reads the 8-byte seed prefix of an XOR-f64 stream,
// resets sink to it, and decodes the remaining n-1 values into sink. It
// fails with group.ErrInputTooShort if n is zero or buf is shorter than
// the seed.
func DecodeXorFloat64(buf []byte, sink interface {
	group.Sink
	Reset(seed uint64)
}, n int) ([]byte, error) {
	if n == 0 || len(buf) < 8 {
		return nil, group.ErrInputTooShort
	}

	sink.Reset(wire.ReadLE(buf, 0))

	return Decode(buf[8:], sink, n-1)
}
