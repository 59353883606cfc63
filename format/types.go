// Package format defines the self-describing envelope tag NibblePack
// prepends to a stream when the caller wants the decoder to recover the
// predictor and compression choice from the bytes alone, instead of
// threading them through out-of-band.
package format

// StreamKind identifies which predictor produced a NibblePack stream.
type StreamKind uint8

const (
	StreamPlain    StreamKind = 0x1 // StreamPlain applies no predictor.
	StreamDelta    StreamKind = 0x2 // StreamDelta is a non-decreasing u64 delta stream.
	StreamXorFloat StreamKind = 0x3 // StreamXorFloat is a float64 XOR-delta stream.
)

func (k StreamKind) String() string {
	switch k {
	case StreamPlain:
		return "Plain"
	case StreamDelta:
		return "Delta"
	case StreamXorFloat:
		return "XorFloat"
	default:
		return "Unknown"
	}
}

// Header is the two-byte envelope prefix: stream predictor kind followed
// by second-stage compression kind. CompressionKind holds the raw byte
// value of a compress.Kind; format does not import the compress package,
// and callers convert it with compress.Kind(header.CompressionKind).
type Header struct {
	StreamKind      StreamKind
	CompressionKind uint8
}

// Size is the encoded byte length of a Header.
const Size = 2

// AppendTo appends the two-byte header encoding to buf.
func (h Header) AppendTo(buf []byte) []byte {
	return append(buf, byte(h.StreamKind), h.CompressionKind)
}

// Parse reads a Header from the first Size bytes of buf, returning the
// unread suffix. ok is false if buf is shorter than Size.
func Parse(buf []byte) (h Header, rest []byte, ok bool) {
	if len(buf) < Size {
		return Header{}, nil, false
	}

	return Header{StreamKind: StreamKind(buf[0]), CompressionKind: buf[1]}, buf[Size:], true
}
