// Package nibblepack provides a compact codec for 64-bit integer and
// float64 sequences, built around a bit-packed group format that strips
// common leading and trailing zero nibbles from batches of eight values.
//
// # Core Features
//
//   - NibblePack group codec: packs eight u64 values per frame, using a
//     per-group width chosen from the union of nonzero inputs
//   - Three stream-level encodings: plain, delta (non-decreasing u64),
//     and XOR (float64)
//   - A pluggable sink abstraction for composing the raw codec with
//     predictors, including a two-dimensional delta sink for repeated
//     histogram snapshots
//   - Optional second-stage compression (None, Zstd, S2, LZ4) applied to
//     an already-encoded stream
//
// # Basic Usage
//
// Encoding and decoding a delta stream:
//
//	import "github.com/nibblepack/nibblepack"
//
//	values := []uint64{0, 1000, 1001, 1002, 1003}
//	out := nibblepack.EncodeDelta(values)
//
//	got, err := nibblepack.DecodeDelta(out, len(values))
//
// Encoding and decoding an XOR-f64 stream:
//
//	floats := []float64{0.0, 0.5, 2.5, 10.0}
//	out, err := nibblepack.EncodeXorFloat64(floats)
//
//	got, err := nibblepack.DecodeXorFloat64(out, len(floats))
//
// # Package Structure
//
// This package is a convenience facade over the group, stream, predictor,
// and sink packages. Use those directly for fine-grained control, e.g. to
// reuse a sink across many decodes or to drive DeltaDiffPackSink across
// repeated histogram passes.
package nibblepack

import (
	"fmt"

	"github.com/nibblepack/nibblepack/compress"
	"github.com/nibblepack/nibblepack/format"
	"github.com/nibblepack/nibblepack/group"
	"github.com/nibblepack/nibblepack/internal/hash"
	"github.com/nibblepack/nibblepack/internal/pool"
	"github.com/nibblepack/nibblepack/sink"
	"github.com/nibblepack/nibblepack/stream"
)

// ErrInputTooShort is returned when a decoder cannot satisfy a read it
// needs to perform, or when EncodeXorFloat64 is given an empty slice.
var ErrInputTooShort = group.ErrInputTooShort

// EncodePlain encodes values as a plain stream: ceil(len(values)/8) group
// frames, the last zero-padded.
func EncodePlain(values []uint64) []byte {
	out := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(out)

	stream.EncodePlain(values, out)

	return cloneBytes(out)
}

// EncodeDelta encodes values as a delta stream against a running
// accumulator initialized to zero. Decreasing values clamp their delta to
// zero; see predictor.DeltaEncode.
func EncodeDelta(values []uint64) []byte {
	out := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(out)

	stream.EncodeDelta(values, out)

	return cloneBytes(out)
}

// EncodeXorFloat64 encodes values as an XOR-f64 stream: the first value's
// raw bits followed by XOR deltas over the rest. It returns
// ErrInputTooShort if values is empty.
func EncodeXorFloat64(values []float64) ([]byte, error) {
	out := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(out)

	if err := stream.EncodeXorFloat64(values, out); err != nil {
		return nil, err
	}

	return cloneBytes(out), nil
}

// Decode decodes a plain stream of n values from data.
func Decode(data []byte, n int) ([]uint64, error) {
	s := sink.NewPlainSink()
	s.Reserve(n)

	if _, err := stream.Decode(data, s, n); err != nil {
		return nil, err
	}

	return s.Values[:n], nil
}

// DecodeDelta decodes a delta stream of n values from data, reconstructing
// the original non-decreasing sequence.
func DecodeDelta(data []byte, n int) ([]uint64, error) {
	s := sink.NewDeltaSink()
	s.Reserve(n)

	if _, err := stream.Decode(data, s, n); err != nil {
		return nil, err
	}

	return s.Values[:n], nil
}

// DecodeXorFloat64 decodes an XOR-f64 stream of n floats from data.
func DecodeXorFloat64(data []byte, n int) ([]float64, error) {
	s := sink.NewXorDoubleSink()
	s.Reserve(n)

	if _, err := stream.DecodeXorFloat64(data, s, n); err != nil {
		return nil, err
	}

	return s.Values[:n], nil
}

// NewPlainSink creates a sink that stores decoded values with no
// predictor applied.
func NewPlainSink() *sink.PlainSink {
	return sink.NewPlainSink()
}

// NewDeltaSink creates a sink that reconstructs a non-decreasing u64
// sequence from its delta encoding.
func NewDeltaSink() *sink.DeltaSink {
	return sink.NewDeltaSink()
}

// NewXorDoubleSink creates a sink that reconstructs float64 values from an
// XOR-delta encoding. Callers must call Reset with the stream's seed bits
// before decoding.
func NewXorDoubleSink() *sink.XorDoubleSink {
	return sink.NewXorDoubleSink()
}

// NewDeltaDiffPackSink creates a sink for histograms of bucketCount
// buckets, re-encoding each incoming pass as the diff against the prior
// pass's bucket values and writing the result to out.
func NewDeltaDiffPackSink(bucketCount int, out *pool.ByteBuffer, opts ...sink.DiffPackOption) (*sink.DeltaDiffPackSink, error) {
	return sink.NewDeltaDiffPackSink(bucketCount, out, opts...)
}

// Compress applies a second-stage compression codec to an already-encoded
// NibblePack stream.
func Compress(kind compress.Kind, data []byte) ([]byte, error) {
	codec, err := compress.GetCodec(kind)
	if err != nil {
		return nil, err
	}

	return codec.Compress(data)
}

// Decompress reverses Compress.
func Decompress(kind compress.Kind, data []byte) ([]byte, error) {
	codec, err := compress.GetCodec(kind)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(data)
}

// StreamDigest computes a fingerprint of an encoded stream, cheap enough
// to call once per DeltaDiffPackSink pass to detect an unchanged
// histogram before paying for the diff-and-reencode work.
func StreamDigest(data []byte) uint64 {
	return hash.Bytes(data)
}

// PackDelta encodes values as a delta stream, compresses it with kind, and
// prepends a self-describing envelope header so the stream's predictor and
// compression can be recovered from the bytes alone by Unpack.
func PackDelta(values []uint64, kind compress.Kind) ([]byte, error) {
	return pack(format.StreamDelta, EncodeDelta(values), kind)
}

// PackPlain encodes values as a plain stream, compresses it with kind, and
// prepends a self-describing envelope header.
func PackPlain(values []uint64, kind compress.Kind) ([]byte, error) {
	return pack(format.StreamPlain, EncodePlain(values), kind)
}

// PackXorFloat64 encodes values as an XOR-f64 stream, compresses it with
// kind, and prepends a self-describing envelope header.
func PackXorFloat64(values []float64, kind compress.Kind) ([]byte, error) {
	encoded, err := EncodeXorFloat64(values)
	if err != nil {
		return nil, err
	}

	return pack(format.StreamXorFloat, encoded, kind)
}

func pack(streamKind format.StreamKind, encoded []byte, kind compress.Kind) ([]byte, error) {
	compressed, err := Compress(kind, encoded)
	if err != nil {
		return nil, err
	}

	h := format.Header{StreamKind: streamKind, CompressionKind: uint8(kind)}
	out := make([]byte, 0, format.Size+len(compressed))
	out = h.AppendTo(out)
	out = append(out, compressed...)

	return out, nil
}

// Unpack reverses Pack*: it reads the envelope header, decompresses the
// payload, and decodes n values with the predictor the header names.
// It returns an error if the header's stream kind is not one of the
// Pack* encodings this package produces.
func Unpack(data []byte, n int) (streamKind format.StreamKind, values any, err error) {
	h, rest, ok := format.Parse(data)
	if !ok {
		return 0, nil, ErrInputTooShort
	}

	decompressed, err := Decompress(compress.Kind(h.CompressionKind), rest)
	if err != nil {
		return 0, nil, err
	}

	switch h.StreamKind {
	case format.StreamPlain:
		v, err := Decode(decompressed, n)
		return h.StreamKind, v, err
	case format.StreamDelta:
		v, err := DecodeDelta(decompressed, n)
		return h.StreamKind, v, err
	case format.StreamXorFloat:
		v, err := DecodeXorFloat64(decompressed, n)
		return h.StreamKind, v, err
	default:
		return h.StreamKind, nil, fmt.Errorf("nibblepack: unknown stream kind %d", h.StreamKind)
	}
}

func cloneBytes(buf *pool.ByteBuffer) []byte {
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out
}
