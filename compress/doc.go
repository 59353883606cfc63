// Package compress provides optional second-stage compression applied to
// an already NibblePack-encoded stream: general-purpose byte compression
// layered on top of the codec's own nibble stripping, delta, and XOR
// predictors.
//
// # Codecs
//
// Four Kind values, each backed by a Codec implementation:
//
//	KindNone  NoopCodec  passes data through unchanged
//	KindS2    S2Codec    fast, moderate ratio, good for hot paths
//	KindLZ4   LZ4Codec   very fast decompression, moderate ratio
//	KindZstd  ZstdCodec  best ratio, higher CPU cost; good for cold storage
//
// Kind values map onto format.Header.CompressionKind, so a packed stream
// carries its own choice of codec.
//
// # Usage
//
//	codec, err := compress.GetCodec(compress.KindZstd)
//	compressed, err := codec.Compress(encoded)
//	restored, err := codec.Decompress(compressed)
//
// GetCodec returns the package's shared built-in instance for kind.
// CreateCodec does the same construction but takes a target string naming
// the caller, included in the error if kind is invalid.
package compress
