package compress

import "fmt"

// Kind identifies a second-stage compression algorithm applied to an
// already-encoded NibblePack stream.
//
// Compression is a pass over the whole stream produced by encode_plain,
// encode_delta, or encode_xor_f64; it never runs inside the group codec
// itself, since the group codec's nibble stripping already exploits
// structure a general-purpose compressor cannot see.
type Kind uint8

const (
	KindNone Kind = 0x1 // KindNone applies no compression.
	KindZstd Kind = 0x2 // KindZstd applies Zstandard compression.
	KindS2   Kind = 0x3 // KindS2 applies S2 compression.
	KindLZ4  Kind = 0x4 // KindLZ4 applies LZ4 compression.
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindZstd:
		return "Zstd"
	case KindS2:
		return "S2"
	case KindLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compressor compresses a byte slice produced by one of the NibblePack stream
// encoders (plain, delta, or XOR-f64). The returned slice is newly allocated;
// data is left unmodified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor. It returns an error if data is
// corrupted or was compressed with a different codec.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats provides detailed information about a compression operation.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm Kind

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec constructs a Codec for kind. target names the caller and is
// included in the error if kind is invalid.
func CreateCodec(kind Kind, target string) (Codec, error) {
	switch kind {
	case KindNone:
		return NewNoopCodec(), nil
	case KindZstd:
		return NewZstdCodec(), nil
	case KindS2:
		return NewS2Codec(), nil
	case KindLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression kind: %s", target, kind)
	}
}

var builtinCodecs = map[Kind]Codec{
	KindNone: NewNoopCodec(),
	KindZstd: NewZstdCodec(),
	KindS2:   NewS2Codec(),
	KindLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves a built-in Codec for the specified Kind.
func GetCodec(kind Kind) (Codec, error) {
	if codec, ok := builtinCodecs[kind]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression kind: %s", kind)
}
