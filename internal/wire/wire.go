// Package wire provides the little-endian word read/write primitives that
// back the NibblePack group codec.
//
// NibblePack's wire format is fixed little-endian; this package wraps the
// endian package's EndianEngine for whole-word access and adds the
// partial 1..8-byte write the group codec needs, a shape
// binary.AppendByteOrder does not cover directly.
package wire

import (
	"github.com/nibblepack/nibblepack/endian"
	"github.com/nibblepack/nibblepack/internal/pool"
)

var le = endian.GetLittleEndianEngine()

// AppendLE appends the low n bytes of value to buf in little-endian order.
//
// n must be in 1..=8. Callers (the group encoder) are responsible for
// bounding n to that range; AppendLE does not validate it.
func AppendLE(buf *pool.ByteBuffer, value uint64, n int) {
	if n == 8 {
		buf.ExtendOrGrow(8)
		b := buf.Bytes()
		le.PutUint64(b[len(b)-8:], value)

		return
	}

	buf.ExtendOrGrow(n)
	b := buf.Bytes()
	start := len(b) - n

	for i := range n {
		b[start+i] = byte(value >> (8 * i))
	}
}

// ReadLE reads 8 little-endian bytes from data starting at offset.
//
// The caller must ensure at least 8 bytes are available at offset; ReadLE
// performs no bounds checking.
func ReadLE(data []byte, offset int) uint64 {
	return le.Uint64(data[offset : offset+8])
}

// ReadLESafe reads up to 8 little-endian bytes from data starting at
// offset, zero-extending any bytes past the end of data.
//
// The group decoder primes and refills its rolling word by reading a full
// 8-byte span even near the tail of a group whose frame is shorter than
// offset+8; those overscanned bytes are never part of any value the
// decoder's bit-cursor arithmetic actually reaches; zero-extending them
// here is what lets the decoder avoid a panic without needing a
// per-refill length check.
func ReadLESafe(data []byte, offset int) uint64 {
	if offset >= len(data) {
		return 0
	}

	var word [8]byte
	copy(word[:], data[offset:])

	return le.Uint64(word[:])
}
