package group

import (
	"math/bits"

	"github.com/nibblepack/nibblepack/internal/pool"
	"github.com/nibblepack/nibblepack/internal/wire"
)

// Encode packs exactly eight u64 values into out using the NibblePack group
// format, appending the frame's bytes to the end of the buffer.
//
// If every input is zero, Encode appends a single 0x00 byte and returns.
// Otherwise it appends the nonzero_mask byte, the width byte, and the packed
// body, using the even-width path when the chosen width is byte-aligned and
// the universal bit-packing path otherwise.
func Encode(inputs [8]uint64, out *pool.ByteBuffer) {
	var orAll uint64
	var nonzeroMask uint8

	for i, x := range inputs {
		if x != 0 {
			nonzeroMask |= 1 << uint(i)
			orAll |= x
		}
	}

	out.Grow(2)
	appendByte(out, nonzeroMask)

	if nonzeroMask == 0 {
		return
	}

	minLeadingZeros := bits.LeadingZeros64(orAll)
	minTrailingZeros := bits.TrailingZeros64(orAll)

	trailingZeroNibbles := minTrailingZeros / 4
	numNibbles := 16 - (minLeadingZeros / 4) - trailingZeroNibbles

	widthByte := byte((numNibbles-1)<<4) | byte(trailingZeroNibbles)
	appendByte(out, widthByte)

	if numNibbles%2 == 0 {
		encodeEvenWidth(inputs, out, numNibbles, trailingZeroNibbles)
	} else {
		encodeUniversal(inputs, out, numNibbles, trailingZeroNibbles)
	}
}

func appendByte(out *pool.ByteBuffer, b byte) {
	out.ExtendOrGrow(1)
	buf := out.Bytes()
	buf[len(buf)-1] = b
}

// encodeEvenWidth packs each nonzero input into an exact whole number of
// bytes (numNibbles/2), with no bit packing across values.
func encodeEvenWidth(inputs [8]uint64, out *pool.ByteBuffer, numNibbles, trailingZeroNibbles int) {
	shift := uint(trailingZeroNibbles * 4)
	numBytes := numNibbles / 2

	out.Grow(8 * numBytes)
	for _, x := range inputs {
		if x != 0 {
			wire.AppendLE(out, x>>shift, numBytes)
		}
	}
}

// encodeUniversal bit-packs nonzero inputs back-to-back into a rolling
// 64-bit word, used whenever numNibbles is odd (and usable, if less
// efficient, for even widths too).
func encodeUniversal(inputs [8]uint64, out *pool.ByteBuffer, numNibbles, trailingZeroNibbles int) {
	trailingShift := uint(trailingZeroNibbles * 4)
	numBits := uint(numNibbles * 4)

	var outWord uint64
	var bitCursor uint

	out.Grow(8 * 8)
	for _, x := range inputs {
		if x == 0 {
			continue
		}

		remaining := 64 - bitCursor
		shiftedInput := x >> trailingShift
		outWord |= shiftedInput << bitCursor

		if remaining <= numBits {
			wire.AppendLE(out, outWord, 8)
			if remaining < numBits {
				outWord = shiftedInput >> remaining
			} else {
				outWord = 0
			}
		}

		bitCursor = (bitCursor + numBits) % 64
	}

	if bitCursor > 0 {
		wire.AppendLE(out, outWord, int((bitCursor+7)/8))
	}
}
