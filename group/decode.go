package group

import (
	"math/bits"

	"github.com/nibblepack/nibblepack/internal/wire"
)

// Decode decodes one NibblePack group from buf, feeding all eight values to
// sink in index order, and returns the unread suffix of buf.
//
// Decode reads exactly the frame's byte length (1 byte for an all-zero
// group, or 2+body-length otherwise) and never reads past it, even if buf
// has more bytes available. It returns ErrInputTooShort if buf is shorter
// than the frame the header declares.
func Decode(buf []byte, sink Sink) ([]byte, error) {
	if len(buf) < 1 {
		return nil, ErrInputTooShort
	}

	nonzeroMask := buf[0]

	if nonzeroMask == 0 {
		sink.Process8(0)
		return buf[1:], nil
	}

	if len(buf) < 2 {
		return nil, ErrInputTooShort
	}

	widthByte := buf[1]
	numBits := uint(((widthByte>>4)+1)*4)
	trailingShift := uint(widthByte&0x0F) * 4

	popcount := bits.OnesCount8(nonzeroMask)
	totalBytes := 2 + (int(numBits)*popcount+7)/8

	if len(buf) < totalBytes {
		return nil, ErrInputTooShort
	}

	var mask uint64
	if numBits >= 64 {
		mask = ^uint64(0)
	} else {
		mask = (uint64(1) << numBits) - 1
	}

	inWord := wire.ReadLESafe(buf, 2)
	bufIndex := 10
	var bitCursor uint

	sink.Reserve(8)

	for bit := uint(0); bit < 8; bit++ {
		if nonzeroMask&(1<<bit) == 0 {
			sink.Process(0)
			continue
		}

		remaining := 64 - bitCursor
		out := (inWord >> bitCursor) & mask

		if remaining <= numBits && bufIndex < totalBytes {
			inWord = wire.ReadLESafe(buf, bufIndex)
			bufIndex += 8

			if remaining < numBits {
				out |= (inWord << remaining) & mask
			}
		}

		sink.Process(out << trailingShift)
		bitCursor = (bitCursor + numBits) % 64
	}

	return buf[totalBytes:], nil
}
