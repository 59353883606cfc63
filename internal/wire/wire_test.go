package wire

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nibblepack/nibblepack/internal/pool"
)

func TestAppendLE_RoundTripsAllWidths(t *testing.T) {
	for n := 1; n <= 8; n++ {
		buf := pool.NewByteBuffer(16)
		value := uint64(0x0123456789abcdef) & ((uint64(1) << (8 * n)) - 1)

		AppendLE(buf, value, n)
		require.Len(t, buf.Bytes(), n)

		padded := make([]byte, 8)
		copy(padded, buf.Bytes())
		require.Equal(t, value, ReadLE(padded, 0))
	}
}

func TestAppendLE_Sequential(t *testing.T) {
	buf := pool.NewByteBuffer(16)
	AppendLE(buf, 0x0102, 2)
	AppendLE(buf, 0x030405, 3)

	require.Equal(t, []byte{0x02, 0x01, 0x05, 0x04, 0x03}, buf.Bytes())
}

func TestReadLESafe_ZeroExtendsPastEnd(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	require.Equal(t, uint64(0x030201), ReadLESafe(data, 0))
	require.Equal(t, uint64(0), ReadLESafe(data, 3))
	require.Equal(t, uint64(0), ReadLESafe(data, 10))
}

func TestReadLESafe_PartialTail(t *testing.T) {
	data := []byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE}
	require.Equal(t, uint64(0xDDCC), ReadLESafe(data, 2)&0xFFFF)
}
