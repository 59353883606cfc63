package predictor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nibblepack/nibblepack/group"
)

func TestDeltaEncode_NonDecreasing(t *testing.T) {
	values := []uint64{0, 1000, 1001, 1002, 1003, 2005, 2010, 3034, 4045, 5056, 6067, 7078}
	deltas := DeltaEncode(values)
	require.Equal(t, []uint64{0, 1000, 1, 1, 1, 1002, 5, 1024, 1011, 1011, 1011, 1011}, deltas)

	var acc uint64
	for i, d := range deltas {
		acc += d
		require.Equal(t, values[i], acc)
	}
}

func TestDeltaEncode_DecreasingClampsToZero(t *testing.T) {
	deltas := DeltaEncode([]uint64{100, 50, 200})
	require.Equal(t, []uint64{100, 0, 150}, deltas)
}

func TestDeltaEncode_Empty(t *testing.T) {
	require.Empty(t, DeltaEncode(nil))
}

func TestXorEncode_RoundTrips(t *testing.T) {
	values := []float64{0.0, 0.5, 2.5, 10.0, 25.0, 100.0}
	seed, deltas, err := XorEncode(values)
	require.NoError(t, err)
	require.Equal(t, math.Float64bits(0.0), seed)

	last := seed
	got := make([]float64, 0, len(values))
	got = append(got, math.Float64frombits(last))
	for _, d := range deltas {
		last ^= d
		got = append(got, math.Float64frombits(last))
	}
	require.Equal(t, values, got)
}

func TestXorEncode_PreservesNaNAndSignedZero(t *testing.T) {
	nan := math.NaN()
	negZero := math.Copysign(0, -1)
	seed, deltas, err := XorEncode([]float64{nan, negZero})
	require.NoError(t, err)

	last := seed
	require.True(t, math.IsNaN(math.Float64frombits(last)))

	last ^= deltas[0]
	require.Equal(t, math.Float64bits(negZero), last)
}

func TestXorEncode_EmptyInputFails(t *testing.T) {
	_, _, err := XorEncode(nil)
	require.ErrorIs(t, err, group.ErrInputTooShort)
}
