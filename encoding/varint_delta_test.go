package encoding

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tahaelba/WinCCToSQL/format"
)

func TestVarintDeltaDecoder(t *testing.T) {
	require.Equal(t, format.CodecVarintDelta, VarintDeltaDecoder{}.Codec())

	t.Run("Round trip with scale", func(t *testing.T) {
		raws := []int64{100, 105, 103, 103, 90, -20, 0}
		payload := AppendVarintDelta(nil, raws)

		d := VarintDeltaDecoder{Scale: 0.5}
		require.True(t, d.Validate(payload))
		require.Equal(t, len(raws), d.Count(payload))
		require.Equal(t, 0, d.TrailingBytes(payload))

		got := collect(d, payload)
		require.Len(t, got, len(raws))
		for i, raw := range raws {
			require.InDelta(t, float64(raw)*0.5, got[i], 1e-9)
		}
	})

	t.Run("Accepts any non-empty payload", func(t *testing.T) {
		require.True(t, VarintDeltaDecoder{}.Validate([]byte{0x00}))
		require.False(t, VarintDeltaDecoder{}.Validate(nil))
	})

	t.Run("Incomplete trailing varint discarded", func(t *testing.T) {
		payload := AppendVarintDelta(nil, []int64{10, 20})
		// A continuation byte with no terminator.
		payload = append(payload, 0x80)

		d := VarintDeltaDecoder{}
		require.Equal(t, 2, d.Count(payload))
		require.Equal(t, 1, d.TrailingBytes(payload))
		require.Equal(t, []float64{10, 20}, collect(d, payload))
	})

	t.Run("Runaway delta stops the stream", func(t *testing.T) {
		payload := AppendVarintDelta(nil, []int64{5})
		// Zigzag-encoded delta of 2e9, past MaxDeltaMagnitude.
		var tmp [binary.MaxVarintLen64]byte
		n := binary.PutUvarint(tmp[:], uint64(2_000_000_000)<<1)
		payload = append(payload, tmp[:n]...)

		d := VarintDeltaDecoder{}
		require.Equal(t, []float64{5}, collect(d, payload))
		require.Equal(t, 1, d.Count(payload))
		require.Positive(t, d.TrailingBytes(payload))
	})

	t.Run("Runaway accumulated value stops the stream", func(t *testing.T) {
		// Deltas individually under the bound, sum past MaxRawMagnitude.
		raws := make([]int64, 0, 2000)
		var v int64
		for range 2000 {
			v += MaxDeltaMagnitude
			raws = append(raws, v)
		}
		payload := AppendVarintDelta(nil, raws)

		d := VarintDeltaDecoder{}
		count := d.Count(payload)
		require.Less(t, count, len(raws))
		require.Equal(t, 1000, count) // 1000 * 1e9 == 1e12 is the last value in bounds
	})
}
