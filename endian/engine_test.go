package endian

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	result := CheckEndianness()

	switch result {
	case binary.BigEndian, binary.LittleEndian:
	default:
		t.Fatalf("CheckEndianness() returned unexpected ByteOrder: %v", result)
	}

	require.Equal(t, result == binary.LittleEndian, IsNativeLittleEndian())

	// Stable across calls.
	for range 10 {
		require.Equal(t, result, CheckEndianness())
	}
}

func TestLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Implements(t, (*EndianEngine)(nil), engine)

	t.Run("uint16 LSB first", func(t *testing.T) {
		buf := engine.AppendUint16(nil, 0x0102)
		require.Equal(t, []byte{0x02, 0x01}, buf)
		require.Equal(t, uint16(0x0102), engine.Uint16(buf))
	})

	t.Run("uint32 round trip", func(t *testing.T) {
		buf := engine.AppendUint32(nil, 250)
		require.Equal(t, uint32(250), engine.Uint32(buf))
	})

	t.Run("float64 bits round trip", func(t *testing.T) {
		// The header anchor is a float64 carried through Uint64.
		serial := 45292.5
		buf := engine.AppendUint64(nil, math.Float64bits(serial))
		require.Len(t, buf, 8)
		require.Equal(t, serial, math.Float64frombits(engine.Uint64(buf)))
	})
}

func TestBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()
	require.Implements(t, (*EndianEngine)(nil), engine)

	buf := engine.AppendUint16(nil, 0x0102)
	require.Equal(t, []byte{0x01, 0x02}, buf)
	require.Equal(t, uint16(0x0102), engine.Uint16(buf))

	// The two engines must disagree on multi-byte layouts.
	little := GetLittleEndianEngine().AppendUint32(nil, 0x01020304)
	big := engine.AppendUint32(nil, 0x01020304)
	require.NotEqual(t, little, big)
}
