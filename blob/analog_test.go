package blob

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tahaelba/WinCCToSQL/encoding"
	"github.com/tahaelba/WinCCToSQL/endian"
	"github.com/tahaelba/WinCCToSQL/errs"
	"github.com/tahaelba/WinCCToSQL/format"
	"github.com/tahaelba/WinCCToSQL/section"
)

var blockStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func analogBlock(periodMS uint32, span time.Duration, body []byte) CompressedBlock {
	payload := section.AppendHeader(nil, blockStart, periodMS)
	payload = append(payload, body...)

	return CompressedBlock{
		ValueID:   7,
		TimeBegin: blockStart,
		TimeEnd:   blockStart.Add(span),
		Payload:   payload,
	}
}

func collectAnalog(t *testing.T, blk CompressedBlock, precision float64, opts Options) ([]AnalogSample, Diagnostics) {
	t.Helper()

	seq, diag, err := DecodeAnalog(blk, precision, opts)
	require.NoError(t, err)

	var out []AnalogSample
	for s := range seq {
		out = append(out, s)
	}

	return out, diag
}

func appendFloat64s(dst []byte, values ...float64) []byte {
	engine := endian.GetLittleEndianEngine()
	for _, v := range values {
		dst = engine.AppendUint64(dst, math.Float64bits(v))
	}

	return dst
}

func appendFloat32s(dst []byte, values ...float32) []byte {
	engine := endian.GetLittleEndianEngine()
	for _, v := range values {
		dst = engine.AppendUint32(dst, math.Float32bits(v))
	}

	return dst
}

func appendInt16s(dst []byte, raws ...int16) []byte {
	engine := endian.GetLittleEndianEngine()
	for _, r := range raws {
		dst = engine.AppendUint16(dst, uint16(r))
	}

	return dst
}

func TestDecodeAnalog(t *testing.T) {
	t.Run("Float64 payload selected first", func(t *testing.T) {
		body := appendFloat64s(nil, 20.5, 21.0, 21.5, 22.0)
		blk := analogBlock(1000, 4*time.Second, body)

		samples, diag := collectAnalog(t, blk, 0, Options{})

		require.Equal(t, format.CodecFloat64, diag.Codec)
		require.True(t, diag.HeaderFound)
		require.False(t, diag.PeriodInferred)
		require.Equal(t, uint32(1000), diag.PeriodMS)
		require.Equal(t, 4, diag.Samples)

		require.Len(t, samples, 4)
		for i, s := range samples {
			require.Equal(t, blockStart.Add(time.Duration(i)*time.Second), s.Ts)
			require.InDelta(t, 20.5+0.5*float64(i), s.Value, 1e-9)
		}
	})

	t.Run("Count hint separates float widths", func(t *testing.T) {
		// Two float32 values also read as one finite float64; the span and
		// declared period expect two samples, so the 32-bit reading wins.
		body := appendFloat32s(nil, 12.5, 13.0)
		blk := analogBlock(1000, 2*time.Second, body)

		samples, diag := collectAnalog(t, blk, 0, Options{})

		require.Equal(t, format.CodecFloat32, diag.Codec)
		require.Len(t, samples, 2)
		require.InDelta(t, 12.5, samples[0].Value, 1e-9)
		require.InDelta(t, 13.0, samples[1].Value, 1e-9)
		require.Equal(t, time.Second, samples[1].Ts.Sub(samples[0].Ts))
	})

	t.Run("Scaled int16 with declared precision", func(t *testing.T) {
		body := appendInt16s(nil, 125, 130, -15)
		blk := analogBlock(1000, 3*time.Second, body)

		samples, diag := collectAnalog(t, blk, 0.1, Options{})

		require.Equal(t, format.CodecInt16, diag.Codec)
		require.Len(t, samples, 3)
		require.InDelta(t, 12.5, samples[0].Value, 1e-9)
		require.InDelta(t, 13.0, samples[1].Value, 1e-9)
		require.InDelta(t, -1.5, samples[2].Value, 1e-9)
	})

	t.Run("Forced scale overrides precision", func(t *testing.T) {
		body := appendInt16s(nil, 100)
		blk := analogBlock(1000, time.Second, body)

		samples, _ := collectAnalog(t, blk, 0.1, Options{ForcedScale: 0.25})

		require.Len(t, samples, 1)
		require.InDelta(t, 25.0, samples[0].Value, 1e-9)
	})

	t.Run("Odd length falls through to varint delta", func(t *testing.T) {
		raws := []int64{100, 164, 163}
		body := encoding.AppendVarintDelta(nil, raws)
		require.Len(t, body, 5) // odd on purpose: 2+2+1 varint bytes

		blk := analogBlock(1000, 3*time.Second, body)
		samples, diag := collectAnalog(t, blk, 0, Options{})

		require.Equal(t, format.CodecVarintDelta, diag.Codec)
		require.Len(t, samples, 3)
		require.InDelta(t, 100, samples[0].Value, 1e-9)
		require.InDelta(t, 164, samples[1].Value, 1e-9)
		require.InDelta(t, 163, samples[2].Value, 1e-9)
	})

	t.Run("Forced codec mismatch decodes nothing", func(t *testing.T) {
		blk := analogBlock(1000, 3*time.Second, []byte{1, 2, 3, 4, 5, 6})

		samples, diag := collectAnalog(t, blk, 0, Options{ForcedCodec: format.CodecFloat64})

		require.Empty(t, samples)
		require.True(t, diag.CodecMismatch)
		require.Equal(t, format.CodecUnknown, diag.Codec)
	})

	t.Run("Forced codec bypasses selection", func(t *testing.T) {
		body := appendFloat32s(nil, 1.5, 2.5)
		blk := analogBlock(1000, 2*time.Second, body)

		samples, diag := collectAnalog(t, blk, 0, Options{ForcedCodec: format.CodecInt16})

		require.Equal(t, format.CodecInt16, diag.Codec)
		require.False(t, diag.CodecMismatch)
		require.Len(t, samples, 2)
	})

	t.Run("Missing header infers period", func(t *testing.T) {
		// No serial anchor anywhere: the whole payload is sample data.
		blk := CompressedBlock{
			TimeBegin: blockStart,
			TimeEnd:   blockStart.Add(8 * time.Second),
			Payload:   make([]byte, 64),
		}

		samples, diag := collectAnalog(t, blk, 0, Options{})

		require.False(t, diag.HeaderFound)
		require.True(t, diag.PeriodInferred)
		require.Equal(t, uint32(250), diag.PeriodMS)
		require.Equal(t, format.CodecInt16, diag.Codec)
		require.Len(t, samples, 32)
	})

	t.Run("Truncated varint tail reported", func(t *testing.T) {
		body := encoding.AppendVarintDelta(nil, []int64{10, 20, 30})
		body = append(body, 0x80) // dangling continuation byte
		blk := analogBlock(1000, 10*time.Second, body)

		samples, diag := collectAnalog(t, blk, 0, Options{})

		require.Equal(t, format.CodecVarintDelta, diag.Codec)
		require.Equal(t, 1, diag.TrailingBytes)
		require.Len(t, samples, 3)
	})

	t.Run("Empty payload yields nothing", func(t *testing.T) {
		blk := CompressedBlock{TimeBegin: blockStart, TimeEnd: blockStart.Add(time.Hour)}

		samples, diag := collectAnalog(t, blk, 0, Options{})

		require.Empty(t, samples)
		require.Equal(t, uint32(0), diag.PeriodMS)
		require.Equal(t, format.CodecUnknown, diag.Codec)
	})

	t.Run("Samples never pass the block end", func(t *testing.T) {
		// Six records declared at 1s but only 3s of span: half are dropped.
		body := appendFloat64s(nil, 1, 2, 3, 4, 5, 6)
		blk := analogBlock(1000, 3*time.Second, body)

		samples, diag := collectAnalog(t, blk, 0, Options{ForcedCodec: format.CodecFloat64})

		require.Len(t, samples, 3)
		require.Equal(t, 3, diag.Samples)
		last := samples[len(samples)-1]
		require.True(t, last.Ts.Before(blk.TimeEnd))
	})

	t.Run("Inverted period clamps are a contract error", func(t *testing.T) {
		blk := analogBlock(1000, time.Second, appendFloat64s(nil, 1.0))

		_, _, err := DecodeAnalog(blk, 0, Options{MinPeriodMS: 5000, MaxPeriodMS: 100})
		require.ErrorIs(t, err, errs.ErrInvalidPeriod)
	})

	t.Run("Inverted time range is a contract error", func(t *testing.T) {
		blk := CompressedBlock{
			TimeBegin: blockStart,
			TimeEnd:   blockStart.Add(-time.Second),
			Payload:   []byte{1, 2},
		}

		_, _, err := DecodeAnalog(blk, 0, Options{})
		require.ErrorIs(t, err, errs.ErrInvalidTimeRange)
	})
}
