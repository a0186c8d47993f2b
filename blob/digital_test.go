package blob

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tahaelba/WinCCToSQL/encoding"
	"github.com/tahaelba/WinCCToSQL/errs"
	"github.com/tahaelba/WinCCToSQL/format"
	"github.com/tahaelba/WinCCToSQL/section"
)

func digitalBlock(periodMS uint32, span time.Duration, body []byte) CompressedBlock {
	payload := section.AppendHeader(nil, blockStart, periodMS)
	payload = append(payload, body...)

	return CompressedBlock{
		ValueID:   11,
		TimeBegin: blockStart,
		TimeEnd:   blockStart.Add(span),
		Payload:   payload,
	}
}

func collectDigital(t *testing.T, blk CompressedBlock, opts Options) ([]DigitalSample, Diagnostics) {
	t.Helper()

	seq, diag, err := DecodeDigital(blk, opts)
	require.NoError(t, err)

	var out []DigitalSample
	for s := range seq {
		out = append(out, s)
	}

	return out, diag
}

func TestDecodeDigital(t *testing.T) {
	t.Run("Single explicit transition gains a default lead-in", func(t *testing.T) {
		body := encoding.AppendExplicitRun(nil, 5000, true)
		blk := digitalBlock(1000, 10*time.Second, body)

		samples, diag := collectDigital(t, blk, Options{})

		require.Equal(t, format.DigitalExplicit, diag.DigitalEncoding)
		require.True(t, diag.DefaultedState)
		require.False(t, diag.Malformed)
		require.Equal(t, 2, diag.Samples)

		require.Len(t, samples, 2)
		require.Equal(t, DigitalSample{Ts: blockStart, State: false}, samples[0])
		require.Equal(t, DigitalSample{Ts: blockStart.Add(5 * time.Second), State: true}, samples[1])
	})

	t.Run("Configured default state", func(t *testing.T) {
		body := encoding.AppendExplicitRun(nil, 5000, false)
		blk := digitalBlock(1000, 10*time.Second, body)

		samples, _ := collectDigital(t, blk, Options{DigitalDefault: true})

		require.Len(t, samples, 2)
		require.True(t, samples[0].State)
		require.False(t, samples[1].State)
	})

	t.Run("Transition at offset zero needs no lead-in", func(t *testing.T) {
		var body []byte
		body = encoding.AppendExplicitRun(body, 0, true)
		body = encoding.AppendExplicitRun(body, 2000, false)
		body = encoding.AppendExplicitRun(body, 4000, true)
		blk := digitalBlock(1000, 10*time.Second, body)

		samples, diag := collectDigital(t, blk, Options{})

		require.False(t, diag.DefaultedState)
		require.Equal(t, 3, diag.Samples)
		require.Len(t, samples, 3)
		require.Equal(t, blockStart, samples[0].Ts)
		require.True(t, samples[0].State)
		require.True(t, samples[2].State)
	})

	t.Run("Header-only block holds the default for its whole span", func(t *testing.T) {
		blk := digitalBlock(1000, time.Hour, nil)

		samples, diag := collectDigital(t, blk, Options{})

		require.True(t, diag.DefaultedState)
		require.Len(t, samples, 1)
		require.Equal(t, DigitalSample{Ts: blockStart, State: false}, samples[0])
	})

	t.Run("Non-increasing offset truncates and flags malformed", func(t *testing.T) {
		var body []byte
		body = encoding.AppendExplicitRun(body, 1000, true)
		body = encoding.AppendExplicitRun(body, 500, false)
		blk := digitalBlock(1000, 10*time.Second, body)

		samples, diag := collectDigital(t, blk, Options{})

		require.True(t, diag.Malformed)
		require.False(t, diag.DefaultedState)
		require.Len(t, samples, 1)
		require.Equal(t, blockStart.Add(time.Second), samples[0].Ts)
		require.True(t, samples[0].State)
	})

	t.Run("Varint pairs scale offsets by the period", func(t *testing.T) {
		var body []byte
		body = encoding.AppendVarintRun(body, 1, true)
		body = encoding.AppendVarintRun(body, 3, false)
		blk := digitalBlock(1000, 10*time.Second, body)

		samples, diag := collectDigital(t, blk, Options{})

		require.Equal(t, format.DigitalVarint, diag.DigitalEncoding)
		require.True(t, diag.DefaultedState)
		require.Len(t, samples, 3)
		require.Equal(t, blockStart.Add(time.Second), samples[1].Ts)
		require.True(t, samples[1].State)
		require.Equal(t, blockStart.Add(3*time.Second), samples[2].Ts)
		require.False(t, samples[2].State)
	})

	t.Run("Bit-packed stream collapses to transitions", func(t *testing.T) {
		blk := digitalBlock(1000, 16*time.Second, []byte{0x0F, 0x0F})

		samples, diag := collectDigital(t, blk, Options{})

		require.Equal(t, format.DigitalBitPacked, diag.DigitalEncoding)
		require.False(t, diag.DefaultedState)
		require.Equal(t, 4, diag.Samples)

		require.Len(t, samples, 4)
		want := []DigitalSample{
			{Ts: blockStart, State: true},
			{Ts: blockStart.Add(4 * time.Second), State: false},
			{Ts: blockStart.Add(8 * time.Second), State: true},
			{Ts: blockStart.Add(12 * time.Second), State: false},
		}
		require.Equal(t, want, samples)
	})

	t.Run("Bit-packed padding past the span is ignored", func(t *testing.T) {
		blk := digitalBlock(1000, 10*time.Second, []byte{0x0F, 0x0F})

		samples, _ := collectDigital(t, blk, Options{})

		require.Len(t, samples, 3)
		require.Equal(t, blockStart.Add(8*time.Second), samples[2].Ts)
	})

	t.Run("MSB-first bit order", func(t *testing.T) {
		blk := digitalBlock(1000, 8*time.Second, []byte{0xF0})

		samples, diag := collectDigital(t, blk, Options{MSBFirst: true})

		require.Equal(t, format.DigitalBitPacked, diag.DigitalEncoding)
		require.Len(t, samples, 2)
		require.True(t, samples[0].State)
		require.Equal(t, blockStart.Add(4*time.Second), samples[1].Ts)
		require.False(t, samples[1].State)
	})

	t.Run("Empty payload yields nothing", func(t *testing.T) {
		blk := CompressedBlock{TimeBegin: blockStart, TimeEnd: blockStart.Add(time.Hour)}

		samples, diag := collectDigital(t, blk, Options{})

		require.Empty(t, samples)
		require.Equal(t, format.CodecUnknown, diag.Codec)
	})

	t.Run("Inverted time range is a contract error", func(t *testing.T) {
		blk := CompressedBlock{
			TimeBegin: blockStart,
			TimeEnd:   blockStart.Add(-time.Minute),
			Payload:   []byte{0x01},
		}

		_, _, err := DecodeDigital(blk, Options{})
		require.ErrorIs(t, err, errs.ErrInvalidTimeRange)
	})
}
