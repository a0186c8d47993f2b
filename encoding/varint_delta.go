package encoding

import (
	"encoding/binary"
	"iter"

	"github.com/tahaelba/WinCCToSQL/format"
)

// Runaway guards for the varint-delta codec. The codec accepts any byte
// sequence, so decoding under a wrong guess can accumulate absurd values;
// a delta or running raw value past these bounds stops the stream instead.
const (
	MaxDeltaMagnitude = int64(1e9)
	MaxRawMagnitude   = int64(1e12)
)

// VarintDeltaDecoder interprets a payload as a sequence of self-delimiting
// zigzag-encoded varints, each a signed delta from the previous raw value
// (the first delta is taken from zero), multiplied by a scale.
//
// It can represent any byte sequence, which makes it the unconditional
// fallback: it is ordered last and accepted whenever no earlier candidate
// validated.
type VarintDeltaDecoder struct {
	// Scale converts an accumulated raw value to a physical value.
	// Zero falls back to 1.0.
	Scale float64
}

var _ ValueDecoder = VarintDeltaDecoder{}

func (d VarintDeltaDecoder) Codec() format.Codec {
	return format.CodecVarintDelta
}

func (d VarintDeltaDecoder) scale() float64 {
	if d.Scale == 0 {
		return 1.0
	}

	return d.Scale
}

// Validate accepts any non-empty payload.
func (d VarintDeltaDecoder) Validate(payload []byte) bool {
	return len(payload) > 0
}

// Count returns the number of raw values the stream decodes to before an
// incomplete varint or a runaway guard stops it.
func (d VarintDeltaDecoder) Count(payload []byte) int {
	count := 0
	d.scan(payload, func(int64) bool {
		count++
		return true
	})

	return count
}

// TrailingBytes returns the bytes left unconsumed when the stream stops:
// an incomplete trailing varint, or everything after a guard breach.
func (d VarintDeltaDecoder) TrailingBytes(payload []byte) int {
	return len(payload) - d.scan(payload, nil)
}

// All yields accumulated raw values multiplied by the scale.
func (d VarintDeltaDecoder) All(payload []byte) iter.Seq[float64] {
	scale := d.scale()

	return func(yield func(float64) bool) {
		d.scan(payload, func(raw int64) bool {
			return yield(float64(raw) * scale)
		})
	}
}

// scan walks the varint stream, yielding each accumulated raw value, and
// returns the number of bytes consumed. It stops at an incomplete or
// oversized varint, at a runaway guard breach, or when yield returns false.
// A nil yield scans structure only.
func (d VarintDeltaDecoder) scan(payload []byte, yield func(int64) bool) int {
	var raw int64
	off := 0

	for off < len(payload) {
		u, n := binary.Uvarint(payload[off:])
		if n <= 0 {
			return off
		}

		delta := int64(u>>1) ^ -int64(u&1)
		if delta > MaxDeltaMagnitude || delta < -MaxDeltaMagnitude {
			return off
		}

		raw += delta
		if raw > MaxRawMagnitude || raw < -MaxRawMagnitude {
			return off
		}

		off += n
		if yield != nil && !yield(raw) {
			return off
		}
	}

	return off
}

// AppendVarintDelta appends raw values to dst as zigzag-varint deltas.
// Production payloads are only ever read; this writer exists for round-trip
// tests and sample-data generators.
func AppendVarintDelta(dst []byte, raws []int64) []byte {
	var (
		prev int64
		tmp  [binary.MaxVarintLen64]byte
	)

	for _, r := range raws {
		delta := r - prev
		zigzag := uint64((delta << 1) ^ (delta >> 63))
		n := binary.PutUvarint(tmp[:], zigzag)
		dst = append(dst, tmp[:n]...)
		prev = r
	}

	return dst
}
