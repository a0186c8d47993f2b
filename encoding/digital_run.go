package encoding

import (
	"encoding/binary"
	"iter"

	"github.com/tahaelba/WinCCToSQL/endian"
)

// ExplicitRunSize is the record width of the explicit digital sub-encoding:
// a uint32 little-endian millisecond offset followed by one state byte.
const ExplicitRunSize = 5

// Run is one decoded digital transition: the boolean state that holds from
// Offset until the next transition or the block end. Offset is in the unit
// of its sub-encoding — milliseconds for explicit records, resolved periods
// for varint pairs.
type Run struct {
	Offset int64
	State  bool
}

// ValidateExplicitRuns reports whether the payload is structurally a
// sequence of explicit (offset_ms, state) records: exact record multiple,
// 0/1 state bytes, offsets within the block span. Monotonicity is not
// checked here; a non-increasing offset is a malformed-block condition
// surfaced by decoding, not grounds to misclassify the sub-encoding.
//
// spanMS of zero skips the span bound.
func ValidateExplicitRuns(payload []byte, spanMS int64) bool {
	if len(payload) == 0 || len(payload)%ExplicitRunSize != 0 {
		return false
	}

	engine := endian.GetLittleEndianEngine()
	for i := 0; i+ExplicitRunSize <= len(payload); i += ExplicitRunSize {
		if payload[i+4] > 1 {
			return false
		}
		if spanMS > 0 && int64(engine.Uint32(payload[i:i+4])) > spanMS {
			return false
		}
	}

	return true
}

// DecodeExplicitRuns decodes explicit records in order. It stops at the
// first record whose offset does not strictly increase, or whose state byte
// is not 0/1, returning the runs decoded so far and malformed=true.
func DecodeExplicitRuns(payload []byte) (runs []Run, malformed bool) {
	engine := endian.GetLittleEndianEngine()
	prev := int64(-1)

	for i := 0; i+ExplicitRunSize <= len(payload); i += ExplicitRunSize {
		off := int64(engine.Uint32(payload[i : i+4]))
		state := payload[i+4]

		if state > 1 || off <= prev {
			return runs, true
		}

		runs = append(runs, Run{Offset: off, State: state == 1})
		prev = off
	}

	return runs, false
}

// ValidateVarintRuns reports whether the payload parses exactly as a
// sequence of (uvarint offset, state byte) pairs with 0/1 states.
func ValidateVarintRuns(payload []byte) bool {
	if len(payload) == 0 {
		return false
	}

	off := 0
	for off < len(payload) {
		_, n := binary.Uvarint(payload[off:])
		if n <= 0 {
			return false
		}
		off += n

		if off >= len(payload) || payload[off] > 1 {
			return false
		}
		off++
	}

	return true
}

// DecodeVarintRuns decodes (uvarint offset, state) pairs in order, with the
// same strictly-increasing-offset policy as DecodeExplicitRuns. Offsets are
// in resolved period units.
func DecodeVarintRuns(payload []byte) (runs []Run, malformed bool) {
	prev := int64(-1)
	off := 0

	for off < len(payload) {
		u, n := binary.Uvarint(payload[off:])
		if n <= 0 {
			return runs, true
		}
		off += n

		if off >= len(payload) {
			return runs, true
		}
		state := payload[off]
		off++

		v := int64(u) //nolint:gosec
		if state > 1 || v <= prev {
			return runs, true
		}

		runs = append(runs, Run{Offset: v, State: state == 1})
		prev = v
	}

	return runs, false
}

// Bits iterates the bit-packed digital sub-encoding: one bit per sampling
// period, LSB-first within each byte unless msbFirst is set.
func Bits(payload []byte, msbFirst bool) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for _, b := range payload {
			for k := 0; k < 8; k++ {
				var bit byte
				if msbFirst {
					bit = (b >> (7 - k)) & 1
				} else {
					bit = (b >> k) & 1
				}
				if !yield(bit == 1) {
					return
				}
			}
		}
	}
}

// AppendExplicitRun appends one explicit transition record to dst.
// A writer for tests and sample-data generators.
func AppendExplicitRun(dst []byte, offsetMS uint32, state bool) []byte {
	engine := endian.GetLittleEndianEngine()

	dst = engine.AppendUint32(dst, offsetMS)
	if state {
		return append(dst, 1)
	}

	return append(dst, 0)
}

// AppendVarintRun appends one varint transition pair to dst.
func AppendVarintRun(dst []byte, offsetPeriods uint64, state bool) []byte {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], offsetPeriods)
	dst = append(dst, tmp[:n]...)

	if state {
		return append(dst, 1)
	}

	return append(dst, 0)
}
