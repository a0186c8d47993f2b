package section

import (
	"math"
	"time"

	"github.com/tahaelba/WinCCToSQL/endian"
	"github.com/tahaelba/WinCCToSQL/format"
)

// BlockHeader is the parsed, or defaulted, interpretation of a payload's
// leading bytes.
//
// PeriodMS of zero means "unresolved": the declared period was absent,
// zero, or the anchor was never found. Decoding never proceeds on an
// unresolved period; the blob package resolves it by inference first.
type BlockHeader struct {
	// PeriodMS is the declared sampling period in milliseconds, 0 if unresolved.
	PeriodMS uint32
	// Scale is the multiplicative factor converting raw integer samples to
	// physical values. Defaults to 1.0 when the declared precision is absent.
	Scale float64
	// CodecHint carries the schema-level variant, CodecUnknown when the
	// schema gives no usable signal.
	CodecHint format.Codec
	// SampleCountHint is the expected sample count for the block span,
	// 0 when unknown. Filled in by the caller once the period is resolved.
	SampleCountHint int
	// PayloadOffset is the byte offset where sample data begins. 0 when no
	// header was recognized, in which case the whole payload is sample data.
	PayloadOffset int
	// SerialFound reports whether the Excel-serial anchor was located.
	SerialFound bool
	// StartTime is the block start decoded from the serial, zero if not found.
	StartTime time.Time
}

// Parse reads the fixed-position header fields out of a raw payload.
//
// It locates the Excel-serial anchor within the scan window for the given
// codec hint, reads the declared period right after it, and records where
// sample data begins. Parse is a pure structural read and never fails: a
// payload too short for a header, or without a plausible serial, yields an
// all-default header.
//
// precision is the tag's declared CompPrecision from the archive table;
// zero or negative values default the scale to 1.0.
func Parse(payload []byte, precision float64, codecHint format.Codec) BlockHeader {
	hdr := BlockHeader{
		Scale:     1.0,
		CodecHint: codecHint,
	}
	if precision > 0 {
		hdr.Scale = precision
	}

	limit := SerialScanLimitAnalog
	if codecHint == format.CodecDigital {
		limit = SerialScanLimitDigital
	}

	off, serial, ok := findSerial(payload, limit)
	if !ok {
		return hdr
	}

	// Anchor found but the period field runs past the payload end: treat
	// the header as absent rather than reading out of bounds.
	if off+HeaderTailSize > len(payload) {
		return hdr
	}

	engine := endian.GetLittleEndianEngine()

	hdr.SerialFound = true
	hdr.StartTime = SerialToTime(serial)
	hdr.PeriodMS = engine.Uint32(payload[off+8 : off+12])
	hdr.PayloadOffset = off + HeaderTailSize

	return hdr
}

// findSerial scans for a little-endian float64 whose value is a plausible
// Excel serial, returning its byte offset and value.
func findSerial(payload []byte, limit int) (int, float64, bool) {
	engine := endian.GetLittleEndianEngine()

	end := len(payload) - 8
	if end > limit {
		end = limit
	}

	for i := 0; i < end; i++ {
		d := math.Float64frombits(engine.Uint64(payload[i : i+8]))
		if d >= SerialMin && d <= SerialMax {
			return i, d, true
		}
	}

	return 0, 0, false
}

// DigitalPayloadStart returns the offset of the first sample byte for a
// bit-packed digital payload, skipping up to MaxPayloadSkip control bytes
// after the header so that the remaining bit capacity covers the expected
// sample count. With no expectation to satisfy it skips nothing.
func (h BlockHeader) DigitalPayloadStart(totalLen, expectedSamples int) int {
	start := h.PayloadOffset
	if expectedSamples <= 0 {
		return start
	}

	for extra := 0; extra <= MaxPayloadSkip; extra++ {
		if (totalLen-(start+extra))*8 >= expectedSamples {
			return start + extra
		}
	}

	return start
}

// AppendHeader appends a synthetic header (serial anchor plus period) to
// dst. Production payloads are only ever read; this writer exists for tests
// and sample-data generators.
func AppendHeader(dst []byte, startTime time.Time, periodMS uint32) []byte {
	engine := endian.GetLittleEndianEngine()

	dst = engine.AppendUint64(dst, math.Float64bits(TimeToSerial(startTime)))
	dst = engine.AppendUint32(dst, periodMS)

	return dst
}
