package encoding

import (
	"iter"
	"math"

	"github.com/tahaelba/WinCCToSQL/endian"
	"github.com/tahaelba/WinCCToSQL/format"
)

// Float64Decoder interprets a payload as fixed-width little-endian 64-bit
// floats. It is the most constrained candidate and is tried first: besides
// the width check it requires every value to be finite and within the
// plausible magnitude bound, which weeds out most false positives.
type Float64Decoder struct {
	Bounds Bounds
}

var _ ValueDecoder = Float64Decoder{}

func (d Float64Decoder) Codec() format.Codec {
	return format.CodecFloat64
}

// Validate requires a non-empty payload that is an exact multiple of 8
// bytes, a record count compatible with the expected sample count, and
// every decoded value finite and in range.
func (d Float64Decoder) Validate(payload []byte) bool {
	if len(payload) == 0 || len(payload)%8 != 0 {
		return false
	}
	if !d.Bounds.countPlausible(len(payload) / 8) {
		return false
	}

	engine := endian.GetLittleEndianEngine()
	for i := 0; i+8 <= len(payload); i += 8 {
		if !d.Bounds.Plausible(math.Float64frombits(engine.Uint64(payload[i : i+8]))) {
			return false
		}
	}

	return true
}

func (d Float64Decoder) Count(payload []byte) int {
	return len(payload) / 8
}

func (d Float64Decoder) TrailingBytes(payload []byte) int {
	return len(payload) % 8
}

// All yields each complete 8-byte record as a float64. A trailing partial
// record is never yielded.
func (d Float64Decoder) All(payload []byte) iter.Seq[float64] {
	engine := endian.GetLittleEndianEngine()

	return func(yield func(float64) bool) {
		for i := 0; i+8 <= len(payload); i += 8 {
			if !yield(math.Float64frombits(engine.Uint64(payload[i : i+8]))) {
				return
			}
		}
	}
}

// Float32Decoder interprets a payload as fixed-width little-endian 32-bit
// floats, tried after the 64-bit interpretation.
type Float32Decoder struct {
	Bounds Bounds
}

var _ ValueDecoder = Float32Decoder{}

func (d Float32Decoder) Codec() format.Codec {
	return format.CodecFloat32
}

// Validate mirrors Float64Decoder.Validate at 4-byte width.
func (d Float32Decoder) Validate(payload []byte) bool {
	if len(payload) == 0 || len(payload)%4 != 0 {
		return false
	}
	if !d.Bounds.countPlausible(len(payload) / 4) {
		return false
	}

	engine := endian.GetLittleEndianEngine()
	for i := 0; i+4 <= len(payload); i += 4 {
		if !d.Bounds.Plausible(float64(math.Float32frombits(engine.Uint32(payload[i : i+4])))) {
			return false
		}
	}

	return true
}

func (d Float32Decoder) Count(payload []byte) int {
	return len(payload) / 4
}

func (d Float32Decoder) TrailingBytes(payload []byte) int {
	return len(payload) % 4
}

func (d Float32Decoder) All(payload []byte) iter.Seq[float64] {
	engine := endian.GetLittleEndianEngine()

	return func(yield func(float64) bool) {
		for i := 0; i+4 <= len(payload); i += 4 {
			if !yield(float64(math.Float32frombits(engine.Uint32(payload[i : i+4])))) {
				return
			}
		}
	}
}
