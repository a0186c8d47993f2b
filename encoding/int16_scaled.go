package encoding

import (
	"iter"

	"github.com/tahaelba/WinCCToSQL/endian"
	"github.com/tahaelba/WinCCToSQL/format"
)

// Int16Decoder interprets a payload as signed little-endian 16-bit integers,
// each multiplied by a scale to recover the physical value. The scale comes
// from the tag's declared precision, or from a caller override when the
// precision is absent.
//
// Any even-length payload is structurally valid under this codec, so it is
// ordered after the float candidates and before the unconditional varint
// fallback.
type Int16Decoder struct {
	// Scale converts a raw integer sample to a physical value. Zero falls
	// back to 1.0 so an unscaled decode still yields the raw integers.
	Scale  float64
	Bounds Bounds
}

var _ ValueDecoder = Int16Decoder{}

func (d Int16Decoder) Codec() format.Codec {
	return format.CodecInt16
}

func (d Int16Decoder) scale() float64 {
	if d.Scale == 0 {
		return 1.0
	}

	return d.Scale
}

// Validate requires a non-empty even-length payload with a record count
// compatible with the expected sample count. Raw integers are bounded by
// construction, so no per-value check is needed.
func (d Int16Decoder) Validate(payload []byte) bool {
	if len(payload) == 0 || len(payload)%2 != 0 {
		return false
	}

	return d.Bounds.countPlausible(len(payload) / 2)
}

func (d Int16Decoder) Count(payload []byte) int {
	return len(payload) / 2
}

func (d Int16Decoder) TrailingBytes(payload []byte) int {
	return len(payload) % 2
}

// All yields each complete record as int16 * scale.
func (d Int16Decoder) All(payload []byte) iter.Seq[float64] {
	engine := endian.GetLittleEndianEngine()
	scale := d.scale()

	return func(yield func(float64) bool) {
		for i := 0; i+2 <= len(payload); i += 2 {
			raw := int16(engine.Uint16(payload[i : i+2]))
			if !yield(float64(raw) * scale) {
				return
			}
		}
	}
}
