package encoding

import (
	"iter"
	"math"

	"github.com/tahaelba/WinCCToSQL/format"
)

// DefaultMaxMagnitude is the plausible-sensor-magnitude bound applied when
// Bounds does not override it. The value mirrors the mean-magnitude penalty
// threshold the field tooling converged on; real plant signals sit many
// orders of magnitude below it.
const DefaultMaxMagnitude = 1e9

// Bounds holds the tunable plausibility limits used by structural
// validation. The limits are heuristics, not format guarantees, and are
// exposed through configuration rather than hard-coded at call sites.
type Bounds struct {
	// MaxMagnitude is the largest |value| accepted by the float validators.
	// Zero or negative falls back to DefaultMaxMagnitude.
	MaxMagnitude float64

	// CountHint is the sample count expected from the block's time span and
	// resolved period, 0 when unknown. When set, a fixed-width
	// interpretation whose record count is off from the hint by a factor of
	// two or more is rejected; the candidate widths differ by exactly 2x,
	// so the hint is what separates them when both decode cleanly.
	CountHint int
}

// Plausible reports whether v is finite and within the magnitude bound.
func (b Bounds) Plausible(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}

	limit := b.MaxMagnitude
	if limit <= 0 {
		limit = DefaultMaxMagnitude
	}

	return math.Abs(v) <= limit
}

// countPlausible reports whether a record count n is compatible with the
// expected sample count, when one is known.
func (b Bounds) countPlausible(n int) bool {
	if b.CountHint <= 0 {
		return true
	}
	if n <= 0 {
		return false
	}

	return n*2 > b.CountHint && b.CountHint*2 > n
}

// ValueDecoder is implemented by every analog payload codec.
//
// Implementations are small value types carrying only their per-block
// parameters (scale, bounds); they keep no state between calls and are safe
// to use concurrently on different payloads.
type ValueDecoder interface {
	// Codec returns the identifier of this codec.
	Codec() format.Codec

	// Validate reports whether the payload is structurally decodable under
	// this codec. A validator scans the payload but never allocates per
	// sample.
	Validate(payload []byte) bool

	// Count returns the number of complete records in the payload.
	Count(payload []byte) int

	// TrailingBytes returns the number of bytes at the end of the payload
	// that do not form a complete record, 0 if none. Such bytes are
	// discarded by decoding and surface as a truncation diagnostic.
	TrailingBytes(payload []byte) int

	// All returns a single-pass iterator over the decoded physical values.
	// The iterator stops at the first incomplete or implausible record.
	All(payload []byte) iter.Seq[float64]
}
