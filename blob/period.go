package blob

import (
	"github.com/tahaelba/WinCCToSQL/format"
)

// sampleWidthBits returns the smallest plausible per-sample width for a
// codec hint, used to estimate how many samples a payload can hold.
func sampleWidthBits(hint format.Codec) int {
	switch hint {
	case format.CodecDigital:
		return 1
	case format.CodecFloat64:
		return 64
	case format.CodecFloat32:
		return 32
	case format.CodecVarintDelta:
		return 8
	default:
		// int16 or no hint: assume the narrowest fixed analog width.
		return 16
	}
}

// InferPeriod derives a sampling period from a payload's length and the
// block's time span, for blocks whose header declares none.
//
// The estimate divides the elapsed time by the number of samples the
// payload could hold at the smallest plausible encoding width, rounds to
// the nearest millisecond, and clamps into [MinPeriodMS, MaxPeriodMS]. It
// is a best-effort heuristic, not a reconstruction; callers record its use
// in diagnostics. Inference is pure: the same inputs always produce the
// same period.
//
// The second return is false when no usable period exists (empty payload
// or empty span).
func InferPeriod(spanMS int64, payloadLen int, hint format.Codec, opts Options) (uint32, bool) {
	opts = opts.withDefaults()

	if payloadLen <= 0 || spanMS <= 0 {
		return 0, false
	}

	capacity := payloadLen * 8 / sampleWidthBits(hint)
	if capacity <= 0 {
		return 0, false
	}

	period := (spanMS + int64(capacity)/2) / int64(capacity)
	if period < int64(opts.MinPeriodMS) {
		period = int64(opts.MinPeriodMS)
	}
	if period > int64(opts.MaxPeriodMS) {
		period = int64(opts.MaxPeriodMS)
	}

	return uint32(period), true //nolint:gosec
}

// resolvePeriod settles the period for one block: the declared value when
// present and plausible, otherwise inference. The declared period is
// implausible when it implies more than maxSamplesPerBlock samples for the
// block span.
func resolvePeriod(declaredMS uint32, spanMS int64, payloadLen int, hint format.Codec, opts Options) (periodMS uint32, inferred, ok bool) {
	if declaredMS > 0 && spanMS/int64(declaredMS) <= maxSamplesPerBlock {
		return declaredMS, false, true
	}

	periodMS, ok = InferPeriod(spanMS, payloadLen, hint, opts)

	return periodMS, ok, ok
}
