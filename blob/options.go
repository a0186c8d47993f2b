package blob

import (
	"github.com/tahaelba/WinCCToSQL/encoding"
	"github.com/tahaelba/WinCCToSQL/errs"
	"github.com/tahaelba/WinCCToSQL/format"
)

// Default clamps for period inference, matching the acceptance window the
// field tooling settled on: nothing in these archives samples faster than
// 50ms or slower than once a minute.
const (
	DefaultMinPeriodMS = 50
	DefaultMaxPeriodMS = 60_000
)

// maxSamplesPerBlock bounds the sample count a declared period may imply
// for one block. A declared period producing more is treated as implausible
// and re-inferred.
const maxSamplesPerBlock = 10_000_000

// Options carries the tunable heuristics and caller overrides for one
// decode call. The zero value is usable; zero fields take the documented
// defaults.
type Options struct {
	// MinPeriodMS and MaxPeriodMS clamp inferred periods. Zero values take
	// DefaultMinPeriodMS and DefaultMaxPeriodMS.
	MinPeriodMS uint32
	MaxPeriodMS uint32

	// MaxMagnitude is the float-plausibility bound for analog codec
	// validation. Zero takes encoding.DefaultMaxMagnitude.
	MaxMagnitude float64

	// ForcedCodec bypasses analog codec selection when not CodecUnknown.
	// A forced codec that fails its structural check yields a
	// codec-mismatch diagnostic and zero samples.
	ForcedCodec format.Codec

	// ForcedScale bypasses the tag's declared precision when nonzero.
	ForcedScale float64

	// DigitalDefault is the state emitted for a digital block with no
	// transition at its start. Whether the archive intends false or
	// "unknown" here is unresolved; the emitted diagnostic flags every
	// block where this default was used.
	DigitalDefault bool

	// MSBFirst selects MSB-first bit order for bit-packed digital
	// payloads. The archives observed so far are LSB-first.
	MSBFirst bool
}

// DefaultOptions returns Options with every default made explicit.
func DefaultOptions() Options {
	return Options{
		MinPeriodMS:  DefaultMinPeriodMS,
		MaxPeriodMS:  DefaultMaxPeriodMS,
		MaxMagnitude: encoding.DefaultMaxMagnitude,
	}
}

// validate checks the caller contract on the clamp window.
func (o Options) validate() error {
	if o.MinPeriodMS > 0 && o.MaxPeriodMS > 0 && o.MinPeriodMS > o.MaxPeriodMS {
		return errs.ErrInvalidPeriod
	}

	return nil
}

func (o Options) withDefaults() Options {
	if o.MinPeriodMS == 0 {
		o.MinPeriodMS = DefaultMinPeriodMS
	}
	if o.MaxPeriodMS == 0 {
		o.MaxPeriodMS = DefaultMaxPeriodMS
	}
	if o.MaxMagnitude <= 0 {
		o.MaxMagnitude = encoding.DefaultMaxMagnitude
	}

	return o
}
