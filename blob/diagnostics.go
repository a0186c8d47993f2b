package blob

import "github.com/tahaelba/WinCCToSQL/format"

// Diagnostics records what one block decode did and what it tolerated.
// Callers aggregate these per tag; no anomaly is silently dropped even
// though none of them fail the decode.
type Diagnostics struct {
	ValueID int32

	// Codec is the analog codec selected or forced, CodecDigital for
	// digital blocks, CodecUnknown when nothing decoded.
	Codec format.Codec

	// DigitalEncoding is the structural sub-encoding of a digital payload.
	DigitalEncoding format.DigitalEncoding

	// PeriodMS is the resolved sampling period, 0 if it stayed unresolved.
	PeriodMS uint32

	// PeriodInferred reports that the period came from the length/span
	// heuristic rather than the header.
	PeriodInferred bool

	// HeaderFound reports whether the Excel-serial header anchor was located.
	HeaderFound bool

	// Malformed reports a digital run whose offset did not strictly
	// increase; decoding stopped there and kept the earlier samples.
	Malformed bool

	// CodecMismatch reports a forced codec that failed its structural
	// check. The block decoded zero samples.
	CodecMismatch bool

	// TrailingBytes counts payload bytes discarded as an incomplete
	// trailing record.
	TrailingBytes int

	// DefaultedState reports that a digital block had no transition at its
	// start and the configured default state was emitted.
	DefaultedState bool

	// Samples is the number of samples the sequence yields when fully
	// consumed.
	Samples int

	// Fingerprint is the xxHash64 of the raw payload, for spotting
	// repeated blocks across a tag.
	Fingerprint uint64
}
