// Package errs defines the sentinel errors shared across WinCCToSQL packages.
//
// Decode-time data anomalies (malformed runs, codec mismatches, truncated
// payloads) are reported through blob.Diagnostics and never as errors; the
// errors here mark caller contract violations and plumbing failures only.
package errs

import "errors"

var (
	// ErrInvalidTimeRange indicates a block whose Timeend precedes its Timebegin.
	ErrInvalidTimeRange = errors.New("block time end precedes time begin")

	// ErrInvalidPeriod indicates caller-supplied period clamps that leave no
	// positive sampling period to resolve to.
	ErrInvalidPeriod = errors.New("invalid sampling period bounds")

	// ErrUnknownCodec indicates a codec identifier outside the closed set.
	ErrUnknownCodec = errors.New("unknown codec identifier")

	// ErrUnknownCompression indicates an unrecognized output compression name.
	ErrUnknownCompression = errors.New("unknown compression type")

	// ErrTagNotFound indicates a ValueID with no row in the archive table.
	ErrTagNotFound = errors.New("value id not found in archive table")
)
