// Package wincctosql decodes WinCC-style TagCompressed archive blocks into
// plain time-series samples.
//
// The archive stores each tag's history as binary blocks in a
// dbo.TagCompressed table: a small header (an Excel-serial timestamp anchor
// plus the sampling period), followed by sample data in one of several
// undocumented layouts. This module recovers the samples structurally,
// without access to the historian runtime.
//
// # Basic Usage
//
// Decoding a single analog block fetched from the archive:
//
//	import "github.com/tahaelba/WinCCToSQL"
//
//	blk := wincctosql.CompressedBlock{
//	    ValueID:   4711,
//	    TimeBegin: timeBegin, // from the Timebegin column
//	    TimeEnd:   timeEnd,   // from the Timeend column
//	    Payload:   binValues, // from the BinValues column
//	}
//	samples, diag, err := wincctosql.DecodeAnalog(blk, precision)
//	if err != nil {
//	    return err
//	}
//	for s := range samples {
//	    fmt.Printf("%s %f\n", s.Ts, s.Value)
//	}
//	fmt.Printf("codec=%s period=%dms inferred=%v\n", diag.Codec, diag.PeriodMS, diag.PeriodInferred)
//
// Digital tags (boolean states, "_DC" naming convention) decode to sparse
// transition sequences instead:
//
//	samples, diag, err := wincctosql.DecodeDigital(blk)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the blob
// package with default heuristics. For tuned decoding (forced codecs,
// custom period clamps, MSB-first digital bits) use blob.Options directly;
// for the bulk SQL Server export workflow see the archive and export
// packages and the winccexport command.
package wincctosql

import (
	"iter"

	"github.com/tahaelba/WinCCToSQL/blob"
)

// Re-exported blob types for the common decode path.
type (
	CompressedBlock = blob.CompressedBlock
	AnalogSample    = blob.AnalogSample
	DigitalSample   = blob.DigitalSample
	Diagnostics     = blob.Diagnostics
)

// DecodeAnalog decodes one analog block with default heuristics. precision
// is the tag's CompPrecision column value; zero means unscaled.
func DecodeAnalog(blk CompressedBlock, precision float64) (iter.Seq[AnalogSample], Diagnostics, error) {
	return blob.DecodeAnalog(blk, precision, blob.DefaultOptions())
}

// DecodeDigital decodes one digital block with default heuristics.
func DecodeDigital(blk CompressedBlock) (iter.Seq[DigitalSample], Diagnostics, error) {
	return blob.DecodeDigital(blk, blob.DefaultOptions())
}
