package blob

import (
	"iter"

	"github.com/tahaelba/WinCCToSQL/encoding"
	"github.com/tahaelba/WinCCToSQL/internal/hash"
	"github.com/tahaelba/WinCCToSQL/section"
)

// DecodeAnalog decodes one analog block into a lazy sample sequence.
//
// precision is the tag's declared CompPrecision; Options.ForcedScale
// overrides it and Options.ForcedCodec bypasses codec selection. The
// returned sequence is finite, single-pass, and dense at the resolved
// period; the Diagnostics record is complete before the first sample is
// consumed. An error is returned only for contract violations, never for
// payload anomalies.
func DecodeAnalog(blk CompressedBlock, precision float64, opts Options) (iter.Seq[AnalogSample], Diagnostics, error) {
	diag := Diagnostics{
		ValueID:     blk.ValueID,
		Fingerprint: hash.Fingerprint(blk.Payload),
	}

	if err := opts.validate(); err != nil {
		return nil, diag, err
	}
	opts = opts.withDefaults()

	if err := blk.validate(); err != nil {
		return nil, diag, err
	}
	if len(blk.Payload) == 0 {
		return emptyAnalog(), diag, nil
	}

	hdr := section.Parse(blk.Payload, precision, opts.ForcedCodec)
	diag.HeaderFound = hdr.SerialFound
	body := blk.Payload[hdr.PayloadOffset:]

	scale := hdr.Scale
	if opts.ForcedScale != 0 {
		scale = opts.ForcedScale
	}

	spanMS := blk.SpanMS()
	period, inferred, ok := resolvePeriod(hdr.PeriodMS, spanMS, len(body), opts.ForcedCodec, opts)
	if !ok {
		// No declared period and nothing to infer one from; PeriodMS stays
		// zero in the diagnostics to mark the block unresolved.
		return emptyAnalog(), diag, nil
	}
	diag.PeriodMS = period
	diag.PeriodInferred = inferred

	if len(body) == 0 {
		return emptyAnalog(), diag, nil
	}

	hdr.SampleCountHint = int(spanMS / int64(period))
	bounds := encoding.Bounds{
		MaxMagnitude: opts.MaxMagnitude,
		CountHint:    hdr.SampleCountHint,
	}

	dec, mismatch, err := selectAnalog(body, scale, bounds, opts.ForcedCodec)
	if err != nil {
		return nil, diag, err
	}
	if mismatch {
		diag.CodecMismatch = true
		return emptyAnalog(), diag, nil
	}

	diag.Codec = dec.Codec()
	diag.TrailingBytes = dec.TrailingBytes(body)
	diag.Samples = analogSampleCount(dec.Count(body), spanMS, period)

	return emitAnalog(dec.All(body), blk.TimeBegin, blk.TimeEnd, period), diag, nil
}

// analogSampleCount bounds the decoded record count by how many periods fit
// strictly inside the block span.
func analogSampleCount(records int, spanMS int64, periodMS uint32) int {
	fit := (spanMS + int64(periodMS) - 1) / int64(periodMS)
	if int64(records) > fit {
		return int(fit)
	}

	return records
}

func emptyAnalog() iter.Seq[AnalogSample] {
	return func(func(AnalogSample) bool) {}
}
