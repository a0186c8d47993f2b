package blob

import (
	"iter"

	"github.com/tahaelba/WinCCToSQL/encoding"
	"github.com/tahaelba/WinCCToSQL/format"
	"github.com/tahaelba/WinCCToSQL/internal/hash"
	"github.com/tahaelba/WinCCToSQL/section"
)

// DecodeDigital decodes one digital block into a sparse transition
// sequence: each sample's state holds until the next sample or the block
// end. Callers wanting a dense, regularly-sampled series resample
// externally.
//
// The sub-encoding is chosen structurally, most constrained first:
// explicit (offset_ms, state) records, then varint run pairs, then the
// bit-packed stream, which accepts anything and is collapsed to its
// transition points. A block with no transition at its start gains one
// defaulted sample at TimeBegin, flagged in the diagnostics.
func DecodeDigital(blk CompressedBlock, opts Options) (iter.Seq[DigitalSample], Diagnostics, error) {
	diag := Diagnostics{
		ValueID:     blk.ValueID,
		Codec:       format.CodecDigital,
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
		diag.Codec = format.CodecUnknown
		return emptyDigital(), diag, nil
	}

	hdr := section.Parse(blk.Payload, 0, format.CodecDigital)
	diag.HeaderFound = hdr.SerialFound
	body := blk.Payload[hdr.PayloadOffset:]

	spanMS := blk.SpanMS()
	period, inferred, ok := resolvePeriod(hdr.PeriodMS, spanMS, len(body), format.CodecDigital, opts)
	if !ok && len(body) > 0 {
		return emptyDigital(), diag, nil
	}
	diag.PeriodMS = period
	diag.PeriodInferred = inferred

	runs := decodeDigitalRuns(blk, hdr, body, spanMS, period, opts, &diag)

	// Zero transitions, or none at the block start: hold the configured
	// default state from TimeBegin. A malformed block keeps only what it
	// decoded, with no synthesized lead-in.
	if !diag.Malformed && (len(runs) == 0 || runs[0].offsetMS != 0) {
		runs = append([]digitalRun{{offsetMS: 0, state: opts.DigitalDefault}}, runs...)
		diag.DefaultedState = true
	}

	diag.Samples = countEmittable(runs, spanMS)

	return emitDigital(runs, blk.TimeBegin, blk.TimeEnd), diag, nil
}

// decodeDigitalRuns classifies the sub-encoding and returns transitions
// normalized to millisecond offsets.
func decodeDigitalRuns(blk CompressedBlock, hdr section.BlockHeader, body []byte, spanMS int64, periodMS uint32, opts Options, diag *Diagnostics) []digitalRun {
	if len(body) == 0 {
		return nil
	}

	switch {
	case encoding.ValidateExplicitRuns(body, spanMS):
		diag.DigitalEncoding = format.DigitalExplicit

		raw, malformed := encoding.DecodeExplicitRuns(body)
		diag.Malformed = malformed

		runs := make([]digitalRun, 0, len(raw))
		for _, r := range raw {
			runs = append(runs, digitalRun{offsetMS: r.Offset, state: r.State})
		}

		return runs

	case encoding.ValidateVarintRuns(body):
		diag.DigitalEncoding = format.DigitalVarint

		raw, malformed := encoding.DecodeVarintRuns(body)
		diag.Malformed = malformed

		runs := make([]digitalRun, 0, len(raw))
		for _, r := range raw {
			runs = append(runs, digitalRun{offsetMS: r.Offset * int64(periodMS), state: r.State})
		}

		return runs

	default:
		diag.DigitalEncoding = format.DigitalBitPacked

		return bitPackedRuns(blk, hdr, spanMS, periodMS, opts)
	}
}

// bitPackedRuns reads the dense one-bit-per-period stream and collapses it
// to its transition points: the initial state at offset 0, then every state
// change. Bits beyond the block span are padding and ignored.
func bitPackedRuns(blk CompressedBlock, hdr section.BlockHeader, spanMS int64, periodMS uint32, opts Options) []digitalRun {
	expected := 0
	if periodMS > 0 {
		expected = int(spanMS / int64(periodMS))
	}
	start := hdr.DigitalPayloadStart(len(blk.Payload), expected)
	if start > len(blk.Payload) {
		start = len(blk.Payload)
	}

	var runs []digitalRun
	i := 0
	for bit := range encoding.Bits(blk.Payload[start:], opts.MSBFirst) {
		offset := int64(i) * int64(periodMS)
		if offset != 0 && offset >= spanMS {
			break
		}
		if len(runs) == 0 || runs[len(runs)-1].state != bit {
			runs = append(runs, digitalRun{offsetMS: offset, state: bit})
		}
		i++
	}

	return runs
}

func emptyDigital() iter.Seq[DigitalSample] {
	return func(func(DigitalSample) bool) {}
}
