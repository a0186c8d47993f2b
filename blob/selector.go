package blob

import (
	"github.com/tahaelba/WinCCToSQL/encoding"
	"github.com/tahaelba/WinCCToSQL/errs"
	"github.com/tahaelba/WinCCToSQL/format"
)

// analogCandidates returns the candidate decoders in fixed priority order:
// most constrained first, so the unconditional varint fallback only wins
// when nothing more specific validates. The list is a pure value; candidate
// attempts share no state.
func analogCandidates(scale float64, bounds encoding.Bounds) []encoding.ValueDecoder {
	return []encoding.ValueDecoder{
		encoding.Float64Decoder{Bounds: bounds},
		encoding.Float32Decoder{Bounds: bounds},
		encoding.Int16Decoder{Scale: scale, Bounds: bounds},
		encoding.VarintDeltaDecoder{Scale: scale},
	}
}

// decoderFor builds the decoder for an explicitly forced analog codec.
func decoderFor(codec format.Codec, scale float64, bounds encoding.Bounds) (encoding.ValueDecoder, error) {
	switch codec {
	case format.CodecFloat64:
		return encoding.Float64Decoder{Bounds: bounds}, nil
	case format.CodecFloat32:
		return encoding.Float32Decoder{Bounds: bounds}, nil
	case format.CodecInt16:
		return encoding.Int16Decoder{Scale: scale, Bounds: bounds}, nil
	case format.CodecVarintDelta:
		return encoding.VarintDeltaDecoder{Scale: scale}, nil
	default:
		return nil, errs.ErrUnknownCodec
	}
}

// selectAnalog picks the codec for a non-empty analog payload.
//
// A forced codec bypasses the priority walk entirely; if it fails its own
// structural check the block is a codec mismatch and decodes zero samples
// rather than falling back to guessing. Without a force, the first
// validating candidate wins. mismatch can only be true for a forced codec:
// the varint fallback accepts any non-empty payload.
func selectAnalog(payload []byte, scale float64, bounds encoding.Bounds, forced format.Codec) (dec encoding.ValueDecoder, mismatch bool, err error) {
	if forced != format.CodecUnknown {
		// A force skips the plausibility heuristics; only the basic width
		// check applies, since the caller claims to know the layout.
		d, err := decoderFor(forced, scale, encoding.Bounds{})
		if err != nil {
			return nil, false, err
		}
		if forced != format.CodecVarintDelta && d.TrailingBytes(payload) != 0 {
			return nil, true, nil
		}

		return d, false, nil
	}

	for _, d := range analogCandidates(scale, bounds) {
		if d.Validate(payload) {
			return d, false, nil
		}
	}

	return nil, true, nil
}
