package compress

import (
	"fmt"

	"github.com/tahaelba/WinCCToSQL/errs"
	"github.com/tahaelba/WinCCToSQL/format"
)

// Compressor compresses one complete buffer, typically a finished per-tag
// CSV file held in memory before it is written out.
//
// The returned slice is owned by the caller; the input is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor is the inverse of Compressor. It is used both to verify
// export output and to unwrap archive payloads that were stored compressed.
//
// Implementations validate the input framing and return an error for
// corrupted data or data produced by a different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. Every codec in this package implements
// it; none keeps per-call state, so a single Codec value can be shared
// across export workers.
type Codec interface {
	Compressor
	Decompressor
}

// New returns the codec for the given compression type.
func New(ct format.CompressionType) (Codec, error) {
	switch ct {
	case format.CompressionNone:
		return NoOpCodec{}, nil
	case format.CompressionZstd:
		return ZstdCodec{}, nil
	case format.CompressionS2:
		return S2Codec{}, nil
	case format.CompressionLZ4:
		return LZ4Codec{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, ct)
	}
}
