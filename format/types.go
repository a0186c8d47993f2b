package format

type (
	// Codec identifies one byte-layout interpretation of a TagCompressed payload.
	Codec uint8
	// DigitalEncoding identifies the structural sub-encoding of a digital payload.
	DigitalEncoding uint8
	// CompressionType identifies the compression applied to exported output files.
	CompressionType uint8
)

const (
	CodecUnknown     Codec = 0x0 // CodecUnknown represents an unresolved codec.
	CodecFloat64     Codec = 0x1 // CodecFloat64 represents fixed-width 64-bit little-endian floats.
	CodecFloat32     Codec = 0x2 // CodecFloat32 represents fixed-width 32-bit little-endian floats.
	CodecInt16       Codec = 0x3 // CodecInt16 represents signed 16-bit integers multiplied by a scale.
	CodecVarintDelta Codec = 0x4 // CodecVarintDelta represents zigzag-varint deltas with a scale.
	CodecDigital     Codec = 0x5 // CodecDigital represents boolean transition runs.

	DigitalUnknown   DigitalEncoding = 0x0 // DigitalUnknown represents an unresolved sub-encoding.
	DigitalExplicit  DigitalEncoding = 0x1 // DigitalExplicit represents 5-byte (offset_ms, state) records.
	DigitalVarint    DigitalEncoding = 0x2 // DigitalVarint represents (uvarint offset, state) pairs in period units.
	DigitalBitPacked DigitalEncoding = 0x3 // DigitalBitPacked represents one bit per period, collapsed to transitions.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c Codec) String() string {
	switch c {
	case CodecFloat64:
		return "float64"
	case CodecFloat32:
		return "float32"
	case CodecInt16:
		return "int16"
	case CodecVarintDelta:
		return "varint-delta"
	case CodecDigital:
		return "digital"
	default:
		return "unknown"
	}
}

// ParseCodec maps a codec name, as accepted on the command line, to its
// identifier. It returns CodecUnknown and false for unrecognized names.
func ParseCodec(s string) (Codec, bool) {
	switch s {
	case "float64":
		return CodecFloat64, true
	case "float32":
		return CodecFloat32, true
	case "int16":
		return CodecInt16, true
	case "varint-delta":
		return CodecVarintDelta, true
	case "digital":
		return CodecDigital, true
	default:
		return CodecUnknown, false
	}
}

func (e DigitalEncoding) String() string {
	switch e {
	case DigitalExplicit:
		return "explicit"
	case DigitalVarint:
		return "varint"
	case DigitalBitPacked:
		return "bit-packed"
	default:
		return "unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// ParseCompression maps a compression name to its identifier. The empty
// string is accepted as an alias for "none".
func ParseCompression(s string) (CompressionType, bool) {
	switch s {
	case "", "none":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return CompressionNone, false
	}
}

// Ext returns the file name suffix appended to exported files compressed
// with this type. CompressionNone returns an empty string.
func (c CompressionType) Ext() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}
