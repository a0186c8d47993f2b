package section

const (
	// SerialScanLimitDigital is how far into a digital payload the
	// Excel-serial anchor is searched.
	SerialScanLimitDigital = 64

	// SerialScanLimitAnalog is the wider scan window used for analog
	// payloads, whose headers carry more leading control bytes.
	SerialScanLimitAnalog = 256

	// HeaderTailSize is the size of the fields read once the anchor is
	// found: the serial float64 plus the period uint32.
	HeaderTailSize = 12

	// SerialMin and SerialMax bound a plausible Excel serial, covering
	// roughly the years 1995 through 2050. A float64 outside this window
	// is not treated as the start-time anchor.
	SerialMin = 35000.0
	SerialMax = 55000.0

	// MaxPayloadSkip is the number of control bytes tolerated between the
	// end of the header and the first sample byte.
	MaxPayloadSkip = 4
)
