// Package encoding implements the candidate value codecs for TagCompressed
// payloads.
//
// The true encoding of a payload is not reliably declared anywhere, so each
// analog codec pairs a structural validator with a decoder. The blob package
// walks a fixed priority list of candidates and accepts the first whose
// validator passes; the codecs themselves hold no state across payloads and
// are independently testable.
//
// Analog codecs yield physical values lazily through iter.Seq. Digital
// payloads encode state transitions rather than dense samples and are
// handled by the run decoders in this package.
package encoding
