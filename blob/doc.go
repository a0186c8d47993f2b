// Package blob decodes TagCompressed archive blocks into timestamped
// samples.
//
// One block covers a contiguous time range for one tag and packs its
// samples into an opaque binary payload. Decoding a block is a pure,
// synchronous computation: parse the header (section package), resolve the
// sampling period — declared or inferred — then either walk the digital
// transition runs or select an analog codec by structural validation
// (encoding package), and emit a lazy, single-pass sequence of samples.
//
// Every decode returns a Diagnostics record alongside the sample sequence.
// Data anomalies (malformed runs, codec mismatches, truncated payloads,
// unresolvable periods) are block-local: they trim or empty the sequence
// and set a diagnostic flag, but never return an error. Errors are reserved
// for caller contract violations such as an inverted time range.
//
// Blocks are never retained or mutated; the package keeps no state between
// calls, so independent blocks may be decoded concurrently without locking.
package blob
