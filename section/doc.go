// Package section parses the leading bytes of a TagCompressed payload.
//
// The format carries no magic number and no reliable field layout; the only
// dependable anchor is a little-endian float64 holding the block start time
// as an Excel 1900-system serial, located somewhere in the first few dozen
// bytes. The declared sampling period follows it as a uint32. Everything
// about the parse is best-effort: missing or corrupt fields degrade to
// defaults instead of failing, and interpretation of the remaining bytes is
// left to the codec layer.
package section
