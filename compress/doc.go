// Package compress provides the compression codecs used for exported CSV
// data and for archive payloads stored compressed at rest.
//
// Four codecs are available, selected by format.CompressionType:
//
//   - None: passthrough, for plain .csv output
//   - Zstd: best ratio, the default for archival exports
//   - S2: fastest, for exports consumed immediately by a bulk loader
//   - LZ4: block format, for interop with tools expecting lz4 frames
//
// Zstd has two implementations behind a build-tag split: cgo builds use
// valyala/gozstd (libzstd), pure-Go builds fall back to
// klauspost/compress/zstd. Compressed output is interchangeable between
// the two.
//
// All codecs are safe for concurrent use; pooled encoder state is managed
// internally.
package compress
