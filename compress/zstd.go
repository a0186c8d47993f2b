package compress

// ZstdCodec compresses with Zstandard, the default for archival exports:
// tag CSV data is highly repetitive (shared timestamp prefixes, small value
// alphabets) and routinely compresses 10:1 or better.
//
// The Compress and Decompress methods live in zstd_cgo.go and zstd_pure.go
// behind a cgo build-tag split.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}
