// Package hash fingerprints raw block payloads for diagnostics.
package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of a raw payload. Identical payloads
// repeated across a tag's blocks share a fingerprint, which is how the
// per-tag summaries spot archive duplication.
func Fingerprint(payload []byte) uint64 {
	return xxhash.Sum64(payload)
}
