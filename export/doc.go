// Package export runs the bulk tag export: it pulls compressed blocks from
// an archive source, decodes them, and writes one CSV file per tag.
//
// Tags are processed concurrently on a bounded worker pool; each worker
// owns its tag end to end, so file writes never interleave. Per-block
// decode diagnostics are aggregated into a TagSummary so operators can see
// which tags had inferred periods, malformed blocks, or codec mismatches
// without reading logs.
package export
