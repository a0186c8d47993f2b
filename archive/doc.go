// Package archive reads tag metadata and compressed sample blocks from a
// WinCC-style SQL Server archive database.
//
// Two tables are involved: dbo.Archive holds one row per tag (ValueID,
// ValueName, compression metadata) and dbo.TagCompressed holds the binary
// sample blocks, one row per block. Reads use NOLOCK hints because the
// archive is written continuously by the historian and exports must not
// block it.
//
// The package only moves rows; decoding the block payloads is the blob
// package's job.
package archive
