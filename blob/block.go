package blob

import (
	"time"

	"github.com/tahaelba/WinCCToSQL/errs"
)

// CompressedBlock is one TagCompressed archive row: a contiguous time range
// for one tag plus the raw binary payload packing its samples.
//
// Blocks are consumed by exactly one decode call. The decoder does not
// retain the payload after the call returns.
type CompressedBlock struct {
	ValueID   int32
	TimeBegin time.Time
	TimeEnd   time.Time
	Payload   []byte
}

// Span returns the block's covered duration.
func (b CompressedBlock) Span() time.Duration {
	return b.TimeEnd.Sub(b.TimeBegin)
}

// SpanMS returns the covered duration in whole milliseconds.
func (b CompressedBlock) SpanMS() int64 {
	return b.Span().Milliseconds()
}

// validate checks the caller contract. A violated contract is a programming
// error, not a data anomaly, and fails immediately.
func (b CompressedBlock) validate() error {
	if b.TimeEnd.Before(b.TimeBegin) {
		return errs.ErrInvalidTimeRange
	}

	return nil
}

// AnalogSample is one decoded sample of a continuous numeric signal.
type AnalogSample struct {
	Ts    time.Time
	Value float64
}

// DigitalSample is one decoded transition point of a boolean signal: State
// holds from Ts until the next sample or the block end.
type DigitalSample struct {
	Ts    time.Time
	State bool
}
