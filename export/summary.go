package export

import "github.com/tahaelba/WinCCToSQL/blob"

// TagSummary aggregates the per-block decode diagnostics of one exported
// tag. All counts are block counts except Samples, which totals the
// emitted rows.
type TagSummary struct {
	ValueID int32
	Name    string
	File    string

	Blocks          int
	Samples         int
	EmptyBlocks     int
	SkippedBlocks   int
	InferredPeriods int
	MissingHeaders  int
	Malformed       int
	CodecMismatches int
	Truncated       int
	DefaultedStates int
}

func (s *TagSummary) add(diag blob.Diagnostics) {
	s.Blocks++
	s.Samples += diag.Samples

	if diag.Samples == 0 {
		s.EmptyBlocks++
	}
	if diag.PeriodInferred {
		s.InferredPeriods++
	}
	if !diag.HeaderFound {
		s.MissingHeaders++
	}
	if diag.Malformed {
		s.Malformed++
	}
	if diag.CodecMismatch {
		s.CodecMismatches++
	}
	if diag.TrailingBytes > 0 {
		s.Truncated++
	}
	if diag.DefaultedState {
		s.DefaultedStates++
	}
}

// Clean reports whether every block of the tag decoded without anomalies.
func (s TagSummary) Clean() bool {
	return s.SkippedBlocks == 0 && s.Malformed == 0 && s.CodecMismatches == 0 && s.Truncated == 0
}
