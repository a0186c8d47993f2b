package blob

import (
	"iter"
	"time"
)

// emitAnalog turns decoded values into a dense sample sequence at the
// resolved period, starting at begin and stopping before end. The sequence
// is lazy, finite, and single-pass; timestamps strictly increase.
func emitAnalog(values iter.Seq[float64], begin, end time.Time, periodMS uint32) iter.Seq[AnalogSample] {
	step := time.Duration(periodMS) * time.Millisecond

	return func(yield func(AnalogSample) bool) {
		t := begin
		for v := range values {
			if !t.Before(end) {
				return
			}
			if !yield(AnalogSample{Ts: t, Value: v}) {
				return
			}
			t = t.Add(step)
		}
	}
}

// emitDigital turns transition points, given as millisecond offsets from
// begin, into a sparse sample sequence. Offsets landing at or past end are
// dropped; the run decoders guarantee strictly increasing offsets, so the
// first out-of-range offset ends the sequence.
func emitDigital(runs []digitalRun, begin, end time.Time) iter.Seq[DigitalSample] {
	return func(yield func(DigitalSample) bool) {
		for _, r := range runs {
			// A transition at offset 0 is always emitted, even for a
			// zero-span block; anything later must land before end.
			t := begin.Add(time.Duration(r.offsetMS) * time.Millisecond)
			if r.offsetMS != 0 && !t.Before(end) {
				return
			}
			if !yield(DigitalSample{Ts: t, State: r.state}) {
				return
			}
		}
	}
}

// digitalRun is a transition normalized to a millisecond offset.
type digitalRun struct {
	offsetMS int64
	state    bool
}

// countEmittable returns how many of the runs the emitter will yield.
func countEmittable(runs []digitalRun, spanMS int64) int {
	for i, r := range runs {
		if r.offsetMS != 0 && r.offsetMS >= spanMS {
			return i
		}
	}

	return len(runs)
}
