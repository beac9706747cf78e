package timecode

import (
	"fmt"
	"time"
)

// Range is a pair of timecodes defining a frame interval starting at
// Range[0] and ending at Range[1]. The endpoints may carry differing
// frame rates; comparisons reconcile them the way Timecode does.
type Range [2]Timecode

// Canon returns the range in proper order, where r[0] <= r[1]
func (r Range) Canon() Range {
	if r[1].Less(r[0]) {
		r[0], r[1] = r[1], r[0]
	}
	return r
}

// Size returns the duration of the Range
func (r Range) Size() time.Duration {
	dt := r[1].Duration() - r[0].Duration()
	if dt < 0 {
		dt = -dt
	}
	return dt
}

// Timecodes returns the start and end timecodes in HH:MM:SS:FF format
func (r Range) Timecodes() (string, string) {
	return r[0].String(), r[1].String()
}

// Contains reports whether t falls inside the range, endpoints included.
func (r Range) Contains(t Timecode) bool {
	r = r.Canon()
	return !t.Less(r[0]) && !r[1].Less(t)
}

func (r Range) String() string {
	return fmt.Sprintf("(%s-%s)", r[0], r[1])
}
