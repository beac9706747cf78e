package timecode

import (
	"encoding/json"
	"sort"
	"time"
)

// Splice is a list of Ranges, possibly ordered, possibly overlapping.
type Splice []Range

func (s Splice) Len() int      { return len(s) }
func (s Splice) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s Splice) Less(i, j int) bool {
	if s[i][0].Less(s[j][0]) {
		return true
	}
	return s[i][0].Equal(s[j][0]) && s[i].Size() < s[j].Size()
}

// Size returns the cummulative duration of the splice
func (s Splice) Size() (dt time.Duration) {
	for _, r := range s {
		dt += r.Size()
	}
	return dt
}

// Union returns the smallest Range that contains s
func (s Splice) Union() Range {
	if s.Len() == 0 {
		return Range{}
	}
	u := s[0]
	for _, r := range s[1:] {
		if r[0].Less(u[0]) {
			u[0] = r[0]
		}
	}
	for _, r := range s[1:] {
		if u[1].Less(r[1]) {
			u[1] = r[1]
		}
	}
	return u
}

// In returns true if the splice is contained by r
func (s Splice) In(r Range) bool {
	for _, c := range s {
		if c[0].Less(r[0]) || r[1].Less(c[1]) {
			return false
		}
	}
	return true
}

// Sorted returns true if the splice is sorted
func (s Splice) Sorted() bool {
	return sort.IsSorted(s)
}

// UnmarshalText unmarshals a JSON array of range pairs into s:
// [[{"timecode":...,"fps":...},{...}], ...]
func (s *Splice) UnmarshalText(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	return json.Unmarshal(p, (*[]Range)(s))
}
