package timecode

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Timecode is a point in a frame sequence, stored as an absolute frame
// count at a fixed frame rate. The frame count is the single source of
// truth; hours, minutes, seconds and frames are always derived from it.
//
// The zero Timecode has no frame rate. It reads as 00:00:00:00,
// contributes no frames in arithmetic, and rejects component mutation.
type Timecode struct {
	total int64
	fps   int
}

// Parse converts text of the form HH:MM:SS:FF into a Timecode at the
// given frame rate. The text must have exactly four colon-separated
// numeric fields, each zero-padded to two digits; only hours may be
// wider than two digits. A shape violation is a ParseError. A field value
// outside its legal range (frames >= fps, seconds or minutes >= 60) is a
// RangeError, as is a non-positive fps.
func Parse(s string, fps int) (Timecode, error) {
	if fps <= 0 {
		return Timecode{}, RangeError{Field: "fps", Value: fps}
	}
	parts := strings.Split(s, ":")
	if len(parts) != 4 {
		return Timecode{}, ParseError{Input: s, Reason: "want 4 colon-separated fields"}
	}
	var v [4]int64
	for i, p := range parts {
		// only the hours field may be wider than two digits
		if len(p) < 2 || i > 0 && len(p) != 2 {
			return Timecode{}, ParseError{Input: s, Reason: "fields are zero-padded to two digits"}
		}
		for _, r := range p {
			if r < '0' || r > '9' {
				return Timecode{}, ParseError{Input: s, Reason: "non-numeric field " + strconv.Quote(p)}
			}
		}
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return Timecode{}, ParseError{Input: s, Reason: err.Error()}
		}
		v[i] = n
	}
	h, m, sec, f := v[0], v[1], v[2], v[3]
	switch {
	case m >= 60:
		return Timecode{}, RangeError{Field: "minutes", Value: m}
	case sec >= 60:
		return Timecode{}, RangeError{Field: "seconds", Value: sec}
	case f >= int64(fps):
		return Timecode{}, RangeError{Field: "frames", Value: f}
	}
	return Timecode{total: ((h*60+m)*60+sec)*int64(fps) + f, fps: fps}, nil
}

// MustParse is like Parse but panics on error. Use for literals.
func MustParse(s string, fps int) Timecode {
	t, err := Parse(s, fps)
	if err != nil {
		panic(err)
	}
	return t
}

// FromFrames builds a Timecode directly from an absolute frame count.
func FromFrames(total int64, fps int) (Timecode, error) {
	if fps <= 0 {
		return Timecode{}, RangeError{Field: "fps", Value: fps}
	}
	if total < 0 {
		return Timecode{}, RangeError{Field: "total frames", Value: total}
	}
	return Timecode{total: total, fps: fps}, nil
}

// TotalFrames returns the absolute frame count.
func (t Timecode) TotalFrames() int64 { return t.total }

// FPS returns the frame rate.
func (t Timecode) FPS() int { return t.fps }

// IsZero reports whether t is the zero Timecode.
func (t Timecode) IsZero() bool { return t.fps == 0 && t.total == 0 }

// Hours returns the hours component. Hours are unbounded; timecodes past
// 24h are legal since the model is frame-count based, not wall-clock based.
func (t Timecode) Hours() int {
	if t.fps == 0 {
		return 0
	}
	return int(t.total / (int64(t.fps) * 3600))
}

// Minutes returns the minutes component, in [0,60).
func (t Timecode) Minutes() int {
	if t.fps == 0 {
		return 0
	}
	return int(t.total / (int64(t.fps) * 60) % 60)
}

// Seconds returns the seconds component, in [0,60).
func (t Timecode) Seconds() int {
	if t.fps == 0 {
		return 0
	}
	return int(t.total / int64(t.fps) % 60)
}

// Frames returns the frames component, in [0,fps).
func (t Timecode) Frames() int {
	if t.fps == 0 {
		return 0
	}
	return int(t.total % int64(t.fps))
}

// SetHours replaces the hours component, holding the other components
// fixed. On error t is unmodified.
func (t *Timecode) SetHours(v int) error {
	if t.fps == 0 {
		return RangeError{Field: "fps", Value: t.fps}
	}
	if v < 0 {
		return RangeError{Field: "hours", Value: v}
	}
	t.total += int64(v-t.Hours()) * int64(t.fps) * 3600
	return nil
}

// SetMinutes replaces the minutes component, holding the other components
// fixed. Values outside [0,60) are rejected rather than carried into the
// hours. On error t is unmodified.
func (t *Timecode) SetMinutes(v int) error {
	if t.fps == 0 {
		return RangeError{Field: "fps", Value: t.fps}
	}
	if v < 0 || v >= 60 {
		return RangeError{Field: "minutes", Value: v}
	}
	t.total += int64(v-t.Minutes()) * int64(t.fps) * 60
	return nil
}

// SetSeconds replaces the seconds component, holding the other components
// fixed. On error t is unmodified.
func (t *Timecode) SetSeconds(v int) error {
	if t.fps == 0 {
		return RangeError{Field: "fps", Value: t.fps}
	}
	if v < 0 || v >= 60 {
		return RangeError{Field: "seconds", Value: v}
	}
	t.total += int64(v-t.Seconds()) * int64(t.fps)
	return nil
}

// SetFrames replaces the frames component, holding the other components
// fixed. Values at or past the frame rate are rejected rather than
// carried into the seconds. On error t is unmodified.
func (t *Timecode) SetFrames(v int) error {
	if t.fps == 0 {
		return RangeError{Field: "fps", Value: t.fps}
	}
	if v < 0 || v >= t.fps {
		return RangeError{Field: "frames", Value: v}
	}
	t.total += int64(v - t.Frames())
	return nil
}

// rescale converts o's frame count into t's rate domain by the time-based
// ratio total*fa/fb, rounded to the nearest frame with ties away from
// zero.
func (t Timecode) rescale(o Timecode) int64 {
	if o.fps == t.fps || o.fps == 0 {
		return o.total
	}
	return int64(math.Round(float64(o.total) * float64(t.fps) / float64(o.fps)))
}

// Add sums two timecodes. The right operand is rescaled into t's rate
// domain first; the result carries t's frame rate.
func (t Timecode) Add(o Timecode) Timecode {
	return Timecode{total: t.total + t.rescale(o), fps: t.fps}
}

// Sub subtracts o from t, rescaling o into t's rate domain first. A
// result that would go negative is a RangeError, not a clamp: frame
// counts are non-negative by definition.
func (t Timecode) Sub(o Timecode) (Timecode, error) {
	n := t.total - t.rescale(o)
	if n < 0 {
		return Timecode{}, RangeError{Field: "total frames", Value: n}
	}
	return Timecode{total: n, fps: t.fps}, nil
}

// Mul scales the frame count by k, rounding to the nearest frame with
// ties away from zero. Negative factors are a RangeError.
func (t Timecode) Mul(k float64) (Timecode, error) {
	if k < 0 {
		return Timecode{}, RangeError{Field: "factor", Value: k}
	}
	return Timecode{total: int64(math.Round(float64(t.total) * k)), fps: t.fps}, nil
}

// Cmp compares two timecodes as points in time, returning -1, 0 or +1.
// Rates are reconciled by exact cross-multiplication of the frame counts,
// so the result is symmetric regardless of operand order.
func (t Timecode) Cmp(o Timecode) int {
	l, r := t.total, o.total
	if t.fps != o.fps && t.fps != 0 && o.fps != 0 {
		l, r = t.total*int64(o.fps), o.total*int64(t.fps)
	}
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	}
	return 0
}

// Equal reports whether two timecodes denote the same point in time,
// rates reconciled as in Cmp.
func (t Timecode) Equal(o Timecode) bool { return t.Cmp(o) == 0 }

// Less reports whether t is earlier than o.
func (t Timecode) Less(o Timecode) bool { return t.Cmp(o) < 0 }

// Duration returns the wall-clock time spanned by the frame count.
func (t Timecode) Duration() time.Duration {
	if t.fps == 0 {
		return 0
	}
	return time.Duration(t.total) * time.Second / time.Duration(t.fps)
}

// String returns the canonical zero-padded HH:MM:SS:FF form. The result
// round-trips through Parse at the same frame rate.
func (t Timecode) String() string {
	return fmt.Sprintf("%02d:%02d:%02d:%02d", t.Hours(), t.Minutes(), t.Seconds(), t.Frames())
}

// GoString returns a constructor-echo form for diagnostics.
func (t Timecode) GoString() string {
	return fmt.Sprintf("timecode.MustParse(%q, %d)", t.String(), t.fps)
}

// MarshalJSON encodes the timecode as {"timecode":"HH:MM:SS:FF","fps":N}.
func (t Timecode) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"timecode":%q,"fps":%d}`, t.String(), t.fps)), nil
}

// UnmarshalJSON decodes the form produced by MarshalJSON. The encoding of
// the zero Timecode decodes back to the zero Timecode.
func (t *Timecode) UnmarshalJSON(p []byte) error {
	var aux struct {
		Timecode string `json:"timecode"`
		FPS      int    `json:"fps"`
	}
	if err := json.Unmarshal(p, &aux); err != nil {
		return err
	}
	if aux.FPS == 0 && (aux.Timecode == "" || aux.Timecode == "00:00:00:00") {
		*t = Timecode{}
		return nil
	}
	tc, err := Parse(aux.Timecode, aux.FPS)
	if err != nil {
		return err
	}
	*t = tc
	return nil
}
