// Package edit holds editorial records built on top of the timecode
// package: events carrying source ranges, marks and tape metadata.
package edit

import (
	"errors"
	"time"

	"github.com/cbsinteractive/editmaster/timecode"
)

// DefaultTracks is the track assignment applied to events that don't
// name their own: picture plus two audio channels.
const DefaultTracks = "VA1A2"

// Event is a single editorial event: a source range on a tape together
// with the marks describing the cut.
type Event struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`

	// Tracks is the EDL-style track assignment, e.g. "VA1A2"
	Tracks string `json:"tracks,omitempty"`

	Start   timecode.Timecode `json:"start"`
	End     timecode.Timecode `json:"end"`
	MarkIn  timecode.Timecode `json:"mark_in"`
	MarkOut timecode.Timecode `json:"mark_out"`

	Tape    string `json:"tape,omitempty"`
	Scene   string `json:"scene,omitempty"`
	DPX     string `json:"dpx,omitempty"`
	Comment string `json:"comment,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Validate checks the event for internal consistency. It does not touch
// the event, so a failed create leaves nothing behind.
func (e *Event) Validate() error {
	if e.Name == "" {
		return errors.New("event name missing")
	}
	if e.Start.IsZero() || e.End.IsZero() {
		return errors.New("event start and end timecodes missing")
	}
	if e.End.Less(e.Start) {
		return errors.New("event ends before it starts")
	}
	marks := e.Marks()
	if marks[0].IsZero() != marks[1].IsZero() {
		return errors.New("event has only one mark set")
	}
	if !marks[0].IsZero() && !e.Range().Contains(marks[0]) || !marks[1].IsZero() && !e.Range().Contains(marks[1]) {
		return errors.New("event marks fall outside the start/end range")
	}
	return nil
}

// Range returns the event's start/end interval.
func (e *Event) Range() timecode.Range {
	return timecode.Range{e.Start, e.End}
}

// Marks returns the event's in/out marks as a range. Both endpoints are
// zero when the event is unmarked.
func (e *Event) Marks() timecode.Range {
	return timecode.Range{e.MarkIn, e.MarkOut}
}

// Duration returns the span between start and end as a timecode in the
// end's rate domain.
func (e *Event) Duration() (timecode.Timecode, error) {
	return e.End.Sub(e.Start)
}
