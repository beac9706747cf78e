package timecode

import "fmt"

// ParseError is returned when input text does not match the HH:MM:SS:FF
// shape: wrong field count, a non-numeric field, or missing zero padding.
type ParseError struct {
	Input  string
	Reason string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("timecode: parsing %q: %s", e.Input, e.Reason)
}

// RangeError is returned when a numeric value falls outside a component's
// legal range: frames >= fps, seconds or minutes >= 60, a negative frame
// count, or a non-positive frame rate.
type RangeError struct {
	Field string
	Value interface{}
}

func (e RangeError) Error() string {
	return fmt.Sprintf("timecode: %s %v out of range", e.Field, e.Value)
}
