// Package timecode models broadcast timecodes of the form HH:MM:SS:FF
// at a fixed frame rate. The primary type is
//
// 	type Timecode struct{ ... }
//
// which stores an absolute frame count together with its frame rate.
// Hours, minutes, seconds and frames are derived from the frame count on
// demand, so arithmetic never drifts from the canonical representation.
//
// Arithmetic between timecodes at differing frame rates is defined by
// rescaling the right operand's frame count into the left operand's rate
// domain; the result always carries the left operand's rate.
//
// On top of Timecode the package provides the interval types
//
// 	type Range [2]Timecode
//
// and
//
// 	type Splice []Range
//
// for frame-accurate in/out point work. The Splice type implements
// sort.Interface to assist with ordering ranges.
//
// Drop-frame timecode is not supported. Frame rates are integral;
// fractional rates such as 23.976 are a possible extension.
package timecode
