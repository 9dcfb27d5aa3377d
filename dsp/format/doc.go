// Package format describes the shape of an audio stream: sample rate,
// channel count and bit depth.
//
// Format is an immutable value. It is copied freely between the control
// thread and the audio callback and compared with ==.
package format
