package format

import "errors"

var (
	ErrInvalidSampleRate = errors.New("format: sample rate must be > 0")
	ErrInvalidChannels   = errors.New("format: channel count must be > 0")
	ErrInvalidBitDepth   = errors.New("format: bit depth must be 8, 16, 24 or 32")
)
