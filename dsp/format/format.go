package format

import (
	"fmt"
	"time"

	"github.com/go-audio/audio"
)

// Format is a sample rate, channel count and bit depth triple.
// The zero value describes no stream and fails Validate.
type Format struct {
	sampleRate int
	channels   int
	bitDepth   int
}

// New returns a Format. Values are stored as given; use Validate to check them.
func New(sampleRate, channels, bitDepth int) Format {
	return Format{
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
	}
}

// FromAudioFormat converts a go-audio format. go-audio keeps bit depth on
// the buffer rather than the format, so it is passed separately.
// A nil f yields the zero Format.
func FromAudioFormat(f *audio.Format, bitDepth int) Format {
	if f == nil {
		return Format{}
	}

	return New(f.SampleRate, f.NumChannels, bitDepth)
}

// SampleRate returns samples per second per channel.
func (f Format) SampleRate() int { return f.sampleRate }

// Channels returns the channel count.
func (f Format) Channels() int { return f.channels }

// BitDepth returns bits per sample.
func (f Format) BitDepth() int { return f.bitDepth }

// BytesPerSample returns the packed byte size of one sample,
// rounding partial bytes up.
func (f Format) BytesPerSample() int {
	if f.bitDepth <= 0 {
		return 0
	}

	return (f.bitDepth + 7) / 8
}

// BytesPerFrame returns the byte size of one sample for every channel.
func (f Format) BytesPerFrame() int {
	if f.channels <= 0 {
		return 0
	}

	return f.BytesPerSample() * f.channels
}

// Equal reports whether f and other describe the same stream.
func (f Format) Equal(other Format) bool {
	return f == other
}

// Validate reports the first invalid field.
func (f Format) Validate() error {
	if f.sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, f.sampleRate)
	}

	if f.channels <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, f.channels)
	}

	switch f.bitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidBitDepth, f.bitDepth)
	}

	return nil
}

// FrameDuration returns the playback time of frames.
// It is 0 when the sample rate is not positive.
func (f Format) FrameDuration(frames int) time.Duration {
	if f.sampleRate <= 0 || frames <= 0 {
		return 0
	}

	rate := f.sampleRate
	secs := time.Duration(frames/rate) * time.Second
	return secs + time.Duration(frames%rate)*time.Second/time.Duration(rate)
}

// FramesFor returns the number of whole frames that fit in d.
func (f Format) FramesFor(d time.Duration) int {
	if f.sampleRate <= 0 || d <= 0 {
		return 0
	}

	rate := time.Duration(f.sampleRate)
	whole := int(d/time.Second) * f.sampleRate
	return whole + int((d%time.Second)*rate/time.Second)
}

// AudioFormat converts f for use with go-audio decoders and encoders.
func (f Format) AudioFormat() *audio.Format {
	return &audio.Format{
		NumChannels: f.channels,
		SampleRate:  f.sampleRate,
	}
}

// String implements fmt.Stringer.
func (f Format) String() string {
	return fmt.Sprintf("%d Hz, %d ch, %d bit", f.sampleRate, f.channels, f.bitDepth)
}
