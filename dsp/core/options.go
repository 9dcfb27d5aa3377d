package core

import (
	"time"

	"github.com/cwbudde/algo-rtmem/dsp/format"
)

// StreamConfig sizes the buffers and rings that feed one audio stream.
type StreamConfig struct {
	SampleRate int
	Channels   int
	BitDepth   int

	// BlockSize is the frame count of one audio callback.
	BlockSize int

	// LatencyBlocks is how many callbacks of audio a producer may run ahead.
	LatencyBlocks int
}

// StreamOption mutates a StreamConfig.
type StreamOption func(*StreamConfig)

// DefaultStreamConfig returns sensible defaults for interactive playback.
func DefaultStreamConfig() StreamConfig {
	return StreamConfig{
		SampleRate:    48000,
		Channels:      2,
		BitDepth:      32,
		BlockSize:     256,
		LatencyBlocks: 4,
	}
}

// WithSampleRate sets the stream sample rate.
func WithSampleRate(sampleRate int) StreamOption {
	return func(cfg *StreamConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithChannels sets the channel count.
func WithChannels(channels int) StreamOption {
	return func(cfg *StreamConfig) {
		if channels > 0 {
			cfg.Channels = channels
		}
	}
}

// WithBitDepth sets the bit depth. Only 8, 16, 24 and 32 are accepted.
func WithBitDepth(bitDepth int) StreamOption {
	return func(cfg *StreamConfig) {
		switch bitDepth {
		case 8, 16, 24, 32:
			cfg.BitDepth = bitDepth
		}
	}
}

// WithBlockSize sets the callback block size in frames.
func WithBlockSize(blockSize int) StreamOption {
	return func(cfg *StreamConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// WithLatencyBlocks sets how many blocks the ring holds.
func WithLatencyBlocks(blocks int) StreamOption {
	return func(cfg *StreamConfig) {
		if blocks > 0 {
			cfg.LatencyBlocks = blocks
		}
	}
}

// ApplyStreamOptions applies zero or more options to the default config.
func ApplyStreamOptions(opts ...StreamOption) StreamConfig {
	cfg := DefaultStreamConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Format returns the stream format.
func (c StreamConfig) Format() format.Format {
	return format.New(c.SampleRate, c.Channels, c.BitDepth)
}

// RingCapacity returns the usable per-channel ring size in samples.
func (c StreamConfig) RingCapacity() int {
	if c.BlockSize <= 0 || c.LatencyBlocks <= 0 {
		return 0
	}
	return c.BlockSize * c.LatencyBlocks
}

// Latency returns the playback time a full ring represents.
func (c StreamConfig) Latency() time.Duration {
	return c.Format().FrameDuration(c.RingCapacity())
}
