package buffer

import "github.com/cwbudde/algo-rtmem/dsp/core"

// noCopy makes go vet's copylocks check report value copies of the
// structs that embed it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Option configures a Multichannel at construction.
type Option func(*options)

type options struct {
	alignment int
	alloc     Allocator
}

// WithAlignment sets the channel storage alignment in bytes.
// Values that are not a power of two in [32, MaxAlignment] are ignored.
func WithAlignment(bytes int) Option {
	return func(o *options) {
		if bytes >= 32 && bytes <= MaxAlignment && bytes&(bytes-1) == 0 {
			o.alignment = bytes
		}
	}
}

// WithAllocator replaces the channel allocator. A nil allocator is ignored.
// Results whose length differs from the request count as failures.
func WithAllocator(alloc Allocator) Option {
	return func(o *options) {
		if alloc != nil {
			o.alloc = alloc
		}
	}
}

func resolveOptions(opts []Option) options {
	o := options{alloc: AllocAligned}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.alignment == 0 {
		o.alignment = DefaultAlignment()
	}
	return o
}

// Multichannel is a planar multichannel float32 buffer. Each channel is a
// separately allocated, aligned, contiguous block of NumSamples samples.
//
// A Multichannel exclusively owns its storage and must not be copied by
// value; transfer ownership with Move or MoveFrom. Allocation happens in
// NewMultichannel: build buffers before the audio stream starts and reuse
// them.
//
// Out-of-range channel or sample indices never panic. Reads return 0 and
// writes are dropped. A channel whose allocation failed behaves like an
// out-of-range channel. A nil *Multichannel reads as an empty buffer.
//
// A Multichannel is not safe for concurrent mutation.
type Multichannel struct {
	noCopy noCopy

	channels    [][]float32
	numChannels int
	numSamples  int
	alignment   int
}

// NewMultichannel allocates a zeroed buffer of numChannels channels with
// numSamples samples each. If either count is zero or negative the buffer
// has no storage; this is a valid empty state, not an error.
func NewMultichannel(numChannels, numSamples int, opts ...Option) *Multichannel {
	o := resolveOptions(opts)

	b := &Multichannel{
		numChannels: max(numChannels, 0),
		numSamples:  max(numSamples, 0),
		alignment:   o.alignment,
	}
	if b.numChannels == 0 || b.numSamples == 0 {
		return b
	}

	b.channels = make([][]float32, b.numChannels)
	for ch := range b.channels {
		data := o.alloc(b.numSamples, b.alignment)
		if len(data) != b.numSamples {
			continue
		}
		core.Zero(data)
		b.channels[ch] = data
	}

	return b
}

// NumChannels returns the channel count.
func (b *Multichannel) NumChannels() int {
	if b == nil {
		return 0
	}
	return b.numChannels
}

// NumSamples returns the per-channel sample count.
func (b *Multichannel) NumSamples() int {
	if b == nil {
		return 0
	}
	return b.numSamples
}

// Alignment returns the storage alignment in bytes requested at construction.
func (b *Multichannel) Alignment() int {
	if b == nil {
		return 0
	}
	return b.alignment
}

// Valid reports whether the buffer has a non-empty shape and every channel
// was allocated.
func (b *Multichannel) Valid() bool {
	if b == nil || b.numChannels == 0 || b.numSamples == 0 || len(b.channels) != b.numChannels {
		return false
	}
	for _, c := range b.channels {
		if c == nil {
			return false
		}
	}
	return true
}

// Channel returns the storage of channel ch, or nil if ch is out of range
// or its allocation failed. The slice aliases the buffer.
func (b *Multichannel) Channel(ch int) []float32 {
	if b == nil || ch < 0 || ch >= len(b.channels) {
		return nil
	}
	return b.channels[ch]
}

// Sample returns one sample, or 0 if either index is out of range.
func (b *Multichannel) Sample(ch, i int) float32 {
	c := b.Channel(ch)
	if i < 0 || i >= len(c) {
		return 0
	}
	return c[i]
}

// SetSample stores one sample. Out-of-range indices are ignored.
func (b *Multichannel) SetSample(ch, i int, v float32) {
	c := b.Channel(ch)
	if i < 0 || i >= len(c) {
		return
	}
	c[i] = v
}

// Clear sets every sample of every channel to 0. Real-time safe.
func (b *Multichannel) Clear() {
	if b == nil {
		return
	}
	for _, c := range b.channels {
		core.Zero(c)
	}
}

// CopyFrom copies the overlapping region of src: the first
// min(channel counts) channels and min(sample counts) samples of each.
// Channels without storage on either side are skipped.
//
// CopyFrom may touch large amounts of cold memory and is meant for
// offline work, not for the audio callback.
func (b *Multichannel) CopyFrom(src *Multichannel) {
	if b == nil || src == nil || src == b {
		return
	}
	n := min(len(b.channels), len(src.channels))
	for ch := range n {
		core.CopyInto(b.channels[ch], src.channels[ch])
	}
}

// Move transfers all storage to a new Multichannel and leaves b empty.
func (b *Multichannel) Move() *Multichannel {
	if b == nil {
		return &Multichannel{}
	}
	out := &Multichannel{alignment: b.alignment}
	out.take(b)
	return out
}

// MoveFrom releases b's storage and takes ownership of src's, leaving src
// empty. Moving a buffer into itself is a no-op.
func (b *Multichannel) MoveFrom(src *Multichannel) {
	if b == nil || src == nil || src == b {
		return
	}
	b.take(src)
}

// Release drops all storage and leaves b empty. Views taken from b keep
// the old storage alive but are no longer tied to the buffer.
func (b *Multichannel) Release() {
	if b == nil {
		return
	}
	b.channels = nil
	b.numChannels = 0
	b.numSamples = 0
}

func (b *Multichannel) take(src *Multichannel) {
	b.channels = src.channels
	b.numChannels = src.numChannels
	b.numSamples = src.numSamples
	b.alignment = src.alignment
	src.Release()
}
