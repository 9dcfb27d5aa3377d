package buffer

import "sync"

type shape struct {
	channels, samples int
}

// Pool recycles Multichannel buffers by shape so that a stream can be
// restarted or reconfigured without fresh allocations. Get and Put allocate
// and must not be called from the audio callback.
type Pool struct {
	mu        sync.Mutex
	shapes    map[shape]*sync.Pool
	opts      []Option
	alignment int
}

// NewPool returns a Pool whose new buffers are built with opts.
func NewPool(opts ...Option) *Pool {
	o := resolveOptions(opts)
	return &Pool{
		shapes:    make(map[shape]*sync.Pool),
		opts:      append(opts[:len(opts):len(opts)], WithAlignment(o.alignment)),
		alignment: o.alignment,
	}
}

// Get returns a zeroed buffer with the requested shape.
// Callers must return it via Put when done.
func (p *Pool) Get(channels, samples int) *Multichannel {
	sp := p.poolFor(shape{channels: max(channels, 0), samples: max(samples, 0)})
	if b, ok := sp.Get().(*Multichannel); ok {
		b.Clear()
		return b
	}
	return NewMultichannel(channels, samples, p.opts...)
}

// Put returns a buffer to the pool for reuse. Buffers that are empty, have
// failed channels or use a different alignment than the pool are dropped.
// The caller must not use b after Put.
func (p *Pool) Put(b *Multichannel) {
	if !b.Valid() || b.Alignment() != p.alignment {
		return
	}
	p.poolFor(shape{channels: b.NumChannels(), samples: b.NumSamples()}).Put(b)
}

func (p *Pool) poolFor(s shape) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()

	sp, ok := p.shapes[s]
	if !ok {
		sp = &sync.Pool{}
		p.shapes[s] = sp
	}
	return sp
}
