package ring

import "sync/atomic"

// cacheLine is the assumed cache line size used to keep the two indices
// from sharing a line.
const cacheLine = 64

// SPSC is a bounded lock-free ring of float32 samples for one producer and
// one consumer goroutine.
//
// Write, Read and the Available queries never block, never allocate and run
// in time proportional to the samples moved. They return partial counts
// instead of waiting; callers poll and retry on their own schedule.
type SPSC struct {
	writeIdx atomic.Uint64 // stored by the producer only
	_        [cacheLine - 8]byte
	readIdx  atomic.Uint64 // stored by the consumer only
	_        [cacheLine - 8]byte

	buf []float32
}

// New allocates a ring that buffers up to capacity samples. A negative
// capacity is treated as 0. If the storage cannot be allocated the ring is
// left with no slots and every operation returns 0.
func New(capacity int) *SPSC {
	return &SPSC{buf: allocSlots(max(capacity, 0) + 1)}
}

func allocSlots(n int) (buf []float32) {
	defer func() {
		if recover() != nil {
			buf = nil
		}
	}()
	return make([]float32, n)
}

// Capacity returns the number of allocated slots, one more than the number
// of samples the ring can hold.
func (r *SPSC) Capacity() int {
	return len(r.buf)
}

// Usable returns the maximum number of samples the ring can hold.
func (r *SPSC) Usable() int {
	return max(len(r.buf)-1, 0)
}

// AvailableRead returns the number of samples ready to read.
func (r *SPSC) AvailableRead() int {
	w := r.writeIdx.Load()
	rd := r.readIdx.Load()
	if w >= rd {
		return int(w - rd)
	}
	return len(r.buf) - int(rd) + int(w)
}

// AvailableWrite returns the number of samples that can be written.
func (r *SPSC) AvailableWrite() int {
	if len(r.buf) == 0 {
		return 0
	}
	return r.Usable() - r.AvailableRead()
}

// Write copies as many samples from p as fit and returns the number
// written. Producer side only.
func (r *SPSC) Write(p []float32) int {
	n := min(len(p), r.AvailableWrite())
	if n == 0 {
		return 0
	}

	pos := int(r.writeIdx.Load())
	first := min(n, len(r.buf)-pos)
	copy(r.buf[pos:pos+first], p[:first])
	copy(r.buf, p[first:n])

	r.writeIdx.Store(r.advance(pos, n))
	return n
}

// Read copies up to len(p) buffered samples into p, oldest first, and
// returns the number read. Consumer side only; real-time safe.
func (r *SPSC) Read(p []float32) int {
	n := min(len(p), r.AvailableRead())
	if n == 0 {
		return 0
	}

	pos := int(r.readIdx.Load())
	first := min(n, len(r.buf)-pos)
	copy(p[:first], r.buf[pos:pos+first])
	copy(p[first:n], r.buf)

	r.readIdx.Store(r.advance(pos, n))
	return n
}

// Clear discards all buffered samples. It must not run concurrently with
// Read or Write.
func (r *SPSC) Clear() {
	r.writeIdx.Store(0)
	r.readIdx.Store(0)
}

// Move transfers the storage and buffered samples to a new ring and leaves
// r with no slots. It must not run concurrently with Read or Write.
func (r *SPSC) Move() *SPSC {
	out := &SPSC{}
	out.take(r)
	return out
}

// MoveFrom replaces r's storage with src's and leaves src with no slots.
// Moving a ring into itself is a no-op. Neither ring may be in use.
func (r *SPSC) MoveFrom(src *SPSC) {
	if src == nil || src == r {
		return
	}
	r.take(src)
}

func (r *SPSC) take(src *SPSC) {
	r.buf = src.buf
	r.writeIdx.Store(src.writeIdx.Load())
	r.readIdx.Store(src.readIdx.Load())

	src.buf = nil
	src.Clear()
}

// advance returns (pos + n) mod Capacity for n <= Capacity.
func (r *SPSC) advance(pos, n int) uint64 {
	next := pos + n
	if next >= len(r.buf) {
		next -= len(r.buf)
	}
	return uint64(next)
}
