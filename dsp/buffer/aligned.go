package buffer

import (
	"math"
	"unsafe"

	"github.com/cwbudde/algo-rtmem/internal/cpu"
)

const sampleSize = int(unsafe.Sizeof(float32(0)))

// MaxAlignment is the largest supported storage alignment (one page).
const MaxAlignment = 4096

// maxChannelSamples keeps the padded byte size of one channel within int.
// Larger requests are reported as allocation failure.
const maxChannelSamples = (math.MaxInt - 2*MaxAlignment) / sampleSize

// Allocator returns storage for n samples whose first element is aligned to
// align bytes, or nil when the memory cannot be provided.
type Allocator func(n, align int) []float32

// DefaultAlignment returns the alignment used when none is requested:
// the widest SIMD register of the current CPU, at least 32 bytes.
func DefaultAlignment() int {
	return cpu.Alignment()
}

// alignedBytes rounds bytes up to the next multiple of align.
func alignedBytes(bytes, align int) int {
	return ((bytes + align - 1) / align) * align
}

func isAligned(p []float32, align int) bool {
	if len(p) == 0 {
		return false
	}
	return uintptr(unsafe.Pointer(&p[0]))%uintptr(align) == 0
}

// AllocAligned is the default Allocator. It over-allocates by one alignment
// unit and slices at the first aligned element; the Go heap does not move
// objects, so the alignment holds for the lifetime of the slice. The
// returned slice has len and cap n, zeroed.
func AllocAligned(n, align int) (out []float32) {
	if n <= 0 || n > maxChannelSamples || align < sampleSize || align > MaxAlignment || align&(align-1) != 0 {
		return nil
	}

	defer func() {
		if recover() != nil {
			out = nil
		}
	}()

	words := alignedBytes(n*sampleSize, align) / sampleSize
	slack := align/sampleSize - 1
	raw := make([]float32, words+slack)

	addr := uintptr(unsafe.Pointer(&raw[0]))
	off := int((uintptr(align)-addr%uintptr(align))%uintptr(align)) / sampleSize

	return raw[off : off+n : off+n]
}
