// Package cpu provides CPU feature detection for sample storage layout.
//
// Planar sample blocks are aligned so that SIMD loads in downstream
// processing code never straddle a vector boundary. The widest vector
// register the processor offers decides that alignment.
//
// Detection is performed lazily on the first call to DetectFeatures() and the
// results are cached for subsequent calls using sync.Once for thread-safety.
package cpu

import (
	"sync"
)

// MinAlignment is the smallest storage alignment in bytes (one AVX register).
const MinAlignment = 32

// SIMDLevel represents a SIMD instruction set extension level.
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD support (pure Go).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2, 128-bit registers.
	SIMDSSE2

	// SIMDAVX indicates x86-64 AVX, 256-bit registers.
	SIMDAVX

	// SIMDAVX2 indicates x86-64 AVX2, 256-bit registers.
	SIMDAVX2

	// SIMDAVX512 indicates x86-64 AVX-512, 512-bit registers.
	SIMDAVX512

	// SIMDNEON indicates ARM NEON / Advanced SIMD, 128-bit registers.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// VectorBytes returns the register width of the level in bytes.
func (s SIMDLevel) VectorBytes() int {
	switch s {
	case SIMDSSE2, SIMDNEON:
		return 16
	case SIMDAVX, SIMDAVX2:
		return 32
	case SIMDAVX512:
		return 64
	default:
		return 0
	}
}

// Features describes CPU capabilities relevant to sample storage layout.
type Features struct {
	// x86/amd64 SIMD features
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool

	// ARM SIMD features
	HasNEON bool

	// ForceGeneric pretends no SIMD is available (testing/debugging).
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	// forcedFeatures overrides hardware detection in tests.
	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once on the first call and cached for subsequent calls.
// This function is safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasAVX512 returns true if the CPU supports AVX-512 instructions.
func HasAVX512() bool {
	return DetectFeatures().HasAVX512
}

// HasAVX2 returns true if the CPU supports AVX2 instructions.
func HasAVX2() bool {
	return DetectFeatures().HasAVX2
}

// HasNEON returns true if the CPU supports ARM NEON (Advanced SIMD) instructions.
func HasNEON() bool {
	return DetectFeatures().HasNEON
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports returns true if the given CPU features support the specified SIMD level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}

// BestLevel returns the widest SIMD level supported by features.
func BestLevel(features Features) SIMDLevel {
	for _, level := range []SIMDLevel{SIMDAVX512, SIMDAVX2, SIMDAVX, SIMDNEON, SIMDSSE2} {
		if Supports(features, level) {
			return level
		}
	}

	return SIMDNone
}

// AlignmentFor returns the storage alignment in bytes for features: the
// widest vector register, but never less than MinAlignment.
func AlignmentFor(features Features) int {
	return max(MinAlignment, BestLevel(features).VectorBytes())
}

// Alignment returns the storage alignment for the current CPU.
func Alignment() int {
	return AlignmentFor(DetectFeatures())
}
