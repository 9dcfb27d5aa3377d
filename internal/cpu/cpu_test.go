package cpu

import "testing"

func TestAlignmentFor(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		want     int
	}{
		{name: "none", features: Features{}, want: 32},
		{name: "sse2", features: Features{HasSSE2: true}, want: 32},
		{name: "neon", features: Features{HasNEON: true}, want: 32},
		{name: "avx2", features: Features{HasSSE2: true, HasAVX: true, HasAVX2: true}, want: 32},
		{name: "avx512", features: Features{HasSSE2: true, HasAVX2: true, HasAVX512: true}, want: 64},
		{name: "forced generic", features: Features{HasAVX512: true, ForceGeneric: true}, want: 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AlignmentFor(tt.features); got != tt.want {
				t.Fatalf("AlignmentFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBestLevel(t *testing.T) {
	f := Features{HasSSE2: true, HasAVX: true, HasAVX2: true}
	if got := BestLevel(f); got != SIMDAVX2 {
		t.Fatalf("BestLevel() = %v, want AVX2", got)
	}

	f.ForceGeneric = true
	if got := BestLevel(f); got != SIMDNone {
		t.Fatalf("BestLevel() = %v, want None", got)
	}
}

func TestForcedFeatures(t *testing.T) {
	SetForcedFeatures(Features{HasAVX512: true, Architecture: "amd64"})
	defer ResetDetection()

	if !HasAVX512() {
		t.Fatal("forced AVX-512 not reported")
	}

	if got := Alignment(); got != 64 {
		t.Fatalf("Alignment() = %d, want 64", got)
	}
}

func TestFeatureQueries(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		avx512   bool
		avx2     bool
		neon     bool
	}{
		{name: "generic", features: Features{Architecture: "amd64"}},
		{name: "avx2", features: Features{HasSSE2: true, HasAVX: true, HasAVX2: true, Architecture: "amd64"}, avx2: true},
		{name: "avx512", features: Features{HasAVX2: true, HasAVX512: true, Architecture: "amd64"}, avx512: true, avx2: true},
		{name: "neon", features: Features{HasNEON: true, Architecture: "arm64"}, neon: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetForcedFeatures(tt.features)
			defer ResetDetection()

			if got := HasAVX512(); got != tt.avx512 {
				t.Fatalf("HasAVX512() = %v, want %v", got, tt.avx512)
			}
			if got := HasAVX2(); got != tt.avx2 {
				t.Fatalf("HasAVX2() = %v, want %v", got, tt.avx2)
			}
			if got := HasNEON(); got != tt.neon {
				t.Fatalf("HasNEON() = %v, want %v", got, tt.neon)
			}
		})
	}
}

func TestAlignmentIsPowerOfTwo(t *testing.T) {
	a := Alignment()
	if a < MinAlignment || a&(a-1) != 0 {
		t.Fatalf("Alignment() = %d, want power of two >= %d", a, MinAlignment)
	}
}

func TestSIMDLevelString(t *testing.T) {
	if SIMDAVX512.String() != "AVX-512" {
		t.Fatalf("String() = %q", SIMDAVX512.String())
	}

	if SIMDLevel(99).String() != "Unknown" {
		t.Fatalf("String() = %q", SIMDLevel(99).String())
	}
}
