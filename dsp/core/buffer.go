package core

import "github.com/cwbudde/algo-vecmath"

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float32, n int) []float32 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float32, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float32) {
	clear(buf)
}

// Fill sets all values in buf to v.
func Fill(buf []float32, v float32) {
	if v == 0 {
		clear(buf)
		return
	}
	for i := range buf {
		buf[i] = v
	}
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto(dst, src []float32) int {
	return copy(dst, src)
}

// Widen converts float32 samples to float64 and returns the number converted.
func Widen(dst []float64, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float64(src[i])
	}
	return n
}

// WidenScaled converts src to float64 and multiplies by gain.
func WidenScaled(dst []float64, src []float32, gain float64) int {
	n := Widen(dst, src)
	if n > 0 && gain != 1 {
		vecmath.ScaleBlock(dst[:n], dst[:n], gain)
	}
	return n
}

// Narrow converts float64 samples to float32 and returns the number converted.
func Narrow(dst []float32, src []float64) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float32(src[i])
	}
	return n
}
