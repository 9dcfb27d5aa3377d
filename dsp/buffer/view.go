package buffer

import "github.com/cwbudde/algo-rtmem/dsp/core"

// View is a non-owning window over contiguous samples of one channel.
// It is a small value (slice header plus length) and is meant to be
// passed and copied freely. The zero View is empty.
//
// The memory behind a View must stay in use by its owner for as long as
// the View is; a View never frees or reallocates anything.
type View struct {
	data []float32
	n    int
}

// NewView returns a View over caller-owned memory.
func NewView(data []float32) View {
	if data == nil {
		return View{}
	}
	return View{data: data, n: len(data)}
}

// ChannelView returns a View over channel ch of b. Its length is always
// b.NumSamples(); if the channel does not exist or has no storage the View
// has no data and reports Empty.
func ChannelView(b *Multichannel, ch int) View {
	if b == nil {
		return View{}
	}
	return View{data: b.Channel(ch), n: b.NumSamples()}
}

// Len returns the number of samples in the view.
func (v View) Len() int { return v.n }

// Empty reports whether the view has no samples or no data.
func (v View) Empty() bool { return v.n == 0 || v.data == nil }

// Samples returns the viewed samples. It is nil when the view has no data.
func (v View) Samples() []float32 { return v.data }

// At returns sample i. It panics if i is outside [0, Len()).
func (v View) At(i int) float32 { return v.data[i] }

// Set stores sample i. It panics if i is outside [0, Len()).
func (v View) Set(i int, x float32) { v.data[i] = x }

// Sub returns the window starting at offset with count samples, clipped to
// the end of v. A count of 0 (or less) means the rest of the view. An
// offset outside the view yields an empty View.
func (v View) Sub(offset, count int) View {
	if v.data == nil || offset < 0 || offset >= v.n {
		return View{}
	}
	k := v.n - offset
	if count > 0 && count < k {
		k = count
	}
	return View{data: v.data[offset : offset+k : offset+k], n: k}
}

// Fill sets every sample to x. Real-time safe.
func (v View) Fill(x float32) {
	core.Fill(v.data, x)
}

// Clear sets every sample to 0. Real-time safe.
func (v View) Clear() {
	core.Zero(v.data)
}

// CopyFrom copies min(v.Len(), src.Len()) samples from src and returns the
// number copied. Overlapping views are handled like the copy builtin.
func (v View) CopyFrom(src View) int {
	return core.CopyInto(v.data, src.data)
}

// ToFloat64 widens the viewed samples into dst for float64 processing code
// and returns the number converted.
func (v View) ToFloat64(dst []float64) int {
	return core.Widen(dst, v.data)
}

// ToFloat64Scaled is ToFloat64 with every sample multiplied by gain.
func (v View) ToFloat64Scaled(dst []float64, gain float64) int {
	return core.WidenScaled(dst, v.data, gain)
}

// FromFloat64 narrows src into the view and returns the number converted.
func (v View) FromFloat64(src []float64) int {
	return core.Narrow(v.data, src)
}
