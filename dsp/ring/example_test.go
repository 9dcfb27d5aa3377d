package ring_test

import (
	"fmt"

	"github.com/cwbudde/algo-rtmem/dsp/core"
	"github.com/cwbudde/algo-rtmem/dsp/ring"
)

func ExampleSPSC() {
	r := ring.New(100)
	fmt.Println(r.Capacity(), r.AvailableWrite())

	written := r.Write([]float32{1, 2, 3, 4, 5})
	fmt.Println(written, r.AvailableRead())

	out := make([]float32, 8)
	n := r.Read(out)
	fmt.Println(n, out[:n])

	// Output:
	// 101 100
	// 5 5
	// 5 [1 2 3 4 5]
}

func ExampleSPSC_stream() {
	cfg := core.ApplyStreamOptions(core.WithBlockSize(4), core.WithLatencyBlocks(2))
	r := ring.New(cfg.RingCapacity())

	// The producer offers three blocks; only two fit.
	block := []float32{0.5, 0.5, 0.5, 0.5}
	written := make([]int, 0, 3)
	for range 3 {
		written = append(written, r.Write(block))
	}
	fmt.Println(written)

	// The audio callback pulls one block and pads underruns with silence.
	out := make([]float32, cfg.BlockSize)
	for range 3 {
		n := r.Read(out)
		clear(out[n:])
		fmt.Println(n, out)
	}

	// Output:
	// [4 4 0]
	// 4 [0.5 0.5 0.5 0.5]
	// 4 [0.5 0.5 0.5 0.5]
	// 0 [0 0 0 0]
}
