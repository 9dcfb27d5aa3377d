// Package ring provides SPSC, a lock-free single-producer/single-consumer
// float32 sample queue for handing audio from a worker goroutine to a
// real-time audio callback.
//
// # Roles
//
// Exactly one goroutine may call Write and AvailableWrite (the producer),
// and exactly one other goroutine may call Read and AvailableRead (the
// consumer). Any other sharing pattern is a contract violation and is not
// detected. Clear, Move and MoveFrom must only run while neither side is
// active, for example after the audio stream has stopped.
//
// # Capacity
//
// New(n) allocates n+1 slots. One slot always stays empty so that "full"
// and "empty" can be told apart from the two indices alone; Capacity
// reports n+1 and at most n samples are ever buffered.
//
// # Memory ordering
//
// Each index has a single writer. A side loads the other side's index
// before touching samples and stores its own index after it has finished
// copying. sync/atomic operations are sequentially consistent, which
// includes the acquire/release edge needed here: samples copied before a
// Store are visible to the goroutine that observes the stored index.
//
// # Usage
//
//	r := ring.New(cfg.RingCapacity())
//
//	go func() { // producer
//	    for block := range decoded {
//	        for len(block) > 0 {
//	            n := r.Write(block)
//	            block = block[n:]
//	            if n == 0 {
//	                time.Sleep(time.Millisecond)
//	            }
//	        }
//	    }
//	}()
//
//	callback := func(out []float32) { // consumer, audio thread
//	    n := r.Read(out)
//	    clear(out[n:]) // underrun: play silence
//	}
package ring
