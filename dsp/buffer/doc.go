// Package buffer provides planar multichannel sample storage for real-time
// audio: Multichannel owns aligned per-channel float32 blocks, View borrows
// a window of one channel, and Pool recycles buffers off the audio thread.
//
// # Ownership
//
// A Multichannel is the only owner of its storage. Views alias that storage
// and never copy it, so writes through a View are visible in the buffer.
// Go's garbage collector keeps storage reachable from a View alive, but a
// View taken before Move, MoveFrom or Release no longer refers to the
// buffer's current contents.
//
// # Real-time use
//
// Allocation happens only in NewMultichannel and Pool.Get. Sample access,
// Clear, and every View method run in bounded time without allocating and
// are safe to call from an audio callback. Out-of-range indices on
// Multichannel return 0 or are ignored instead of panicking. View element
// access (At, Set) is unchecked beyond Go's own slice bounds check; test
// Len first.
//
// # Example
//
//	buf := buffer.NewMultichannel(2, 512)
//	left := buffer.ChannelView(buf, 0)
//	left.Sub(128, 64).Fill(0.5)
//	fmt.Println(buf.Sample(0, 130)) // 0.5
package buffer
