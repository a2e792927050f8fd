// Package arena implements a fixed-capacity bump allocator (memory arena) for Go.
//
// # Overview
//
// An arena reserves one buffer up front and hands out portions of it on
// demand by advancing a single offset. Individual blocks are never freed;
// the whole buffer goes away at once. This suits:
//
//   - Object graphs whose members all die together
//   - Containers that need a custom source of backing memory
//   - Hot paths where allocation must be O(1) and never touch the GC
//
// # Basic Usage
//
//	a, err := arena.NewArena(4096)
//	if err != nil {
//		return err
//	}
//	defer a.Release()
//
//	// Raw blocks
//	buf, err := a.Allocate(128, 8)
//
//	// Typed values
//	p, err := arena.Alloc(a, Point{X: 1, Y: 2})
//	s, err := arena.AllocSlice[uint32](a, 100)
//
//	// Ask before allocating
//	if arena.CanFitSlice[uint32](a, 100) {
//		...
//	}
//
// # Allocator Interface
//
// Containers written against Allocator can draw memory from an *Arena or
// from HeapAllocator interchangeably. A common pattern is to try the arena
// first and fall back to the heap when it reports ErrOutOfMemory.
//
// # Thread Safety
//
// Arena is not thread-safe. Several call sites on one goroutine may share a
// single *Arena, but concurrent use from multiple goroutines is a data race.
//
// # Memory Layout
//
// Heap-backed buffers start on a 64-byte boundary; WithMmap buffers start on
// a page boundary. Each block is preceded by the minimal padding its
// alignment requires, so layouts are deterministic for a given sequence of
// requests.
//
// # Important Notes
//
//   - Blocks are only valid until Release
//   - Deallocate is a no-op; capacity is never recovered
//   - Values stored in an arena must not contain Go pointers
//   - Running out of space returns ErrOutOfMemory, it never panics
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Padding: %d bytes\n", m.PaddingBytes)
//
// Use WithMetricsObserver to push the same events into a metrics system;
// package arenaprom provides a Prometheus implementation.
package arena
