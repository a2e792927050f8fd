package arena

// SizeInUse returns the number of bytes consumed so far, including
// alignment padding. It equals the cursor offset.
func (a *Arena) SizeInUse() int {
	if a.released {
		return 0
	}
	return int(a.cursor)
}

// Capacity returns the fixed size of the backing buffer in bytes.
// Returns 0 after Release.
func (a *Arena) Capacity() int {
	if a.released {
		return 0
	}
	return a.capacity
}

// Remaining returns the number of bytes not yet consumed.
func (a *Arena) Remaining() int {
	return int(a.remaining())
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:    a.SizeInUse(),
		Capacity:     a.Capacity(),
		Remaining:    a.Remaining(),
		Allocs:       a.allocs,
		PaddingBytes: a.paddingBytes,
		Failures:     a.failures,
		Utilization:  a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse    int     // Bytes consumed, padding included
	Capacity     int     // Total capacity in bytes
	Remaining    int     // Bytes left
	Allocs       uint64  // Successful allocations
	PaddingBytes uint64  // Bytes skipped for alignment
	Failures     uint64  // Allocations rejected for lack of space
	Utilization  float64 // Ratio of used to total capacity (0.0-1.0)
}

// MetricsObserver receives allocation events. Calls happen synchronously on
// the goroutine using the arena.
type MetricsObserver interface {
	OnReserve(capacity int)
	OnAllocate(size, padding uintptr)
	OnAllocateFailure(size, align uintptr)
	OnRelease(inUse, capacity int)
}

// NoopMetricsObserver is a no-op implementation of MetricsObserver.
type NoopMetricsObserver struct{}

func (NoopMetricsObserver) OnReserve(capacity int)                {}
func (NoopMetricsObserver) OnAllocate(size, padding uintptr)      {}
func (NoopMetricsObserver) OnAllocateFailure(size, align uintptr) {}
func (NoopMetricsObserver) OnRelease(inUse, capacity int)         {}
