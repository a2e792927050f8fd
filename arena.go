// Package arena implements a fixed-capacity bump allocator (memory arena).
// Typical usage: create one arena sized for a known working set, carve many
// values out of it, then Release it once when all of them are dead.
package arena

import (
	"fmt"
	"log/slog"
	"unsafe"
)

// Arena is a fixed-capacity bump allocator. Not goroutine-safe.
//
// The arena owns one contiguous buffer. Allocate hands out sub-slices of it
// in increasing address order; space is never reused, and the buffer is
// only reclaimed as a whole by Release.
type Arena struct {
	buf      []byte  // backing memory, len(buf) == capacity
	capacity int     // fixed at construction
	cursor   uintptr // offset of the next unused byte, 0 <= cursor <= capacity

	unmap    func([]byte) error // non-nil for mmap-backed buffers
	released bool

	allocs       uint64
	paddingBytes uint64
	failures     uint64

	logger   *slog.Logger
	observer MetricsObserver
}

// NewArena creates an Arena backed by exactly capacity bytes.
//
// It returns a *CapacityError when capacity is negative or larger than
// MaxCapacity, and an error wrapping ErrAllocationFailed when the backing
// memory cannot be obtained.
func NewArena(capacity int, opts ...Option) (*Arena, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if capacity < 0 || capacity > MaxCapacity {
		return nil, &CapacityError{Capacity: capacity, Max: MaxCapacity}
	}

	logger := o.logger
	if o.name != "" {
		logger = logger.With("arena", o.name)
	}

	a := &Arena{
		capacity: capacity,
		logger:   logger,
		observer: o.observer,
	}

	var (
		backing = "heap"
		err     error
	)
	if o.mmap {
		backing = "mmap"
		a.buf, a.unmap, err = mapBytes(capacity)
	} else {
		a.buf, err = heapBytes(capacity, bufferAlign)
	}
	if err != nil {
		logger.Debug("arena construction failed", "capacity", capacity, "backing", backing, "error", err)
		return nil, err
	}

	a.observer.OnReserve(capacity)
	logger.Debug("arena created", "capacity", capacity, "backing", backing)
	return a, nil
}

// Allocate returns a block of exactly size bytes whose first byte is aligned
// to align. The block aliases the arena's buffer and stays valid until
// Release; its capacity is clipped to size so appends never spill into
// neighbouring blocks.
//
// Allocate fails with ErrInvalidAlignment if align is not a power of two,
// with ErrReleased after Release, and with an *OutOfMemoryError when the
// padded request does not fit. The cursor only moves on success.
func (a *Arena) Allocate(size, align uintptr) ([]byte, error) {
	if !validAlign(align) {
		return nil, ErrInvalidAlignment
	}
	if a.released {
		return nil, ErrReleased
	}

	pad, ok := a.padding(size, align)
	if !ok {
		a.failures++
		a.observer.OnAllocateFailure(size, align)
		a.logger.Debug("arena out of memory",
			"size", size,
			"align", align,
			"remaining", a.remaining(),
		)
		return nil, &OutOfMemoryError{Size: size, Align: align, Remaining: a.remaining()}
	}

	start := a.cursor + pad
	end := start + size
	a.cursor = end
	a.allocs++
	a.paddingBytes += uint64(pad)
	a.observer.OnAllocate(size, pad)
	return a.buf[start:end:end], nil
}

// Deallocate does nothing. Blocks are reclaimed together by Release.
func (a *Arena) Deallocate(b []byte) {}

// Fits reports whether Allocate(size, align) would currently succeed.
// It never moves the cursor.
func (a *Arena) Fits(size, align uintptr) bool {
	if a.released || !validAlign(align) {
		return false
	}
	_, ok := a.padding(size, align)
	return ok
}

// Release drops the backing buffer, unmapping it when the arena was created
// with WithMmap. Release is idempotent; allocations after it fail with
// ErrReleased.
func (a *Arena) Release() error {
	if a.released {
		return nil
	}
	a.released = true
	inUse := int(a.cursor)

	var err error
	if a.unmap != nil {
		err = a.unmap(a.buf)
	}
	a.buf = nil
	a.unmap = nil

	a.observer.OnRelease(inUse, a.capacity)
	if err != nil {
		a.logger.Debug("arena release failed", "error", err)
		return fmt.Errorf("arena: unmap: %w", err)
	}
	a.logger.Debug("arena released", "in_use", inUse, "capacity", a.capacity)
	return nil
}

// padding returns the filler bytes needed before a block of size bytes
// aligned to align, or false if the padded block does not fit. It has no
// side effects and is shared by Allocate and every fit query.
func (a *Arena) padding(size, align uintptr) (uintptr, bool) {
	addr := a.base() + a.cursor
	pad := (align - addr%align) % align

	remaining := a.remaining()
	if remaining < pad {
		return 0, false
	}
	if remaining-pad < size {
		return 0, false
	}
	return pad, true
}

// base returns the address of the first byte of the buffer.
func (a *Arena) base() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(a.buf)))
}

func (a *Arena) remaining() uintptr {
	if a.released {
		return 0
	}
	return uintptr(a.capacity) - a.cursor
}
