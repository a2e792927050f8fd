package arena

import (
	"fmt"
	"math/bits"
	"unsafe"
)

// Allocator is the capability containers use to obtain backing memory.
// Deallocate may be a no-op, as it is for *Arena.
type Allocator interface {
	Allocate(size, align uintptr) ([]byte, error)
	Deallocate(b []byte)
}

var (
	_ Allocator = (*Arena)(nil)
	_ Allocator = HeapAllocator{}
)

// Alloc stores v in memory obtained from a and returns a pointer to it.
// T must not contain Go pointers: arena memory is not scanned by the
// garbage collector.
func Alloc[T any](a Allocator, v T) (*T, error) {
	var zero T
	size := unsafe.Sizeof(zero)
	b, err := a.Allocate(size, unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return new(T), nil
	}
	p := (*T)(unsafe.Pointer(unsafe.SliceData(b)))
	*p = v
	return p, nil
}

// AllocSlice allocates n contiguous zeroed elements of type T from a.
// Returns nil if n <= 0.
func AllocSlice[T any](a Allocator, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	total, ok := sliceSize[T](n)
	if !ok {
		return nil, fmt.Errorf("%w: %d elements of %d bytes overflow", ErrOutOfMemory, n, unsafe.Sizeof(zero))
	}
	b, err := a.Allocate(total, unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return make([]T, n), nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n), nil
}

// Free hands the memory behind p back to a.
func Free[T any](a Allocator, p *T) {
	if p == nil {
		return
	}
	a.Deallocate(unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p)))
}

// FreeSlice hands the memory behind s back to a.
func FreeSlice[T any](a Allocator, s []T) {
	if cap(s) == 0 {
		return
	}
	s = s[:cap(s)]
	a.Deallocate(unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), uintptr(len(s))*unsafe.Sizeof(s[0])))
}

// CanFit reports whether one value of type T can currently be allocated
// from a.
func CanFit[T any](a *Arena) bool {
	var zero T
	return a.Fits(unsafe.Sizeof(zero), unsafe.Alignof(zero))
}

// CanFitSlice reports whether n contiguous values of type T can currently be
// allocated from a. It is false for negative n and when the total size
// overflows. n == 0 fits whenever the alignment padding for T does.
func CanFitSlice[T any](a *Arena, n int) bool {
	if n < 0 {
		return false
	}
	total, ok := sliceSize[T](n)
	if !ok {
		return false
	}
	var zero T
	return a.Fits(total, unsafe.Alignof(zero))
}

// sliceSize returns n * sizeof(T), or false if it overflows.
func sliceSize[T any](n int) (uintptr, bool) {
	var zero T
	hi, lo := bits.Mul(uint(n), uint(unsafe.Sizeof(zero)))
	if hi != 0 || lo > MaxCapacity {
		return 0, false
	}
	return uintptr(lo), true
}

// HeapAllocator is an Allocator backed by the Go heap. It is the usual
// fallback when an arena reports ErrOutOfMemory. Deallocate is a no-op; the
// garbage collector reclaims blocks once they are unreachable.
type HeapAllocator struct{}

// Allocate returns a zeroed block of size bytes aligned to align.
func (HeapAllocator) Allocate(size, align uintptr) ([]byte, error) {
	if !validAlign(align) {
		return nil, ErrInvalidAlignment
	}
	if size > MaxCapacity || align > MaxCapacity-size {
		return nil, &OutOfMemoryError{Size: size, Align: align}
	}
	return heapBytes(int(size), align)
}

// Deallocate does nothing.
func (HeapAllocator) Deallocate(b []byte) {}
