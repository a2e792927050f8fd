package arena

import (
	"fmt"
	"math/bits"
	"unsafe"
)

// MaxCapacity is the largest capacity accepted by NewArena.
const MaxCapacity = 1<<min(47, bits.UintSize-1) - 1

// bufferAlign is the alignment of the first byte of a heap-backed buffer, so
// that the padding an arena produces does not depend on where the Go heap
// happened to place it.
const bufferAlign = 64

// heapBytes returns a zeroed slice of n bytes whose first byte is aligned to
// align. Allocation failures reported by the runtime are returned as
// ErrAllocationFailed.
func heapBytes(n int, align uintptr) (buf []byte, err error) {
	if n == 0 {
		return []byte{}, nil
	}
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("%w: %d bytes: %v", ErrAllocationFailed, n, r)
		}
	}()

	raw := make([]byte, n+int(align)-1)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	shift := int((align - addr%align) % align)
	return raw[shift : shift+n : shift+n], nil
}

// mapBytes returns n bytes from an anonymous mapping together with the
// function that unmaps them.
func mapBytes(n int) ([]byte, func([]byte) error, error) {
	if n == 0 {
		return []byte{}, nil, nil
	}
	data, unmap, err := osMapAnon(n)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: map %d bytes: %w", ErrAllocationFailed, n, err)
	}
	return data, unmap, nil
}
