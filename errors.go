package arena

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacity is matched by every *CapacityError.
	ErrCapacity = errors.New("arena: invalid capacity")
	// ErrAllocationFailed is returned when the backing memory cannot be obtained.
	ErrAllocationFailed = errors.New("arena: allocation failed")
	// ErrOutOfMemory is matched by every *OutOfMemoryError.
	ErrOutOfMemory = errors.New("arena: out of memory")
	// ErrInvalidAlignment is returned for an alignment that is not a power of two.
	ErrInvalidAlignment = errors.New("arena: alignment must be a power of two")
	// ErrReleased is returned when allocating from an arena after Release.
	ErrReleased = errors.New("arena: use after Release()")
)

// CapacityError reports a capacity that cannot be represented as a single
// backing buffer.
type CapacityError struct {
	Capacity int
	Max      int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("arena: invalid capacity %d (must be between 0 and %d)", e.Capacity, e.Max)
}

// Is reports whether target is ErrCapacity.
func (e *CapacityError) Is(target error) bool { return target == ErrCapacity }

// OutOfMemoryError reports a request whose padding and size exceed the
// bytes left in the arena. The arena is unchanged when it is returned.
type OutOfMemoryError struct {
	Size      uintptr
	Align     uintptr
	Remaining uintptr
}

func (e *OutOfMemoryError) Error() string {
	return fmt.Sprintf("arena: out of memory: need %d bytes aligned to %d, %d remaining", e.Size, e.Align, e.Remaining)
}

// Is reports whether target is ErrOutOfMemory.
func (e *OutOfMemoryError) Is(target error) bool { return target == ErrOutOfMemory }

func validAlign(align uintptr) bool {
	return align != 0 && align&(align-1) == 0
}
