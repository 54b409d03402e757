package coll

import (
	"fmt"
	"math"
	"unsafe"
)

// AllocError is the panic value raised when a requested allocation cannot be
// represented in the platform's signed address range. It is never returned
// as an ordinary error: the caller asked for more memory than can exist.
type AllocError struct {
	Count    int     // Requested element count
	ElemSize uintptr // Size of one element in bytes
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("coll: allocation too large: %d elements of %d bytes", e.Count, e.ElemSize)
}

// sizeOf returns the size in bytes of one T.
func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// startCapacity is the capacity of the first allocation made for T.
func startCapacity[T any]() int {
	switch size := sizeOf[T](); {
	case size == 1:
		return 8
	case size <= 1024:
		return 4
	default:
		return 1
	}
}

// checkLayout panics with *AllocError if n elements of size bytes do not fit
// in math.MaxInt bytes.
func checkLayout(n int, size uintptr) {
	if n < 0 {
		panic(&AllocError{Count: n, ElemSize: size})
	}
	if size != 0 && uint64(n) > uint64(math.MaxInt)/uint64(size) {
		panic(&AllocError{Count: n, ElemSize: size})
	}
}

// allocSlice returns a zeroed allocation of exactly n elements of T.
// Zero-sized element types are backed by no memory at all.
// Allocator exhaustion is fatal inside the Go runtime and is not recovered.
func allocSlice[T any](n int) []T {
	checkLayout(n, sizeOf[T]())
	if n == 0 {
		return nil
	}
	return make([]T, n)
}

// sliceAt returns a []T view of n elements starting at p.
// Returns nil if p is nil or n <= 0.
func sliceAt[T any](p *T, n int) []T {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice(p, n)
}

// elemAt returns a pointer to the i-th element of the allocation at base.
// No bounds checks are performed.
func elemAt[T any](base *T, i int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(base), uintptr(i)*sizeOf[T]()))
}
