package mmap

import (
	"errors"
	"unsafe"
)

var (
	// ErrClosed is returned when using an Array after Close.
	ErrClosed = errors.New("mmap: array is closed")
	// ErrInvalidLength is returned for a negative element count.
	ErrInvalidLength = errors.New("mmap: invalid length")
)

// Advice tells the kernel how an Array will be accessed.
type Advice int

const (
	// AdviceNormal is the default (no specific advice).
	AdviceNormal Advice = iota
	// AdviceRandom disables read-ahead; hashed access touches pages at random.
	AdviceRandom
	// AdviceFree lets the kernel drop the pages. They read as zero afterwards.
	AdviceFree
)

// Array is a fixed-length, zero-filled array of T in an anonymous mapping.
// T must not contain Go pointers: the garbage collector does not scan the
// mapping.
type Array[T any] struct {
	items []T
	raw   []byte
	freed bool
}

// Alloc maps an Array of n elements.
func Alloc[T any](n int) (*Array[T], error) {
	if n < 0 {
		return nil, ErrInvalidLength
	}

	size := int(unsafe.Sizeof(*new(T))) * n
	if size == 0 {
		return &Array[T]{items: make([]T, n)}, nil
	}

	raw, err := mapAnon(size)
	if err != nil {
		return nil, err
	}

	return &Array[T]{
		items: unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n),
		raw:   raw,
	}, nil
}

// Items returns the elements. The slice is valid until Close.
func (a *Array[T]) Items() []T {
	return a.items
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// Size returns the mapped size in bytes.
func (a *Array[T]) Size() int64 {
	return int64(len(a.raw))
}

// Advise passes an access hint to the kernel.
func (a *Array[T]) Advise(advice Advice) error {
	if a.freed {
		return ErrClosed
	}
	if len(a.raw) == 0 {
		return nil
	}
	return advise(a.raw, advice)
}

// Close unmaps the array. It is idempotent.
func (a *Array[T]) Close() error {
	if a.freed {
		return nil
	}
	a.freed = true
	a.items = nil

	raw := a.raw
	a.raw = nil
	if len(raw) == 0 {
		return nil
	}
	return unmap(raw)
}
