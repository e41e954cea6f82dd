// Package bucket provides the storage primitives behind go-argv's two
// bucket-store strategies: a generic growable list for the heap path and a
// fixed-capacity string arena with contiguous views for the no-heap path.
package bucket

import "errors"

// DefaultCap is the initial capacity a List allocates on first append.
const DefaultCap = 5

// ErrLimitExceeded is returned when an append would grow a List past its
// configured hard limit.
var ErrLimitExceeded = errors.New("bucket: list limit exceeded")

// List is an append-only, order-preserving sequence with an explicit
// doubling growth policy. The zero value is ready to use and holds no
// backing storage until the first append.
type List[T any] struct {
	data  []T
	limit int // 0 = unlimited
}

// NewList returns an empty list with no configured limit.
func NewList[T any]() *List[T] { return &List[T]{} }

// NewListLimit returns an empty list that refuses to grow past limit
// elements. A limit of 0 means unlimited.
func NewListLimit[T any](limit int) *List[T] { return &List[T]{limit: limit} }

// Append adds v at the end of the list, growing the backing array by
// doubling when full. The first append allocates DefaultCap slots.
func (l *List[T]) Append(v T) error {
	if l.limit > 0 && len(l.data) >= l.limit {
		return ErrLimitExceeded
	}
	if l.data == nil {
		l.data = make([]T, 0, DefaultCap)
	} else if len(l.data) == cap(l.data) {
		grown := make([]T, len(l.data), cap(l.data)*2)
		copy(grown, l.data)
		l.data = grown
	}
	l.data = append(l.data, v)
	return nil
}

// Len returns the number of stored elements.
func (l *List[T]) Len() int { return len(l.data) }

// Items returns the stored elements in insertion order. The returned slice
// aliases the list's backing array and must not be mutated by the caller.
func (l *List[T]) Items() []T { return l.data }

// Cap returns the current capacity of the backing array. Exposed so the
// growth policy is testable independent of any consumer.
func (l *List[T]) Cap() int { return cap(l.data) }

// Reset truncates the list for reuse, keeping the backing array.
func (l *List[T]) Reset() { l.data = l.data[:0] }

// Release drops the backing array. Safe on the zero value and after a
// previous Release.
func (l *List[T]) Release() { l.data = nil }
