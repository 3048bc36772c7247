// Package slice implements an iterator that traverses uni-directionally
// over a generic slice of elements.  A slice iterator never fails except
// to report a cancelled context.
//
// Iterator supports the fallible.Size interface, and is value-semantic:
// it also satisfies fallible.Sequence, with each Iterator() call starting
// a fresh traversal from the beginning of the slice.
package slice

import (
	"context"

	"github.com/jake-scott/go-fallible"
)

// Iterator traverses over a slice of elements of type T.
type Iterator[T any] struct {
	s   []T
	pos int
	err error
}

// New returns an iterator that traverses over the provided slice.  The
// slice itself is not copied;  mutating it during traversal is the
// caller's own hazard.
func New[T any](s []T) Iterator[T] {
	return Iterator[T]{
		s: s,
	}
}

// Size returns the length of the underlying slice, implementing the
// fallible.Size interface.
func (r *Iterator[T]) Size() uint {
	return uint(len(r.s))
}

// Iterator returns a fresh traversal over the same slice, implementing
// the fallible.Sequence interface.
func (r *Iterator[T]) Iterator() fallible.Iterator[T] {
	i := New(r.s)
	return &i
}

// Next advances the iterator to the next element of the underlying
// slice.  It returns false when the end of the slice has been reached, or
// without advancing if the context is cancelled (reported via Error).
func (r *Iterator[T]) Next(ctx context.Context) bool {
	r.err = nil
	if r.pos >= len(r.s) {
		return false
	}

	select {
	case <-ctx.Done():
		r.err = ctx.Err()
		return false
	default:
	}

	r.pos++
	return true
}

// Get returns the element of the underlying slice that the iterator
// refers to, or the zero value before the first successful Next call.
func (r *Iterator[T]) Get() T {
	if r.pos == 0 {
		var ret T
		return ret
	}

	return r.s[r.pos-1]
}

// Error returns the context's error if the context was cancelled during
// the most recent call to Next()
func (r *Iterator[T]) Error() error {
	return r.err
}
