package fallible

import (
	"context"
	"errors"
)

// AnyIterator is a concrete, storable iterator that hides the underlying
// implementation behind a captured advance closure.  It is a pure
// forwarding shim:  the wrapped value's advance semantics are preserved
// exactly, at the cost of one indirect call per advance.
type AnyIterator[T any] struct {
	advance func(context.Context) (T, error)
	cur     T
	err     error
}

// NewAnyIterator erases the concrete type of it, capturing its advance
// behaviour.  The returned iterator and it share the same traversal;  do
// not advance both.
//
// ErrFinished is reserved by the closure protocol to mark the end of the
// sequence:  a wrapped iterator whose failure is, or wraps, ErrFinished
// is reported as having ended instead.  Caller-defined error taxonomies
// must not use ErrFinished as a failure value.
func NewAnyIterator[T any](it Iterator[T]) *AnyIterator[T] {
	return &AnyIterator[T]{advance: func(ctx context.Context) (T, error) {
		var zero T
		if it.Next(ctx) {
			return it.Get(), nil
		}
		if err := it.Error(); err != nil {
			return zero, err
		}
		return zero, ErrFinished
	}}
}

// AnyIteratorFunc wraps a raw advance closure.  The closure returns the
// next element, ErrFinished to signal the end of the sequence, or any
// other error to surface a failure for that advance.
func AnyIteratorFunc[T any](f func(context.Context) (T, error)) *AnyIterator[T] {
	return &AnyIterator[T]{advance: f}
}

// EmptyIterator returns an iterator that is already exhausted.
func EmptyIterator[T any]() *AnyIterator[T] {
	return AnyIteratorFunc(func(context.Context) (T, error) {
		var zero T
		return zero, ErrFinished
	})
}

func (i *AnyIterator[T]) Next(ctx context.Context) bool {
	i.err = nil
	v, err := i.advance(ctx)
	switch {
	case err == nil:
		i.cur = v
		return true
	case errors.Is(err, ErrFinished):
		return false
	default:
		i.err = err
		return false
	}
}

func (i *AnyIterator[T]) Get() T {
	return i.cur
}

func (i *AnyIterator[T]) Error() error {
	return i.err
}

// AnySequence is a concrete, storable sequence that hides the underlying
// implementation behind a captured iterator factory.  The zero value is an
// empty sequence.
//
// AnySequence carries method forms of the combinators that keep the
// element type, so heterogeneous pipelines can be built by chaining:
//
//	evens := fallible.NewAnySequence(src).
//	    Filter(findEvenInts).
//	    Prefix(10)
//
// Combinators that change the element type (Map to a new type, CompactMap)
// are only available as package functions, due to limitations of Golang's
// generic syntax.
type AnySequence[T any] struct {
	iterator func() Iterator[T]
}

// NewAnySequence erases the concrete type of s.
func NewAnySequence[T any](s Sequence[T]) AnySequence[T] {
	return AnySequence[T]{iterator: s.Iterator}
}

// AnySequenceFunc wraps an iterator factory.  Each call of the factory
// must return a fresh, independent traversal.
func AnySequenceFunc[T any](f func() Iterator[T]) AnySequence[T] {
	return AnySequence[T]{iterator: f}
}

// EmptySequence returns a sequence with no elements.
func EmptySequence[T any]() AnySequence[T] {
	return AnySequence[T]{}
}

func (s AnySequence[T]) Iterator() Iterator[T] {
	if s.iterator == nil {
		return EmptyIterator[T]()
	}
	return s.iterator()
}

// Filter returns the sequence filtered by f.  See the package function
// Filter.
func (s AnySequence[T]) Filter(f FilterFunc[T]) AnySequence[T] {
	return NewAnySequence(Filter[T](s, f))
}

// Map returns the sequence transformed by m.  The package function Map
// must be used instead when the transform changes the element type.
func (s AnySequence[T]) Map(m MapFunc[T, T]) AnySequence[T] {
	return NewAnySequence(Map[T, T](s, m))
}

// DropFirst returns the sequence without its first n elements.  See the
// package function DropFirst.
func (s AnySequence[T]) DropFirst(n uint) AnySequence[T] {
	return NewAnySequence(DropFirst[T](s, n))
}

// Prefix returns at most the first n elements of the sequence.  See the
// package function Prefix.
func (s AnySequence[T]) Prefix(n uint) AnySequence[T] {
	return NewAnySequence(Prefix[T](s, n))
}

// SkipFailures returns the sequence with failing positions discarded.
// See the package function SkipFailures.
func (s AnySequence[T]) SkipFailures(opts ...SkipOption) AnySequence[T] {
	return NewAnySequence(SkipFailures[T](s, opts...))
}

// Trace returns the sequence with advance-level tracing attached.  See
// the package function Trace.
func (s AnySequence[T]) Trace(opts ...TraceOption) AnySequence[T] {
	return NewAnySequence(Trace[T](s, opts...))
}
