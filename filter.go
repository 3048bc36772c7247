package fallible

import (
	"context"
)

// FilterFunc is a generic function type that takes a single element and
// returns true if it is to be included or false if the element is to be
// excluded from the result set.
//
// If an error is returned, it is surfaced as a failure of the filtered
// sequence for the advance that evaluated it;  the element is neither
// included nor silently skipped.
//
// Example:
//
//	func findEvenInts(i int) (bool, error) {
//	    return i%2 == 0, nil
//	}
type FilterFunc[T any] func(T) (bool, error)

// CompactMapFunc transforms an element, or discards it by returning
// ok=false.  An error surfaces as a failure of the compact-mapped
// sequence;  it is never treated as a discard.
type CompactMapFunc[T, M any] func(T) (M, bool, error)

// Filter returns a lazy sequence containing the elements of s for which f
// returns true.  Each advance pulls base elements until one passes the
// predicate, the predicate or the base fails, or the base is exhausted.
// Elements rejected by the predicate are not buffered or revisited.
func Filter[T any](s Sequence[T], f FilterFunc[T]) Sequence[T] {
	return &filterSequence[T]{base: s, f: f}
}

type filterSequence[T any] struct {
	base Sequence[T]
	f    FilterFunc[T]

	src Iterator[T]
	cur T
	err error
}

func (s *filterSequence[T]) Iterator() Iterator[T] {
	return &filterSequence[T]{base: s.base, f: s.f}
}

func (s *filterSequence[T]) Next(ctx context.Context) bool {
	s.err = nil
	if s.src == nil {
		s.src = s.base.Iterator()
	}

	for s.src.Next(ctx) {
		item := s.src.Get()
		keep, err := s.f(item)
		switch {
		case err != nil:
			s.err = err
			return false
		case keep:
			s.cur = item
			return true
		}
	}

	s.err = s.src.Error()
	return false
}

func (s *filterSequence[T]) Get() T {
	return s.cur
}

func (s *filterSequence[T]) Error() error {
	return s.err
}

// CompactMap returns a lazy sequence of the non-discarded results of
// applying m to the elements of s.  It behaves like a fused Filter and
// Map:  each advance pulls base elements until m produces a result,
// m or the base fails, or the base is exhausted.
//
// CompactMap must be used as a package function due to limitations of
// Golang's generic syntax;  there is no method form.
func CompactMap[T, M any](s Sequence[T], m CompactMapFunc[T, M]) Sequence[M] {
	return &compactMapSequence[T, M]{base: s, m: m}
}

type compactMapSequence[T, M any] struct {
	base Sequence[T]
	m    CompactMapFunc[T, M]

	src Iterator[T]
	cur M
	err error
}

func (s *compactMapSequence[T, M]) Iterator() Iterator[M] {
	return &compactMapSequence[T, M]{base: s.base, m: s.m}
}

func (s *compactMapSequence[T, M]) Next(ctx context.Context) bool {
	s.err = nil
	if s.src == nil {
		s.src = s.base.Iterator()
	}

	for s.src.Next(ctx) {
		v, ok, err := s.m(s.src.Get())
		switch {
		case err != nil:
			s.err = err
			return false
		case ok:
			s.cur = v
			return true
		}
	}

	s.err = s.src.Error()
	return false
}

func (s *compactMapSequence[T, M]) Get() M {
	return s.cur
}

func (s *compactMapSequence[T, M]) Error() error {
	return s.err
}
