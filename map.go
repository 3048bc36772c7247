package fallible

import (
	"context"
)

// MapFunc is a generic function that takes a single element and returns
// a single transformed element.
//
// If an error is returned, it is surfaced as a failure of the mapped
// sequence for that advance.
//
// Example:
//
//	func parsePort(s string) (uint16, error) {
//	    n, err := strconv.ParseUint(s, 10, 16)
//	    return uint16(n), err
//	}
type MapFunc[T any, M any] func(T) (M, error)

// Map returns a lazy sequence whose elements are the elements of s
// transformed by m.  Each advance of the mapped sequence pulls exactly one
// base element, whether the transform succeeds or fails;  a failing
// transform surfaces its error for that advance and the base is not
// re-pulled to compensate.  Failures from the base pass through unchanged.
//
// Map must be used as a package function when the transform returns items
// of a different type than the input elements, due to limitations of
// Golang's generic syntax;  AnySequence.Map covers the same-type case.
func Map[T, M any](s Sequence[T], m MapFunc[T, M]) Sequence[M] {
	return &mapSequence[T, M]{base: s, m: m}
}

type mapSequence[T, M any] struct {
	base Sequence[T]
	m    MapFunc[T, M]

	src Iterator[T]
	cur M
	err error
}

func (s *mapSequence[T, M]) Iterator() Iterator[M] {
	return &mapSequence[T, M]{base: s.base, m: s.m}
}

func (s *mapSequence[T, M]) Next(ctx context.Context) bool {
	s.err = nil
	if s.src == nil {
		s.src = s.base.Iterator()
	}

	if !s.src.Next(ctx) {
		s.err = s.src.Error()
		return false
	}

	v, err := s.m(s.src.Get())
	if err != nil {
		s.err = err
		return false
	}

	s.cur = v
	return true
}

func (s *mapSequence[T, M]) Get() M {
	return s.cur
}

func (s *mapSequence[T, M]) Error() error {
	return s.err
}
