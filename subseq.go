package fallible

import (
	"context"
)

// DropFirst returns a lazy sequence containing the elements of s after the
// first n.  The first advance pulls and discards up to n base elements
// before producing anything;  the drop quota is consumed exactly once per
// traversal, not per advance.  If the base ends before n elements have
// been dropped the sequence is simply empty.
//
// A failure met while dropping is surfaced, never swallowed, and counts
// toward the quota;  the next advance resumes dropping whatever quota
// remains.
func DropFirst[T any](s Sequence[T], n uint) Sequence[T] {
	return &dropSequence[T]{base: s, n: n}
}

type dropSequence[T any] struct {
	base Sequence[T]
	n    uint

	src       Iterator[T]
	remaining uint
	cur       T
	err       error
}

func (s *dropSequence[T]) Iterator() Iterator[T] {
	return &dropSequence[T]{base: s.base, n: s.n}
}

func (s *dropSequence[T]) Next(ctx context.Context) bool {
	s.err = nil
	if s.src == nil {
		s.src = s.base.Iterator()
		s.remaining = s.n
	}

	for s.remaining > 0 {
		s.remaining--
		if !s.src.Next(ctx) {
			s.err = s.src.Error()
			return false
		}
	}

	if !s.src.Next(ctx) {
		s.err = s.src.Error()
		return false
	}

	s.cur = s.src.Get()
	return true
}

func (s *dropSequence[T]) Get() T {
	return s.cur
}

func (s *dropSequence[T]) Error() error {
	return s.err
}

// Prefix returns a lazy sequence containing at most the first maxLength
// elements of s.  Once the quota is spent every advance returns end
// without touching the base, so the base iterator is never pulled more
// than maxLength times;  this is the usual way to bound an infinite
// generator.  A failing pull counts against the quota.
func Prefix[T any](s Sequence[T], maxLength uint) Sequence[T] {
	return &prefixSequence[T]{base: s, n: maxLength}
}

type prefixSequence[T any] struct {
	base Sequence[T]
	n    uint

	src       Iterator[T]
	remaining uint
	cur       T
	err       error
}

func (s *prefixSequence[T]) Iterator() Iterator[T] {
	return &prefixSequence[T]{base: s.base, n: s.n}
}

func (s *prefixSequence[T]) Next(ctx context.Context) bool {
	s.err = nil
	if s.src == nil {
		s.src = s.base.Iterator()
		s.remaining = s.n
	}

	if s.remaining == 0 {
		return false
	}
	s.remaining--

	if !s.src.Next(ctx) {
		s.err = s.src.Error()
		return false
	}

	s.cur = s.src.Get()
	return true
}

func (s *prefixSequence[T]) Get() T {
	return s.cur
}

func (s *prefixSequence[T]) Error() error {
	return s.err
}
