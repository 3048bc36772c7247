package fallible

import (
	"context"
	"iter"
)

// From adapts a native non-failing sequence so it satisfies the fallible
// contracts.  Each advance forwards one element from the underlying
// iter.Seq and never produces a failure, other than reporting a cancelled
// context.  The result is a restartable recipe:  every Iterator() call
// starts a fresh traversal of seq.
//
// Each traversal holds an iter.Pull coroutine;  it is released when the
// traversal reaches the end.  A traversal abandoned mid-way keeps its
// coroutine parked until the traversal is garbage collected.
func From[T any](seq iter.Seq[T]) Sequence[T] {
	return &seqSequence[T]{seq: seq}
}

type seqSequence[T any] struct {
	seq iter.Seq[T]

	next func() (T, bool)
	stop func()
	cur  T
	err  error
}

func (s *seqSequence[T]) Iterator() Iterator[T] {
	return &seqSequence[T]{seq: s.seq}
}

func (s *seqSequence[T]) Next(ctx context.Context) bool {
	s.err = nil
	if err := ctx.Err(); err != nil {
		s.err = err
		return false
	}
	if s.next == nil {
		s.next, s.stop = iter.Pull(s.seq)
	}

	v, ok := s.next()
	if !ok {
		s.stop()
		return false
	}

	s.cur = v
	return true
}

func (s *seqSequence[T]) Get() T {
	return s.cur
}

func (s *seqSequence[T]) Error() error {
	return s.err
}

// FromSeq2 adapts a native value/error pair sequence.  A pair with a nil
// error becomes a value;  a pair with a non-nil error becomes a failure on
// the advance that reaches it, and the traversal continues past it.
func FromSeq2[T any](seq iter.Seq2[T, error]) Sequence[T] {
	return &seq2Sequence[T]{seq: seq}
}

type seq2Sequence[T any] struct {
	seq iter.Seq2[T, error]

	next func() (T, error, bool)
	stop func()
	cur  T
	err  error
}

func (s *seq2Sequence[T]) Iterator() Iterator[T] {
	return &seq2Sequence[T]{seq: s.seq}
}

func (s *seq2Sequence[T]) Next(ctx context.Context) bool {
	s.err = nil
	if err := ctx.Err(); err != nil {
		s.err = err
		return false
	}
	if s.next == nil {
		s.next, s.stop = iter.Pull2(s.seq)
	}

	v, err, ok := s.next()
	switch {
	case !ok:
		s.stop()
		return false
	case err != nil:
		s.err = err
		return false
	}

	s.cur = v
	return true
}

func (s *seq2Sequence[T]) Get() T {
	return s.cur
}

func (s *seq2Sequence[T]) Error() error {
	return s.err
}

// MapSeq is a convenience shortcut for applying a fallible transform
// directly to a native non-failing sequence.  It is exactly equivalent to
// Map(From(seq), m).
func MapSeq[T, M any](seq iter.Seq[T], m MapFunc[T, M]) Sequence[M] {
	return Map(From(seq), m)
}

// All returns a range-over-func view of s yielding value/error pairs.
// Values are yielded with a nil error;  a failure is yielded as the zero
// value paired with the error, and iteration continues past it until the
// sequence ends, unless the consumer breaks or the context is cancelled.
func All[T any](ctx context.Context, s Sequence[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		it := s.Iterator()
		for {
			if it.Next(ctx) {
				if !yield(it.Get(), nil) {
					return
				}
				continue
			}

			err := it.Error()
			if err == nil {
				return
			}
			var zero T
			if !yield(zero, err) {
				return
			}
			if ctx.Err() != nil {
				return
			}
		}
	}
}

// Values returns a range-over-func view of s with failing positions
// discarded.  It is the range form of SkipFailures and carries the same
// unbounded-spin risk on a source that fails forever.
func Values[T any](ctx context.Context, s Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := SkipFailures[T](s).Iterator()
		for it.Next(ctx) {
			if !yield(it.Get()) {
				return
			}
		}
	}
}
