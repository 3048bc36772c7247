package fallible

import (
	"context"
	"errors"
)

// ErrFinished is returned by generator step functions and raw advance
// closures to signal the normal end of a sequence.  It is consumed by the
// generator machinery and never surfaced through Iterator.Error().
var ErrFinished = errors.New("fallible: sequence finished")

// GenerateFunc is the step function of a state-form generator.  It may
// mutate the state in place and returns the next element, ErrFinished to
// end the sequence, or any other error to surface a failure for this step.
//
// A function that never returns ErrFinished produces an infinite
// sequence;  use Prefix or stop advancing to terminate.
type GenerateFunc[S, T any] func(state *S) (T, error)

// SuccessorFunc computes the element following the one passed in.  It
// returns ErrFinished to end the sequence, or any other error to surface
// a failure.
type SuccessorFunc[T any] func(T) (T, error)

// Generate returns a sequence produced by repeatedly applying f to a piece
// of state, starting from initial.  Each traversal obtained from
// Iterator() begins with its own copy of initial;  note that the copy is
// shallow, so state containing pointers shares what the pointers refer to.
//
// Once f has returned ErrFinished the traversal is exhausted and f is not
// called again.  After any other error, the next advance calls f with
// whatever state the failing call left behind;  it is up to f to have
// moved its state past the failing position.
func Generate[S, T any](initial S, f GenerateFunc[S, T]) Sequence[T] {
	return &generateSequence[S, T]{initial: initial, f: f, state: initial}
}

type generateSequence[S, T any] struct {
	initial S
	f       GenerateFunc[S, T]

	state S
	done  bool
	cur   T
	err   error
}

func (g *generateSequence[S, T]) Iterator() Iterator[T] {
	return &generateSequence[S, T]{initial: g.initial, f: g.f, state: g.initial}
}

func (g *generateSequence[S, T]) Next(ctx context.Context) bool {
	g.err = nil
	if g.done {
		return false
	}
	if err := ctx.Err(); err != nil {
		g.err = err
		return false
	}

	v, err := g.f(&g.state)
	switch {
	case err == nil:
		g.cur = v
		return true
	case errors.Is(err, ErrFinished):
		g.done = true
		return false
	default:
		g.err = err
		return false
	}
}

func (g *generateSequence[S, T]) Get() T {
	return g.cur
}

func (g *generateSequence[S, T]) Error() error {
	return g.err
}

// Successors returns the sequence first, next(first), next(next(first)) ...
//
// The traversal stays exactly one element ahead:  each advance takes the
// pending element, invokes the successor once to stage the element after
// it, and delivers the pending element.  If the successor fails, the
// failure is surfaced on that advance instead and the pending element is
// consumed;  elements delivered on earlier advances stand.  There is no
// speculation beyond the one pending element, and a traversal that is
// never advanced never invokes the successor.
//
// When next returns ErrFinished the element whose successor was the end
// is still delivered, and the traversal is exhausted afterwards.  A
// failed successor leaves the chain without an input element, so the
// traversal is likewise exhausted after a failure.
func Successors[T any](first T, next SuccessorFunc[T]) Sequence[T] {
	return &successorSequence[T]{first: first, next: next}
}

type successorSequence[T any] struct {
	first T
	next  SuccessorFunc[T]

	started bool
	done    bool
	pending T
	cur     T
	err     error
}

func (s *successorSequence[T]) Iterator() Iterator[T] {
	return &successorSequence[T]{first: s.first, next: s.next}
}

func (s *successorSequence[T]) Next(ctx context.Context) bool {
	s.err = nil
	if s.done {
		return false
	}
	if err := ctx.Err(); err != nil {
		s.err = err
		return false
	}

	pending := s.pending
	if !s.started {
		s.started = true
		pending = s.first
	}

	v, err := s.next(pending)
	switch {
	case err == nil:
		s.pending = v
	case errors.Is(err, ErrFinished):
		s.done = true
	default:
		s.done = true
		s.err = err
		return false
	}

	s.cur = pending
	return true
}

func (s *successorSequence[T]) Get() T {
	return s.cur
}

func (s *successorSequence[T]) Error() error {
	return s.err
}
