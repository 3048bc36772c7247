package fallible

import (
	"context"
	"fmt"
)

// Functions complying with the ErrorHandler prototype can be used to
// observe the failures a SkipFailures view discards.
//
// The function should return true if the view should keep going, or false
// to end it.  The handler can stash the error for use by the pipeline's
// caller.
type ErrorHandler func(err error) bool

type skipOptions struct {
	onError ErrorHandler
}

// SkipOption customizes how a SkipFailures view operates.
type SkipOption func(o *skipOptions)

// WithErrorHandler installs a handler which is called with every failure
// the view discards.  The default is to discard silently.
func WithErrorHandler(handler ErrorHandler) SkipOption {
	return func(o *skipOptions) {
		o.onError = handler
	}
}

// SkipFailures returns a never-failing view of s:  each advance pulls the
// underlying iterator until it produces a value or ends, discarding any
// failures in between.  The relative order of the surviving values is
// preserved.
//
// Note the inherent risk:  a source that produces an unbounded run of
// consecutive failures causes an advance of this view to spin without
// returning.  That is accepted behaviour;  a caller that needs a bound
// can install an ErrorHandler and stop the view itself.  As the one
// exception, cancellation of the context ends the view instead of
// spinning on the cancelled source.
func SkipFailures[T any](s Sequence[T], opts ...SkipOption) Sequence[T] {
	so := skipOptions{}
	for _, opt := range opts {
		opt(&so)
	}
	return &skipSequence[T]{base: s, opts: so}
}

type skipSequence[T any] struct {
	base Sequence[T]
	opts skipOptions

	src  Iterator[T]
	done bool
	cur  T
}

func (s *skipSequence[T]) Iterator() Iterator[T] {
	return &skipSequence[T]{base: s.base, opts: s.opts}
}

func (s *skipSequence[T]) Next(ctx context.Context) bool {
	if s.done {
		return false
	}
	if s.src == nil {
		s.src = s.base.Iterator()
	}

	for {
		if s.src.Next(ctx) {
			s.cur = s.src.Get()
			return true
		}

		err := s.src.Error()
		if err == nil {
			s.done = true
			return false
		}

		if s.opts.onError != nil && !s.opts.onError(err) {
			s.done = true
			return false
		}
		if ctx.Err() != nil {
			s.done = true
			return false
		}
	}
}

func (s *skipSequence[T]) Get() T {
	return s.cur
}

func (s *skipSequence[T]) Error() error {
	return nil
}

// Must returns a never-failing view of s that treats any failure as an
// unrecoverable fault:  the failing advance panics.  Use it only when
// failures have been proven impossible, or when there is nothing sensible
// to do but crash.
func Must[T any](s Sequence[T]) Sequence[T] {
	return &mustSequence[T]{base: s}
}

type mustSequence[T any] struct {
	base Sequence[T]

	src Iterator[T]
	cur T
}

func (s *mustSequence[T]) Iterator() Iterator[T] {
	return &mustSequence[T]{base: s.base}
}

func (s *mustSequence[T]) Next(ctx context.Context) bool {
	if s.src == nil {
		s.src = s.base.Iterator()
	}

	if s.src.Next(ctx) {
		s.cur = s.src.Get()
		return true
	}

	if err := s.src.Error(); err != nil {
		panic(fmt.Sprintf("fallible: unexpected failure in Must sequence: %v", err))
	}
	return false
}

func (s *mustSequence[T]) Get() T {
	return s.cur
}

func (s *mustSequence[T]) Error() error {
	return nil
}
