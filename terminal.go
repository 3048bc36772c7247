package fallible

import (
	"context"
)

// DefaultSizeHint is used by Collect for the initial allocation when the
// underlying iterator cannot provide size information and a size hint has
// not been provided.
var DefaultSizeHint uint = 100

type collectOptions struct {
	sizeHint uint
}

// CollectOption customizes how Collect operates.
type CollectOption func(o *collectOptions)

// The SizeHint option provides Collect with a guideline regarding the
// number of elements there are to collect.  This is primarily used with
// iterators that cannot provide the information themselves.
//
// If not specified and the iterator cannot provide the information, the
// default value DefaultSizeHint is used.
func SizeHint(hint uint) CollectOption {
	return func(o *collectOptions) {
		o.sizeHint = hint
	}
}

// ForEach drains s, invoking body for each element in order.  It returns
// nil once the sequence ends, or the first failure, at which point
// iteration stops;  elements delivered to body before the failure are not
// retracted.
//
// The body cannot break out of the loop early;  stopping before the end
// of the sequence requires shaping the sequence first (for example with
// Prefix).
func ForEach[T any](ctx context.Context, s Sequence[T], body func(T)) error {
	it := s.Iterator()
	for {
		if it.Next(ctx) {
			body(it.Get())
			continue
		}
		return it.Error()
	}
}

// Collect drains s into a slice, preserving order.  On the first failure
// the partially built slice is discarded and the failure returned;  a
// successful collection of an empty sequence returns an empty, non-nil
// slice.
//
// The initial allocation uses the iterator's Size if it implements the
// Size interface, otherwise the SizeHint option or DefaultSizeHint.
func Collect[T any](ctx context.Context, s Sequence[T], opts ...CollectOption) ([]T, error) {
	co := collectOptions{
		sizeHint: DefaultSizeHint,
	}
	for _, opt := range opts {
		opt(&co)
	}

	it := s.Iterator()
	if sh, ok := it.(Size[T]); ok {
		co.sizeHint = sh.Size()
	}

	out := make([]T, 0, co.sizeHint)
	for {
		if it.Next(ctx) {
			out = append(out, it.Get())
			continue
		}
		if err := it.Error(); err != nil {
			return nil, err
		}
		return out, nil
	}
}

// ReduceFunc is a generic function that folds an element into an
// accumulated value
type ReduceFunc[A, T any] func(A, T) A

// Reduce drains s, folding each element into an accumulator seeded with
// init.  On a failure the partial accumulation is discarded:  Reduce
// returns init and the failure.
func Reduce[T, A any](ctx context.Context, s Sequence[T], init A, f ReduceFunc[A, T]) (A, error) {
	acc := init
	it := s.Iterator()
	for {
		if it.Next(ctx) {
			acc = f(acc, it.Get())
			continue
		}
		if err := it.Error(); err != nil {
			return init, err
		}
		return acc, nil
	}
}
