// Package fallible provides lazy, pull-based iteration where each step
// can fail.  It complements the non-failing iteration built in to the
// language (range loops, iter.Seq) with a pair of capability contracts
// whose advance operation has three outcomes:  a value, a failure, or
// the end of the sequence.
//
// Sources such as file readers or record decoders implement Iterator (and
// usually Sequence);  the combinators Map, Filter, CompactMap, DropFirst
// and Prefix compose them lazily;  terminal operations such as ForEach and
// Collect drain the result.  Nothing is evaluated until an iterator is
// advanced.
package fallible

import (
	"context"
)

// Iterator is a generic interface for one-directional traversal through
// a stream of items, where each traversal step may fail.
//
// Every call to Next has exactly one of three outcomes:
//   - Next returns true:  an element was produced and can be read with Get
//   - Next returns false and Error returns non-nil:  this step attempt
//     failed and produced no element.  A failure does not end the
//     sequence;  the caller may call Next again and gets a well defined
//     answer.  The iterators in this package advance past the failing
//     position rather than retrying it.
//   - Next returns false and Error returns nil:  the sequence is
//     exhausted.
//
// Error reflects only the most recent call to Next.
//
// An iterator owns its traversal state and must only be advanced from one
// goroutine at a time;  callers that need concurrent consumption must
// create independent iterators from a Sequence.
type Iterator[T any] interface {
	// Next advances the iterator to the next element.
	// Returns true if the iterator advanced, or false if the sequence
	// ended or this step failed (see Error() below)
	Next(ctx context.Context) bool

	// Get returns the element produced by the last successful Next call
	Get() T

	// Error returns a non-nil value if the most recent Next() call failed
	Error() error
}

// Sequence is an immutable recipe that can manufacture fresh iterators on
// demand.  Iterator() must be O(1), must not evaluate any element and must
// have no side effects beyond allocation.
//
// A type may satisfy both Sequence and Iterator at once;  self-iterating
// sources such as channel and scanner iterators return themselves.
// Iterators obtained from separate Iterator() calls never share traversal
// state, so a Sequence value may safely be used from several goroutines to
// spawn independent traversals.
type Sequence[T any] interface {
	Iterator() Iterator[T]
}

// Size is an interface that can be implemented by an iterator that
// knows the number of elements in the collection when it is initialized
type Size[T any] interface {
	Size() uint
}
