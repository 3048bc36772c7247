// Package channel implements an iterator that reads a data stream from
// the supplied channel.  A channel iterator never fails except to report
// a cancelled context.
package channel

import (
	"context"

	"github.com/jake-scott/go-fallible"
)

// Iterator traverses the elements of type T from a channel, until the
// channel is closed.
//
// Iterator does not support the fallible.Size interface.  It is
// self-iterating:  as a fallible.Sequence it returns itself, since a
// channel can only be consumed once.
type Iterator[T any] struct {
	ch   <-chan T
	item *T
	err  error
}

// New returns an iterator that traverses the provided channel until it
// is closed.
func New[T any](ch <-chan T) *Iterator[T] {
	return &Iterator[T]{
		ch: ch,
	}
}

// Iterator returns the receiver, implementing the fallible.Sequence
// interface.  All traversals derived from the same channel iterator share
// the one underlying channel position.
func (i *Iterator[T]) Iterator() fallible.Iterator[T] {
	return i
}

// Next reads an item from the channel and stores the value, which can be
// retrieved using the Get() method.  Next returns true if an element was
// successfully read from the channel, or false if the channel was closed
// or the context was cancelled.
//
// Cancellation surfaces as a failure via Error();  the channel is not
// read on that call, so a later Next with a live context resumes where
// the stream left off.
func (i *Iterator[T]) Next(ctx context.Context) bool {
	i.err = nil
	ret := false

	select {
	case item, ok := <-i.ch:
		if ok {
			i.item = &item
			ret = true
		}

		// if ok is false, the read failed due to an empty closed channel
	case <-ctx.Done():
		i.err = ctx.Err()
	}

	return ret
}

// Get returns the value stored by the last successful Next method call,
// or the zero value of type T if Next has not been called.
func (i *Iterator[T]) Get() T {
	// return the zero value if called before Next()
	if i.item == nil {
		var ret T
		return ret
	}

	return *i.item
}

// Error returns the context expiry reason if any from the most recent
// call to Next, otherwise it returns nil.
func (i *Iterator[T]) Error() error {
	return i.err
}
