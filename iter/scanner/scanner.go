// Package scanner implements a stream tokenizer iterator, and is the
// natively fallible source in this module:  read errors from the
// underlying stream surface as advance failures.
//
// The package makes use of the standard library bufio.Scanner to buffer
// and split data read from an io.Reader.  Scanner has a set of standard
// splitters for words, lines and runes and supports custom split
// functions as well.
package scanner

import (
	"context"
	"fmt"

	"github.com/jake-scott/go-fallible"
)

// Scanner is an interface defining a subset of the methods exposed by
// bufio.Scanner, and is here primarily to assist with unit testing.
type Scanner interface {
	Scan() bool
	Text() string
	Err() error
}

// Iterator wraps a bufio.Scanner to traverse over a stream of tokens
// such as words or lines read from an io.Reader.
//
// Iterator does not support the fallible.Size interface.  It is
// self-iterating:  as a fallible.Sequence it returns itself, since the
// underlying reader cannot be rewound.
//
// bufio.Scanner stops at its first error, so a scanner iterator surfaces
// at most one failure;  every advance after that failure reports the end
// of the sequence.
type Iterator struct {
	scanner Scanner
	done    bool
	err     error
}

// ErrTooManyTokens is surfaced in response to a panic in the
// scanner.Scan() method, the result of too many tokens being returned
// without the scanner advancing.
type ErrTooManyTokens struct {
	panicMessage string
	err          error
}

func (e ErrTooManyTokens) Error() string {
	if e.err == nil {
		return "too many tokens: " + e.panicMessage
	}
	return fmt.Sprintf("too many tokens: %s", e.err)
}

func (e ErrTooManyTokens) Unwrap() error {
	return e.err
}

// New returns an iterator that uses the provided scanner, usually a
// bufio.Scanner, to traverse through tokens such as words or lines from
// an io.Reader such as a file.
func New(scanner Scanner) *Iterator {
	return &Iterator{
		scanner: scanner,
	}
}

// Iterator returns the receiver, implementing the fallible.Sequence
// interface.
func (i *Iterator) Iterator() fallible.Iterator[string] {
	return i
}

// Next advances the iterator to the next token by calling
// Scanner.Scan().  It returns false when the input is exhausted, when the
// scanner reports a read error (surfaced via Error), or without advancing
// when the context is cancelled.  A panic in the scanner is recovered and
// surfaced as an ErrTooManyTokens failure.
func (i *Iterator) Next(ctx context.Context) (ret bool) {
	i.err = nil
	if i.done {
		return false
	}

	defer func() {
		switch err := recover().(type) {
		case nil:
		case error:
			i.done = true
			i.err = ErrTooManyTokens{err: err}
			ret = false
		default:
			i.done = true
			i.err = ErrTooManyTokens{panicMessage: fmt.Sprintf("%v", err)}
			ret = false
		}
	}()

	select {
	case <-ctx.Done():
		i.err = ctx.Err()
		return false
	default:
	}

	if i.scanner.Scan() {
		return true
	}

	// the scanner never resumes after returning false;  Err() is nil on
	// a clean end of input
	i.done = true
	i.err = i.scanner.Err()
	return false
}

// Get returns the most recent token returned by the scanner during a
// call to Next(), as a string.
func (i *Iterator) Get() string {
	return i.scanner.Text()
}

// Error returns the failure from the most recent call to Next():  the
// cancellation reason, the scanner's read error, or the recovered panic
// message.
func (i *Iterator) Error() error {
	return i.err
}
