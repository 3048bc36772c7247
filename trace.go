package fallible

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
)

// TraceFunc defines the function prototype of a tracing function.
// A custom function can be configured per view using WithTraceFunc.
type TraceFunc func(format string, v ...any)

// DefaultTracer is the global default trace function.  It prints messages
// to stderr.  DefaultTracer can be replaced by another tracing function to
// affect all traced sequences.
var DefaultTracer = func(format string, v ...any) {
	fmt.Fprintf(os.Stderr, "<TRACE> "+format+"\n", v...)
}

var traceCounter atomic.Uint32

type traceOptions struct {
	tracer TraceFunc
}

// TraceOption customizes a Trace view.
type TraceOption func(o *traceOptions)

// WithTraceFunc sets the trace function for the view.  If not used,
// messages go to DefaultTracer.
func WithTraceFunc(f TraceFunc) TraceOption {
	return func(o *traceOptions) {
		o.tracer = f
	}
}

// Trace returns a forwarding view of s that reports the outcome of every
// advance (value, failure or end) to the trace function.  Each traversal
// is tagged with a process-unique id so interleaved traversals can be told
// apart.  Element values are formatted with %v;  do not trace sequences of
// sensitive data.
func Trace[T any](s Sequence[T], opts ...TraceOption) Sequence[T] {
	to := traceOptions{}
	for _, opt := range opts {
		opt(&to)
	}
	return &traceSequence[T]{base: s, opts: to}
}

type traceSequence[T any] struct {
	base Sequence[T]
	opts traceOptions

	src Iterator[T]
	id  uint32
	cur T
	err error
}

func (s *traceSequence[T]) Iterator() Iterator[T] {
	return &traceSequence[T]{base: s.base, opts: s.opts}
}

func (s *traceSequence[T]) Next(ctx context.Context) bool {
	s.err = nil
	if s.src == nil {
		s.src = s.base.Iterator()
		s.id = traceCounter.Add(1)
		var zero T
		s.trace("(%T) start", zero)
	}

	if s.src.Next(ctx) {
		s.cur = s.src.Get()
		s.trace("value: %v", s.cur)
		return true
	}

	if err := s.src.Error(); err != nil {
		s.err = err
		s.trace("failure: %v", err)
		return false
	}

	s.trace("end")
	return false
}

func (s *traceSequence[T]) Get() T {
	return s.cur
}

func (s *traceSequence[T]) Error() error {
	return s.err
}

func (s *traceSequence[T]) trace(format string, v ...any) {
	f := s.opts.tracer
	if f == nil {
		f = DefaultTracer
	}

	args := append([]any{s.id}, v...)
	f("[iterator #%d] "+format, args...)
}
