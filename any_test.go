package fallible

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAnyIterator(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	base := Generate(0, func(s *int) (int, error) {
		v := *s
		*s = v + 1
		switch {
		case v == 1:
			return 0, errBadReading
		case v >= 3:
			return 0, ErrFinished
		}
		return v, nil
	})

	it := NewAnyIterator(base.Iterator())

	// erasure is a pure forwarding shim:  value, failure and end come
	// through exactly as the wrapped iterator produced them
	assert.True(it.Next(ctx))
	assert.Equal(0, it.Get())

	assert.False(it.Next(ctx))
	assert.ErrorIs(it.Error(), errBadReading)

	assert.True(it.Next(ctx))
	assert.Equal(2, it.Get())

	assert.False(it.Next(ctx))
	assert.NoError(it.Error())
}

// ErrFinished is reserved by the closure protocol:  a wrapped failure
// that wraps it is reported as the end of the sequence
func TestNewAnyIteratorReservesErrFinished(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	base := Generate(0, func(s *int) (int, error) {
		v := *s
		*s = v + 1
		if v == 1 {
			return 0, fmt.Errorf("giving up: %w", ErrFinished)
		}
		return v, nil
	})

	it := NewAnyIterator(base.Iterator())
	assert.True(it.Next(ctx))
	assert.Equal(0, it.Get())

	assert.False(it.Next(ctx))
	assert.NoError(it.Error())
}

func TestAnyIteratorFunc(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	n := 0
	it := AnyIteratorFunc(func(context.Context) (int, error) {
		if n >= 3 {
			return 0, ErrFinished
		}
		n++
		return n, nil
	})

	got := []int{}
	for it.Next(ctx) {
		got = append(got, it.Get())
	}
	assert.NoError(it.Error())
	assert.Equal([]int{1, 2, 3}, got)
}

func TestEmptyIterator(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	it := EmptyIterator[string]()
	assert.False(it.Next(ctx))
	assert.NoError(it.Error())
	assert.False(it.Next(ctx))
	assert.NoError(it.Error())
}

func TestEmptySequence(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	got, err := Collect(ctx, EmptySequence[int]())
	assert.NoError(err)
	assert.Empty(got)
}

func TestAnySequenceZeroValue(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	var s AnySequence[int]
	got, err := Collect(ctx, s)
	assert.NoError(err)
	assert.Empty(got)
}

func TestAnySequencePreservesSemantics(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	s := NewAnySequence(countingTo(0, 4))

	// AnySequence is storable and restartable like the wrapped recipe
	got1, err := Collect(ctx, s)
	assert.NoError(err)
	got2, err := Collect(ctx, s)
	assert.NoError(err)
	assert.Equal([]int{0, 1, 2, 3}, got1)
	assert.Equal(got1, got2)
}

func TestAnySequenceChaining(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	s := NewAnySequence(counting(0)).
		Filter(isEven).
		DropFirst(1).
		Prefix(3)

	got, err := Collect(ctx, s)
	assert.NoError(err)
	assert.Equal([]int{2, 4, 6}, got)
}

func TestAnySequenceFunc(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	s := AnySequenceFunc(func() Iterator[int] {
		return countingTo(5, 8).Iterator()
	})

	got, err := Collect(ctx, s)
	assert.NoError(err)
	assert.Equal([]int{5, 6, 7}, got)
}
