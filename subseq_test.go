package fallible

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDropFirst(t *testing.T) {
	tests := []struct {
		n    uint
		want []int
	}{
		{0, []int{0, 1, 2, 3, 4}},
		{2, []int{2, 3, 4}},
		{5, []int{}},
		{20, []int{}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			assert := assert.New(t)
			ctx := context.Background()

			got, err := Collect(ctx, DropFirst(countingTo(0, 5), tt.n))
			assert.NoError(err)
			assert.Equal(tt.want, got)
		})
	}
}

// dropping the first k elements and draining the rest, concatenated with
// the first k elements drained separately, reconstructs the original order
func TestDropFirstReconstructs(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	const k = 3
	s := countingTo(0, 10)

	head, err := Collect(ctx, Prefix(s, k))
	assert.NoError(err)
	tail, err := Collect(ctx, DropFirst(s, k))
	assert.NoError(err)

	full, err := Collect(ctx, s)
	assert.NoError(err)
	assert.Equal(full, append(head, tail...))
}

func TestDropFirstQuotaConsumedOnce(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	pulls := 0
	it := DropFirst(countingPulls(0, &pulls), 3).Iterator()

	assert.True(it.Next(ctx))
	assert.Equal(3, it.Get())
	assert.Equal(4, pulls)

	// later advances forward directly, with no further dropping
	assert.True(it.Next(ctx))
	assert.Equal(4, it.Get())
	assert.Equal(5, pulls)
}

func TestDropFirstFailureWhileDropping(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	// produces 0, failure, 2, 3, 4, ...
	base := Generate(0, func(s *int) (int, error) {
		v := *s
		*s = v + 1
		if v == 1 {
			return 0, errBadReading
		}
		return v, nil
	})

	it := DropFirst(base, 3).Iterator()

	// the failure met during the drop phase is surfaced, and counts
	// toward the quota
	assert.False(it.Next(ctx))
	assert.ErrorIs(it.Error(), errBadReading)

	// the next advance finishes the drop (discarding 2) and forwards 3
	assert.True(it.Next(ctx))
	assert.Equal(3, it.Get())
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		n    uint
		want []int
	}{
		{0, []int{}},
		{2, []int{0, 1}},
		{5, []int{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			assert := assert.New(t)
			ctx := context.Background()

			got, err := Collect(ctx, Prefix(countingTo(0, 3), tt.n))
			assert.NoError(err)
			assert.Equal(tt.want, got)
		})
	}
}

func TestPrefixBoundsInfiniteGenerator(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	pulls := 0
	got, err := Collect(ctx, Prefix(countingPulls(0, &pulls), 2))
	assert.NoError(err)
	assert.Equal([]int{0, 1}, got)

	// the base is advanced exactly twice, even though Collect kept
	// advancing until it saw the end
	assert.Equal(2, pulls)
}

func TestPrefixFailureCountsAgainstQuota(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	base := Generate(0, func(s *int) (int, error) {
		v := *s
		*s = v + 1
		if v == 0 {
			return 0, errBadReading
		}
		return v, nil
	})

	it := Prefix(base, 2).Iterator()

	assert.False(it.Next(ctx))
	assert.ErrorIs(it.Error(), errBadReading)

	assert.True(it.Next(ctx))
	assert.Equal(1, it.Get())

	// quota spent:  end, without pulling the base again
	assert.False(it.Next(ctx))
	assert.NoError(it.Error())
}
