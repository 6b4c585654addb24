package Queues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayQueue_Empty(t *testing.T) {
	assert := assert.New(t)
	q := MakeArrayQueue[int](0)
	assert.True(q.Empty())
	assert.Equal(uint(0), q.Size())
	assert.Equal(0, q.Peek())
	_, err := q.Pop()
	var empty *EmptyQueueError
	assert.ErrorAs(err, &empty)
}

func TestArrayQueue_FIFO(t *testing.T) {
	for _, initCap := range []uint{0, 1, 2, 7} {
		q := MakeArrayQueue[int](initCap)
		for i := 0; i < 100; i++ {
			q.Push(i)
		}
		require.Equal(t, uint(100), q.Size())
		for i := 0; i < 100; i++ {
			require.Equal(t, i, q.Peek())
			v, err := q.Pop()
			require.NoError(t, err)
			require.Equal(t, i, v)
		}
		assert.True(t, q.Empty())
	}
}

// Interleaved pushes and pops move head past tail before the queue grows.
func TestArrayQueue_WrapAround(t *testing.T) {
	q := MakeArrayQueue[int](4)
	next, want := 0, 0
	for round := 0; round < 50; round++ {
		for j := 0; j < round%5+1; j++ {
			q.Push(next)
			next++
		}
		for j := 0; j < round%4; j++ {
			v, err := q.Pop()
			require.NoError(t, err)
			require.Equal(t, want, v)
			want++
		}
	}
	require.Equal(t, uint(next-want), q.Size())
	for !q.Empty() {
		v, _ := q.Pop()
		require.Equal(t, want, v)
		want++
	}
	assert.Equal(t, next, want)
}

func TestArrayQueue_ShrinkClear(t *testing.T) {
	assert := assert.New(t)
	q := MakeArrayQueue[int](64)
	for i := 0; i < 10; i++ {
		q.Push(i)
	}
	for j := 0; j < 3; j++ {
		q.Pop()
	}
	q.Shrink()
	assert.Equal(uint(7), q.Size())
	q.Push(10)
	q.Push(11)
	for i := 3; i < 12; i++ {
		v, err := q.Pop()
		assert.NoError(err)
		assert.Equal(i, v)
	}
	q.Push(1)
	q.Clear()
	assert.True(q.Empty())
	q.Push(2)
	assert.Equal(2, q.Peek())
}
