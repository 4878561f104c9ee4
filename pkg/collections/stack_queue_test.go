package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackLIFO(t *testing.T) {
	s := NewStack[int](0)
	assert.True(t, s.IsEmpty())
	s.Push(1)
	s.Push(2)
	s.Push(3)

	v, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = s.Pop()
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	s.Push(4)
	v, ok = s.Pop()
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	_, ok = s.Pop()
	assert.True(t, ok)
	assert.True(t, s.IsEmpty())

	_, ok = s.Pop()
	assert.False(t, ok)
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue[string](0)
	assert.True(t, q.IsEmpty())
	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")

	v, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	q.Enqueue("d")
	v, ok = q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "c", v)

	v, ok = q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "d", v)

	_, ok = q.Dequeue()
	assert.False(t, ok)
}

func TestQueueCompaction(t *testing.T) {
	q := NewQueue[int](0)
	for i := 0; i < 3000; i++ {
		q.Enqueue(i)
	}
	for i := 0; i < 2000; i++ {
		v, ok := q.Dequeue()
		assert.True(t, ok)
		assert.Equal(t, i, v)
	}
	q.Enqueue(99999)
	for i := 2000; i < 3000; i++ {
		v, ok := q.Dequeue()
		assert.True(t, ok)
		assert.Equal(t, i, v)
	}
	v, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, 99999, v)
}
