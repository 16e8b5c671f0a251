package algo_test

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safestride/routing/router/algo"
)

func newQueue(priorities ...float64) (algo.PriorityQueue, []*algo.Item) {
	pq := make(algo.PriorityQueue, 0, len(priorities))
	items := make([]*algo.Item, len(priorities))
	for i, p := range priorities {
		items[i] = &algo.Item{Value: i, Priority: p}
		heap.Push(&pq, items[i])
	}
	return pq, items
}

// assertIndexes checks that every queued item knows its heap slot.
func assertIndexes(t *testing.T, pq algo.PriorityQueue) {
	t.Helper()
	for i, item := range pq {
		assert.Equal(t, i, item.Index, "item %d", item.Value)
	}
}

func popAll(pq *algo.PriorityQueue) []int {
	values := make([]int, 0, pq.Len())
	for pq.Len() > 0 {
		values = append(values, heap.Pop(pq).(*algo.Item).Value)
	}
	return values
}

func TestPriorityQueuePopOrder(t *testing.T) {
	pq, _ := newQueue(0.7, 0.2, 1.5, 0.2, 0)
	assertIndexes(t, pq)
	// equal priorities come out in either order
	values := popAll(&pq)
	assert.Equal(t, 4, values[0])
	assert.ElementsMatch(t, []int{1, 3}, values[1:3])
	assert.Equal(t, []int{0, 2}, values[3:])
}

func TestPriorityQueuePopDetachesItem(t *testing.T) {
	pq, items := newQueue(3, 1, 2)
	popped := heap.Pop(&pq).(*algo.Item)
	require.Same(t, items[1], popped)
	assert.Equal(t, -1, popped.Index)
	assert.Equal(t, 2, pq.Len())
	assertIndexes(t, pq)
	for _, item := range pq {
		assert.NotSame(t, popped, item)
	}
	// the search treats a negative index as "no longer queued"
	assert.GreaterOrEqual(t, items[0].Index, 0)
	assert.GreaterOrEqual(t, items[2].Index, 0)
}

func TestPriorityQueueDecreaseKey(t *testing.T) {
	pq, items := newQueue(0.9, 0.4, 0.6, 0.8)
	items[3].Priority = 0.1
	heap.Fix(&pq, items[3].Index)
	assertIndexes(t, pq)
	assert.Equal(t, 0, items[3].Index)
	assert.Equal(t, []int{3, 1, 2, 0}, popAll(&pq))
}

func TestPriorityQueueIncreaseKey(t *testing.T) {
	pq, items := newQueue(0.1, 0.4, 0.6)
	items[0].Priority = 2
	heap.Fix(&pq, items[0].Index)
	assertIndexes(t, pq)
	assert.Equal(t, []int{1, 2, 0}, popAll(&pq))
}

func TestPriorityQueueInterleavedPushPop(t *testing.T) {
	pq, _ := newQueue(0.5, 0.3)
	assert.Equal(t, 1, heap.Pop(&pq).(*algo.Item).Value)
	heap.Push(&pq, &algo.Item{Value: 7, Priority: 0.4})
	heap.Push(&pq, &algo.Item{Value: 8, Priority: 0.6})
	assertIndexes(t, pq)
	assert.Equal(t, []int{7, 0, 8}, popAll(&pq))
	assert.Zero(t, pq.Len())
}
