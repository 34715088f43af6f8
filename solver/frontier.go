package solver

import (
	"container/heap"

	"github.com/beka-birhanu/maze-solver-api/maze"
)

// frontier is the pluggable ordering discipline behind the shared expansion
// loop: FIFO for breadth-first, LIFO for depth-first, and a priority queue
// for best-first. The priority argument is ignored by the unordered
// disciplines.
type frontier interface {
	push(p maze.Position, priority int)
	pop() (maze.Position, bool)
}

// fifoFrontier expands cells in discovery order.
type fifoFrontier struct {
	queue []maze.Position
}

func (f *fifoFrontier) push(p maze.Position, _ int) {
	f.queue = append(f.queue, p)
}

func (f *fifoFrontier) pop() (maze.Position, bool) {
	if len(f.queue) == 0 {
		return maze.Position{}, false
	}
	p := f.queue[0]
	f.queue = f.queue[1:]
	return p, true
}

// lifoFrontier expands the most recently discovered cell first.
type lifoFrontier struct {
	stack []maze.Position
}

func (f *lifoFrontier) push(p maze.Position, _ int) {
	f.stack = append(f.stack, p)
}

func (f *lifoFrontier) pop() (maze.Position, bool) {
	if len(f.stack) == 0 {
		return maze.Position{}, false
	}
	last := len(f.stack) - 1
	p := f.stack[last]
	f.stack = f.stack[:last]
	return p, true
}

// priorityFrontier expands the cell with the lowest priority value first.
// Equal priorities are broken by a monotonically increasing insertion
// counter, so the pop order is stable regardless of heap internals.
type priorityFrontier struct {
	items priorityQueue
	seq   int
}

func newPriorityFrontier() *priorityFrontier {
	f := &priorityFrontier{}
	heap.Init(&f.items)
	return f
}

func (f *priorityFrontier) push(p maze.Position, priority int) {
	f.seq++
	heap.Push(&f.items, &priorityQueueItem{pos: p, priority: priority, seq: f.seq})
}

func (f *priorityFrontier) pop() (maze.Position, bool) {
	if f.items.Len() == 0 {
		return maze.Position{}, false
	}
	item := heap.Pop(&f.items).(*priorityQueueItem)
	return item.pos, true
}

type priorityQueueItem struct {
	pos      maze.Position
	priority int
	seq      int
}

type priorityQueue []*priorityQueueItem

func (q priorityQueue) Len() int { return len(q) }

func (q priorityQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].seq < q[j].seq
}

func (q priorityQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *priorityQueue) Push(x any) {
	*q = append(*q, x.(*priorityQueueItem))
}

func (q *priorityQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
