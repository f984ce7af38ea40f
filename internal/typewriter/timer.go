package typewriter

import (
	"container/heap"
	"time"
)

// timerQueue replaces wall-clock single-shot timers with a virtual clock.
// Tasks fire from advance in due order; a task scheduled while firing is
// timed from its parent's due time, so a chain keeps exact spacing no matter
// how coarse the advance steps are.
type timerQueue struct {
	now   time.Duration
	seq   uint64
	tasks taskHeap
}

type timerTask struct {
	due time.Duration
	seq uint64
	fn  func()
}

type taskHeap []timerTask

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].due == h[j].due {
		return h[i].seq < h[j].seq
	}
	return h[i].due < h[j].due
}
func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *taskHeap) Push(x any)   { *h = append(*h, x.(timerTask)) }
func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = timerTask{}
	*h = old[:n-1]
	return t
}

func (q *timerQueue) schedule(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	q.seq++
	heap.Push(&q.tasks, timerTask{due: q.now + delay, seq: q.seq, fn: fn})
}

// advance moves the clock forward by d and runs every task due by then. It
// returns the number of tasks fired.
func (q *timerQueue) advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := q.now + d
	fired := 0
	for len(q.tasks) > 0 && q.tasks[0].due <= target {
		t := heap.Pop(&q.tasks).(timerTask)
		q.now = t.due
		t.fn()
		fired++
	}
	q.now = target
	return fired
}

func (q *timerQueue) pending() int { return len(q.tasks) }
