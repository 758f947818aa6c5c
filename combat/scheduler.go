package combat

import "container/heap"

// TimerKey identifies a scheduled continuation. Scheduling a key that is
// already pending replaces the old entry.
type TimerKey struct {
	Owner   any
	Purpose string
}

type timer struct {
	key      TimerKey
	deadline float64
	seq      uint64
	fn       func()
	index    int
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline == h[j].deadline {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline < h[j].deadline
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Scheduler owns the simulation clock and resolves due timers in deadline
// order. It replaces blocking waits: every delay is a timer entry.
type Scheduler struct {
	now   float64
	seq   uint64
	queue timerHeap
	byKey map[TimerKey]*timer
}

func NewScheduler() *Scheduler {
	return &Scheduler{byKey: make(map[TimerKey]*timer)}
}

func (s *Scheduler) Now() float64 {
	return s.now
}

// After runs fn once delay seconds from now.
func (s *Scheduler) After(key TimerKey, delay float64, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.Cancel(key)
	s.seq++
	t := &timer{key: key, deadline: s.now + delay, seq: s.seq, fn: fn}
	heap.Push(&s.queue, t)
	s.byKey[key] = t
}

// Cancel removes a pending timer. It reports whether one was pending.
func (s *Scheduler) Cancel(key TimerKey) bool {
	t, ok := s.byKey[key]
	if !ok {
		return false
	}
	heap.Remove(&s.queue, t.index)
	delete(s.byKey, key)
	return true
}

func (s *Scheduler) Pending(key TimerKey) bool {
	_, ok := s.byKey[key]
	return ok
}

// Deadline returns when a pending timer will fire.
func (s *Scheduler) Deadline(key TimerKey) (float64, bool) {
	t, ok := s.byKey[key]
	if !ok {
		return 0, false
	}
	return t.deadline, true
}

func (s *Scheduler) Len() int {
	return len(s.queue)
}

// Advance moves the clock forward by dt and fires every timer whose deadline
// has been reached, including ones scheduled by callbacks during this pass.
// It returns the number of timers fired.
func (s *Scheduler) Advance(dt float64) int {
	if dt > 0 {
		s.now += dt
	}
	fired := 0
	for len(s.queue) > 0 && s.queue[0].deadline <= s.now {
		t := heap.Pop(&s.queue).(*timer)
		if s.byKey[t.key] == t {
			delete(s.byKey, t.key)
		}
		fired++
		t.fn()
	}
	return fired
}
