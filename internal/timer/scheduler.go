// internal/timer/scheduler.go
package timer

import (
	"container/heap"

	"go-wild-friends/internal/types"
)

// Handle идентифицирует запланированный вызов. Нулевой Handle ничего не значит.
type Handle uint64

type task struct {
	handle Handle
	owner  types.EntityID
	due    float64
	seq    uint64
	fn     func()
	index  int
}

type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Scheduler откладывает вызовы на игровое время. Вызовы с одинаковым
// сроком выполняются в порядке планирования. Не потокобезопасен: живет
// внутри тика.
type Scheduler struct {
	now   float64
	seq   uint64
	next  Handle
	queue taskQueue
	byID  map[Handle]*task
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		next: 1,
		byID: make(map[Handle]*task),
	}
}

// Now возвращает текущее игровое время.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Schedule планирует fn через delay секунд. owner (может быть 0) позволяет
// снять все вызовы сущности через CancelOwner.
func (s *Scheduler) Schedule(delay float64, owner types.EntityID, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	h := s.next
	s.next++
	s.seq++
	t := &task{handle: h, owner: owner, due: s.now + delay, seq: s.seq, fn: fn}
	heap.Push(&s.queue, t)
	s.byID[h] = t
	return h
}

// Cancel снимает вызов. Возвращает false, если он уже выполнен или снят.
func (s *Scheduler) Cancel(h Handle) bool {
	t, ok := s.byID[h]
	if !ok {
		return false
	}
	heap.Remove(&s.queue, t.index)
	delete(s.byID, h)
	return true
}

// CancelOwner снимает все вызовы сущности и возвращает их число.
func (s *Scheduler) CancelOwner(owner types.EntityID) int {
	var handles []Handle
	for _, t := range s.queue {
		if t.owner == owner {
			handles = append(handles, t.handle)
		}
	}
	for _, h := range handles {
		s.Cancel(h)
	}
	return len(handles)
}

// Pending возвращает число ожидающих вызовов.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Advance продвигает время на dt и выполняет все наступившие вызовы.
// Вызов может планировать новые; если их срок тоже наступил, они
// выполнятся в этом же Advance.
func (s *Scheduler) Advance(dt float64) {
	if dt > 0 {
		s.now += dt
	}
	for len(s.queue) > 0 && s.queue[0].due <= s.now {
		t := heap.Pop(&s.queue).(*task)
		delete(s.byID, t.handle)
		t.fn()
	}
}

// Clear снимает все вызовы, не сбрасывая время.
func (s *Scheduler) Clear() {
	s.queue = nil
	s.byID = make(map[Handle]*task)
}
