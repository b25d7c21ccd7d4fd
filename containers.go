package aoc

import (
	"container/heap"
)

type Stack[T any] struct {
	s []T
}

func (s *Stack[T]) Push(v T) {
	s.s = append(s.s, v)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	v := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

func (s *Stack[T]) While(f func(T) bool) {
	for {
		v, ok := s.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}

// PQI is an item in a PQ. V is the payload and P its priority.
type PQI[T any] struct {
	V   T
	P   int
	seq uint64
}

// PQ is a min priority queue. Items with equal priority pop in the order they
// were pushed.
type PQ[T any] struct {
	pq  pq[T]
	seq uint64
}

func (pq *PQ[T]) Push(v *PQI[T]) {
	v.seq = pq.seq
	pq.seq++
	heap.Push(&pq.pq, v)
}

// PushValue is shorthand for Push(&PQI[T]{V: v, P: p}).
func (pq *PQ[T]) PushValue(v T, p int) {
	pq.Push(&PQI[T]{V: v, P: p})
}

func (pq *PQ[T]) Pop() *PQI[T] {
	return heap.Pop(&pq.pq).(*PQI[T])
}

func (pq *PQ[T]) Peek() *PQI[T] {
	return pq.pq[0]
}

func (pq *PQ[T]) Len() int {
	return pq.pq.Len()
}

type pq[T any] []*PQI[T]

func (pq pq[T]) Len() int { return len(pq) }

func (pq pq[T]) Less(i, j int) bool {
	if pq[i].P != pq[j].P {
		return pq[i].P < pq[j].P
	}
	return pq[i].seq < pq[j].seq
}

func (pq pq[T]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *pq[T]) Push(x any) {
	*pq = append(*pq, x.(*PQI[T]))
}

func (pq *pq[T]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak

	*pq = old[0 : n-1]
	return item
}

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{
		q: in,
	}
}

type Queue[T any] struct {
	q []T
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	if len(q.q) == 0 {
		var zero T
		return zero, false
	}
	v := q.q[0]
	q.q = q.q[1:]
	return v, true
}

func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}
