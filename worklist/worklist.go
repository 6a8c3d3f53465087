// Package worklist provides the minimal FIFO and LIFO containers used by
// every search routine and by the exploration driver.
//
// Both containers are plain slices under the hood and are NOT safe for
// concurrent use; each search owns its own worklist for the duration of a call.
//
// Complexity:
//
//   - Push/Enqueue: O(1) amortized
//   - Pop/Dequeue:  O(1)
//   - Memory:       O(n) for n pending items
package worklist

// Queue is a first-in, first-out sequence.
// The zero value is an empty queue ready to use.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty queue with room for capHint items.
func NewQueue[T any](capHint int) *Queue[T] {
	if capHint < 0 {
		capHint = 0
	}

	return &Queue[T]{items: make([]T, 0, capHint)}
}

// Enqueue appends v to the back of the queue.
func (q *Queue[T]) Enqueue(v T) {
	q.items = append(q.items, v)
}

// Dequeue removes and returns the front item.
// ok is false when the queue is empty.
func (q *Queue[T]) Dequeue() (v T, ok bool) {
	if q.head >= len(q.items) {
		return v, false
	}
	v = q.items[q.head]
	var zero T
	q.items[q.head] = zero // drop the reference for the GC
	q.head++

	// compact once the consumed prefix dominates the backing array
	if q.head > 32 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}

	return v, true
}

// Peek returns the front item without removing it.
func (q *Queue[T]) Peek() (v T, ok bool) {
	if q.head >= len(q.items) {
		return v, false
	}

	return q.items[q.head], true
}

// Len reports the number of pending items.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// Empty reports whether the queue holds no items.
func (q *Queue[T]) Empty() bool { return q.Len() == 0 }

// Stack is a last-in, first-out sequence.
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack with room for capHint items.
func NewStack[T any](capHint int) *Stack[T] {
	if capHint < 0 {
		capHint = 0
	}

	return &Stack[T]{items: make([]T, 0, capHint)}
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top item.
// ok is false when the stack is empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return v, false
	}
	v = s.items[n-1]
	var zero T
	s.items[n-1] = zero
	s.items = s.items[:n-1]

	return v, true
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}

	return s.items[len(s.items)-1], true
}

// Len reports the number of pending items.
func (s *Stack[T]) Len() int { return len(s.items) }

// Empty reports whether the stack holds no items.
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }
