package stack

import (
	"errors"
)

var (
	Underflow = errors.New("stack underflow error")
)

// Stack is a LIFO of T backed by a slice. The zero value is an empty stack.
type Stack[T any] struct {
	data []T
}

// New returns an empty stack with room for size elements.
func New[T any](size int) Stack[T] {
	return Stack[T]{data: make([]T, 0, size)}
}

// Push pushes an object onto the stack
func (s *Stack[T]) Push(obj T) {
	s.data = append(s.data, obj)
}

// Pop pops the top element from the stack or returns an Underflow error if there is None
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.data)
	if n == 0 {
		return zero, Underflow
	}
	top := s.data[n-1]
	// drop the reference so popped trees can be collected
	s.data[n-1] = zero
	s.data = s.data[:n-1]
	return top, nil
}

func (s *Stack[T]) Empty() bool {
	return len(s.data) == 0
}
