// Copyright 2026 TiKV Project Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package container provides the LIFO and FIFO containers used to drive
// iterative tree walks. Both are backed by a ring-buffer deque and are not
// safe for concurrent use.
package container

import (
	"github.com/ordtree/bst/pkg/errs"
	"github.com/phf/go-queue/queue"
)

// Stack is a 'Last-In-First-Out' container.
type Stack[T any] struct {
	dq *queue.Queue
}

// NewStack returns an empty Stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{dq: queue.New()}
}

// Push puts an item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.dq.PushBack(item)
}

// Pop takes the top item out. It panics if the stack is empty, callers
// must check IsEmpty first.
func (s *Stack[T]) Pop() T {
	if s.dq.Len() == 0 {
		panic(errs.ErrContainerEmpty.FastGenByArgs("stack"))
	}
	return s.dq.PopBack().(T)
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() T {
	if s.dq.Len() == 0 {
		panic(errs.ErrContainerEmpty.FastGenByArgs("stack"))
	}
	return s.dq.Back().(T)
}

// IsEmpty returns true if there is no item in the stack.
func (s *Stack[T]) IsEmpty() bool {
	return s.dq.Len() == 0
}

// Len returns the number of items.
func (s *Stack[T]) Len() int {
	return s.dq.Len()
}
