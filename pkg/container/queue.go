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

package container

import (
	"github.com/ordtree/bst/pkg/errs"
	"github.com/phf/go-queue/queue"
)

// Queue is a 'First-In-First-Out' container.
type Queue[T any] struct {
	dq *queue.Queue
}

// NewQueue returns an empty Queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{dq: queue.New()}
}

// Enqueue appends an item at the tail.
func (q *Queue[T]) Enqueue(item T) {
	q.dq.PushBack(item)
}

// Dequeue takes the oldest item out. It panics if the queue is empty.
func (q *Queue[T]) Dequeue() T {
	if q.dq.Len() == 0 {
		panic(errs.ErrContainerEmpty.FastGenByArgs("queue"))
	}
	return q.dq.PopFront().(T)
}

// Front returns the oldest item without removing it.
func (q *Queue[T]) Front() T {
	if q.dq.Len() == 0 {
		panic(errs.ErrContainerEmpty.FastGenByArgs("queue"))
	}
	return q.dq.Front().(T)
}

// IsEmpty returns true if there is no item in the queue.
func (q *Queue[T]) IsEmpty() bool {
	return q.dq.Len() == 0
}

// Len returns the number of items.
func (q *Queue[T]) Len() int {
	return q.dq.Len()
}
