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

package bst

import "github.com/ordtree/bst/pkg/container"

// ItemIterator allows callers of the traversal methods to visit values one by
// one. When this function returns false, the traversal stops and the method
// returns immediately.
type ItemIterator[T any] func(item T) bool

type nodeIterator[T any] func(n *node[T]) bool

func (iter ItemIterator[T]) nodes() nodeIterator[T] {
	return func(n *node[T]) bool { return iter(n.value) }
}

// LevelOrder visits values breadth first, root first, left before right.
func (t *Tree[T]) LevelOrder(iter ItemIterator[T]) {
	t.levelOrder(iter.nodes())
}

// PreOrder visits each node before its left then right subtree.
func (t *Tree[T]) PreOrder(iter ItemIterator[T]) {
	t.preOrder(iter.nodes())
}

// PreOrderRecursive is PreOrder on the call stack.
func (t *Tree[T]) PreOrderRecursive(iter ItemIterator[T]) {
	preOrderRecursive(t.root, iter)
}

// InOrder visits values in ascending order.
func (t *Tree[T]) InOrder(iter ItemIterator[T]) {
	t.inOrder(iter.nodes())
}

// InOrderRecursive is InOrder on the call stack.
func (t *Tree[T]) InOrderRecursive(iter ItemIterator[T]) {
	inOrderRecursive(t.root, iter)
}

// PostOrder visits the left then right subtree of each node before the node.
func (t *Tree[T]) PostOrder(iter ItemIterator[T]) {
	t.postOrder(iter.nodes())
}

// PostOrderRecursive is PostOrder on the call stack.
func (t *Tree[T]) PostOrderRecursive(iter ItemIterator[T]) {
	postOrderRecursive(t.root, iter)
}

func (t *Tree[T]) levelOrder(iter nodeIterator[T]) {
	q := container.NewQueue[*node[T]]()
	if t.root != nil {
		q.Enqueue(t.root)
	}
	for !q.IsEmpty() {
		n := q.Dequeue()
		if !iter(n) {
			return
		}
		if n.left != nil {
			q.Enqueue(n.left)
		}
		if n.right != nil {
			q.Enqueue(n.right)
		}
	}
}

func (t *Tree[T]) preOrder(iter nodeIterator[T]) {
	s := container.NewStack[*node[T]]()
	if t.root != nil {
		s.Push(t.root)
	}
	for !s.IsEmpty() {
		n := s.Pop()
		if !iter(n) {
			return
		}
		// right first so that the left subtree is popped first
		if n.right != nil {
			s.Push(n.right)
		}
		if n.left != nil {
			s.Push(n.left)
		}
	}
}

func (t *Tree[T]) inOrder(iter nodeIterator[T]) {
	s := container.NewStack[*node[T]]()
	n := t.root
	for n != nil || !s.IsEmpty() {
		if n != nil {
			s.Push(n)
			n = n.left
			continue
		}
		n = s.Pop()
		if !iter(n) {
			return
		}
		n = n.right
	}
}

func (t *Tree[T]) postOrder(iter nodeIterator[T]) {
	s := container.NewStack[*node[T]]()
	var last *node[T]
	n := t.root
	for n != nil || !s.IsEmpty() {
		if n != nil {
			s.Push(n)
			n = n.left
			continue
		}
		top := s.Peek()
		if top.right != nil && top.right != last {
			n = top.right
			continue
		}
		s.Pop()
		if !iter(top) {
			return
		}
		last = top
	}
}

func preOrderRecursive[T any](n *node[T], iter ItemIterator[T]) bool {
	if n == nil {
		return true
	}
	return iter(n.value) &&
		preOrderRecursive(n.left, iter) &&
		preOrderRecursive(n.right, iter)
}

func inOrderRecursive[T any](n *node[T], iter ItemIterator[T]) bool {
	if n == nil {
		return true
	}
	return inOrderRecursive(n.left, iter) &&
		iter(n.value) &&
		inOrderRecursive(n.right, iter)
}

func postOrderRecursive[T any](n *node[T], iter ItemIterator[T]) bool {
	if n == nil {
		return true
	}
	return postOrderRecursive(n.left, iter) &&
		postOrderRecursive(n.right, iter) &&
		iter(n.value)
}
