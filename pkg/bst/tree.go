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

// Package bst implements an unbalanced in-memory binary search tree.
//
// The shape of the tree is a direct function of insertion order: no rotation
// or rebalancing is ever performed, so inserting sorted input produces a
// chain. Every value in the left subtree of a node is strictly less than the
// node's value, every value in the right subtree is greater or equal, which
// means duplicates are kept and always routed to the right.
//
// Mutations and the non-recursive traversals never recurse, so a degenerate
// tree of any depth is handled without growing the goroutine stack. The
// *Recursive traversal variants exist for comparison and produce the same
// sequences.
//
// A Tree is not safe for concurrent use.
package bst

import (
	"github.com/ordtree/bst/pkg/container"
	"github.com/ordtree/bst/pkg/errs"
	"golang.org/x/exp/constraints"
)

// CompareFunc returns a negative number if a < b, zero if a == b and a
// positive number if a > b.
//
// It must provide a strict total order, the tree does not check it.
type CompareFunc[T any] func(a, b T) int

// node is an internal node in a tree. It is owned by exactly one slot, either
// a child slot of its parent or the root slot of the tree.
type node[T any] struct {
	value       T
	left, right *node[T]
}

// Tree is an unbalanced binary search tree.
type Tree[T any] struct {
	root *node[T]
	cmp  CompareFunc[T]
}

// New creates an empty tree ordered by cmp.
func New[T any](cmp CompareFunc[T]) *Tree[T] {
	if cmp == nil {
		panic(errs.ErrNilCompareFunc.FastGenByArgs())
	}
	return &Tree[T]{cmp: cmp}
}

// NewOrdered creates an empty tree using the natural order of T.
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	return New(Compare[T])
}

// Compare is the CompareFunc of the natural order.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Insert adds value to the tree. Equal values are kept and go to the right of
// the first equal node met on the way down.
func (t *Tree[T]) Insert(value T) {
	slot := &t.root
	for *slot != nil {
		if t.cmp(value, (*slot).value) < 0 {
			slot = &(*slot).left
		} else {
			slot = &(*slot).right
		}
	}
	*slot = &node[T]{value: value}
}

// find returns the slot holding the first node equal to value on the descent
// path, or an empty slot where value would be attached.
func (t *Tree[T]) find(value T) **node[T] {
	slot := &t.root
	for *slot != nil {
		c := t.cmp(value, (*slot).value)
		if c == 0 {
			return slot
		}
		if c < 0 {
			slot = &(*slot).left
		} else {
			slot = &(*slot).right
		}
	}
	return slot
}

// Find looks for value and returns the stored equal value. The second result
// is false if the tree holds no such value.
func (t *Tree[T]) Find(value T) (_ T, _ bool) {
	if n := *t.find(value); n != nil {
		return n.value, true
	}
	return
}

// Has returns true if the tree holds a value equal to value.
func (t *Tree[T]) Has(value T) bool {
	return *t.find(value) != nil
}

// Remove removes one node equal to value, the first one met on the descent,
// and reports whether anything was removed. A node with two children takes
// the value of its in-order successor, which is then unlinked from the right
// subtree instead.
func (t *Tree[T]) Remove(value T) bool {
	slot := t.find(value)
	n := *slot
	if n == nil {
		return false
	}
	switch {
	case n.left == nil:
		*slot = n.right
	case n.right == nil:
		*slot = n.left
	default:
		succ := minSlot(&n.right)
		n.value = (*succ).value
		// The successor has no left child.
		*succ = (*succ).right
	}
	return true
}

// minSlot returns the slot of the leftmost node below a non-empty slot.
func minSlot[T any](slot **node[T]) **node[T] {
	for (*slot).left != nil {
		slot = &(*slot).left
	}
	return slot
}

// Min returns the smallest value in the tree.
func (t *Tree[T]) Min() (_ T, _ bool) {
	if t.root == nil {
		return
	}
	return (*minSlot(&t.root)).value, true
}

// Max returns the largest value in the tree.
func (t *Tree[T]) Max() (_ T, _ bool) {
	n := t.root
	if n == nil {
		return
	}
	for n.right != nil {
		n = n.right
	}
	return n.value, true
}

// Size returns the number of values in the tree. It walks the whole tree on
// every call.
func (t *Tree[T]) Size() int {
	size := 0
	t.preOrder(func(*node[T]) bool {
		size++
		return true
	})
	return size
}

// Height returns the number of nodes on the longest root-to-leaf path.
// An empty tree has height 0 and a single node has height 1.
func (t *Tree[T]) Height() int {
	if t.root == nil {
		return 0
	}
	height := 0
	q := container.NewQueue[*node[T]]()
	q.Enqueue(t.root)
	for !q.IsEmpty() {
		height++
		for width := q.Len(); width > 0; width-- {
			n := q.Dequeue()
			if n.left != nil {
				q.Enqueue(n.left)
			}
			if n.right != nil {
				q.Enqueue(n.right)
			}
		}
	}
	return height
}

// IsEmpty returns true if the tree holds no value.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Clear drops every value.
func (t *Tree[T]) Clear() {
	t.root = nil
}
