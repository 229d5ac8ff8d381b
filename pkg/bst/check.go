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

import (
	"github.com/ordtree/bst/pkg/container"
	"github.com/ordtree/bst/pkg/errs"
)

// bounds is the interval a subtree must fit in: values are >= lower and
// < upper. A nil bound is unbounded.
type bounds[T any] struct {
	n            *node[T]
	lower, upper *node[T]
}

// Check validates the ordering of every node against all of its ancestors.
func (t *Tree[T]) Check() error {
	s := container.NewStack[bounds[T]]()
	if t.root != nil {
		s.Push(bounds[T]{n: t.root})
	}
	for !s.IsEmpty() {
		b := s.Pop()
		if b.lower != nil && t.cmp(b.n.value, b.lower.value) < 0 {
			return errs.ErrTreeOrderViolated.FastGenByArgs(b.n.value, b.lower.value)
		}
		if b.upper != nil && t.cmp(b.n.value, b.upper.value) >= 0 {
			return errs.ErrTreeOrderViolated.FastGenByArgs(b.n.value, b.upper.value)
		}
		if b.n.right != nil {
			s.Push(bounds[T]{n: b.n.right, lower: b.n, upper: b.upper})
		}
		if b.n.left != nil {
			s.Push(bounds[T]{n: b.n.left, lower: b.lower, upper: b.n})
		}
	}
	return nil
}
