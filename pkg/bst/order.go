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
	"strings"

	"github.com/ordtree/bst/pkg/errs"
)

// Order is a traversal order.
type Order int

// Traversal orders.
const (
	LevelOrder Order = iota
	PreOrder
	InOrder
	PostOrder
)

var orderToName = map[Order]string{
	LevelOrder: "level-order",
	PreOrder:   "pre-order",
	InOrder:    "in-order",
	PostOrder:  "post-order",
}

// Orders lists every traversal order.
var Orders = []Order{LevelOrder, PreOrder, InOrder, PostOrder}

func (o Order) String() string {
	if name, ok := orderToName[o]; ok {
		return name
	}
	return "unknown"
}

// ParseOrder accepts the names returned by Order.String as well as their short
// forms: "level", "pre", "in" and "post". The match is case insensitive.
func ParseOrder(s string) (Order, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimSuffix(strings.TrimSuffix(name, "order"), "-")
	switch name {
	case "level", "bfs":
		return LevelOrder, nil
	case "pre":
		return PreOrder, nil
	case "in":
		return InOrder, nil
	case "post":
		return PostOrder, nil
	}
	return 0, errs.ErrUnknownOrder.FastGenByArgs(s)
}

// Traverse walks the tree in the given order. When recursive is set the
// depth-first orders run on the call stack. Level order only has the queue
// based form.
func (t *Tree[T]) Traverse(order Order, recursive bool, iter ItemIterator[T]) error {
	switch order {
	case LevelOrder:
		t.LevelOrder(iter)
	case PreOrder:
		if recursive {
			t.PreOrderRecursive(iter)
		} else {
			t.PreOrder(iter)
		}
	case InOrder:
		if recursive {
			t.InOrderRecursive(iter)
		} else {
			t.InOrder(iter)
		}
	case PostOrder:
		if recursive {
			t.PostOrderRecursive(iter)
		} else {
			t.PostOrder(iter)
		}
	default:
		return errs.ErrUnknownOrder.FastGenByArgs(order.String())
	}
	return nil
}

// Items returns all values in the given order.
func (t *Tree[T]) Items(order Order) []T {
	var out []T
	// unknown orders leave out empty
	_ = t.Traverse(order, false, func(item T) bool {
		out = append(out, item)
		return true
	})
	return out
}
