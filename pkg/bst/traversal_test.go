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
	"testing"

	"github.com/ordtree/bst/pkg/errs"
	"github.com/ordtree/bst/pkg/utils/testutil"
	"github.com/stretchr/testify/require"
)

// collect runs a traversal method and returns what it visited.
func collect(walk func(ItemIterator[int])) (out []int) {
	walk(func(v int) bool {
		out = append(out, v)
		return true
	})
	return
}

func TestRecursiveMatchesIterative(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	rnd := testutil.NewRand(t)
	for round := 0; round < 50; round++ {
		tr := NewOrdered[int]()
		n := rnd.Intn(300)
		for i := 0; i < n; i++ {
			tr.Insert(rnd.Intn(150))
		}
		re.Equal(collect(tr.PreOrder), collect(tr.PreOrderRecursive))
		re.Equal(collect(tr.InOrder), collect(tr.InOrderRecursive))
		re.Equal(collect(tr.PostOrder), collect(tr.PostOrderRecursive))

		in := collect(tr.InOrder)
		re.Len(in, n)
		re.Equal(-1, testutil.FirstUnsorted(in, Compare[int]))
		re.Len(collect(tr.LevelOrder), n)
	}
}

func TestEarlyStop(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	tr := build(50, 25, 75, 0, 100, 90, 10)
	testCases := []struct {
		name string
		walk func(ItemIterator[int])
		want []int
	}{
		{"level", tr.LevelOrder, []int{50, 25, 75}},
		{"pre", tr.PreOrder, []int{50, 25, 0}},
		{"pre recursive", tr.PreOrderRecursive, []int{50, 25, 0}},
		{"in", tr.InOrder, []int{0, 10, 25}},
		{"in recursive", tr.InOrderRecursive, []int{0, 10, 25}},
		{"post", tr.PostOrder, []int{10, 0, 25}},
		{"post recursive", tr.PostOrderRecursive, []int{10, 0, 25}},
	}
	for _, testCase := range testCases {
		t.Log(testCase.name)
		var got []int
		testCase.walk(func(v int) bool {
			got = append(got, v)
			return len(got) < 3
		})
		re.Equal(testCase.want, got)
	}
}

func TestTraversalIsRestartable(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	tr := build(4, 2, 6, 1, 3, 5, 7)
	first := tr.Items(InOrder)
	re.Equal(first, tr.Items(InOrder))
	tr.Insert(8)
	re.Equal(append(first, 8), tr.Items(InOrder))
}

func TestParseOrder(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	testCases := []struct {
		in    string
		order Order
	}{
		{"level", LevelOrder},
		{"level-order", LevelOrder},
		{"LevelOrder", LevelOrder},
		{"bfs", LevelOrder},
		{"pre", PreOrder},
		{"preorder", PreOrder},
		{" in ", InOrder},
		{"in-order", InOrder},
		{"post", PostOrder},
		{"Post-Order", PostOrder},
	}
	for _, testCase := range testCases {
		order, err := ParseOrder(testCase.in)
		re.NoError(err, testCase.in)
		re.Equal(testCase.order, order)
	}
	for _, order := range Orders {
		parsed, err := ParseOrder(order.String())
		re.NoError(err)
		re.Equal(order, parsed)
	}
	for _, in := range []string{"", "order", "zigzag", "inorderr"} {
		_, err := ParseOrder(in)
		re.True(errs.ErrUnknownOrder.Equal(err), in)
	}
}

func TestTraverse(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	tr := build(50, 25, 75, 0, 100, 90, 10)
	for _, order := range Orders {
		for _, recursive := range []bool{false, true} {
			var got []int
			err := tr.Traverse(order, recursive, func(v int) bool {
				got = append(got, v)
				return true
			})
			re.NoError(err)
			re.Equal(tr.Items(order), got, order.String())
		}
	}

	err := tr.Traverse(Order(42), false, func(int) bool { return true })
	re.True(errs.ErrUnknownOrder.Equal(err))
	re.Empty(tr.Items(Order(42)))
	re.Equal("unknown", Order(42).String())
}
