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

package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ordtree/bst/pkg/bst"
	"github.com/stretchr/testify/require"
)

func scenario() *bst.Tree[int] {
	t := bst.NewOrdered[int]()
	for _, v := range []int{50, 25, 75, 0, 100, 90, 10} {
		t.Insert(v)
	}
	return t
}

func TestString(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	tr := scenario()
	testCases := []struct {
		opts   []Option
		expect string
	}{
		{nil, "0 10 25 50 75 90 100"},
		{[]Option{WithOrder(bst.LevelOrder)}, "50 25 75 0 100 10 90"},
		{[]Option{WithOrder(bst.PreOrder), WithRecursive(true)}, "50 25 0 10 75 100 90"},
		{[]Option{WithOrder(bst.PostOrder), WithSeparator(", ")}, "10, 0, 25, 90, 100, 75, 50"},
		{[]Option{WithNewline()}, "0 10 25 50 75 90 100\n"},
	}
	for _, testCase := range testCases {
		re.Equal(testCase.expect, String(tr, testCase.opts...))
	}
	re.Equal("", String(bst.NewOrdered[int]()))
	re.Equal("\n", String(bst.NewOrdered[int](), WithNewline()))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWriteError(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	re.Error(Write(failingWriter{}, scenario()))
	re.Error(Write(&bytes.Buffer{}, scenario(), WithOrder(bst.Order(9))))
}

func TestStats(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	var buf bytes.Buffer
	re.NoError(Stats(&buf, scenario()))
	re.Equal("size: 7\nheight: 4\n", buf.String())
}
