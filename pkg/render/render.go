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

// Package render prints trees for humans.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ordtree/bst/pkg/bst"
)

// DefaultSeparator separates two printed values.
const DefaultSeparator = " "

// Options controls how a traversal is printed.
type Options struct {
	Order     bst.Order
	Recursive bool
	// Separator defaults to DefaultSeparator.
	Separator string
	// Newline terminates the output with a line feed.
	Newline bool
}

// Option configures Options.
type Option func(*Options)

// WithOrder sets the traversal order, in-order by default.
func WithOrder(order bst.Order) Option {
	return func(o *Options) { o.Order = order }
}

// WithRecursive uses the recursive form of depth first orders.
func WithRecursive(recursive bool) Option {
	return func(o *Options) { o.Recursive = recursive }
}

// WithSeparator sets the separator between values.
func WithSeparator(sep string) Option {
	return func(o *Options) { o.Separator = sep }
}

// WithNewline ends the output with a line feed.
func WithNewline() Option {
	return func(o *Options) { o.Newline = true }
}

func newOptions(opts []Option) *Options {
	o := &Options{Order: bst.InOrder, Separator: DefaultSeparator}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Write prints one traversal of t to w.
func Write[T any](w io.Writer, t *bst.Tree[T], opts ...Option) error {
	o := newOptions(opts)
	bw := bufio.NewWriter(w)
	var (
		first    = true
		writeErr error
	)
	err := t.Traverse(o.Order, o.Recursive, func(item T) bool {
		if !first {
			if _, writeErr = bw.WriteString(o.Separator); writeErr != nil {
				return false
			}
		}
		first = false
		_, writeErr = fmt.Fprint(bw, item)
		return writeErr == nil
	})
	if err != nil {
		return err
	}
	if writeErr != nil {
		return writeErr
	}
	if o.Newline {
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// String returns one traversal of t as text.
func String[T any](t *bst.Tree[T], opts ...Option) string {
	var sb strings.Builder
	// strings.Builder never fails to write
	_ = Write(&sb, t, opts...)
	return sb.String()
}

// Shape is what Stats reports about a tree.
type Shape interface {
	Size() int
	Height() int
}

// Stats prints the size and the height of t.
func Stats(w io.Writer, t Shape) error {
	_, err := fmt.Fprintf(w, "size: %d\nheight: %d\n", t.Size(), t.Height())
	return err
}
