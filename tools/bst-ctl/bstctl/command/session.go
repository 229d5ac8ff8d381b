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

package command

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ordtree/bst/pkg/bst"
	"github.com/ordtree/bst/pkg/errs"
	"github.com/ordtree/bst/pkg/render"
)

// session is the tree shared by every command of one bst-ctl process. The
// interactive loop builds a new command tree per line, so the session lives
// at package level.
type session interface {
	kind() string
	insert(args []string) error
	remove(args []string) (int, error)
	find(arg string) (string, bool, error)
	min() (string, bool)
	max() (string, bool)
	load(values []int)
	tree() treeView
	// fresh returns an empty session of the same value type.
	fresh() session
}

// treeView is the part of a tree that does not depend on its value type.
type treeView interface {
	Size() int
	Height() int
	IsEmpty() bool
	Clear()
	Check() error
	write(w io.Writer, opts ...render.Option) error
}

type typedTree[T any] struct {
	*bst.Tree[T]
}

func (t typedTree[T]) write(w io.Writer, opts ...render.Option) error {
	return render.Write(w, t.Tree, opts...)
}

type typedSession[T any] struct {
	name    string
	t       *bst.Tree[T]
	parse   func(string) (T, error)
	fromInt func(int) T
	newTree func() *bst.Tree[T]
}

const (
	intKind    = "int"
	stringKind = "string"
)

func newIntSession() session {
	return &typedSession[int]{
		name: intKind,
		t:    bst.NewOrdered[int](),
		parse: func(s string) (int, error) {
			v, err := strconv.Atoi(s)
			if err != nil {
				return 0, errs.ErrInvalidValue.FastGenByArgs(s)
			}
			return v, nil
		},
		fromInt: func(v int) int { return v },
		newTree: bst.NewOrdered[int],
	}
}

func newStringSession() session {
	return &typedSession[string]{
		name:    stringKind,
		t:       bst.NewOrdered[string](),
		parse:   func(s string) (string, error) { return s, nil },
		fromInt: strconv.Itoa,
		newTree: bst.NewOrdered[string],
	}
}

func (s *typedSession[T]) kind() string { return s.name }

func (s *typedSession[T]) fresh() session {
	return &typedSession[T]{
		name:    s.name,
		t:       s.newTree(),
		parse:   s.parse,
		fromInt: s.fromInt,
		newTree: s.newTree,
	}
}

func (s *typedSession[T]) tree() treeView { return typedTree[T]{s.t} }

func (s *typedSession[T]) parseAll(args []string) ([]T, error) {
	values := make([]T, 0, len(args))
	for _, arg := range args {
		v, err := s.parse(arg)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// insert parses every argument before touching the tree, so a bad argument
// leaves the tree unchanged.
func (s *typedSession[T]) insert(args []string) error {
	values, err := s.parseAll(args)
	if err != nil {
		return err
	}
	for _, v := range values {
		s.t.Insert(v)
	}
	return nil
}

func (s *typedSession[T]) remove(args []string) (int, error) {
	values, err := s.parseAll(args)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, v := range values {
		if s.t.Remove(v) {
			removed++
		}
	}
	return removed, nil
}

func (s *typedSession[T]) find(arg string) (string, bool, error) {
	v, err := s.parse(arg)
	if err != nil {
		return "", false, err
	}
	found, ok := s.t.Find(v)
	if !ok {
		return "", false, nil
	}
	return fmt.Sprint(found), true, nil
}

func (s *typedSession[T]) min() (string, bool) {
	v, ok := s.t.Min()
	return fmt.Sprint(v), ok
}

func (s *typedSession[T]) max() (string, bool) {
	v, ok := s.t.Max()
	return fmt.Sprint(v), ok
}

func (s *typedSession[T]) load(values []int) {
	for _, v := range values {
		s.t.Insert(s.fromInt(v))
	}
}

var current = newIntSession()

// UseValueType switches the session to string or int values. Switching to
// another type starts over with an empty tree, the number of values dropped
// with the old tree is returned.
func UseValueType(str bool) int {
	want := intKind
	if str {
		want = stringKind
	}
	if current.kind() == want {
		return 0
	}
	dropped := current.tree().Size()
	if str {
		current = newStringSession()
	} else {
		current = newIntSession()
	}
	return dropped
}

// ValueType returns "int" or "string".
func ValueType() string {
	return current.kind()
}

// ResetSession drops the session tree.
func ResetSession() {
	current = current.fresh()
}
