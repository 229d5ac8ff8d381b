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

// Package workload generates insertion sequences for sorting with a tree.
package workload

import (
	"math/rand"
	"strings"

	"github.com/elliotchance/pie/v2"
	"github.com/ordtree/bst/pkg/errs"
)

// Pattern describes the shape of a generated sequence.
type Pattern string

// Patterns.
const (
	// Random draws every value uniformly from [0, max), duplicates included.
	Random Pattern = "random"
	// Permutation is a shuffle of [0, n).
	Permutation Pattern = "permutation"
	// Sorted is [0, n) ascending; a tree built from it is a right chain.
	Sorted Pattern = "sorted"
	// Reversed is [0, n) descending; a tree built from it is a left chain.
	Reversed Pattern = "reversed"
	// Unique is Random with duplicates dropped, in random order.
	Unique Pattern = "unique"
)

// DefaultMaxValue is the exclusive upper bound of Random values.
const DefaultMaxValue = 100

// Patterns lists every supported pattern.
var Patterns = []Pattern{Random, Permutation, Sorted, Reversed, Unique}

// ParsePattern returns the pattern with the given name, case insensitive.
func ParsePattern(s string) (Pattern, error) {
	p := Pattern(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Patterns {
		if p == known {
			return p, nil
		}
	}
	return "", errs.ErrUnknownPattern.FastGenByArgs(s)
}

// Generate returns n values of the given pattern. maxValue bounds Random and
// Unique values and falls back to DefaultMaxValue when not positive.
func Generate(p Pattern, n, maxValue int, rnd *rand.Rand) ([]int, error) {
	if n < 0 {
		return nil, errs.ErrInvalidSize.FastGenByArgs(n)
	}
	if maxValue <= 0 {
		maxValue = DefaultMaxValue
	}
	switch p {
	case Random:
		return random(n, maxValue, rnd), nil
	case Permutation:
		return rnd.Perm(n), nil
	case Sorted:
		return sequence(n), nil
	case Reversed:
		return pie.Reverse(sequence(n)), nil
	case Unique:
		values := pie.Sort(pie.Unique(random(n, maxValue, rnd)))
		rnd.Shuffle(len(values), func(i, j int) {
			values[i], values[j] = values[j], values[i]
		})
		return values, nil
	}
	return nil, errs.ErrUnknownPattern.FastGenByArgs(string(p))
}

func random(n, maxValue int, rnd *rand.Rand) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = rnd.Intn(maxValue)
	}
	return values
}

func sequence(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	return values
}
