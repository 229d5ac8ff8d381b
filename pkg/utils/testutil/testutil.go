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

package testutil

import (
	"math/rand"
	"os"
	"strconv"
	"testing"
	"time"
)

// SeedEnv overrides the seed returned by NewRand so a failed run can be
// replayed.
const SeedEnv = "BST_TEST_SEED"

// NewRand returns a random source for property tests. The seed is logged.
func NewRand(t testing.TB) *rand.Rand {
	seed := time.Now().UnixNano()
	if s := os.Getenv(SeedEnv); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			seed = v
		}
	}
	t.Logf("%s=%d", SeedEnv, seed)
	return rand.New(rand.NewSource(seed))
}

// FirstUnsorted returns the index of the first value that is less than its
// predecessor, or -1 if values is non-decreasing.
func FirstUnsorted[T any](values []T, cmp func(a, b T) int) int {
	for i := 1; i < len(values); i++ {
		if cmp(values[i-1], values[i]) > 0 {
			return i
		}
	}
	return -1
}
