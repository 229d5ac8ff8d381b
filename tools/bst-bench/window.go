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

package main

import (
	"time"

	"github.com/elliotchance/pie/v2"
)

const recentCycles = 5

// window keeps the durations of the latest cycles.
// There are at most `size` data points for calculating.
type window struct {
	records []time.Duration
	size    int
	count   int
}

func newWindow(size int) *window {
	return &window{
		records: make([]time.Duration, size),
		size:    size,
	}
}

func (w *window) add(d time.Duration) {
	w.records[w.count%w.size] = d
	w.count++
}

func (w *window) recent() []time.Duration {
	if w.count < w.size {
		return w.records[:w.count]
	}
	return w.records
}

// median returns the median of the window, 0 when it is empty.
func (w *window) median() time.Duration {
	if w.count == 0 {
		return 0
	}
	return pie.Median(w.recent())
}

func (w *window) max() time.Duration {
	if w.count == 0 {
		return 0
	}
	return pie.Max(w.recent())
}
