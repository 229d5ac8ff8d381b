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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ordtree/bst/tools/bst-bench/config"
	"github.com/stretchr/testify/require"
)

func newTestBench(re *require.Assertions, args ...string) (*bench, *bytes.Buffer) {
	cfg := config.NewConfig()
	re.NoError(cfg.Parse(append([]string{"--seed=1"}, args...)))
	out := &bytes.Buffer{}
	return newBench(cfg, out), out
}

func TestBenchRun(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	b, out := newTestBench(re, "--size=1000", "--times=3", "-v")
	re.NoError(b.run(context.Background()))
	b.report()

	re.Equal(3, b.stats.count)
	output := out.String()
	re.Contains(output, "cycle #0")
	re.Contains(output, "cycle #2")
	re.Contains(output, "recent median")
	re.Contains(output, "Size: 1000\n")
	re.Contains(output, "Times: 3\n")
	re.Contains(output, "Average Time NanoSeconds:")
	re.Contains(output, "P0.99:")
	re.Contains(output, "bst_bench_inserted_values_total 3000")
	re.Contains(output, `bst_bench_phase_duration_seconds_count{phase="insert"} 3`)
}

func TestBenchPrint(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	b, out := newTestBench(re, "--size=5", "--pattern=reversed", "--order=pre", "--print")
	re.NoError(b.run(context.Background()))
	re.Equal("4 3 2 1 0\n", out.String())
}

func TestBenchDegenerate(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	b, _ := newTestBench(re, "--size=2000", "--pattern=sorted", "--times=2")
	re.NoError(b.run(context.Background()))
	re.Equal(2, b.stats.count)
	re.Equal(2000*2, b.stats.height)
}

func TestBenchCanceled(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	b, out := newTestBench(re, "--size=10", "--times=100")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	re.NoError(b.run(ctx))
	re.Equal(0, b.stats.count)
	b.report()
	re.True(strings.HasSuffix(out.String(), "Times: 0\n"))
}

func TestFirstUnsorted(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	re.Equal(-1, firstUnsorted(nil))
	re.Equal(-1, firstUnsorted([]int{1, 1, 2}))
	re.Equal(2, firstUnsorted([]int{1, 3, 2}))
}

func TestStats(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	s := newStats(100)
	s.update(cycle{insert: 2 * time.Millisecond, traverse: time.Millisecond}, 10, 100)
	s.update(cycle{insert: 4 * time.Millisecond, traverse: time.Millisecond}, 12, 100)
	re.Equal(4*time.Millisecond, s.average())
	re.Equal(3*time.Millisecond, s.minDur)
	re.Equal(5*time.Millisecond, s.maxDur)
	re.InDelta(25000, s.throughput(), 1)
	re.Equal("25k", humanCount(s.throughput()))

	var buf bytes.Buffer
	s.report(&buf)
	re.Contains(buf.String(), "Average Time NanoSeconds: 4000000\n")
	re.Contains(buf.String(), "Average Height: 11\n")
}

func TestBenchUniqueSize(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	b, out := newTestBench(re, "--size=1000", "--times=2", "--pattern=unique", "--max-value=10")
	re.NoError(b.run(context.Background()))
	b.report()

	re.Equal(2, b.stats.count)
	re.LessOrEqual(b.stats.values, 2*10)
	output := out.String()
	re.NotContains(output, "Size: 1000\n")
	re.Contains(output, "Configured Size: 1000")

	s := newStats(1000)
	s.update(cycle{insert: time.Second}, 4, 10)
	re.InDelta(10, s.throughput(), 1e-9)
}

func TestWindow(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	data := []time.Duration{2, 4, 2, 800, 600, 6, 3}
	medians := []time.Duration{2, 3, 2, 3, 4, 6, 6}
	maxes := []time.Duration{2, 4, 4, 800, 800, 800, 800}

	w := newWindow(5)
	re.Zero(w.median())
	re.Zero(w.max())
	for i, d := range data {
		w.add(d)
		re.Equal(medians[i], w.median())
		re.Equal(maxes[i], w.max())
	}
}

func TestBenchChart(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	name := filepath.Join(t.TempDir(), "cycles.html")
	b, _ := newTestBench(re, "--size=100", "--times=4", "--chart", name)
	re.NoError(b.run(context.Background()))
	re.Len(b.cycles, 4)
	b.report()

	content, err := os.ReadFile(name)
	re.NoError(err)
	re.Contains(string(content), "traverse")
}
