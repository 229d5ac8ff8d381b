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
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/ordtree/bst/pkg/bst"
	"github.com/ordtree/bst/pkg/errs"
	"github.com/ordtree/bst/pkg/render"
	"github.com/ordtree/bst/pkg/workload"
	"github.com/ordtree/bst/tools/bst-bench/config"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

type bench struct {
	cfg     *config.Config
	out     io.Writer
	rnd     *rand.Rand
	metrics *metrics
	stats   *stats
	recent  *window
	cycles  []cycle
}

func newBench(cfg *config.Config, out io.Writer) *bench {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("create bench", zap.Int64("seed", seed),
		zap.Int("size", cfg.Size), zap.Int("times", cfg.Times),
		zap.String("pattern", cfg.Pattern), zap.Stringer("order", cfg.GetOrder()),
		zap.Bool("recursive", cfg.Recursive))
	return &bench{
		cfg:     cfg,
		out:     out,
		rnd:     rand.New(rand.NewSource(seed)),
		metrics: newMetrics(),
		stats:   newStats(cfg.Size),
		recent:  newWindow(recentCycles),
	}
}

// run executes the configured cycles. It stops between two cycles once ctx is
// done and reports what was measured so far.
func (b *bench) run(ctx context.Context) error {
	for i := 0; i < b.cfg.Times; i++ {
		select {
		case <-ctx.Done():
			log.Warn("bench is canceled", zap.Int("finished-cycles", i))
			return nil
		default:
		}
		if err := b.runCycle(i); err != nil {
			return err
		}
	}
	return nil
}

func (b *bench) runCycle(i int) error {
	values, err := workload.Generate(b.cfg.GetPattern(), b.cfg.Size, b.cfg.MaxValue, b.rnd)
	if err != nil {
		return err
	}
	sorted := make([]int, 0, len(values))

	start := time.Now()
	tree := bst.NewOrdered[int]()
	for _, v := range values {
		tree.Insert(v)
	}
	inserted := time.Now()
	if b.cfg.Print {
		err = render.Write(b.out, tree,
			render.WithOrder(b.cfg.GetOrder()),
			render.WithRecursive(b.cfg.Recursive),
			render.WithNewline())
	} else {
		err = tree.Traverse(b.cfg.GetOrder(), b.cfg.Recursive, func(v int) bool {
			sorted = append(sorted, v)
			return true
		})
	}
	c := cycle{insert: inserted.Sub(start), traverse: time.Since(inserted)}
	if err != nil {
		return err
	}

	height := tree.Height()
	b.stats.update(c, height, len(values))
	b.recent.add(c.total())
	if b.cfg.Chart != "" {
		b.cycles = append(b.cycles, c)
	}
	b.metrics.cycleDuration.WithLabelValues("insert").Observe(c.insert.Seconds())
	b.metrics.cycleDuration.WithLabelValues("traverse").Observe(c.traverse.Seconds())
	b.metrics.insertedTotal.Add(float64(len(values)))
	log.Debug("bench cycle finished", zap.Int("cycle", i),
		zap.Duration("insert", c.insert), zap.Duration("traverse", c.traverse),
		zap.Int("height", height))
	if b.cfg.Verbose {
		fmt.Fprintf(b.out, "cycle #%d: insert %s, traverse %s, height %d, recent median %s, recent max %s\n",
			i, c.insert, c.traverse, height, b.recent.median(), b.recent.max())
	}

	if b.cfg.Check && !b.cfg.Print && b.cfg.GetOrder() == bst.InOrder {
		if pos := firstUnsorted(sorted); pos >= 0 {
			return errs.ErrBenchUnsorted.FastGenByArgs(i, pos)
		}
	}
	return nil
}

func firstUnsorted(values []int) int {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return i
		}
	}
	return -1
}

func (b *bench) report() {
	fmt.Fprintln(b.out)
	b.stats.report(b.out)
	if b.cfg.Verbose {
		if err := b.metrics.dump(b.out); err != nil {
			log.Warn("failed to dump metrics", errs.ZapError(err))
		}
	}
	if b.cfg.Chart != "" && len(b.cycles) > 0 {
		if err := writeChart(b.cfg.Chart, b.cycles); err != nil {
			log.Error("render chart error", errs.ZapError(err))
			return
		}
		log.Info("chart is written", zap.String("file", b.cfg.Chart))
	}
}
