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
	"fmt"
	"io"
	"time"

	"github.com/docker/go-units"
	"github.com/influxdata/tdigest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const (
	namespace = "bst"
	subsystem = "bench"
)

type metrics struct {
	registry      *prometheus.Registry
	cycleDuration *prometheus.HistogramVec
	insertedTotal prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		cycleDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "phase_duration_seconds",
				Help:      "Bucketed histogram of the time spent in each phase of a cycle.",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 2, 24), // 10us ~ 84s
			}, []string{"phase"}),
		insertedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "inserted_values_total",
				Help:      "Counter of values inserted into trees.",
			}),
	}
	m.registry.MustRegister(m.cycleDuration, m.insertedTotal)
	return m
}

// dump writes every collected metric in the text exposition format.
func (m *metrics) dump(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

// cycle is the timing of one insert and traverse cycle.
type cycle struct {
	insert   time.Duration
	traverse time.Duration
}

func (c cycle) total() time.Duration {
	return c.insert + c.traverse
}

type stats struct {
	// size is the configured number of values per cycle, values counts
	// what was generated. Unique workloads may produce fewer.
	size     int
	values   int
	count    int
	totalDur time.Duration
	minDur   time.Duration
	maxDur   time.Duration
	insert   time.Duration
	traverse time.Duration
	height   int
	digest   *tdigest.TDigest
}

func newStats(size int) *stats {
	return &stats{
		size:   size,
		minDur: time.Hour,
		digest: tdigest.New(),
	}
}

func (s *stats) update(c cycle, height, values int) {
	dur := c.total()
	s.count++
	s.values += values
	s.totalDur += dur
	s.insert += c.insert
	s.traverse += c.traverse
	s.height += height
	s.digest.Add(float64(dur.Nanoseconds())/1e6, 1)
	if dur > s.maxDur {
		s.maxDur = dur
	}
	if dur < s.minDur {
		s.minDur = dur
	}
}

func (s *stats) average() time.Duration {
	if s.count == 0 {
		return 0
	}
	return s.totalDur / time.Duration(s.count)
}

// throughput returns the number of values inserted and traversed per second.
func (s *stats) throughput() float64 {
	if s.totalDur <= 0 {
		return 0
	}
	return float64(s.values) / s.totalDur.Seconds()
}

func humanCount(v float64) string {
	return units.CustomSize("%.4g%s", v, 1000.0, []string{"", "k", "M", "G", "T"})
}

func (s *stats) report(w io.Writer) {
	avg := s.average()
	size := s.size
	if s.count > 0 {
		size = s.values / s.count
	}
	fmt.Fprintf(w, "Size: %d\n", size)
	fmt.Fprintf(w, "Times: %d\n", s.count)
	if s.count == 0 {
		return
	}
	if size != s.size {
		fmt.Fprintf(w, "Configured Size: %d, Total Values: %d\n", s.size, s.values)
	}
	fmt.Fprintf(w, "Average Time NanoSeconds: %d\n", avg.Nanoseconds())
	fmt.Fprintf(w, "Average Time Seconds: %.9f\n", avg.Seconds())
	fmt.Fprintf(w, "Average Insert: %s, Average Traverse: %s\n",
		s.insert/time.Duration(s.count), s.traverse/time.Duration(s.count))
	fmt.Fprintf(w, "Min: %s, Max: %s, Average Height: %d\n", s.minDur, s.maxDur, s.height/s.count)
	fmt.Fprintf(w, "P0.5: %.4fms, P0.9: %.4fms, P0.99: %.4fms\n",
		s.digest.Quantile(0.5), s.digest.Quantile(0.9), s.digest.Quantile(0.99))
	fmt.Fprintf(w, "Throughput: %s values/s, Total: %s\n",
		humanCount(s.throughput()), units.HumanDuration(s.totalDur))
}
