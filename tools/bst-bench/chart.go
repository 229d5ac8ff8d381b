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
	"io"
	"os"

	"github.com/go-echarts/go-echarts/charts"
	"github.com/pingcap/errors"
)

// renderChart draws the insert and traverse time of every cycle, in
// milliseconds.
func renderChart(w io.Writer, cycles []cycle) error {
	xAxis := make([]int, len(cycles))
	inserts := make([]float64, len(cycles))
	traverses := make([]float64, len(cycles))
	for i, c := range cycles {
		xAxis[i] = i
		inserts[i] = float64(c.insert.Microseconds()) / 1e3
		traverses[i] = float64(c.traverse.Microseconds()) / 1e3
	}
	line := charts.NewLine()
	line.SetGlobalOptions(charts.TitleOpts{Title: "bst-bench cycle time (ms)"})
	line.AddXAxis(xAxis).
		AddYAxis("insert", inserts).
		AddYAxis("traverse", traverses)
	return line.Render(w)
}

func writeChart(name string, cycles []cycle) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()
	return renderChart(f, cycles)
}
