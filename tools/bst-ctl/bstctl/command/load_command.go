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
	"math/rand"
	"strconv"
	"time"

	"github.com/ordtree/bst/pkg/errs"
	"github.com/ordtree/bst/pkg/workload"
	"github.com/spf13/cobra"
)

// NewLoadCommand returns a load subcommand of rootCmd
func NewLoadCommand() *cobra.Command {
	m := &cobra.Command{
		Use:   "load <random|permutation|sorted|reversed|unique> <n>",
		Short: "insert a generated sequence of n values",
		Run:   loadCommandFunc,
	}
	m.Flags().Int("max-value", workload.DefaultMaxValue, "exclusive upper bound of random values")
	m.Flags().Int64("seed", 0, "random seed, 0 picks one from the clock")
	return m
}

func loadCommandFunc(cmd *cobra.Command, args []string) {
	if len(args) != 2 {
		cmd.Println(cmd.UsageString())
		return
	}
	pattern, err := workload.ParsePattern(args[0])
	if err != nil {
		cmd.Println(err)
		return
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		cmd.Println(errs.ErrInvalidValue.FastGenByArgs(args[1]))
		return
	}
	maxValue, err := cmd.Flags().GetInt("max-value")
	if err != nil {
		cmd.Println(err)
		return
	}
	seed, err := cmd.Flags().GetInt64("seed")
	if err != nil {
		cmd.Println(err)
		return
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	values, err := workload.Generate(pattern, n, maxValue, rand.New(rand.NewSource(seed)))
	if err != nil {
		cmd.Println(err)
		return
	}
	current.load(values)
	cmd.Printf("loaded %d values, size %d\n", len(values), current.tree().Size())
}
