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
	"github.com/ordtree/bst/pkg/bst"
	"github.com/ordtree/bst/pkg/render"
	"github.com/spf13/cobra"
)

// NewTraverseCommand returns a traverse subcommand of rootCmd
func NewTraverseCommand() *cobra.Command {
	m := &cobra.Command{
		Use:   "traverse [level|pre|in|post]",
		Short: "print the tree in the given order, in-order by default",
		Run:   traverseCommandFunc,
	}
	m.Flags().Bool("recursive", false, "use the recursive walk of depth first orders")
	m.Flags().String("sep", render.DefaultSeparator, "separator between two values")
	return m
}

func traverseCommandFunc(cmd *cobra.Command, args []string) {
	if len(args) > 1 {
		cmd.Println(cmd.UsageString())
		return
	}
	order := bst.InOrder
	if len(args) == 1 {
		var err error
		if order, err = bst.ParseOrder(args[0]); err != nil {
			cmd.Println(err)
			return
		}
	}
	opts, err := renderOptions(cmd)
	if err != nil {
		cmd.Println(err)
		return
	}
	opts = append(opts, render.WithOrder(order))
	if err := current.tree().write(cmd.OutOrStdout(), opts...); err != nil {
		cmd.Println(err)
	}
}

func renderOptions(cmd *cobra.Command) ([]render.Option, error) {
	opts := []render.Option{render.WithNewline()}
	if cmd.Flags().Lookup("recursive") != nil {
		recursive, err := cmd.Flags().GetBool("recursive")
		if err != nil {
			return nil, err
		}
		opts = append(opts, render.WithRecursive(recursive))
	}
	sep, err := cmd.Flags().GetString("sep")
	if err != nil {
		return nil, err
	}
	return append(opts, render.WithSeparator(sep)), nil
}

// NewSortCommand returns a sort subcommand of rootCmd
func NewSortCommand() *cobra.Command {
	m := &cobra.Command{
		Use:   "sort <value>...",
		Short: "sort values with a scratch tree, the session tree is untouched",
		Run:   sortCommandFunc,
	}
	m.Flags().String("sep", render.DefaultSeparator, "separator between two values")
	return m
}

func sortCommandFunc(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		cmd.Println(cmd.UsageString())
		return
	}
	scratch := current.fresh()
	if err := scratch.insert(args); err != nil {
		cmd.Println(err)
		return
	}
	opts, err := renderOptions(cmd)
	if err != nil {
		cmd.Println(err)
		return
	}
	if err := scratch.tree().write(cmd.OutOrStdout(), opts...); err != nil {
		cmd.Println(err)
	}
}
