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
	"github.com/ordtree/bst/pkg/render"
	"github.com/spf13/cobra"
)

// NewInsertCommand returns an insert subcommand of rootCmd
func NewInsertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "insert <value>...",
		Short: "insert values into the tree",
		Run:   insertCommandFunc,
	}
}

func insertCommandFunc(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		cmd.Println(cmd.UsageString())
		return
	}
	if err := current.insert(args); err != nil {
		cmd.Println(err)
		return
	}
	cmd.Println("Success!")
}

// NewRemoveCommand returns a remove subcommand of rootCmd
func NewRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <value>...",
		Short: "remove one occurrence of each value from the tree",
		Run:   removeCommandFunc,
	}
}

func removeCommandFunc(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		cmd.Println(cmd.UsageString())
		return
	}
	removed, err := current.remove(args)
	if err != nil {
		cmd.Println(err)
		return
	}
	cmd.Printf("removed %d of %d\n", removed, len(args))
}

// NewFindCommand returns a find subcommand of rootCmd
func NewFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find <value>",
		Short: "find a value in the tree",
		Run:   findCommandFunc,
	}
}

func findCommandFunc(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		cmd.Println(cmd.UsageString())
		return
	}
	v, ok, err := current.find(args[0])
	if err != nil {
		cmd.Println(err)
		return
	}
	if !ok {
		cmd.Println("not found")
		return
	}
	cmd.Println(v)
}

// NewSizeCommand returns a size subcommand of rootCmd
func NewSizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "size",
		Short: "show the number of values in the tree",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(current.tree().Size())
		},
	}
}

// NewHeightCommand returns a height subcommand of rootCmd
func NewHeightCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "height",
		Short: "show the number of levels of the tree",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(current.tree().Height())
		},
	}
}

// NewStatsCommand returns a stats subcommand of rootCmd
func NewStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "show the size and the height of the tree",
		Run: func(cmd *cobra.Command, _ []string) {
			if err := render.Stats(cmd.OutOrStdout(), current.tree()); err != nil {
				cmd.Println(err)
			}
		},
	}
}

// NewMinCommand returns a min subcommand of rootCmd
func NewMinCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "min",
		Short: "show the smallest value",
		Run: func(cmd *cobra.Command, _ []string) {
			printExtreme(cmd, current.min)
		},
	}
}

// NewMaxCommand returns a max subcommand of rootCmd
func NewMaxCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "max",
		Short: "show the largest value",
		Run: func(cmd *cobra.Command, _ []string) {
			printExtreme(cmd, current.max)
		},
	}
}

func printExtreme(cmd *cobra.Command, get func() (string, bool)) {
	v, ok := get()
	if !ok {
		cmd.Println("empty tree")
		return
	}
	cmd.Println(v)
}

// NewCheckCommand returns a check subcommand of rootCmd
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "verify the ordering of the tree",
		Run: func(cmd *cobra.Command, _ []string) {
			if err := current.tree().Check(); err != nil {
				cmd.Println(err)
				return
			}
			cmd.Println("ok")
		},
	}
}

// NewClearCommand returns a clear subcommand of rootCmd
func NewClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "remove every value from the tree",
		Run: func(cmd *cobra.Command, _ []string) {
			current.tree().Clear()
			cmd.Println("Success!")
		},
	}
}
