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
	"os"
	"os/signal"
	"syscall"

	"github.com/ordtree/bst/pkg/utils/logutil"
	"github.com/ordtree/bst/tools/bst-ctl/bstctl"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

func main() {
	defer logutil.LogPanic()

	var (
		logger *zap.Logger
		props  *log.ZapProperties
	)
	// the console belongs to command output, only warnings are logged
	if err := logutil.SetupLogger(logutil.NewConfig("warn", ""), &logger, &props); err == nil {
		log.ReplaceGlobals(logger, props)
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)

	go func() {
		sig := <-sc
		fmt.Printf("\nGot signal [%v] to exit.\n", sig)
		switch sig {
		case syscall.SIGTERM:
			os.Exit(0)
		default:
			os.Exit(1)
		}
	}()

	var inputs []string
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		var err error
		inputs, err = bstctl.ReadStdin(os.Stdin)
		if err != nil {
			log.Fatal("read stdin error", zap.Error(err))
		}
	}
	inputs = append(os.Args[1:], inputs...)
	bstctl.MainStart(inputs)
}
