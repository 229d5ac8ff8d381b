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
	"os"
	"os/signal"
	"syscall"

	"github.com/ordtree/bst/pkg/errs"
	"github.com/ordtree/bst/pkg/utils/configutil"
	"github.com/ordtree/bst/pkg/utils/logutil"
	"github.com/ordtree/bst/pkg/versioninfo"
	"github.com/ordtree/bst/tools/bst-bench/config"
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()
	err := cfg.Parse(os.Args[1:])
	defer logutil.LogPanic()

	if cfg.ConfigCheck {
		configutil.PrintConfigCheckMsg(os.Stdout, cfg.WarningMsgs)
		if err != nil {
			log.Fatal("parse config error", zap.Error(err))
		}
		exit(0)
	}

	switch errors.Cause(err) {
	case nil:
	case pflag.ErrHelp:
		exit(0)
	default:
		log.Fatal("parse cmd flags error", zap.Error(err))
	}

	// New zap logger
	err = logutil.SetupLogger(cfg.Log, &cfg.Logger, &cfg.LogProps)
	if err == nil {
		log.ReplaceGlobals(cfg.Logger, cfg.LogProps)
	} else {
		log.Fatal("initialize logger error", zap.Error(err))
	}
	versioninfo.Log("bst-bench")
	for _, msg := range cfg.WarningMsgs {
		log.Warn(msg)
	}

	ctx, cancel := context.WithCancel(context.Background())
	sc := make(chan os.Signal, 1)
	signal.Notify(sc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)

	go func() {
		<-sc
		cancel()
	}()

	b := newBench(cfg, os.Stdout)
	err = b.run(ctx)
	b.report()
	cancel()
	if err != nil {
		log.Error("bench failed", errs.ZapError(err))
		exit(1)
	}
	exit(0)
}

func exit(code int) {
	log.Sync()
	os.Exit(code)
}
