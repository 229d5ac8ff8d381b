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

package config

import (
	"github.com/BurntSushi/toml"
	"github.com/ordtree/bst/pkg/bst"
	"github.com/ordtree/bst/pkg/utils/configutil"
	"github.com/ordtree/bst/pkg/utils/logutil"
	"github.com/ordtree/bst/pkg/workload"
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
)

const (
	defaultSize      = 100000
	defaultTimes     = 1
	defaultMaxValue  = workload.DefaultMaxValue
	defaultPattern   = string(workload.Random)
	defaultOrder     = "in-order"
	defaultCheck     = true
	defaultLogLevel  = "info"
	defaultLogFormat = logutil.DefaultLogFormat
)

// Config is the bst-bench configuration.
type Config struct {
	flagSet     *flag.FlagSet
	configFile  string
	ConfigCheck bool

	Log      log.Config `toml:"log" json:"log"`
	Logger   *zap.Logger
	LogProps *log.ZapProperties

	// Size is the number of values inserted per cycle.
	Size int `toml:"size" json:"size"`
	// Times is the number of insert and traverse cycles.
	Times int `toml:"times" json:"times"`
	// MaxValue bounds random values to [0, MaxValue).
	MaxValue  int    `toml:"max-value" json:"max-value"`
	Pattern   string `toml:"pattern" json:"pattern"`
	Order     string `toml:"order" json:"order"`
	Recursive bool   `toml:"recursive" json:"recursive"`
	// Seed of the value generator, 0 picks one from the clock.
	Seed int64 `toml:"seed" json:"seed"`
	// Check verifies that an in-order traversal comes out sorted.
	Check bool `toml:"check" json:"check"`
	// Print writes every traversal to the output inside the timed region.
	Print   bool `toml:"print" json:"print"`
	Verbose bool `toml:"verbose" json:"verbose"`
	// Chart is an HTML file receiving the time of every cycle.
	Chart string `toml:"chart" json:"chart"`

	// WarningMsgs contains all warnings during parsing.
	WarningMsgs []string

	pattern workload.Pattern
	order   bst.Order
}

// NewConfig return a set of settings.
func NewConfig() *Config {
	cfg := &Config{}
	cfg.flagSet = flag.NewFlagSet("bst-bench", flag.ContinueOnError)
	fs := cfg.flagSet
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.StringVar(&cfg.configFile, "config", "", "config file")
	fs.BoolVar(&cfg.ConfigCheck, "config-check", false, "check config file validity and exit")
	fs.Int("size", defaultSize, "number of values inserted per cycle")
	fs.Int("times", defaultTimes, "number of cycles")
	fs.Int("max-value", defaultMaxValue, "random values are drawn from [0, max-value)")
	fs.String("pattern", "", "workload pattern: random, permutation, sorted, reversed, unique")
	fs.String("order", "", "traversal order: level, pre, in, post")
	fs.Bool("recursive", false, "use the recursive traversal")
	fs.Int64("seed", 0, "seed of the value generator, 0 picks one from the clock")
	fs.Bool("no-check", false, "skip the sortedness check of in-order traversals")
	fs.Bool("print", false, "print every traversal")
	fs.BoolP("verbose", "v", false, "print every cycle and the metrics")
	fs.String("chart", "", "write a chart of every cycle to this HTML file")
	fs.StringP("log-level", "L", "", "log level: debug, info, warn, error, fatal (default 'info')")
	fs.String("log-file", "", "log file path")
	return cfg
}

// Parse parses flag definitions from the argument list.
func (c *Config) Parse(arguments []string) error {
	// Parse first to get config file.
	err := c.flagSet.Parse(arguments)
	if err != nil {
		return errors.WithStack(err)
	}

	// Load config file if specified.
	var meta *toml.MetaData
	if c.configFile != "" {
		meta, err = configutil.ConfigFromFile(c, c.configFile)
		if err != nil {
			return err
		}
		if err := configutil.NewConfigMetadata(meta).CheckUndecoded(); err != nil {
			c.WarningMsgs = append(c.WarningMsgs, err.Error())
		}
	}

	// Parse again to replace with command line options.
	err = c.flagSet.Parse(arguments)
	if err != nil {
		return errors.WithStack(err)
	}

	if len(c.flagSet.Args()) != 0 {
		return errors.Errorf("'%s' is an invalid flag", c.flagSet.Arg(0))
	}

	return c.Adjust(configutil.NewConfigMetadata(meta))
}

// Adjust is used to adjust configurations
func (c *Config) Adjust(meta *configutil.ConfigMetaData) error {
	fs := c.flagSet
	if !meta.IsDefined("size") {
		c.Size = defaultSize
	}
	configutil.AdjustCommandlineInt(fs, &c.Size, "size")
	if !meta.IsDefined("times") {
		c.Times = defaultTimes
	}
	configutil.AdjustCommandlineInt(fs, &c.Times, "times")
	configutil.AdjustCommandlineInt(fs, &c.MaxValue, "max-value")
	if !meta.IsDefined("seed") || fs.Changed("seed") {
		c.Seed, _ = fs.GetInt64("seed")
	}
	if !meta.IsDefined("check") {
		c.Check = defaultCheck
	}
	if noCheck, _ := fs.GetBool("no-check"); noCheck {
		c.Check = false
	}
	configutil.AdjustCommandlineString(fs, &c.Pattern, "pattern")
	configutil.AdjustString(&c.Pattern, defaultPattern)
	configutil.AdjustCommandlineString(fs, &c.Order, "order")
	configutil.AdjustString(&c.Order, defaultOrder)
	configutil.AdjustCommandlineBool(fs, &c.Recursive, "recursive")
	configutil.AdjustCommandlineBool(fs, &c.Print, "print")
	configutil.AdjustCommandlineBool(fs, &c.Verbose, "verbose")
	configutil.AdjustCommandlineString(fs, &c.Chart, "chart")

	logMeta := meta.Child("log")
	if !logMeta.IsDefined("level") {
		c.Log.Level = defaultLogLevel
	}
	configutil.AdjustCommandlineString(fs, &c.Log.Level, "log-level")
	configutil.AdjustCommandlineString(fs, &c.Log.File.Filename, "log-file")
	if !logMeta.IsDefined("format") {
		c.Log.Format = defaultLogFormat
	}

	if c.Size <= 0 {
		return errors.Errorf("size must be positive, got %d", c.Size)
	}
	if c.Times <= 0 {
		return errors.Errorf("times must be positive, got %d", c.Times)
	}
	configutil.AdjustInt(&c.MaxValue, defaultMaxValue)

	var err error
	if c.pattern, err = workload.ParsePattern(c.Pattern); err != nil {
		return err
	}
	if c.order, err = bst.ParseOrder(c.Order); err != nil {
		return err
	}
	if c.Recursive && c.order == bst.LevelOrder {
		c.WarningMsgs = append(c.WarningMsgs, "level-order has no recursive form, the queue based walk is used")
	}
	return nil
}

// GetPattern returns the parsed workload pattern.
func (c *Config) GetPattern() workload.Pattern {
	return c.pattern
}

// GetOrder returns the parsed traversal order.
func (c *Config) GetOrder() bst.Order {
	return c.order
}
