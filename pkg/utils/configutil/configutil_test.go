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

package configutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ordtree/bst/pkg/errs"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestPrintConfigCheckMsg(t *testing.T) {
	// Define test cases
	tests := []struct {
		name        string
		warningMsgs []string
		want        string
	}{
		{
			name:        "no warnings",
			warningMsgs: []string{},
			want:        "config check successful\n",
		},
		{
			name:        "with warnings",
			warningMsgs: []string{"warning message 1", "warning message 2"},
			want:        "warning message 1\nwarning message 2\n",
		},
	}

	// Run tests
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Redirect output to a buffer to capture the output
			var buf bytes.Buffer
			PrintConfigCheckMsg(&buf, tt.warningMsgs)

			// Compare the output to the expected value
			if got := buf.String(); got != tt.want {
				t.Errorf("PrintConfigCheckMsg() = %q, want %q", got, tt.want)
			}
		})
	}
}

type testConfig struct {
	Size    int    `toml:"size"`
	Pattern string `toml:"pattern"`
	Log     struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "bench.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConfigFromFile(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	path := writeConfig(t, `
size = 10
[log]
level = "debug"
`)
	cfg := &testConfig{}
	meta, err := ConfigFromFile(cfg, path)
	re.NoError(err)
	re.Equal(10, cfg.Size)
	re.Equal("debug", cfg.Log.Level)

	m := NewConfigMetadata(meta)
	re.True(m.IsDefined("size"))
	re.False(m.IsDefined("pattern"))
	re.True(m.Child("log").IsDefined("level"))
	re.NoError(m.CheckUndecoded())

	missing := filepath.Join(t.TempDir(), "missing.toml")
	_, err = ConfigFromFile(cfg, missing)
	re.True(errs.ErrLoadConfig.Equal(err))
	re.Contains(err.Error(), "[BST:config:ErrLoadConfig]load config "+missing+" failed")
	re.Equal(1, strings.Count(err.Error(), "no such file or directory"))

	broken := writeConfig(t, "size = [")
	_, err = ConfigFromFile(cfg, broken)
	re.True(errs.ErrLoadConfig.Equal(err))
}

func TestCheckUndecoded(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	path := writeConfig(t, `
size = 10
colour = "red"
`)
	meta, err := ConfigFromFile(&testConfig{}, path)
	re.NoError(err)
	err = NewConfigMetadata(meta).CheckUndecoded()
	re.Error(err)
	re.Contains(err.Error(), "colour")
	re.NoError(NewConfigMetadata(nil).CheckUndecoded())
	re.False(NewConfigMetadata(nil).IsDefined("size"))
}

func TestAdjust(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("pattern", "", "")
	fs.Bool("verbose", false, "")
	fs.Int("size", 100, "")
	re.NoError(fs.Parse([]string{"--pattern=sorted", "--verbose"}))

	var (
		pattern = "random"
		verbose bool
		size    = 7
	)
	AdjustCommandlineString(fs, &pattern, "pattern")
	AdjustCommandlineBool(fs, &verbose, "verbose")
	AdjustCommandlineInt(fs, &size, "size")
	re.Equal("sorted", pattern)
	re.True(verbose)
	// unchanged flags keep the configured value
	re.Equal(7, size)

	re.NoError(fs.Parse([]string{"--size=3"}))
	AdjustCommandlineInt(fs, &size, "size")
	re.Equal(3, size)

	var s string
	AdjustString(&s, "in-order")
	re.Equal("in-order", s)
	n := 0
	AdjustInt(&n, 5)
	re.Equal(5, n)
	AdjustInt(&n, 9)
	re.Equal(5, n)
}
