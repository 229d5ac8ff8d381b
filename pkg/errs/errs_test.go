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

package errs

import (
	"testing"

	"github.com/pingcap/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestErrorEqual(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	err1 := ErrUnknownOrder.FastGenByArgs("zigzag")
	err2 := ErrUnknownOrder.FastGenByArgs("zigzag")
	re.True(errors.ErrorEqual(err1, err2))
	re.Contains(err1.Error(), "zigzag")
	re.Contains(err1.Error(), "BST:tree:ErrUnknownOrder")

	err3 := ErrUnknownPattern.FastGenByArgs("zigzag")
	re.False(errors.ErrorEqual(err1, err3))
	re.True(ErrUnknownPattern.Equal(err3))
}

func TestZapError(t *testing.T) {
	t.Parallel()
	re := require.New(t)
	re.Equal(zap.Skip(), ZapError(nil))

	field := ZapError(ErrInitLogger)
	re.Equal("error", field.Key)
	re.Equal(zapcore.ErrorType, field.Type)
	re.Contains(field.Interface.(error).Error(), "init logger error")

	cause := errors.New("disk full")
	field = ZapError(ErrLoadConfig, cause)
	re.Contains(field.Interface.(error).Error(), "disk full")
}
