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

import "github.com/pingcap/errors"

// container errors
var (
	ErrContainerEmpty = errors.Normalize("%s is empty", errors.RFCCodeText("BST:container:ErrContainerEmpty"))
)

// tree errors
var (
	ErrTreeOrderViolated = errors.Normalize("value %v breaks the ordering of its ancestor %v", errors.RFCCodeText("BST:tree:ErrTreeOrderViolated"))
	ErrUnknownOrder      = errors.Normalize("unknown traversal order %q", errors.RFCCodeText("BST:tree:ErrUnknownOrder"))
	ErrNilCompareFunc    = errors.Normalize("compare function is nil", errors.RFCCodeText("BST:tree:ErrNilCompareFunc"))
)

// workload errors
var (
	ErrUnknownPattern = errors.Normalize("unknown workload pattern %q", errors.RFCCodeText("BST:workload:ErrUnknownPattern"))
	ErrInvalidSize    = errors.Normalize("invalid workload size %d", errors.RFCCodeText("BST:workload:ErrInvalidSize"))
)

// tool errors
var (
	ErrInvalidValue  = errors.Normalize("invalid value %q", errors.RFCCodeText("BST:ctl:ErrInvalidValue"))
	ErrBenchUnsorted = errors.Normalize("cycle %d produced an unsorted sequence at position %d", errors.RFCCodeText("BST:bench:ErrBenchUnsorted"))
)

// config errors
var (
	ErrLoadConfig = errors.Normalize("load config %s failed, %v", errors.RFCCodeText("BST:config:ErrLoadConfig"))
)

// log errors
var (
	ErrInitLogger = errors.Normalize("init logger error", errors.RFCCodeText("BST:log:ErrInitLogger"))
)
