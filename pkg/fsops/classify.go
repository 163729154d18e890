/*
Copyright © 2024 - 2026 Vortex Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package fsops

import (
	fserror "github.com/sste9512/Vortex/pkg/error"
)

// OpKind identifies the primitive operation being retried. The classifier
// keys its rules on the (error code, operation kind) pair.
type OpKind int

const (
	OpStat OpKind = iota
	OpLstat
	OpReadFile
	OpWriteFile
	OpCopy
	OpMove
	OpRename
	OpRemove
	OpUnlink
	OpRmdir
	OpMkdir
	OpLink
	OpSymlink
	OpChmod
	OpUtimes
)

func (k OpKind) String() string {
	switch k {
	case OpStat:
		return "stat"
	case OpLstat:
		return "lstat"
	case OpReadFile:
		return "read"
	case OpWriteFile:
		return "write"
	case OpCopy:
		return "copy"
	case OpMove:
		return "move"
	case OpRename:
		return "rename"
	case OpRemove:
		return "remove"
	case OpUnlink:
		return "unlink"
	case OpRmdir:
		return "rmdir"
	case OpMkdir:
		return "mkdir"
	case OpLink:
		return "link"
	case OpSymlink:
		return "symlink"
	case OpChmod:
		return "chmod"
	case OpUtimes:
		return "utimes"
	}
	return "unknown"
}

// deletes reports whether the operation is an idempotent delete, where a
// missing target counts as success.
func (k OpKind) deletes() bool {
	return k == OpRemove || k == OpUnlink || k == OpRmdir
}

// Decision is the recovery action for a classified failure.
type Decision int

const (
	// DecisionFail propagates the original error enriched with the
	// captured call-site context.
	DecisionFail Decision = iota
	// DecisionIgnore resolves the operation as success.
	DecisionIgnore
	// DecisionRetryAfterDelay retries automatically after a fixed delay,
	// bounded by the configured attempt budget.
	DecisionRetryAfterDelay
	// DecisionAskUser defers to the busy or access-denied prompt, whose
	// grant branch escalates to elevation.
	DecisionAskUser
)

// classify maps a normalized error code and operation kind to a recovery
// decision. Pure function, no I/O.
//
// Directory removal gets bounded automatic retries instead of prompts:
// indexers and scanners hold freshly emptied directories open for a moment
// and a human answer adds nothing there.
func classify(code fserror.Code, kind OpKind) Decision {
	if kind == OpRmdir {
		switch code {
		case fserror.NotFound:
			return DecisionIgnore
		case fserror.Busy, fserror.PermissionDenied, fserror.Unknown:
			return DecisionRetryAfterDelay
		}
		return DecisionFail
	}

	switch code {
	case fserror.NotFound:
		if kind.deletes() {
			return DecisionIgnore
		}
	case fserror.AlreadyExists:
		// Some network and cloud-synced filesystem drivers report a
		// phantom existing directory, tolerated rather than propagated.
		if kind == OpMkdir {
			return DecisionIgnore
		}
	case fserror.Busy, fserror.PermissionDenied:
		return DecisionAskUser
	}
	return DecisionFail
}
