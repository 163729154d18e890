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

// Package error provides the normalized error type shared by the filesystem
// operation wrappers, the classifier and the elevation facility. OS error
// numbers are folded into a small closed code set and every propagated
// failure carries the failing path plus a call-site trace, since errors
// surfaced by the OS often arrive with no useful origin attached.
package error

import (
	goerrors "errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/pkg/errors"
)

// Code is the normalized OS error code.
type Code int

const (
	Unknown Code = iota
	NotFound
	Busy
	PermissionDenied
	AlreadyExists
)

func (c Code) String() string {
	switch c {
	case NotFound:
		return "not found"
	case Busy:
		return "busy"
	case PermissionDenied:
		return "permission denied"
	case AlreadyExists:
		return "already exists"
	}
	return "unknown"
}

// Kind distinguishes terminal outcomes the caller must not retry (a human
// decision) from ordinary system faults.
type Kind int

const (
	GenericIO Kind = iota
	UserCanceled
	ElevationRejected
	ElevationChannel
)

// OpError is the failure type returned by every operation wrapper. It keeps
// the original normalized code, the failing path and a trace captured at
// the dispatching call site.
type OpError struct {
	Op   string
	Path string
	Code Code
	Kind Kind
	err  error
}

func (e *OpError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("primitive failed: %s", e.err.Error())
	}
	return fmt.Sprintf("primitive failed: %s %s: %s", e.Op, e.Path, e.Code)
}

func (e *OpError) Unwrap() error {
	return e.err
}

// Format prints the captured call-site trace with %+v.
func (e *OpError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') && e.err != nil {
		fmt.Fprintf(s, "primitive failed: %+v", e.err)
		return
	}
	_, _ = io.WriteString(s, e.Error())
}

// ExitCode maps the error to a process exit code, used by the CLI.
func (e *OpError) ExitCode() int {
	switch e.Kind {
	case UserCanceled:
		return CanceledByUser
	case ElevationRejected:
		return ElevationDenied
	case ElevationChannel:
		return ElevationChannelFailure
	}
	return OpFailure
}

// New creates an OpError from a message, capturing the caller trace.
func New(op, path string, code Code, msg string) *OpError {
	return &OpError{Op: op, Path: path, Code: code, err: errors.New(msg)}
}

// NewFromError creates an OpError from an existing primitive error,
// normalizing its code and capturing the caller trace. Returns nil on a
// nil error so it can wrap primitive call results directly.
func NewFromError(op, path string, err error) *OpError {
	if err == nil {
		return nil
	}
	return &OpError{
		Op:   op,
		Path: path,
		Code: NormalizeCode(err),
		err:  errors.WithStack(err),
	}
}

// Canceled builds the distinguished user-cancellation outcome.
func Canceled(op, path string) *OpError {
	return &OpError{
		Op:   op,
		Path: path,
		Kind: UserCanceled,
		err:  errors.Errorf("%s %s: canceled by user", op, path),
	}
}

// Rejected builds the distinguished outcome for an OS-level rejection of
// the elevation request itself.
func Rejected(op, path string) *OpError {
	return &OpError{
		Op:   op,
		Path: path,
		Kind: ElevationRejected,
		err:  errors.Errorf("%s %s: elevation request rejected", op, path),
	}
}

// ChannelFailure builds an elevation channel error.
func ChannelFailure(op, path string, err error) *OpError {
	return &OpError{
		Op:   op,
		Path: path,
		Kind: ElevationChannel,
		err:  errors.WithStack(err),
	}
}

// AsOp extracts an OpError from an error chain.
func AsOp(err error) (*OpError, bool) {
	var opErr *OpError
	if goerrors.As(err, &opErr) {
		return opErr, true
	}
	return nil, false
}

// IsUserCanceled reports whether err is a user-cancellation outcome.
func IsUserCanceled(err error) bool {
	if opErr, ok := AsOp(err); ok {
		return opErr.Kind == UserCanceled
	}
	return false
}

// IsElevationRejected reports whether err is an OS rejection of an
// elevation request.
func IsElevationRejected(err error) bool {
	if opErr, ok := AsOp(err); ok {
		return opErr.Kind == ElevationRejected
	}
	return false
}

// IsCode reports whether err normalizes to the given code.
func IsCode(err error, code Code) bool {
	if opErr, ok := AsOp(err); ok {
		return opErr.Code == code
	}
	return NormalizeCode(err) == code
}

// NormalizeCode folds a raw OS error into the closed code set.
func NormalizeCode(err error) Code {
	if err == nil {
		return Unknown
	}
	var errno syscall.Errno
	if goerrors.As(err, &errno) {
		switch errno {
		case syscall.ENOENT, syscall.ENOTDIR:
			return NotFound
		case syscall.EBUSY, syscall.ETXTBSY, syscall.EAGAIN:
			return Busy
		case syscall.EACCES, syscall.EPERM, syscall.EROFS:
			return PermissionDenied
		case syscall.EEXIST:
			return AlreadyExists
		}
		return Unknown
	}
	switch {
	case os.IsNotExist(err):
		return NotFound
	case os.IsPermission(err):
		return PermissionDenied
	case os.IsExist(err):
		return AlreadyExists
	}
	return Unknown
}
