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

// Package fsops is the public surface of the resilient filesystem
// operations layer. Every exported method wraps one primitive operation in
// a retry loop that classifies OS failures and recovers through fixed
// delays, interactive prompts or privilege elevation. Operations are
// independent of each other, callers may run any number of them
// concurrently.
package fsops

import (
	goerrors "errors"
	"os"
	"syscall"
	"time"

	fserror "github.com/sste9512/Vortex/pkg/error"
	"github.com/sste9512/Vortex/pkg/types"
	"github.com/sste9512/Vortex/pkg/utils"
)

// FsOps performs filesystem operations with retry, prompt and elevation
// recovery per the injected configuration.
type FsOps struct {
	config *types.Config
}

func NewFsOps(config *types.Config) *FsOps {
	return &FsOps{config: config}
}

// failDirect marks an error as not recoverable regardless of its code, the
// retry loop fails it without classification. Used for the rename rule
// where the destination turns out to be an existing directory.
type failDirect struct {
	err error
}

func (e *failDirect) Error() string {
	return e.err.Error()
}

func (e *failDirect) Unwrap() error {
	return e.err
}

// loopState tracks per-operation recovery facts across retries.
type loopState struct {
	attempts        int
	elevationDenied bool
}

// run invokes primitive until it succeeds, a failure is classified as
// tolerable, or recovery is exhausted. Retries re-invoke the identical
// primitive, the loop is explicit so stack depth stays flat under
// long-running contention.
func (f *FsOps) run(kind OpKind, path string, primitive func() error) error {
	logger := f.config.Logger
	state := &loopState{}
	for {
		err := primitive()
		if err == nil {
			return nil
		}

		var direct *failDirect
		if goerrors.As(err, &direct) {
			return fserror.NewFromError(kind.String(), failingPath(direct.err, path), direct.err)
		}

		code := fserror.NormalizeCode(err)
		switch classify(code, kind) {
		case DecisionIgnore:
			logger.Debugf("%s '%s': tolerating %s", kind, path, code)
			return nil
		case DecisionRetryAfterDelay:
			state.attempts++
			if state.attempts >= f.config.RmdirAttempts {
				return fserror.NewFromError(kind.String(), failingPath(err, path), err)
			}
			logger.Debugf("%s '%s': %s, retrying (%d/%d)", kind, path, code,
				state.attempts, f.config.RmdirAttempts)
			time.Sleep(f.config.RmdirDelay)
		case DecisionAskUser:
			rErr := f.recover(code, kind, failingPath(err, path), state)
			if rErr != nil {
				return rErr
			}
		default:
			return fserror.NewFromError(kind.String(), failingPath(err, path), err)
		}
	}
}

// recover executes the user-gated branch of a decision. A nil return means
// retry the primitive, anything else is terminal for the operation.
func (f *FsOps) recover(code fserror.Code, kind OpKind, path string, state *loopState) error {
	op := kind.String()
	if code == fserror.Busy {
		choice, err := f.config.Prompter.AskBusy(path)
		if err != nil {
			return fserror.NewFromError(op, path, err)
		}
		if choice == types.BusyCancel {
			return fserror.Canceled(op, path)
		}
		return nil
	}

	choice, err := f.config.Prompter.AskAccessDenied(path)
	if err != nil {
		return fserror.NewFromError(op, path, err)
	}
	switch choice {
	case types.AccessCancel:
		return fserror.Canceled(op, path)
	case types.AccessRetry:
		return nil
	}

	// grant permission through the elevation facility
	if state.elevationDenied {
		// the OS already declined once during this operation, surface it
		// instead of prompting forever
		return fserror.Rejected(op, path)
	}
	eErr := f.config.Elevator.Elevate(&types.ElevationRequest{
		Op:   types.ElevateGrant,
		Path: path,
		Mode: 0700,
	})
	if eErr == nil {
		return nil
	}
	if fserror.IsElevationRejected(eErr) {
		f.config.Logger.Warnf("elevation request for '%s' rejected", path)
		state.elevationDenied = true
		return nil
	}
	return eErr
}

// failingPath prefers the path the OS actually reported over the one the
// wrapper was invoked with, so prompts and errors point at the right file.
func failingPath(err error, fallback string) string {
	var pathErr *os.PathError
	if goerrors.As(err, &pathErr) && pathErr.Path != "" {
		return pathErr.Path
	}
	var linkErr *os.LinkError
	if goerrors.As(err, &linkErr) && linkErr.New != "" {
		return linkErr.New
	}
	return fallback
}

// Stat returns file info for path.
func (f *FsOps) Stat(path string) (os.FileInfo, error) {
	var fi os.FileInfo
	err := f.run(OpStat, path, func() (err error) {
		fi, err = f.config.Fs.Stat(path)
		return err
	})
	return fi, err
}

// Lstat returns file info for path without following symlinks.
func (f *FsOps) Lstat(path string) (os.FileInfo, error) {
	var fi os.FileInfo
	err := f.run(OpLstat, path, func() (err error) {
		fi, err = f.config.Fs.Lstat(path)
		return err
	})
	return fi, err
}

// ReadFile reads the whole file at path.
func (f *FsOps) ReadFile(path string) ([]byte, error) {
	var data []byte
	err := f.run(OpReadFile, path, func() (err error) {
		data, err = f.config.Fs.ReadFile(path)
		return err
	})
	return data, err
}

// WriteFile writes data to path with the given mode.
func (f *FsOps) WriteFile(path string, data []byte, perm os.FileMode) error {
	return f.run(OpWriteFile, path, func() error {
		return f.config.Fs.WriteFile(path, data, perm)
	})
}

// CopyOptions tune a single Copy call.
type CopyOptions struct {
	// SkipSameFileCheck disables the source/destination identity
	// pre-flight for callers that can guarantee distinctness themselves.
	SkipSameFileCheck bool
}

type CopyOption func(*CopyOptions)

func SkipSameFileCheck() CopyOption {
	return func(o *CopyOptions) {
		o.SkipSameFileCheck = true
	}
}

// Copy copies the file at src to dst. Unless opted out, both paths are
// first resolved to their filesystem identity and a self-copy is refused
// before the primitive ever runs.
func (f *FsOps) Copy(src, dst string, opts ...CopyOption) error {
	options := &CopyOptions{}
	for _, o := range opts {
		o(options)
	}
	if !options.SkipSameFileCheck {
		same, err := sameFile(f.config.Fs, src, dst)
		if err != nil {
			return fserror.NewFromError(OpCopy.String(), failingPath(err, src), err)
		}
		if same {
			return fserror.New(OpCopy.String(), src, fserror.Unknown,
				"source and destination are the same file")
		}
	}
	return f.run(OpCopy, dst, func() error {
		return utils.CopyFile(f.config.Fs, src, dst)
	})
}

// Move renames src to dst, falling back to a copy plus delete when the
// rename crosses devices.
func (f *FsOps) Move(src, dst string) error {
	return f.run(OpMove, dst, func() error {
		err := f.config.Fs.Rename(src, dst)
		if err == nil || !goerrors.Is(err, syscall.EXDEV) {
			return err
		}
		isDir, sErr := utils.IsDir(f.config.Fs, src)
		if sErr != nil {
			return sErr
		}
		if isDir {
			if cErr := utils.CopyTree(f.config.Fs, src, dst); cErr != nil {
				return cErr
			}
		} else {
			if cErr := utils.CopyFile(f.config.Fs, src, dst); cErr != nil {
				return cErr
			}
		}
		return f.config.Fs.RemoveAll(src)
	})
}

// Rename renames src to dst. A permission error against an existing
// destination directory is not recoverable by retrying and fails at once.
func (f *FsOps) Rename(src, dst string) error {
	return f.run(OpRename, src, func() error {
		err := f.config.Fs.Rename(src, dst)
		if err != nil && fserror.NormalizeCode(err) == fserror.PermissionDenied {
			if isDir, sErr := utils.IsDir(f.config.Fs, dst); sErr == nil && isDir {
				return &failDirect{err: err}
			}
		}
		return err
	})
}

// Remove deletes path and anything below it. Removing something already
// gone is success.
func (f *FsOps) Remove(path string) error {
	return f.run(OpRemove, path, func() error {
		return f.config.Fs.RemoveAll(path)
	})
}

// Unlink deletes the file at path. Idempotent like Remove.
func (f *FsOps) Unlink(path string) error {
	return f.run(OpUnlink, path, func() error {
		return f.config.Fs.Remove(path)
	})
}

// Rmdir deletes the directory at path with bounded automatic retries
// against transient contention. No prompting on this path.
func (f *FsOps) Rmdir(path string) error {
	return f.run(OpRmdir, path, func() error {
		return f.config.Fs.Remove(path)
	})
}

// Mkdir creates the directory at path, tolerating an already existing one.
func (f *FsOps) Mkdir(path string, perm os.FileMode) error {
	return f.run(OpMkdir, path, func() error {
		return f.config.Fs.Mkdir(path, perm)
	})
}

// EnsureDir creates path and all missing parents.
func (f *FsOps) EnsureDir(path string, perm os.FileMode) error {
	return f.run(OpMkdir, path, func() error {
		return utils.MkdirAll(f.config.Fs, path, perm)
	})
}

// Link creates a hard link at newname pointing to oldname.
func (f *FsOps) Link(oldname, newname string) error {
	return f.run(OpLink, newname, func() error {
		return utils.Link(f.config.Fs, oldname, newname)
	})
}

// Symlink creates a symbolic link at newname pointing to oldname.
func (f *FsOps) Symlink(oldname, newname string) error {
	return f.run(OpSymlink, newname, func() error {
		return f.config.Fs.Symlink(oldname, newname)
	})
}

// Chmod changes the mode of path.
func (f *FsOps) Chmod(path string, mode os.FileMode) error {
	return f.run(OpChmod, path, func() error {
		return f.config.Fs.Chmod(path, mode)
	})
}

// Utimes changes the access and modification times of path.
func (f *FsOps) Utimes(path string, atime, mtime time.Time) error {
	return f.run(OpUtimes, path, func() error {
		return f.config.Fs.Chtimes(path, atime, mtime)
	})
}
