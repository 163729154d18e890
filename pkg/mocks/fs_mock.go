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

package mocks

import (
	"os"
	"sync"
	"time"

	"github.com/sste9512/Vortex/pkg/types"
)

// FakeFS wraps a real filesystem and injects scripted failures per
// primitive, so retry loops can be driven through busy and permission
// errors deterministically. It also counts invocations per primitive.
type FakeFS struct {
	types.FS

	mu       sync.Mutex
	failures map[string][]error
	calls    map[string]int
}

func NewFakeFS(inner types.FS) *FakeFS {
	return &FakeFS{
		FS:       inner,
		failures: map[string][]error{},
		calls:    map[string]int{},
	}
}

// FailOnce queues err to be returned by the next call of the named
// primitive, after which calls pass through again.
func (f *FakeFS) FailOnce(op string, err error) {
	f.FailTimes(op, err, 1)
}

// FailTimes queues err for the next n calls of the named primitive.
func (f *FakeFS) FailTimes(op string, err error, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := 0; i < n; i++ {
		f.failures[op] = append(f.failures[op], err)
	}
}

// AlwaysFail makes the named primitive fail with err on every call.
func (f *FakeFS) AlwaysFail(op string, err error) {
	// a generous queue, operations under test never get near this
	f.FailTimes(op, err, 1<<16)
}

// Calls returns how often the named primitive was invoked.
func (f *FakeFS) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *FakeFS) intercept(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	queue := f.failures[op]
	if len(queue) == 0 {
		return nil
	}
	f.failures[op] = queue[1:]
	return queue[0]
}

func (f *FakeFS) Stat(name string) (os.FileInfo, error) {
	if err := f.intercept("stat"); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FakeFS) Lstat(name string) (os.FileInfo, error) {
	if err := f.intercept("lstat"); err != nil {
		return nil, err
	}
	return f.FS.Lstat(name)
}

func (f *FakeFS) Open(name string) (*os.File, error) {
	if err := f.intercept("open"); err != nil {
		return nil, err
	}
	return f.FS.Open(name)
}

func (f *FakeFS) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	if err := f.intercept("openfile"); err != nil {
		return nil, err
	}
	return f.FS.OpenFile(name, flag, perm)
}

func (f *FakeFS) ReadFile(name string) ([]byte, error) {
	if err := f.intercept("readfile"); err != nil {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FakeFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	if err := f.intercept("writefile"); err != nil {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FakeFS) Mkdir(name string, perm os.FileMode) error {
	if err := f.intercept("mkdir"); err != nil {
		return err
	}
	return f.FS.Mkdir(name, perm)
}

func (f *FakeFS) Remove(name string) error {
	if err := f.intercept("remove"); err != nil {
		return err
	}
	return f.FS.Remove(name)
}

func (f *FakeFS) RemoveAll(name string) error {
	if err := f.intercept("removeall"); err != nil {
		return err
	}
	return f.FS.RemoveAll(name)
}

func (f *FakeFS) Rename(oldpath, newpath string) error {
	if err := f.intercept("rename"); err != nil {
		return err
	}
	return f.FS.Rename(oldpath, newpath)
}

func (f *FakeFS) Chmod(name string, mode os.FileMode) error {
	if err := f.intercept("chmod"); err != nil {
		return err
	}
	return f.FS.Chmod(name, mode)
}

func (f *FakeFS) Chown(name string, uid, gid int) error {
	if err := f.intercept("chown"); err != nil {
		return err
	}
	return f.FS.Chown(name, uid, gid)
}

func (f *FakeFS) Chtimes(name string, atime, mtime time.Time) error {
	if err := f.intercept("chtimes"); err != nil {
		return err
	}
	return f.FS.Chtimes(name, atime, mtime)
}

func (f *FakeFS) Symlink(oldname, newname string) error {
	if err := f.intercept("symlink"); err != nil {
		return err
	}
	return f.FS.Symlink(oldname, newname)
}
