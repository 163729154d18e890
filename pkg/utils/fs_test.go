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

package utils_test

import (
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/twpayne/go-vfs"
	"github.com/twpayne/go-vfs/vfst"

	"github.com/sste9512/Vortex/pkg/types"
	"github.com/sste9512/Vortex/pkg/utils"
)

func TestUtilsSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Utils test suite")
}

var _ = Describe("filesystem helpers", Label("utils"), func() {
	var fs types.FS
	var testFS *vfst.TestFS
	var cleanup func()

	BeforeEach(func() {
		var err error
		testFS, cleanup, err = vfst.NewTestFS(map[string]interface{}{
			"/etc/motd":        "welcome",
			"/srv/tree/a.txt":  "alpha",
			"/srv/tree/b/bee":  "bravo",
			"/srv/exec.sh":     "#!/bin/sh\n",
		})
		Expect(err).To(BeNil())
		fs = testFS
		Expect(fs.Chmod("/srv/exec.sh", 0755)).To(BeNil())
		Expect(fs.Symlink("a.txt", "/srv/tree/lnk")).To(BeNil())
	})

	AfterEach(func() {
		cleanup()
	})

	Describe("Exists and IsDir", func() {
		It("reports present and missing paths", func() {
			ok, err := utils.Exists(fs, "/etc/motd")
			Expect(err).To(BeNil())
			Expect(ok).To(BeTrue())
			ok, err = utils.Exists(fs, "/etc/shadow")
			Expect(err).To(BeNil())
			Expect(ok).To(BeFalse())
		})
		It("distinguishes files from directories", func() {
			isDir, err := utils.IsDir(fs, "/srv/tree")
			Expect(err).To(BeNil())
			Expect(isDir).To(BeTrue())
			isDir, err = utils.IsDir(fs, "/etc/motd")
			Expect(err).To(BeNil())
			Expect(isDir).To(BeFalse())
		})
	})

	Describe("MkdirAll", func() {
		It("creates nested directories and tolerates existing ones", func() {
			Expect(utils.MkdirAll(fs, "/var/lib/deep/dir", 0755)).To(BeNil())
			Expect(utils.MkdirAll(fs, "/var/lib/deep/dir", 0755)).To(BeNil())
			isDir, err := utils.IsDir(fs, "/var/lib/deep/dir")
			Expect(err).To(BeNil())
			Expect(isDir).To(BeTrue())
		})
		It("refuses to write through a read-only filesystem", func() {
			roFS := vfs.NewReadOnlyFS(testFS)
			err := utils.MkdirAll(roFS, "/var/lib/deep", 0755)
			Expect(err).NotTo(BeNil())
			Expect(os.IsPermission(err)).To(BeTrue())
		})
	})

	Describe("Link", func() {
		It("creates a hard link to the same inode", func() {
			Expect(utils.Link(fs, "/etc/motd", "/etc/motd.hard")).To(BeNil())
			orig, err := fs.Stat("/etc/motd")
			Expect(err).To(BeNil())
			linked, err := fs.Stat("/etc/motd.hard")
			Expect(err).To(BeNil())
			Expect(os.SameFile(orig, linked)).To(BeTrue())
		})
		It("refuses to write through a read-only filesystem", func() {
			roFS := vfs.NewReadOnlyFS(testFS)
			err := utils.Link(roFS, "/etc/motd", "/etc/motd.hard")
			Expect(err).NotTo(BeNil())
			Expect(os.IsPermission(err)).To(BeTrue())
		})
	})

	Describe("CopyFile", func() {
		It("copies content and preserves the source mode", func() {
			Expect(utils.CopyFile(fs, "/srv/exec.sh", "/srv/exec-copy.sh")).To(BeNil())
			data, err := fs.ReadFile("/srv/exec-copy.sh")
			Expect(err).To(BeNil())
			Expect(string(data)).To(Equal("#!/bin/sh\n"))
			fi, err := fs.Stat("/srv/exec-copy.sh")
			Expect(err).To(BeNil())
			Expect(fi.Mode().Perm()).To(Equal(os.FileMode(0755)))
		})
		It("overwrites an existing destination atomically", func() {
			Expect(fs.WriteFile("/srv/old.txt", []byte("stale"), 0644)).To(BeNil())
			Expect(utils.CopyFile(fs, "/etc/motd", "/srv/old.txt")).To(BeNil())
			data, err := fs.ReadFile("/srv/old.txt")
			Expect(err).To(BeNil())
			Expect(string(data)).To(Equal("welcome"))
		})
		It("fails on a missing source without touching the destination", func() {
			Expect(utils.CopyFile(fs, "/etc/nope", "/srv/out.txt")).NotTo(BeNil())
			ok, err := utils.Exists(fs, "/srv/out.txt")
			Expect(err).To(BeNil())
			Expect(ok).To(BeFalse())
		})
	})

	Describe("CopyTree", func() {
		It("replicates files, directories and symlinks", func() {
			Expect(utils.CopyTree(fs, "/srv/tree", "/dst")).To(BeNil())

			data, err := fs.ReadFile("/dst/a.txt")
			Expect(err).To(BeNil())
			Expect(string(data)).To(Equal("alpha"))

			data, err = fs.ReadFile("/dst/b/bee")
			Expect(err).To(BeNil())
			Expect(string(data)).To(Equal("bravo"))

			target, err := fs.Readlink("/dst/lnk")
			Expect(err).To(BeNil())
			Expect(target).To(Equal("a.txt"))
		})
	})

	Describe("temporary files", func() {
		It("creates temp dirs and files under the given directory", func() {
			name, err := utils.TempDir(fs, "/srv", "work")
			Expect(err).To(BeNil())
			isDir, err := utils.IsDir(fs, name)
			Expect(err).To(BeNil())
			Expect(isDir).To(BeTrue())

			f, err := utils.TempFile(fs, "/srv", "scratch")
			Expect(err).To(BeNil())
			defer f.Close()
			Expect(f.Name()).NotTo(BeEmpty())
		})
	})
})
