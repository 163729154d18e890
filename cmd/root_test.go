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

package cmd

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Root", Label("root", "cmd"), func() {
	BeforeEach(func() {
		rootCmd = NewRootCmd()
		_ = NewCopyCmd(rootCmd)
		_ = NewMoveCmd(rootCmd)
		_ = NewRemoveCmd(rootCmd)
		_ = NewMkdirCmd(rootCmd)
		_ = NewElevatedHelperCmd(rootCmd)
		_ = NewVersionCmd(rootCmd)
	})
	It("lists the file operation commands", func() {
		_, output, err := executeCommandC(rootCmd, "help")
		Expect(err).To(BeNil())
		Expect(output).To(ContainSubstring("copy"))
		Expect(output).To(ContainSubstring("move"))
		Expect(output).To(ContainSubstring("remove"))
		Expect(output).To(ContainSubstring("mkdir"))
	})
	It("keeps the elevated helper out of the help output", func() {
		_, output, err := executeCommandC(rootCmd, "help")
		Expect(err).To(BeNil())
		Expect(output).NotTo(ContainSubstring("elevated-helper"))
	})
	It("rejects a wrong number of arguments", func() {
		_, _, err := executeCommandC(rootCmd, "copy", "/only-one")
		Expect(err).NotTo(BeNil())
	})
})
