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

package types_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sste9512/Vortex/pkg/types"
)

var _ = Describe("runner", Label("runner"), func() {
	It("runs commands on the real Runner", func() {
		r := types.RealRunner{}
		_, err := r.Run("pwd")
		Expect(err).To(BeNil())
	})
	It("returns the command output", func() {
		r := types.RealRunner{}
		out, err := r.Run("echo", "hello")
		Expect(err).To(BeNil())
		Expect(string(out)).To(ContainSubstring("hello"))
	})
	It("fails on non existing commands", func() {
		r := types.RealRunner{}
		_, err := r.Run("thiscommanddoesnotexist")
		Expect(err).NotTo(BeNil())
	})
	It("checks when a command exists", func() {
		r := types.RealRunner{}
		Expect(r.CommandExists("echo")).To(BeTrue())
		Expect(r.CommandExists("thiscommanddoesnotexist")).To(BeFalse())
	})
	It("logs the command when a logger is attached", func() {
		b := &bytes.Buffer{}
		logger := types.NewBufferLogger(b)
		logger.SetLevel(types.DebugLevel())
		r := types.RealRunner{}
		r.SetLogger(logger)
		_, _ = r.Run("echo", "logged")
		Expect(b.String()).To(ContainSubstring("Running cmd"))
	})
})
