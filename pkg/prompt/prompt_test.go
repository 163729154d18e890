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

package prompt_test

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sste9512/Vortex/pkg/prompt"
	"github.com/sste9512/Vortex/pkg/types"
)

func TestPromptSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Prompt test suite")
}

var _ = Describe("Console", Label("prompt"), func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = &bytes.Buffer{}
	})

	console := func(input string) *prompt.Console {
		return prompt.NewConsole(strings.NewReader(input), out, types.NewNullLogger())
	}

	Describe("busy prompt", func() {
		It("accepts short and long answers", func() {
			choice, err := console("r\n").AskBusy("/some/file")
			Expect(err).To(BeNil())
			Expect(choice).To(Equal(types.BusyRetry))

			choice, err = console("cancel\n").AskBusy("/some/file")
			Expect(err).To(BeNil())
			Expect(choice).To(Equal(types.BusyCancel))
		})
		It("is case insensitive and trims whitespace", func() {
			choice, err := console("  RETRY  \n").AskBusy("/some/file")
			Expect(err).To(BeNil())
			Expect(choice).To(Equal(types.BusyRetry))
		})
		It("asks again after an invalid answer", func() {
			choice, err := console("what\nr\n").AskBusy("/some/file")
			Expect(err).To(BeNil())
			Expect(choice).To(Equal(types.BusyRetry))
			Expect(strings.Count(out.String(), "open in another application")).To(Equal(2))
		})
		It("mentions the contended path", func() {
			_, err := console("c\n").AskBusy("/locked/file.txt")
			Expect(err).To(BeNil())
			Expect(out.String()).To(ContainSubstring("/locked/file.txt"))
		})
		It("aborts when the input closes", func() {
			choice, err := console("").AskBusy("/some/file")
			Expect(err).NotTo(BeNil())
			Expect(choice).To(Equal(types.BusyCancel))
		})
	})

	Describe("access-denied prompt", func() {
		It("resolves all three answers", func() {
			choice, err := console("g\n").AskAccessDenied("/protected")
			Expect(err).To(BeNil())
			Expect(choice).To(Equal(types.AccessGrant))

			choice, err = console("retry\n").AskAccessDenied("/protected")
			Expect(err).To(BeNil())
			Expect(choice).To(Equal(types.AccessRetry))

			choice, err = console("c\n").AskAccessDenied("/protected")
			Expect(err).To(BeNil())
			Expect(choice).To(Equal(types.AccessCancel))
		})
		It("accepts an answer on the last line without a newline", func() {
			choice, err := console("grant").AskAccessDenied("/protected")
			Expect(err).To(BeNil())
			Expect(choice).To(Equal(types.AccessGrant))
		})
	})
})

var _ = Describe("NonInteractive", Label("prompt"), func() {
	It("retries busy files without asking", func() {
		p := prompt.NewNonInteractive(types.NewNullLogger())
		choice, err := p.AskBusy("/some/file")
		Expect(err).To(BeNil())
		Expect(choice).To(Equal(types.BusyRetry))
	})
	It("grants permission without asking", func() {
		p := prompt.NewNonInteractive(types.NewNullLogger())
		choice, err := p.AskAccessDenied("/some/file")
		Expect(err).To(BeNil())
		Expect(choice).To(Equal(types.AccessGrant))
	})
})
