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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/sste9512/Vortex/pkg/utils"
)

var _ = Describe("CleanStack", Label("utils"), func() {
	var cleaner *utils.CleanStack

	BeforeEach(func() {
		cleaner = utils.NewCleanStack()
	})

	It("runs jobs in reverse push order", func() {
		var order []int
		for i := 1; i <= 3; i++ {
			i := i
			cleaner.Push(func() error {
				order = append(order, i)
				return nil
			})
		}
		Expect(cleaner.Cleanup(nil)).To(BeNil())
		Expect(order).To(Equal([]int{3, 2, 1}))
	})

	It("keeps the original error and aggregates teardown failures", func() {
		cleaner.Push(func() error { return nil })
		cleaner.Push(func() error { return errors.New("teardown failed") })
		err := cleaner.Cleanup(errors.New("operation failed"))
		Expect(err).NotTo(BeNil())
		Expect(err.Error()).To(ContainSubstring("operation failed"))
		Expect(err.Error()).To(ContainSubstring("teardown failed"))
	})

	It("returns nil when nothing failed", func() {
		cleaner.Push(func() error { return nil })
		Expect(cleaner.Cleanup(nil)).To(BeNil())
	})

	It("pops jobs last to first", func() {
		cleaner.Push(func() error { return errors.New("first") })
		cleaner.Push(func() error { return errors.New("second") })
		job := cleaner.Pop()
		Expect(job).NotTo(BeNil())
		Expect(job().Error()).To(Equal("second"))
		Expect(cleaner.Cleanup(nil).Error()).To(ContainSubstring("first"))
	})
})
