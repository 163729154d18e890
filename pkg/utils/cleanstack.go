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

package utils

import (
	"github.com/hashicorp/go-multierror"
)

type CleanFunc func() error

// CleanStack is a LIFO stack of teardown jobs. The elevation protocol uses
// it to release the session socket and reap the helper process in reverse
// setup order.
type CleanStack struct {
	jobs []CleanFunc
}

// NewCleanStack returns a new stack.
func NewCleanStack() *CleanStack {
	return &CleanStack{}
}

// Push adds a teardown job to the stack
func (clean *CleanStack) Push(cFunc CleanFunc) {
	clean.jobs = append(clean.jobs, cFunc)
}

// Pop removes and returns a job from the stack in last to first order.
func (clean *CleanStack) Pop() CleanFunc {
	if len(clean.jobs) == 0 {
		return nil
	}
	job := clean.jobs[len(clean.jobs)-1]
	clean.jobs = clean.jobs[:len(clean.jobs)-1]
	return job
}

// Cleanup runs the whole stack and aggregates any errors into the given one
func (clean *CleanStack) Cleanup(err error) error {
	var errs *multierror.Error
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	for job := clean.Pop(); job != nil; job = clean.Pop() {
		if jErr := job(); jErr != nil {
			errs = multierror.Append(errs, jErr)
		}
	}
	return errs.ErrorOrNil()
}
