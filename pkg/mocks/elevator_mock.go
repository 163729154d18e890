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
	"github.com/sste9512/Vortex/pkg/types"
)

// FakeElevator records elevation requests and optionally performs a side
// effect in place of the real privileged helper.
type FakeElevator struct {
	Requests    []*types.ElevationRequest
	ReturnError error
	SideEffect  func(req *types.ElevationRequest) error
}

func NewFakeElevator() *FakeElevator {
	return &FakeElevator{}
}

func (e *FakeElevator) Elevate(req *types.ElevationRequest) error {
	e.Requests = append(e.Requests, req)
	if e.SideEffect != nil {
		return e.SideEffect(req)
	}
	return e.ReturnError
}
