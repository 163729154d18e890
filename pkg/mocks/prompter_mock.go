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

// FakePrompter scripts prompt answers. Choices are consumed in order, the
// last one repeats once the script runs out.
type FakePrompter struct {
	BusyChoices   []types.BusyChoice
	AccessChoices []types.AccessChoice
	ReturnError   error

	BusyPaths   []string
	AccessPaths []string
}

func NewFakePrompter() *FakePrompter {
	return &FakePrompter{}
}

func (p *FakePrompter) AskBusy(path string) (types.BusyChoice, error) {
	p.BusyPaths = append(p.BusyPaths, path)
	if p.ReturnError != nil {
		return types.BusyCancel, p.ReturnError
	}
	if len(p.BusyChoices) == 0 {
		return types.BusyRetry, nil
	}
	choice := p.BusyChoices[0]
	if len(p.BusyChoices) > 1 {
		p.BusyChoices = p.BusyChoices[1:]
	}
	return choice, nil
}

func (p *FakePrompter) AskAccessDenied(path string) (types.AccessChoice, error) {
	p.AccessPaths = append(p.AccessPaths, path)
	if p.ReturnError != nil {
		return types.AccessCancel, p.ReturnError
	}
	if len(p.AccessChoices) == 0 {
		return types.AccessRetry, nil
	}
	choice := p.AccessChoices[0]
	if len(p.AccessChoices) > 1 {
		p.AccessChoices = p.AccessChoices[1:]
	}
	return choice, nil
}
