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

package types

// BusyChoice is the decision returned by the file-busy prompt.
type BusyChoice int

const (
	BusyRetry BusyChoice = iota
	BusyCancel
)

// AccessChoice is the decision returned by the access-denied prompt. Grant
// asks for the target path permissions to be granted through the elevation
// facility before retrying.
type AccessChoice int

const (
	AccessRetry AccessChoice = iota
	AccessGrant
	AccessCancel
)

// Prompter is the interactive surface consulted when an operation hits a
// busy or permission error. Implementations block the calling operation
// only, never the rest of the system. When no interactive surface exists
// the non-interactive prompter auto-resolves to retry, see pkg/prompt.
type Prompter interface {
	AskBusy(path string) (BusyChoice, error)
	AskAccessDenied(path string) (AccessChoice, error)
}
