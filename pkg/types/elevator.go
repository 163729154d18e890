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

import "os"

// Elevation request operations. Each elevated helper process executes
// exactly one of these before exiting.
const (
	ElevateGrant   = "grant"
	ElevateRemove  = "remove"
	ElevateRename  = "rename"
	ElevateMkdir   = "mkdir"
	ElevateChmod   = "chmod"
	ElevateWrite   = "write"
	ElevateSymlink = "symlink"
)

// ElevationRequest describes the single operation an elevated helper
// process is asked to perform. Target is the second path for rename and
// symlink, Mode applies to grant, mkdir, chmod and write.
type ElevationRequest struct {
	ID     string      `json:"id"`
	Op     string      `json:"op"`
	Path   string      `json:"path"`
	Target string      `json:"target,omitempty"`
	Mode   os.FileMode `json:"mode,omitempty"`
	Data   []byte      `json:"data,omitempty"`
}

// Elevator runs a single privileged operation out of process. Implementations
// must report OS rejection of the elevation request itself (the user
// declining the elevation dialog) as a distinguished cancellation, not a
// generic failure.
type Elevator interface {
	Elevate(req *ElevationRequest) error
}
