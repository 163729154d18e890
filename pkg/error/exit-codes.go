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

package error

//
// Provided exit codes for the vortexfs CLI

// Operation failed after classification or exhausted retries
const OpFailure = 10

// The user canceled the operation at a prompt
const CanceledByUser = 11

// The OS rejected the elevation request
const ElevationDenied = 12

// The elevation channel failed before the helper reported completion
const ElevationChannelFailure = 13
