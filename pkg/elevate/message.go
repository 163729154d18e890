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

// Package elevate implements the cross-process privilege elevation
// protocol. Each elevation request gets its own short-lived session: a
// freshly generated identifier, a private unix socket the elevated helper
// connects back to, and a helper process spawned through the OS elevation
// facility. The helper executes exactly one operation and reports the
// outcome over the socket before exiting.
package elevate

// Response is the completion report the elevated helper sends back over
// the session socket. Code carries the normalized error code when the
// requested operation failed inside the helper.
type Response struct {
	ID    string `json:"id"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
	Code  int    `json:"code,omitempty"`
}
