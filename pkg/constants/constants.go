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

package constants

import (
	"os"
	"time"
)

const (
	DirPerm        = os.ModeDir | os.ModePerm
	FilePerm       = 0666
	NoWriteDirPerm = 0555 | os.ModeDir
	SocketPerm     = 0600

	// RmdirRetries is the attempt bound for directory removal under
	// transient contention. Retries are automatic, no prompt involved.
	RmdirRetries    = 3
	RmdirRetryDelay = 100 * time.Millisecond

	// ElevationCmd is the default OS facility used to request an
	// elevated helper process.
	ElevationCmd = "pkexec"

	// SocketPrefix is the base name of the per-session unix socket the
	// elevated helper connects back to. The session ID is appended so
	// concurrent elevations never collide on the same channel.
	SocketPrefix = "vortexfs-elevate-"

	// HelperCmd is the hidden subcommand executed by the elevated
	// helper process.
	HelperCmd = "elevated-helper"

	// EnvFile is the optional env-file read for configuration defaults
	// before flags and environment variables are applied.
	EnvFile = "/etc/vortex/fsops.env"
)

// GetSocketDir returns the directory where elevation session sockets live.
func GetSocketDir() string {
	if dir := os.Getenv("VORTEX_SOCKET_DIR"); dir != "" {
		return dir
	}
	return os.TempDir()
}
