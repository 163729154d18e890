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

import "time"

// Config carries the collaborators and tunables for the filesystem
// operations layer. Collaborators are always injected explicitly, there is
// no ambient lookup of dialogs or elevation facilities.
type Config struct {
	Fs       FS       `mapstructure:"-"`
	Logger   Logger   `mapstructure:"-"`
	Runner   Runner   `mapstructure:"-"`
	Prompter Prompter `mapstructure:"-"`
	Elevator Elevator `mapstructure:"-"`

	// RmdirAttempts and RmdirDelay bound the automatic retry loop used
	// for directory removal contention.
	RmdirAttempts int           `mapstructure:"rmdir-attempts"`
	RmdirDelay    time.Duration `mapstructure:"rmdir-delay"`

	// ElevationCmd is the OS facility used to request the elevated
	// helper process, e.g. pkexec.
	ElevationCmd string `mapstructure:"elevation-cmd"`

	// SocketDir is where per-session elevation sockets are created.
	SocketDir string `mapstructure:"socket-dir"`
}
