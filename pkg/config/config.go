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

package config

import (
	"github.com/twpayne/go-vfs"

	"github.com/sste9512/Vortex/pkg/constants"
	"github.com/sste9512/Vortex/pkg/elevate"
	"github.com/sste9512/Vortex/pkg/prompt"
	"github.com/sste9512/Vortex/pkg/types"
)

type GenericOptions func(a *types.Config) error

func WithFs(fs types.FS) func(r *types.Config) error {
	return func(r *types.Config) error {
		r.Fs = fs
		return nil
	}
}

func WithLogger(logger types.Logger) func(r *types.Config) error {
	return func(r *types.Config) error {
		r.Logger = logger
		return nil
	}
}

func WithRunner(runner types.Runner) func(r *types.Config) error {
	return func(r *types.Config) error {
		r.Runner = runner
		return nil
	}
}

func WithPrompter(prompter types.Prompter) func(r *types.Config) error {
	return func(r *types.Config) error {
		r.Prompter = prompter
		return nil
	}
}

func WithElevator(elevator types.Elevator) func(r *types.Config) error {
	return func(r *types.Config) error {
		r.Elevator = elevator
		return nil
	}
}

func WithRmdirRetries(attempts int) func(r *types.Config) error {
	return func(r *types.Config) error {
		r.RmdirAttempts = attempts
		return nil
	}
}

func WithElevationCmd(command string) func(r *types.Config) error {
	return func(r *types.Config) error {
		r.ElevationCmd = command
		return nil
	}
}

// NewConfig assembles a Config with the default collaborators: the real OS
// filesystem, a non-interactive prompter and the out-of-process elevation
// protocol. Options override any of them.
func NewConfig(opts ...GenericOptions) *types.Config {
	log := types.NewLogger()

	cfg := &types.Config{
		Fs:            vfs.OSFS,
		Logger:        log,
		Runner:        &types.RealRunner{Logger: log},
		RmdirAttempts: constants.RmdirRetries,
		RmdirDelay:    constants.RmdirRetryDelay,
		ElevationCmd:  constants.ElevationCmd,
		SocketDir:     constants.GetSocketDir(),
	}
	for _, o := range opts {
		err := o(cfg)
		if err != nil {
			log.Errorf("error applying config option: %s", err.Error())
			return nil
		}
	}

	if cfg.Prompter == nil {
		cfg.Prompter = prompt.NewNonInteractive(cfg.Logger)
	}
	if cfg.Elevator == nil {
		cfg.Elevator = elevate.NewProtocol(cfg)
	}
	return cfg
}
