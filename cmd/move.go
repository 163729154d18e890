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

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sste9512/Vortex/cmd/config"
	"github.com/sste9512/Vortex/pkg/fsops"
)

func NewMoveCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "move SOURCE DEST",
		Short: "Move a file or directory, falling back to copy across devices",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ReadConfigRun(viper.GetString("config-dir"))
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return fsops.NewFsOps(cfg).Move(args[0], args[1])
		},
	}
	root.AddCommand(c)
	return c
}

var _ = NewMoveCmd(rootCmd)
