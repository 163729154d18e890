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

func NewRemoveCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "remove PATH",
		Short: "Delete a path, succeeding if it is already gone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ReadConfigRun(viper.GetString("config-dir"))
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			ops := fsops.NewFsOps(cfg)
			if dirOnly, _ := cmd.Flags().GetBool("rmdir"); dirOnly {
				return ops.Rmdir(args[0])
			}
			return ops.Remove(args[0])
		},
	}
	root.AddCommand(c)
	c.Flags().Bool("rmdir", false, "Only remove an empty directory, with bounded automatic retries")
	return c
}

var _ = NewRemoveCmd(rootCmd)
