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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sste9512/Vortex/cmd/config"
	"github.com/sste9512/Vortex/pkg/fsops"
)

func NewMkdirCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "mkdir PATH",
		Short: "Create a directory, tolerating one that already exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ReadConfigRun(viper.GetString("config-dir"))
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			ops := fsops.NewFsOps(cfg)
			if parents, _ := cmd.Flags().GetBool("parents"); parents {
				return ops.EnsureDir(args[0], os.FileMode(0755))
			}
			return ops.Mkdir(args[0], os.FileMode(0755))
		},
	}
	root.AddCommand(c)
	c.Flags().BoolP("parents", "p", false, "Create missing parent directories as well")
	return c
}

var _ = NewMkdirCmd(rootCmd)
