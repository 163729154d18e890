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

func NewCopyCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "copy SOURCE DEST",
		Short: "Copy a file, recovering from busy and permission errors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ReadConfigRun(viper.GetString("config-dir"))
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			var opts []fsops.CopyOption
			if skip, _ := cmd.Flags().GetBool("skip-same-file-check"); skip {
				opts = append(opts, fsops.SkipSameFileCheck())
			}
			return fsops.NewFsOps(cfg).Copy(args[0], args[1], opts...)
		},
	}
	root.AddCommand(c)
	c.Flags().Bool("skip-same-file-check", false, "Do not verify source and destination are distinct files")
	return c
}

var _ = NewCopyCmd(rootCmd)
