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
	"errors"

	"github.com/spf13/cobra"
	"github.com/twpayne/go-vfs"

	"github.com/sste9512/Vortex/pkg/constants"
	"github.com/sste9512/Vortex/pkg/elevate"
	"github.com/sste9512/Vortex/pkg/types"
)

// NewElevatedHelperCmd is the entry point of the elevated helper process.
// It is spawned through the OS elevation facility by the elevation
// protocol, never invoked by users directly.
func NewElevatedHelperCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:     constants.HelperCmd,
		Hidden:  true,
		Short:   "Execute one privileged filesystem operation and report back",
		PreRunE: func(_ *cobra.Command, _ []string) error { return CheckRoot() },
		RunE: func(cmd *cobra.Command, _ []string) error {
			socket, _ := cmd.Flags().GetString("socket")
			if socket == "" {
				return errors.New("missing --socket")
			}
			cmd.SilenceUsage = true
			return elevate.Serve(vfs.OSFS, types.NewLogger(), socket)
		},
	}
	root.AddCommand(c)
	c.Flags().String("socket", "", "Session socket to connect back to")
	return c
}

var _ = NewElevatedHelperCmd(rootCmd)
