/*
   Copyright 2025 The DIRPX Authors.

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

package main

import (
	"github.com/spf13/cobra"

	"dirpx.dev/rfactory/config"
)

func newConfigCmd(opts *options) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration as YAML. Values missing from the
configuration file are filled in with built-in defaults.

Examples:
  rfactory config
  rfactory config -c rfactory.yml --check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fam, err := opts.families(cmd)
			if err != nil {
				return err
			}
			if check {
				printSuccess(cmd.OutOrStdout(), "Configuration is valid")
				return nil
			}
			return config.Encode(cmd.OutOrStdout(), fam)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "only validate the configuration")
	return cmd
}
