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
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"dirpx.dev/rfactory"
	"dirpx.dev/rfactory/apis"
)

const (
	familyRenderer = "renderer"
	familyLine     = "line"
)

func newPlanCmd(opts *options) *cobra.Command {
	family := familyRenderer

	cmd := &cobra.Command{
		Use:   "plan <name>",
		Short: "Show the namespaces a name is probed in",
		Long: `Print the candidate keys for a logical name, in probe order.
The first candidate with a registered constructor wins.

Examples:
  rfactory plan SideBySide
  rfactory plan unified --family line`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fam, err := opts.families(cmd)
			if err != nil {
				return err
			}

			var cfg apis.Config
			switch family {
			case familyRenderer:
				cfg = fam.Renderers
			case familyLine:
				cfg = fam.LineRenderers
			default:
				return fmt.Errorf("unknown family %q (want %q or %q)", family, familyRenderer, familyLine)
			}

			candidates, err := plan(cfg, args[0], opts.logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printInfo(out, "%s %q (naming: %s, args: %s)", cfg.Label, args[0], cfg.Naming, cfg.Args)
			for i, k := range candidates {
				fmt.Fprintf(out, "  %d. ", i+1)
				keyColor.Fprintln(out, k.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&family, "family", "f", familyRenderer, "factory family: renderer or line")
	return cmd
}

// plan builds a standalone family for cfg and returns its probe order for
// name. The process-wide families are left untouched.
func plan(cfg apis.Config, name string, logger *slog.Logger) ([]apis.Key, error) {
	f, err := rfactory.NewFamily[any](cfg, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s family: %w", cfg.Label, err)
	}
	logger.Debug("built resolver", "family", cfg.Label, "kinds", cfg.Kinds, "naming", cfg.Naming.String())
	return f.Resolver().Candidates(name), nil
}
