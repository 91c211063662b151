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
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dirpx.dev/rfactory/config"
)

var (
	// Colors
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	keyColor     = color.New(color.FgYellow)
)

// options are the global flags shared by every subcommand.
type options struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "rfactory",
		Short: "Inspect renderer factory resolution",
		Long: `rfactory shows how logical renderer names are resolved.

Examples:
  rfactory plan SideBySide
  rfactory plan unified --family line
  rfactory config -c rfactory.yml`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML configuration file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(newPlanCmd(opts), newConfigCmd(opts))
	return cmd
}

// logger returns a text logger on w; debug records are kept only in verbose mode.
func (o *options) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// families loads the configuration file, or the built-in defaults when no
// file was given.
func (o *options) families(cmd *cobra.Command) (config.Families, error) {
	if o.configPath == "" {
		if o.verbose {
			printInfo(cmd.ErrOrStderr(), "Using built-in configuration")
		}
		return config.DefaultFamilies(), nil
	}
	fam, err := config.Load(o.configPath)
	if err != nil {
		return config.Families{}, err
	}
	if o.verbose {
		printInfo(cmd.ErrOrStderr(), "Using %s", o.configPath)
	}
	return fam, nil
}

// Helper functions for consistent output
func printSuccess(w io.Writer, format string, args ...any) {
	successColor.Fprintf(w, "✓ "+format+"\n", args...)
}

func printInfo(w io.Writer, format string, args ...any) {
	infoColor.Fprintf(w, "ℹ "+format+"\n", args...)
}
