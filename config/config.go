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

package config

import (
	"errors"
	"fmt"
	"slices"

	"dirpx.dev/rfactory/apis"
	"dirpx.dev/rfactory/rxapi/policy"
	"dirpx.dev/rfactory/utils/naming"
)

const (
	// RendererLabel labels the general renderer family in logs and metrics.
	RendererLabel = "renderer"
	// LineRendererLabel labels the line renderer family in logs and metrics.
	LineRendererLabel = "line_renderer"
	// LineRendererKind is the only namespace line renderers are looked up in.
	LineRendererKind = "Html/LineRenderer"
	// DefaultArgs is the default args policy: later constructor arguments
	// are ignored silently.
	DefaultArgs = policy.Ignore
)

// RendererKinds returns the ordered candidate namespaces for general
// renderers. HTML renderers are probed before text renderers.
func RendererKinds() []string {
	return []string{"Html", "Text"}
}

var (
	// ErrNoKinds is returned when a configuration has no candidate namespaces.
	ErrNoKinds = errors.New("config: no kinds configured")
	// ErrEmptyKind is returned when a kind is the empty string.
	ErrEmptyKind = errors.New("config: empty kind")
	// ErrDuplicateKind is returned when a kind appears more than once.
	ErrDuplicateKind = errors.New("config: duplicate kind")
	// ErrEmptyLabel is returned when the family label is empty.
	ErrEmptyLabel = errors.New("config: empty label")
)

// NewConfig constructs a renderer apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	return apply(DefaultConfig(), opts)
}

// NewLineRendererConfig constructs a line renderer apis.Config from the given options.
func NewLineRendererConfig(opts ...Option) apis.Config {
	return apply(LineRendererConfig(), opts)
}

// DefaultConfig is the general renderer configuration: probe every kind
// in RendererKinds, exact name casing.
func DefaultConfig() apis.Config {
	return apis.Config{
		Label:  RendererLabel,
		Kinds:  RendererKinds(),
		Naming: naming.Exact,
		Args:   DefaultArgs,
	}
}

// LineRendererConfig is the line renderer configuration: a single fixed
// namespace, names upper-cased on the first letter.
func LineRendererConfig() apis.Config {
	return apis.Config{
		Label:  LineRendererLabel,
		Kinds:  []string{LineRendererKind},
		Naming: naming.UpperFirst,
		Args:   DefaultArgs,
	}
}

// Validate reports whether cfg can drive a resolver.
func Validate(cfg apis.Config) error {
	if cfg.Label == "" {
		return ErrEmptyLabel
	}
	if len(cfg.Kinds) == 0 {
		return ErrNoKinds
	}
	seen := make(map[string]struct{}, len(cfg.Kinds))
	for i, k := range cfg.Kinds {
		if k == "" {
			return fmt.Errorf("%w at index %d", ErrEmptyKind, i)
		}
		if _, dup := seen[k]; dup {
			return fmt.Errorf("%w %q", ErrDuplicateKind, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithLabel sets the family label.
func WithLabel(label string) Option {
	return func(c *apis.Config) {
		c.Label = label
	}
}

// WithKinds replaces the candidate namespace list. The slice is copied.
func WithKinds(kinds ...string) Option {
	return func(c *apis.Config) {
		c.Kinds = slices.Clone(kinds)
	}
}

// WithNaming sets the name normalization mode.
func WithNaming(m naming.Mode) Option {
	return func(c *apis.Config) {
		c.Naming = m
	}
}

// WithArgsPolicy sets the args policy.
func WithArgsPolicy(p policy.Args) Option {
	return func(c *apis.Config) {
		c.Args = p
	}
}

func apply(cfg apis.Config, opts []Option) apis.Config {
	for _, opt := range opts {
		opt(&cfg)
	}
	// Never share the backing array with the caller or the preset.
	cfg.Kinds = slices.Clone(cfg.Kinds)
	return cfg
}
