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

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/rfactory/apis"
	"dirpx.dev/rfactory/config"
	"dirpx.dev/rfactory/rxapi/policy"
	"dirpx.dev/rfactory/utils/naming"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	assert.Equal(t, config.RendererLabel, got.Label)
	assert.Equal(t, []string{"Html", "Text"}, got.Kinds)
	assert.Equal(t, naming.Exact, got.Naming)
	assert.Equal(t, config.DefaultArgs, got.Args)
	require.NoError(t, config.Validate(got))
}

func TestLineRendererConfigValues(t *testing.T) {
	got := config.LineRendererConfig()

	assert.Equal(t, config.LineRendererLabel, got.Label)
	assert.Equal(t, []string{config.LineRendererKind}, got.Kinds)
	assert.Equal(t, naming.UpperFirst, got.Naming)
	require.NoError(t, config.Validate(got))
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	assert.Equal(t, config.DefaultConfig(), config.NewConfig())
	assert.Equal(t, config.LineRendererConfig(), config.NewLineRendererConfig())
}

func TestOptions(t *testing.T) {
	c := config.NewConfig(
		config.WithLabel("custom"),
		config.WithKinds("Json", "Html"),
		config.WithNaming(naming.UpperFirst),
		config.WithArgsPolicy(policy.Strict),
	)

	assert.Equal(t, "custom", c.Label)
	assert.Equal(t, []string{"Json", "Html"}, c.Kinds)
	assert.Equal(t, naming.UpperFirst, c.Naming)
	assert.Equal(t, policy.Strict, c.Args)
}

func TestWithKinds_CopiesInput(t *testing.T) {
	kinds := []string{"A", "B"}
	c := config.NewConfig(config.WithKinds(kinds...))
	kinds[0] = "Z"
	assert.Equal(t, []string{"A", "B"}, c.Kinds)
}

func TestRendererKinds_ReturnsFreshSlice(t *testing.T) {
	k := config.RendererKinds()
	k[0] = "mutated"
	assert.Equal(t, "Html", config.RendererKinds()[0])
	assert.Equal(t, "Html", config.DefaultConfig().Kinds[0])
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  apis.Config
		want error
	}{
		{"ok", config.DefaultConfig(), nil},
		{"no label", config.NewConfig(config.WithLabel("")), config.ErrEmptyLabel},
		{"no kinds", config.NewConfig(config.WithKinds()), config.ErrNoKinds},
		{"empty kind", config.NewConfig(config.WithKinds("Html", "")), config.ErrEmptyKind},
		{"duplicate kind", config.NewConfig(config.WithKinds("Html", "Html")), config.ErrDuplicateKind},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := config.Validate(tc.cfg)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}
