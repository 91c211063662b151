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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/rfactory/config"
	"dirpx.dev/rfactory/rxapi/policy"
	"dirpx.dev/rfactory/utils/naming"
)

func TestDecode_EmptyDocumentYieldsDefaults(t *testing.T) {
	fam, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultFamilies(), fam)
}

func TestDecode_PartialOverrides(t *testing.T) {
	doc := `
renderers:
  kinds: [Text, Html]
  args: warn
line_renderers:
  args: Strict
`
	fam, err := config.Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"Text", "Html"}, fam.Renderers.Kinds)
	assert.Equal(t, policy.Warn, fam.Renderers.Args)
	assert.Equal(t, config.RendererLabel, fam.Renderers.Label)
	assert.Equal(t, naming.Exact, fam.Renderers.Naming)

	assert.Equal(t, []string{config.LineRendererKind}, fam.LineRenderers.Kinds)
	assert.Equal(t, naming.UpperFirst, fam.LineRenderers.Naming)
	assert.Equal(t, policy.Strict, fam.LineRenderers.Args)
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown field":  "renderers:\n  colour: red\n",
		"bad policy":     "renderers:\n  args: loud\n",
		"bad naming":     "line_renderers:\n  naming: shout\n",
		"empty kinds":    "renderers:\n  kinds: []\n",
		"duplicate kind": "line_renderers:\n  kinds: [A, A]\n",
		"not yaml":       "renderers: [\n",
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Decode(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := config.Families{
		Renderers: config.NewConfig(
			config.WithKinds("Text", "Html", "Json"),
			config.WithArgsPolicy(policy.Strict),
		),
		LineRenderers: config.NewLineRendererConfig(config.WithArgsPolicy(policy.Warn)),
	}

	var buf bytes.Buffer
	require.NoError(t, config.Encode(&buf, in))
	assert.Contains(t, buf.String(), "args: strict")
	assert.Contains(t, buf.String(), "naming: upper-first")

	out, err := config.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rfactory.yaml")
	require.NoError(t, os.WriteFile(path, []byte("renderers:\n  args: warn\n"), 0o600))

	fam, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, policy.Warn, fam.Renderers.Args)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
