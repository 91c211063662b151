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
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"dirpx.dev/rfactory/apis"
	"dirpx.dev/rfactory/rxapi/policy"
	"dirpx.dev/rfactory/utils/naming"
)

// Families holds the configuration of both factory families.
type Families struct {
	Renderers     apis.Config
	LineRenderers apis.Config
}

// DefaultFamilies returns the built-in configuration of both families.
func DefaultFamilies() Families {
	return Families{
		Renderers:     DefaultConfig(),
		LineRenderers: LineRendererConfig(),
	}
}

// document is the on-disk YAML layout.
type document struct {
	Renderers     section `yaml:"renderers"`
	LineRenderers section `yaml:"line_renderers"`
}

type section struct {
	Label  string      `yaml:"label"`
	Kinds  []string    `yaml:"kinds,flow"`
	Naming naming.Mode `yaml:"naming"`
	Args   policy.Args `yaml:"args"`
}

func toSection(cfg apis.Config) section {
	return section{Label: cfg.Label, Kinds: cfg.Kinds, Naming: cfg.Naming, Args: cfg.Args}
}

func (s section) config() apis.Config {
	return apis.Config{Label: s.Label, Kinds: s.Kinds, Naming: s.Naming, Args: s.Args}
}

// Load reads and validates a YAML configuration file.
func Load(path string) (Families, error) {
	f, err := os.Open(path)
	if err != nil {
		return Families{}, fmt.Errorf("failed to read config: %w", err)
	}
	defer f.Close()

	fam, err := Decode(f)
	if err != nil {
		return Families{}, fmt.Errorf("%s: %w", path, err)
	}
	return fam, nil
}

// Decode parses a YAML configuration document. Fields that are absent keep
// their built-in defaults; unknown fields are rejected. An empty document
// yields DefaultFamilies.
func Decode(r io.Reader) (Families, error) {
	def := DefaultFamilies()
	doc := document{
		Renderers:     toSection(def.Renderers),
		LineRenderers: toSection(def.LineRenderers),
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Families{}, fmt.Errorf("failed to parse config: %w", err)
	}

	fam := Families{
		Renderers:     doc.Renderers.config(),
		LineRenderers: doc.LineRenderers.config(),
	}
	if err := Validate(fam.Renderers); err != nil {
		return Families{}, fmt.Errorf("renderers: %w", err)
	}
	if err := Validate(fam.LineRenderers); err != nil {
		return Families{}, fmt.Errorf("line_renderers: %w", err)
	}
	return fam, nil
}

// Encode writes fam as a YAML document that Decode accepts.
func Encode(w io.Writer, fam Families) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	doc := document{
		Renderers:     toSection(fam.Renderers),
		LineRenderers: toSection(fam.LineRenderers),
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}
