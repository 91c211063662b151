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

package builder

import (
	"dirpx.dev/rfactory/apis"
	"dirpx.dev/rfactory/factory"
	"dirpx.dev/rfactory/registry"
	"dirpx.dev/rfactory/resolver"
	"dirpx.dev/rfactory/strategy"
)

// New creates and returns a new instance of an apis.Builder.
// opts are applied to every factory it builds.
func New[T any](opts ...factory.Option) apis.Builder[T] {
	return &builder[T]{opts: opts}
}

// builder carries the factory options shared by every build.
type builder[T any] struct {
	opts []factory.Option
}

// BuildRegistry builds and returns a new apis.Registry. If a pre-existing
// registry is provided, its entries are copied into the new registry, and a
// sealed registry yields a sealed copy.
func (b *builder[T]) BuildRegistry(_ apis.Config, preg apis.Registry[T]) apis.Registry[T] {
	nreg := registry.New[T]()
	if preg != nil {
		for _, e := range preg.Entries() {
			_ = nreg.Register(e.Key, e.Constructor, registry.WithDoc(e.Doc))
		}
		if preg.Sealed() {
			nreg.Seal()
		}
	}
	return nreg
}

// BuildResolver builds and returns a new apis.Resolver that probes
// cfg.Kinds in order, normalizing names with cfg.Naming.
func (b *builder[T]) BuildResolver(cfg apis.Config, reg apis.Registry[T]) apis.Resolver[T] {
	strats := make([]apis.Strategy[T], 0, len(cfg.Kinds))
	for _, kind := range cfg.Kinds {
		strats = append(strats, strategy.NewKindStrategy(reg, kind, cfg.Naming))
	}
	return resolver.New(strats...)
}

// BuildFactory builds and returns a new apis.Factory with an empty instance cache.
func (b *builder[T]) BuildFactory(cfg apis.Config, res apis.Resolver[T]) apis.Factory[T] {
	return factory.New(cfg, res, b.opts...)
}
