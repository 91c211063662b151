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


package rfactory

import (
	"runtime"
	"sync"
	"sync/atomic"

	"dirpx.dev/rfactory/apis"
	"dirpx.dev/rfactory/builder"
	"dirpx.dev/rfactory/config"
	"dirpx.dev/rfactory/factory"
)

// init publishes the default families.
func init() {
	renderers.Store(MustFamily(config.DefaultConfig(), builder.New[apis.Renderer]()))
	lineRenderers.Store(MustFamily(config.LineRendererConfig(), builder.New[apis.LineRenderer]()))
}

// buildMu serializes writers (registrations, reconfigurations and swaps)
// so a rebuild never copies a registry that is still being written.
var buildMu sync.Mutex

var (
	// renderers is the process-wide general renderer family.
	renderers atomic.Pointer[Family[apis.Renderer]]
	// lineRenderers is the process-wide line renderer family.
	lineRenderers atomic.Pointer[Family[apis.LineRenderer]]
)

// Renderers returns the process-wide general renderer family.
func Renderers() *Family[apis.Renderer] {
	return renderers.Load()
}

// LineRenderers returns the process-wide line renderer family.
func LineRenderers() *Family[apis.LineRenderer] {
	return lineRenderers.Load()
}

// current returns the published family, marked used. A retired family is
// only observed while its replacement is being stored.
func current[T any](p *atomic.Pointer[Family[T]]) *Family[T] {
	for {
		f := p.Load()
		if f.acquire() {
			return f
		}
		runtime.Gosched()
	}
}

// SetRenderers replaces the process-wide general renderer family. It fails
// with ErrInUse once the current family has served a lookup, and with
// ErrRetired if f was replaced before. A nil family is ignored.
func SetRenderers(f *Family[apis.Renderer]) error {
	return swap(&renderers, f)
}

// SetLineRenderers replaces the process-wide line renderer family.
// See SetRenderers.
func SetLineRenderers(f *Family[apis.LineRenderer]) error {
	return swap(&lineRenderers, f)
}

func swap[T any](p *atomic.Pointer[Family[T]], f *Family[T]) error {
	if f == nil {
		return nil
	}
	buildMu.Lock()
	defer buildMu.Unlock()

	old := p.Load()
	if old == f {
		return nil
	}
	if f.Retired() {
		return ErrRetired
	}
	if err := old.retire(); err != nil {
		return err
	}
	p.Store(f)
	return nil
}

// Configure rebuilds both process-wide families from fam. Registrations are
// carried over. opts are applied to both new factories.
//
// Configure is meant for bootstrap: it fails with ErrInUse once either
// family has served a lookup, and nothing is published if either family
// fails to build.
func Configure(fam config.Families, opts ...factory.Option) error {
	buildMu.Lock()
	defer buildMu.Unlock()

	oldR, oldL := renderers.Load(), lineRenderers.Load()

	nr, err := buildFamily(fam.Renderers, builder.New[apis.Renderer](opts...), oldR.reg)
	if err != nil {
		return err
	}
	nl, err := buildFamily(fam.LineRenderers, builder.New[apis.LineRenderer](opts...), oldL.reg)
	if err != nil {
		return err
	}

	if err := oldR.retire(); err != nil {
		return err
	}
	if err := oldL.retire(); err != nil {
		oldR.unretire()
		return err
	}
	renderers.Store(nr)
	lineRenderers.Store(nl)
	return nil
}

// RegisterRenderer adds a renderer constructor under kind (e.g., "Html").
func RegisterRenderer(kind, name string, ctor apis.Constructor[apis.Renderer], opts ...apis.RegisterOption) error {
	buildMu.Lock()
	defer buildMu.Unlock()
	return renderers.Load().register(kind, name, ctor, opts...)
}

// RegisterLineRenderer adds a line renderer constructor. Line renderers live
// in a single namespace, so no kind is needed.
func RegisterLineRenderer(name string, ctor apis.Constructor[apis.LineRenderer], opts ...apis.RegisterOption) error {
	buildMu.Lock()
	defer buildMu.Unlock()
	f := lineRenderers.Load()
	return f.register(f.cfg.Kinds[0], name, ctor, opts...)
}

// MakeRenderer constructs a fresh renderer.
func MakeRenderer(name string, args ...any) (apis.Renderer, error) {
	return current(&renderers).fac.Make(name, args...)
}

// GetRenderer returns the shared renderer for name.
func GetRenderer(name string, args ...any) (apis.Renderer, error) {
	return current(&renderers).fac.GetInstance(name, args...)
}

// ResolveRenderer returns the key name resolves to.
func ResolveRenderer(name string) (apis.Key, bool) {
	return current(&renderers).resolve(name)
}

// MakeLineRenderer constructs a fresh line renderer.
func MakeLineRenderer(name string, args ...any) (apis.LineRenderer, error) {
	return current(&lineRenderers).fac.Make(name, args...)
}

// GetLineRenderer returns the shared line renderer for name.
func GetLineRenderer(name string, args ...any) (apis.LineRenderer, error) {
	return current(&lineRenderers).fac.GetInstance(name, args...)
}

// ResolveLineRenderer returns the key name resolves to.
func ResolveLineRenderer(name string) (apis.Key, bool) {
	return current(&lineRenderers).resolve(name)
}
