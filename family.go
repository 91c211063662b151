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
	"errors"
	"sync/atomic"

	"dirpx.dev/rfactory/apis"
	"dirpx.dev/rfactory/builder"
	"dirpx.dev/rfactory/config"
)

var (
	// ErrNilBuilderResult is returned when a builder returns a nil layer.
	ErrNilBuilderResult = errors.New("rfactory: builder returned nil layer")
	// ErrInUse is returned when replacing a published family that has
	// already served a lookup. Its caches must outlive the process.
	ErrInUse = errors.New("rfactory: family already served lookups")
	// ErrRetired is returned by a family that has been replaced, and when
	// publishing such a family again.
	ErrRetired = errors.New("rfactory: family retired")
)

// Family lifecycle. A family starts fresh, becomes used on its first
// lookup and is retired when a fresh family is replaced. Used and retired
// are terminal.
const (
	familyFresh int32 = iota
	familyUsed
	familyRetired
)

// Family bundles the layers of one factory kind: its configuration, the
// registration table, the resolver with its resolution cache and the
// factory with its instance cache. A Family is immutable once built; its
// registry accepts registrations until sealed.
type Family[T any] struct {
	cfg apis.Config
	bld apis.Builder[T]
	reg apis.Registry[T]
	res apis.Resolver[T]
	fac apis.Factory[T]

	// state is one of familyFresh, familyUsed, familyRetired.
	state atomic.Int32
}

// NewFamily validates cfg and builds an empty family with b.
// A nil builder selects builder.New.
func NewFamily[T any](cfg apis.Config, b apis.Builder[T]) (*Family[T], error) {
	return buildFamily(cfg, b, nil)
}

// MustFamily is like NewFamily but panics on error.
func MustFamily[T any](cfg apis.Config, b apis.Builder[T]) *Family[T] {
	f, err := NewFamily(cfg, b)
	if err != nil {
		panic(err)
	}
	return f
}

func buildFamily[T any](cfg apis.Config, b apis.Builder[T], prev apis.Registry[T]) (*Family[T], error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if b == nil {
		b = builder.New[T]()
	}
	reg := b.BuildRegistry(cfg, prev)
	if reg == nil {
		return nil, ErrNilBuilderResult
	}
	res := b.BuildResolver(cfg, reg)
	if res == nil {
		return nil, ErrNilBuilderResult
	}
	fac := b.BuildFactory(cfg, res)
	if fac == nil {
		return nil, ErrNilBuilderResult
	}
	return &Family[T]{cfg: cfg, bld: b, reg: reg, res: res, fac: fac}, nil
}

// Rebuild returns a new, unpublished family for cfg whose registry starts
// with this family's registrations. Its resolution and instance caches
// start empty. This family is left as is.
func (f *Family[T]) Rebuild(cfg apis.Config) (*Family[T], error) {
	buildMu.Lock()
	defer buildMu.Unlock()
	return buildFamily(cfg, f.bld, f.reg)
}

// InUse reports whether the family has served a Make, GetInstance or
// Resolve call. A published family that is in use cannot be replaced.
func (f *Family[T]) InUse() bool { return f.state.Load() == familyUsed }

// Retired reports whether the family has been replaced.
func (f *Family[T]) Retired() bool { return f.state.Load() == familyRetired }

// acquire marks the family used. It returns false if the family is retired.
func (f *Family[T]) acquire() bool {
	for {
		switch f.state.Load() {
		case familyUsed:
			return true
		case familyRetired:
			return false
		default:
			if f.state.CompareAndSwap(familyFresh, familyUsed) {
				return true
			}
		}
	}
}

// retire moves a fresh family to retired. It fails once a lookup has been
// served, so no cached resolution or instance is ever discarded.
func (f *Family[T]) retire() error {
	if f.state.CompareAndSwap(familyFresh, familyRetired) {
		return nil
	}
	if f.state.Load() == familyRetired {
		return ErrRetired
	}
	return ErrInUse
}

// unretire undoes retire when a combined swap fails halfway.
func (f *Family[T]) unretire() {
	f.state.CompareAndSwap(familyRetired, familyFresh)
}

// Config returns the family configuration.
func (f *Family[T]) Config() apis.Config { return f.cfg }

// Registry returns the registration table.
func (f *Family[T]) Registry() apis.Registry[T] { return f.reg }

// Resolver returns the resolver.
func (f *Family[T]) Resolver() apis.Resolver[T] { return f.res }

// Factory returns the factory.
func (f *Family[T]) Factory() apis.Factory[T] { return f.fac }

// Register adds ctor under kind. The name is normalized the same way lookups
// are, so a line renderer registered as "word" is stored as "Word".
// Registering on a retired family fails with ErrRetired.
func (f *Family[T]) Register(kind, name string, ctor apis.Constructor[T], opts ...apis.RegisterOption) error {
	buildMu.Lock()
	defer buildMu.Unlock()
	return f.register(kind, name, ctor, opts...)
}

// register requires buildMu, so a registration either lands before a
// rebuild copies the registry or fails with ErrRetired after it.
func (f *Family[T]) register(kind, name string, ctor apis.Constructor[T], opts ...apis.RegisterOption) error {
	if f.Retired() {
		return ErrRetired
	}
	return f.reg.Register(apis.Key{Kind: kind, Name: f.cfg.Naming.Apply(name)}, ctor, opts...)
}

// Resolve returns the key name resolves to. A retired family resolves nothing.
func (f *Family[T]) Resolve(name string) (apis.Key, bool) {
	if !f.acquire() {
		return apis.Key{}, false
	}
	return f.resolve(name)
}

func (f *Family[T]) resolve(name string) (apis.Key, bool) {
	res, ok := f.res.Resolve(name)
	return res.Key, ok
}

// Make constructs a fresh instance. See apis.Factory.
func (f *Family[T]) Make(name string, args ...any) (T, error) {
	if !f.acquire() {
		var zero T
		return zero, ErrRetired
	}
	return f.fac.Make(name, args...)
}

// GetInstance returns the shared instance. See apis.Factory.
func (f *Family[T]) GetInstance(name string, args ...any) (T, error) {
	if !f.acquire() {
		var zero T
		return zero, ErrRetired
	}
	return f.fac.GetInstance(name, args...)
}
