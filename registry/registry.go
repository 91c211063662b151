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

package registry

import (
	"errors"
	"sort"
	"sync"
	"sync/atomic"

	"dirpx.dev/rfactory/apis"
)

var (
	// ErrInvalidKey is returned when a key has an empty kind or name.
	ErrInvalidKey = errors.New("rfactory(registry): invalid key")
	// ErrNilConstructor is returned when a nil constructor is provided.
	ErrNilConstructor = errors.New("rfactory(registry): nil constructor provided")
	// ErrDuplicate indicates an attempt to register a key twice.
	ErrDuplicate = errors.New("rfactory(registry): duplicate registration")
	// ErrSealed indicates an attempt to register in a sealed registry.
	ErrSealed = errors.New("rfactory(registry): sealed registry")
)

// New constructs an empty Registry. It is safe for concurrent use.
func New[T any]() apis.Registry[T] {
	return &registry[T]{data: make(map[apis.Key]apis.Entry[T])}
}

// WithDoc attaches a human-readable note to the entry.
func WithDoc(doc string) apis.RegisterOption {
	return func(o *apis.RegisterOptions) { o.Doc = doc }
}

// MustRegister panics on registration error. Useful from init() blocks.
func MustRegister[T any](r apis.Registry[T], k apis.Key, ctor apis.Constructor[T], opts ...apis.RegisterOption) {
	if err := r.Register(k, ctor, opts...); err != nil {
		panic(err)
	}
}

// registry is a map-backed Registry guarded by a RWMutex.
type registry[T any] struct {
	// mu guards data.
	mu sync.RWMutex
	// data maps keys to their entries.
	data map[apis.Key]apis.Entry[T]
	// sealed rejects further registrations once true.
	sealed atomic.Bool
}

// Register adds a constructor for k. Keys are matched exactly; name
// normalization is the resolver's job.
func (r *registry[T]) Register(k apis.Key, ctor apis.Constructor[T], opts ...apis.RegisterOption) error {
	// Validate inputs early.
	if k.IsZero() {
		return ErrInvalidKey
	}
	if ctor == nil {
		return ErrNilConstructor
	}
	if r.Sealed() {
		return ErrSealed
	}

	var o apis.RegisterOptions
	for _, fn := range opts {
		fn(&o)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock: Seal may have raced with us.
	if r.sealed.Load() {
		return ErrSealed
	}
	if _, exists := r.data[k]; exists {
		return ErrDuplicate
	}
	r.data[k] = apis.Entry[T]{Key: k, Constructor: ctor, Doc: o.Doc}
	return nil
}

// Lookup returns the constructor for k if present.
func (r *registry[T]) Lookup(k apis.Key) (apis.Constructor[T], bool) {
	r.mu.RLock()
	e, ok := r.data[k]
	r.mu.RUnlock()
	return e.Constructor, ok
}

// Entries returns a snapshot of all entries ordered by kind, then name.
func (r *registry[T]) Entries() []apis.Entry[T] {
	r.mu.RLock()
	items := make([]apis.Entry[T], 0, len(r.data))
	for _, e := range r.data {
		items = append(items, e)
	}
	r.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		ki, kj := items[i].Key, items[j].Key
		if ki.Kind == kj.Kind {
			return ki.Name < kj.Name
		}
		return ki.Kind < kj.Kind
	})
	return items
}

// Count returns the number of registered entries.
func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}

// Seal prevents further registrations. It is idempotent and safe for concurrent use.
// Returns true if this call changed the state from unsealed to sealed.
func (r *registry[T]) Seal() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.sealed.Swap(true)
}

// Sealed reports whether the registry is sealed.
func (r *registry[T]) Sealed() bool { return r.sealed.Load() }
