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

package resolver

import (
	"sync"
	"sync/atomic"

	"dirpx.dev/rfactory/apis"
)

// New constructs a resolver that tries the given strategies in order.
// Nil strategies are ignored. The returned resolver is safe for concurrent use
// provided strategies themselves are safe for concurrent TryResolve calls.
func New[T any](strategies ...apis.Strategy[T]) *Chain[T] {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy[T], 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return &Chain[T]{strats: out}
}

// Chain is an order-preserving resolver over a fixed set of strategies with
// a resolution cache keyed by the caller's name.
//
// Only hits are cached. A cached resolution is never replaced or removed; a
// miss is re-probed on every call so that late registrations are found.
type Chain[T any] struct {
	strats []apis.Strategy[T]
	// cache maps name to apis.Resolution[T].
	cache sync.Map
	// cached counts entries in cache.
	cached atomic.Int64
}

// Ensure Chain implements apis.Resolver.
var _ apis.Resolver[any] = (*Chain[any])(nil)

// Resolve returns the cached resolution for name, or runs strategies in
// order until one handles it.
func (r *Chain[T]) Resolve(name string) (apis.Resolution[T], bool) {
	if v, ok := r.cache.Load(name); ok {
		return v.(apis.Resolution[T]), true
	}

	for _, s := range r.strats {
		res, ok := s.TryResolve(name)
		if !ok {
			continue
		}
		// Resolution is deterministic, so a concurrent winner holds the same
		// key; keep whichever landed first.
		v, loaded := r.cache.LoadOrStore(name, res)
		if !loaded {
			r.cached.Add(1)
		}
		return v.(apis.Resolution[T]), true
	}
	return apis.Resolution[T]{}, false
}

// Candidates returns the keys probed for name, in probe order.
func (r *Chain[T]) Candidates(name string) []apis.Key {
	keys := make([]apis.Key, 0, len(r.strats))
	for _, s := range r.strats {
		keys = append(keys, s.Candidate(name))
	}
	return keys
}

// Cached returns the number of memoized resolutions.
func (r *Chain[T]) Cached() int {
	return int(r.cached.Load())
}
