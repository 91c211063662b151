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

package strategy

import (
	"dirpx.dev/rfactory/apis"
	"dirpx.dev/rfactory/utils/naming"
)

// NewKindStrategy creates an apis.Strategy that probes a single namespace
// (kind) of reg for a name rewritten according to mode.
func NewKindStrategy[T any](reg apis.Registry[T], kind string, mode naming.Mode) apis.Strategy[T] {
	return &kindStrategy[T]{reg: reg, kind: kind, mode: mode}
}

// kindStrategy consults the registration table under one kind.
// It is stateless apart from its configuration and safe for concurrent use.
type kindStrategy[T any] struct {
	reg  apis.Registry[T]
	kind string
	mode naming.Mode
}

// Ensure kindStrategy implements apis.Strategy.
var _ apis.Strategy[any] = (*kindStrategy[any])(nil)

// Candidate returns the key probed for name.
func (s *kindStrategy[T]) Candidate(name string) apis.Key {
	return apis.Key{Kind: s.kind, Name: s.mode.Apply(name)}
}

// TryResolve looks up the candidate key for name.
func (s *kindStrategy[T]) TryResolve(name string) (apis.Resolution[T], bool) {
	if name == "" || s.reg == nil {
		return apis.Resolution[T]{}, false
	}
	k := s.Candidate(name)
	ctor, ok := s.reg.Lookup(k)
	if !ok {
		return apis.Resolution[T]{}, false
	}
	return apis.Resolution[T]{Key: k, Constructor: ctor}, true
}
