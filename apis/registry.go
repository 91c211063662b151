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

package apis

// Registry is the explicit registration table that maps candidate keys to
// constructors. Registration may happen at any time until the registry is sealed.
type Registry[T any] interface {
	// Register adds a constructor under k. Duplicate keys are rejected.
	Register(k Key, ctor Constructor[T], opts ...RegisterOption) error
	// Lookup returns the constructor for k if present.
	Lookup(k Key) (Constructor[T], bool)
	// Entries returns a snapshot in deterministic (kind, name) order.
	Entries() []Entry[T]
	// Count returns the number of registered entries.
	Count() int
	// Seal prevents further registrations. Returns true if this call sealed it.
	Seal() bool
	// Sealed reports whether the registry is sealed.
	Sealed() bool
}

// Entry is a single registration in a Registry snapshot.
type Entry[T any] struct {
	// Key is the registered key.
	Key Key
	// Constructor builds instances for Key.
	Constructor Constructor[T]
	// Doc is an optional human-readable description.
	Doc string
}

// RegisterOptions carries per-entry registration parameters.
type RegisterOptions struct {
	Doc string
}

// RegisterOption modifies RegisterOptions.
type RegisterOption func(*RegisterOptions)
