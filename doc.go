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

// Package rfactory turns short logical renderer names into shared or fresh
// renderer instances.
//
// A caller asks for "SideBySide" or "unified"; rfactory finds the
// constructor registered for that name in one of an ordered list of
// namespaces, calls it with the caller's arguments and optionally keeps the
// result as the process-wide instance for that name.
//
// # Layers
//
// Every factory kind is a Family made of four layers:
//
//   - Config: the ordered namespaces (kinds) to probe, how a logical name
//     is normalized before lookup, and the args policy applied when a shared
//     instance is requested again with different arguments.
//
//   - Registry: the explicit table of constructors keyed by
//     apis.Key{Kind, Name}. Registration is allowed at any time until the
//     registry is sealed.
//
//   - Resolver: probes one strategy per configured kind, in order. The
//     first hit wins and is memoized forever. Misses are never memoized, so
//     a constructor registered after a failed lookup is found next time.
//
//   - Factory: Make builds a fresh instance on every call. GetInstance
//     builds the instance once per name and hands the same value to every
//     later caller; concurrent first calls construct exactly once.
//
// # Families
//
// Two families are published process-wide:
//
//	Renderers()      kinds "Html", "Text"; names matched exactly
//	LineRenderers()  kind "Html/LineRenderer"; "unified" == "Unified"
//
// Reads load the current family from an atomic pointer and never lock.
// Registrations, SetRenderers, SetLineRenderers and Configure take a short
// build mutex, so a registration is never lost to a concurrent rebuild.
//
// Replacing a family is a bootstrap step. Once a family has served a
// Make, GetInstance or Resolve call its caches are permanent, and
// replacing it fails with ErrInUse. A replaced family is retired: it
// refuses registrations and lookups with ErrRetired.
//
// # Usage
//
//	_ = rfactory.RegisterRenderer("Html", "SideBySide", newSideBySide)
//	_ = rfactory.RegisterLineRenderer("word", newWordLine)
//
//	r, err := rfactory.GetRenderer("SideBySide", opts)
//	lr, err := rfactory.GetLineRenderer("word")
//
// Code that needs its own caches builds a standalone family with NewFamily
// and calls it directly.
package rfactory
