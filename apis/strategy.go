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

// Strategy is a single candidate-namespace probe. A Resolver chains
// strategies in order (e.g., Html -> Text) and stops at the first hit.
type Strategy[T any] interface {
	// Candidate returns the key this strategy would probe for name.
	Candidate(name string) Key
	// TryResolve probes for name. It returns (res, true) on a hit;
	// otherwise (zero, false) to fall through.
	TryResolve(name string) (Resolution[T], bool)
}
