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

// Resolver maps a logical name to a registered constructor.
// Typical chain: one Strategy per configured kind.
type Resolver[T any] interface {
	// Resolve returns the first matching resolution for name.
	// A miss is reported as false, never as an error.
	Resolve(name string) (Resolution[T], bool)

	// Candidates returns the keys Resolve would probe for name, in order.
	Candidates(name string) []Key
}
