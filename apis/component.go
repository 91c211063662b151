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

// Constructor builds a fresh component from caller-supplied arguments.
// Arguments are forwarded verbatim from Factory.Make / Factory.GetInstance.
// Implementations must be safe to call concurrently.
type Constructor[T any] func(args ...any) (T, error)

// Resolution is the outcome of a successful name lookup: the key that
// matched and the constructor registered under it.
type Resolution[T any] struct {
	Key         Key
	Constructor Constructor[T]
}
