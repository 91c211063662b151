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

// Factory constructs components by logical name.
type Factory[T any] interface {
	// Make resolves name and constructs a fresh instance with args.
	Make(name string, args ...any) (T, error)

	// GetInstance returns the shared instance for name, constructing it with
	// args on the first successful call. Later args are not used for construction.
	GetInstance(name string, args ...any) (T, error)
}
