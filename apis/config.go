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

import (
	"dirpx.dev/rfactory/rxapi/policy"
	"dirpx.dev/rfactory/utils/naming"
)

// Config carries read-only resolution knobs for one factory family.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Label names the family in logs and metrics (e.g., "renderer").
	Label string

	// Kinds is the ordered candidate namespace list. Resolution probes
	// each kind in turn and the first registered key wins.
	Kinds []string

	// Naming controls how the caller's name is rewritten before probing.
	Naming naming.Mode

	// Args controls what GetInstance does when a later call passes
	// arguments that differ from the ones the instance was built with.
	Args policy.Args
}
