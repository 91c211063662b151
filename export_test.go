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


package rfactory

import (
	"dirpx.dev/rfactory/apis"
	"dirpx.dev/rfactory/config"
)

// ResetFamilies publishes fresh default families regardless of their state.
func ResetFamilies() {
	buildMu.Lock()
	defer buildMu.Unlock()
	renderers.Store(MustFamily[apis.Renderer](config.DefaultConfig(), nil))
	lineRenderers.Store(MustFamily[apis.LineRenderer](config.LineRendererConfig(), nil))
}
