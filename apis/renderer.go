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

// Differ is a computed diff between two sequences of lines.
// It is produced outside this module and handed to renderers.
type Differ interface {
	Old() []string
	New() []string
}

// Renderer formats a Differ (HTML, text, JSON, ...).
type Renderer interface {
	Render(d Differ) (string, error)
}

// LineRenderer marks the changed parts inside a pair of changed lines.
type LineRenderer interface {
	RenderLines(from, to string) (string, string)
}
