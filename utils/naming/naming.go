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

package naming

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Mode selects how a logical name is rewritten before it is probed.
//
// Normalization policy:
//   - Exact: the name is used as-is; callers must match the registered casing.
//   - UpperFirst: the first rune is upper-cased (e.g., "unified" -> "Unified");
//     the rest of the name is left untouched.
//
// The zero value is Exact.
type Mode int

const (
	// Exact leaves names untouched.
	Exact Mode = iota
	// UpperFirst upper-cases the first rune of the name.
	UpperFirst
)

// Apply normalizes name according to m. Unknown modes behave like Exact.
func (m Mode) Apply(name string) string {
	switch m {
	case UpperFirst:
		return upperFirst(name)
	default:
		return name
	}
}

// String returns "Exact", "UpperFirst" or "Unknown(<n>)".
func (m Mode) String() string {
	switch m {
	case Exact:
		return "Exact"
	case UpperFirst:
		return "UpperFirst"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Parse parses "exact" or "upper-first" (case-insensitive, "upperfirst" and
// "upper_first" accepted too).
func Parse(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact":
		return Exact, nil
	case "upper-first", "upperfirst", "upper_first":
		return UpperFirst, nil
	case "":
		return Exact, fmt.Errorf("naming: empty mode")
	default:
		return Exact, fmt.Errorf("naming: unknown mode %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case Exact:
		return []byte("exact"), nil
	case UpperFirst:
		return []byte("upper-first"), nil
	default:
		return nil, fmt.Errorf("naming: cannot marshal unknown mode %d", m)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler. On failure *m is unchanged.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// upperFirst upper-cases the first rune of s.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	u := unicode.ToUpper(r)
	if u == r {
		return s
	}
	return string(u) + s[size:]
}
