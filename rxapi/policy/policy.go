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

package policy

import (
	"fmt"
	"strings"
)

// Args controls how a singleton factory treats constructor arguments on
// calls that hit an already-cached instance.
//
// # Overview
//
// A singleton factory builds an instance on the first GetInstance call for a
// name and returns that same instance on every later call. Arguments passed
// to later calls cannot be honored without building a second instance, so
// the factory has to decide what to do with them. Args selects that
// behavior.
//
// # Values
//
//   - Ignore — later arguments are dropped silently.
//   - Warn   — later arguments are dropped and a warning is logged when
//     they differ from the first call's arguments.
//   - Strict — a later call with differing arguments fails.
//
// The zero value is Ignore.
//
// # Contract
//
//   - Args values are plain integers and safe to share across goroutines.
//   - Existing values MUST NOT change meaning; new values may be appended.
//   - A later call that passes no arguments at all is a plain lookup and is
//     never considered a mismatch under any policy.
//   - Arguments are compared with reflect.DeepEqual. Non-nil func values
//     never compare equal, so Warn and Strict report them as mismatches.
type Args int

const (
	// Ignore drops arguments passed to calls that hit the cache.
	//
	// # Semantics
	//
	// GetInstance returns the cached instance unconditionally. This is the
	// classic singleton-by-name behavior: the first caller decides how the
	// instance is constructed, every later caller shares it.
	Ignore Args = iota

	// Warn behaves like Ignore and additionally logs a warning.
	//
	// # Semantics
	//
	// The cached instance is still returned. When the arguments of the
	// current call differ from the ones the instance was built with, the
	// factory emits a structured warning carrying the family label and the
	// requested name. Useful while migrating callers that disagree about
	// construction parameters.
	Warn

	// Strict rejects calls whose arguments differ from the first call's.
	//
	// # Semantics
	//
	// GetInstance fails with an argument-mismatch error instead of handing
	// out an instance that was built from different parameters. Callers that
	// only want the shared instance should pass no arguments.
	Strict
)

// String returns a human-readable representation of the Args value.
//
// Known values map to "Ignore", "Warn" and "Strict". Unknown values map to
// the diagnostic form "Unknown(<n>)" and never panic.
func (a Args) String() string {
	switch a {
	case Ignore:
		return "Ignore"
	case Warn:
		return "Warn"
	case Strict:
		return "Strict"
	default:
		return fmt.Sprintf("Unknown(%d)", a)
	}
}

// Parse parses a textual representation of an Args policy.
//
// Matching is case-insensitive and surrounding whitespace is trimmed.
// Accepted inputs are "ignore", "warn" and "strict". On failure Parse
// returns Ignore and a non-nil error; callers MUST NOT rely on the returned
// value in that case.
//
// Example:
//
//	p, err := Parse("warn")
//	if err != nil {
//	    // handle invalid configuration
//	}
//
//	_ = p // Warn
func Parse(s string) (Args, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Ignore, fmt.Errorf("policy: empty args policy")
	}

	switch strings.ToLower(trimmed) {
	case "ignore":
		return Ignore, nil
	case "warn":
		return Warn, nil
	case "strict":
		return Strict, nil
	default:
		return Ignore, fmt.Errorf("policy: unknown args policy %q", s)
	}
}

// MustParse is like Parse but panics on invalid input.
// Intended for hard-coded values and tests.
func MustParse(s string) Args {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// MarshalText implements encoding.TextMarshaler.
//
// Known values encode to their lowercase token ("ignore", "warn",
// "strict"). Unknown values return an error rather than persisting an
// "Unknown(...)" form.
func (a Args) MarshalText() ([]byte, error) {
	switch a {
	case Ignore, Warn, Strict:
		return []byte(strings.ToLower(a.String())), nil
	default:
		return nil, fmt.Errorf("policy: cannot marshal unknown args policy %d", a)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It accepts the same tokens as Parse. On failure *a is left unchanged.
// Configuration decoders (YAML, JSON, flags) reach Args through this method.
func (a *Args) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
