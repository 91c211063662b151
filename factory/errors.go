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

package factory

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownComponent is matched (errors.Is) by every *UnknownComponentError.
	ErrUnknownComponent = errors.New("rfactory(factory): unknown component")
	// ErrArgsMismatch is returned by GetInstance under the Strict args policy
	// when the arguments differ from the ones the cached instance was built with.
	ErrArgsMismatch = errors.New("rfactory(factory): constructor arguments differ from cached instance")
	// ErrNilInstance is returned when a constructor reports success but returns nil.
	ErrNilInstance = errors.New("rfactory(factory): constructor returned nil instance")
)

// UnknownComponentError reports that no candidate namespace has a component
// registered under the requested name.
type UnknownComponentError struct {
	// Family is the label of the factory that failed (e.g., "renderer").
	Family string
	// Name is the logical name exactly as the caller passed it.
	Name string
}

// Error implements error.
func (e *UnknownComponentError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Family, e.Name)
}

// Is makes errors.Is(err, ErrUnknownComponent) hold.
func (e *UnknownComponentError) Is(target error) bool {
	return target == ErrUnknownComponent
}
