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
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"

	"dirpx.dev/rfactory/apis"
	"dirpx.dev/rfactory/metrics"
	"dirpx.dev/rfactory/rxapi/policy"
)

// defaultLabel is used when the configuration carries no label.
const defaultLabel = "component"

// New constructs a Factory that resolves names through res.
// Only cfg.Label and cfg.Args are read; resolution settings belong to res.
func New[T any](cfg apis.Config, res apis.Resolver[T], opts ...Option) *Factory[T] {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	label := cfg.Label
	if label == "" {
		label = defaultLabel
	}
	return &Factory[T]{
		label:     label,
		args:      cfg.Args,
		res:       res,
		logger:    o.logger,
		metrics:   o.metrics,
		instances: make(map[string]instance[T]),
	}
}

// Factory constructs components by logical name and keeps one shared
// instance per name. Instances are never evicted or replaced.
// It is safe for concurrent use.
type Factory[T any] struct {
	label   string
	args    policy.Args
	res     apis.Resolver[T]
	logger  *slog.Logger
	metrics *metrics.Recorder

	// mu guards instances.
	mu        sync.RWMutex
	instances map[string]instance[T]
	// sf collapses concurrent first-time constructions of the same name.
	sf singleflight.Group
}

// instance is a published cache slot.
type instance[T any] struct {
	value T
	// args are the arguments value was constructed with.
	args []any
	// owner identifies the GetInstance call that constructed value.
	owner *byte
}

// Ensure Factory implements apis.Factory.
var _ apis.Factory[any] = (*Factory[any])(nil)

// Make resolves name and constructs a fresh instance, forwarding args to the
// constructor verbatim. The result is not cached. Constructor errors are
// returned unchanged.
func (f *Factory[T]) Make(name string, args ...any) (T, error) {
	var zero T

	res, ok := f.res.Resolve(name)
	if !ok {
		f.metrics.Unknown(f.label)
		return zero, &UnknownComponentError{Family: f.label, Name: name}
	}

	v, err := res.Constructor(args...)
	if err != nil {
		f.metrics.ConstructFailure(f.label, name)
		return zero, err
	}
	if isNil(v) {
		f.metrics.ConstructFailure(f.label, name)
		return zero, fmt.Errorf("%w: %s", ErrNilInstance, res.Key)
	}

	f.logger.Debug("constructed component", "family", f.label, "name", name, "key", res.Key.String())
	return v, nil
}

// GetInstance returns the shared instance for name. The first successful
// call constructs it with args; later calls return the same instance and do
// not construct again, whatever arguments they pass. What happens to those
// later arguments is governed by the configured args policy.
//
// Failed constructions are not cached; the next call tries again.
func (f *Factory[T]) GetInstance(name string, args ...any) (T, error) {
	if inst, ok := f.load(name); ok {
		f.metrics.Hit(f.label, name)
		return f.checkArgs(name, inst, nil, args)
	}

	token := new(byte)
	v, err, shared := f.sf.Do(name, func() (any, error) {
		// Another caller may have published while this one queued up.
		if inst, ok := f.load(name); ok {
			f.metrics.Hit(f.label, name)
			return inst, nil
		}

		value, err := f.Make(name, args...)
		if err != nil {
			return nil, err
		}
		f.metrics.Miss(f.label, name)

		inst := instance[T]{value: value, args: slices.Clone(args), owner: token}
		f.mu.Lock()
		f.instances[name] = inst
		f.mu.Unlock()
		return inst, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	if shared {
		f.metrics.Share(f.label, name)
	}
	return f.checkArgs(name, v.(instance[T]), token, args)
}

// Instances returns the names that currently have a cached instance, sorted.
func (f *Factory[T]) Instances() []string {
	f.mu.RLock()
	names := make([]string, 0, len(f.instances))
	for n := range f.instances {
		names = append(names, n)
	}
	f.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Label returns the family label used in logs, metrics and errors.
func (f *Factory[T]) Label() string { return f.label }

func (f *Factory[T]) load(name string) (instance[T], bool) {
	f.mu.RLock()
	inst, ok := f.instances[name]
	f.mu.RUnlock()
	return inst, ok
}

// checkArgs applies the args policy to a caller that did not construct inst.
func (f *Factory[T]) checkArgs(name string, inst instance[T], token *byte, args []any) (T, error) {
	if token != nil && inst.owner == token {
		return inst.value, nil
	}
	if f.args == policy.Ignore || len(args) == 0 || reflect.DeepEqual(inst.args, args) {
		return inst.value, nil
	}

	switch f.args {
	case policy.Strict:
		var zero T
		return zero, fmt.Errorf("%w: %s %q", ErrArgsMismatch, f.label, name)
	default:
		f.logger.Warn("ignoring constructor arguments for cached instance",
			"family", f.label, "name", name, "policy", f.args.String())
		return inst.value, nil
	}
}

// isNil reports whether v is a nil interface or a nil pointer-like value.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
