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

package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Subsystem is the metrics subsystem of every collector in this package.
	Subsystem = "factory"

	// InstanceCacheHitLabel tracks how many GetInstance calls were served from the instance cache.
	InstanceCacheHitLabel = "instance_cache_hit"
	// InstanceCacheMissLabel tracks how many GetInstance calls constructed a new instance.
	InstanceCacheMissLabel = "instance_cache_miss"
	// InstanceCacheShareLabel tracks how many GetInstance calls shared a concurrent construction.
	InstanceCacheShareLabel = "instance_cache_share"
	// ConstructFailureLabel tracks constructor errors.
	ConstructFailureLabel = "construct_failure"
	// UnknownComponentLabel tracks lookups of names nothing is registered under.
	// It is labelled by family only; unknown names are caller input.
	UnknownComponentLabel = "unknown_component"
)

// Recorder counts factory events per family and logical name. Only names
// that resolved to a registered component are used as label values.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	hits     *prometheus.CounterVec
	misses   *prometheus.CounterVec
	shares   *prometheus.CounterVec
	failures *prometheus.CounterVec
	unknown  *prometheus.CounterVec
}

// New creates the counter vectors and registers them with reg.
// Collectors that are already registered (for example by a second Recorder
// on the same registry) are reused.
func New(reg prometheus.Registerer, namespace string) (*Recorder, error) {
	if reg == nil {
		return nil, errors.New("metrics: nil registerer")
	}
	r := &Recorder{}
	var err error
	if r.hits, err = registerCounterVec(reg, namespace, InstanceCacheHitLabel,
		"Number of GetInstance calls served from the instance cache.", nameLabels); err != nil {
		return nil, err
	}
	if r.misses, err = registerCounterVec(reg, namespace, InstanceCacheMissLabel,
		"Number of GetInstance calls that constructed a new instance.", nameLabels); err != nil {
		return nil, err
	}
	if r.shares, err = registerCounterVec(reg, namespace, InstanceCacheShareLabel,
		"Number of GetInstance calls that shared a concurrent construction.", nameLabels); err != nil {
		return nil, err
	}
	if r.failures, err = registerCounterVec(reg, namespace, ConstructFailureLabel,
		"Number of constructor calls that returned an error.", nameLabels); err != nil {
		return nil, err
	}
	if r.unknown, err = registerCounterVec(reg, namespace, UnknownComponentLabel,
		"Number of lookups for names with no registered component.", familyLabels); err != nil {
		return nil, err
	}
	return r, nil
}

// MustNew is like New but panics on error.
func MustNew(reg prometheus.Registerer, namespace string) *Recorder {
	r, err := New(reg, namespace)
	if err != nil {
		panic(err)
	}
	return r
}

// Hit records an instance cache hit.
func (r *Recorder) Hit(family, name string) {
	if r != nil {
		r.hits.WithLabelValues(family, name).Inc()
	}
}

// Miss records a GetInstance call that constructed and published an instance.
func (r *Recorder) Miss(family, name string) {
	if r != nil {
		r.misses.WithLabelValues(family, name).Inc()
	}
}

// Share records a caller that received an instance constructed by a concurrent caller.
func (r *Recorder) Share(family, name string) {
	if r != nil {
		r.shares.WithLabelValues(family, name).Inc()
	}
}

// ConstructFailure records a constructor error.
func (r *Recorder) ConstructFailure(family, name string) {
	if r != nil {
		r.failures.WithLabelValues(family, name).Inc()
	}
}

// Unknown records a lookup for an unregistered name.
func (r *Recorder) Unknown(family string) {
	if r != nil {
		r.unknown.WithLabelValues(family).Inc()
	}
}

// HitVec returns the instance cache hit collector.
func (r *Recorder) HitVec() *prometheus.CounterVec { return r.hits }

// MissVec returns the instance cache miss collector.
func (r *Recorder) MissVec() *prometheus.CounterVec { return r.misses }

// ShareVec returns the shared construction collector.
func (r *Recorder) ShareVec() *prometheus.CounterVec { return r.shares }

// FailureVec returns the constructor failure collector.
func (r *Recorder) FailureVec() *prometheus.CounterVec { return r.failures }

// UnknownVec returns the unknown component collector.
func (r *Recorder) UnknownVec() *prometheus.CounterVec { return r.unknown }

var (
	nameLabels   = []string{"family", "name"}
	familyLabels = []string{"family"}
)

func registerCounterVec(reg prometheus.Registerer, namespace, name, help string, labels []string) (*prometheus.CounterVec, error) {
	m := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: Subsystem,
		Name:      name,
		Help:      help,
	}, labels)

	if err := reg.Register(m); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("metrics: register %s: %w", name, err)
	}
	return m, nil
}
