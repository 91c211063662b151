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

package resolver_test

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/rfactory/apis"
	"dirpx.dev/rfactory/registry"
	"dirpx.dev/rfactory/resolver"
	"dirpx.dev/rfactory/strategy"
	"dirpx.dev/rfactory/utils/naming"
)

type renderer struct{ from string }

func ctor(from string) apis.Constructor[*renderer] {
	return func(...any) (*renderer, error) { return &renderer{from: from}, nil }
}

// countingStrategy wraps a strategy and counts probes.
type countingStrategy struct {
	apis.Strategy[*renderer]
	probes atomic.Int64
}

func (c *countingStrategy) TryResolve(name string) (apis.Resolution[*renderer], bool) {
	c.probes.Add(1)
	return c.Strategy.TryResolve(name)
}

func newChain(reg apis.Registry[*renderer], kinds ...string) (*resolver.Chain[*renderer], []*countingStrategy) {
	counters := make([]*countingStrategy, 0, len(kinds))
	strats := make([]apis.Strategy[*renderer], 0, len(kinds))
	for _, k := range kinds {
		c := &countingStrategy{Strategy: strategy.NewKindStrategy(reg, k, naming.Exact)}
		counters = append(counters, c)
		strats = append(strats, c)
	}
	return resolver.New(strats...), counters
}

func TestResolve_FirstKindWins(t *testing.T) {
	reg := registry.New[*renderer]()
	registry.MustRegister(reg, apis.Key{Kind: "Html", Name: "Json"}, ctor("html"))
	registry.MustRegister(reg, apis.Key{Kind: "Text", Name: "Json"}, ctor("text"))

	r, counters := newChain(reg, "Html", "Text")

	res, ok := r.Resolve("Json")
	require.True(t, ok)
	assert.Equal(t, apis.Key{Kind: "Html", Name: "Json"}, res.Key)
	assert.Equal(t, int64(1), counters[0].probes.Load())
	assert.Zero(t, counters[1].probes.Load(), "later kinds must not be probed after a hit")
}

func TestResolve_FallsThroughToLaterKind(t *testing.T) {
	reg := registry.New[*renderer]()
	registry.MustRegister(reg, apis.Key{Kind: "Text", Name: "Unified"}, ctor("text"))

	r, counters := newChain(reg, "Html", "Text")

	res, ok := r.Resolve("Unified")
	require.True(t, ok)
	assert.Equal(t, "Text", res.Key.Kind)
	assert.Equal(t, int64(1), counters[0].probes.Load())
	assert.Equal(t, int64(1), counters[1].probes.Load())
}

func TestResolve_IsMemoizedAndDeterministic(t *testing.T) {
	reg := registry.New[*renderer]()
	registry.MustRegister(reg, apis.Key{Kind: "Text", Name: "Context"}, ctor("text"))

	r, counters := newChain(reg, "Html", "Text")

	first, ok := r.Resolve("Context")
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		again, ok := r.Resolve("Context")
		require.True(t, ok)
		assert.Equal(t, first.Key, again.Key)
	}

	assert.Equal(t, int64(1), counters[0].probes.Load(), "cache hit must not re-probe")
	assert.Equal(t, int64(1), counters[1].probes.Load())
	assert.Equal(t, 1, r.Cached())
}

func TestResolve_CachedResolutionIsStickyAcrossLaterRegistrations(t *testing.T) {
	reg := registry.New[*renderer]()
	registry.MustRegister(reg, apis.Key{Kind: "Text", Name: "Json"}, ctor("text"))

	r, _ := newChain(reg, "Html", "Text")

	res, ok := r.Resolve("Json")
	require.True(t, ok)
	require.Equal(t, "Text", res.Key.Kind)

	// An earlier-kind registration after the fact does not change the cached mapping.
	registry.MustRegister(reg, apis.Key{Kind: "Html", Name: "Json"}, ctor("html"))
	res, ok = r.Resolve("Json")
	require.True(t, ok)
	assert.Equal(t, "Text", res.Key.Kind)
}

func TestResolve_MissIsNotCached(t *testing.T) {
	reg := registry.New[*renderer]()
	r, counters := newChain(reg, "Html", "Text")

	for i := 0; i < 3; i++ {
		_, ok := r.Resolve("SideBySide")
		require.False(t, ok)
	}
	assert.Equal(t, int64(3), counters[0].probes.Load(), "every miss re-probes")
	assert.Equal(t, int64(3), counters[1].probes.Load())
	assert.Zero(t, r.Cached())

	registry.MustRegister(reg, apis.Key{Kind: "Html", Name: "SideBySide"}, ctor("html"))

	res, ok := r.Resolve("SideBySide")
	require.True(t, ok)
	assert.Equal(t, "Html", res.Key.Kind)
	assert.Equal(t, 1, r.Cached())
}

func TestCandidates(t *testing.T) {
	reg := registry.New[*renderer]()
	r := resolver.New(
		strategy.NewKindStrategy(reg, "Html", naming.Exact),
		nil,
		strategy.NewKindStrategy(reg, "Text", naming.Exact),
	)

	assert.Equal(t, []apis.Key{
		{Kind: "Html", Name: "Inline"},
		{Kind: "Text", Name: "Inline"},
	}, r.Candidates("Inline"))
}

func TestResolve_NoStrategies(t *testing.T) {
	r := resolver.New[*renderer]()
	_, ok := r.Resolve("anything")
	assert.False(t, ok)
	assert.Empty(t, r.Candidates("anything"))
}

// TestResolve_Concurrent stresses the cache under concurrent first resolution.
func TestResolve_Concurrent(t *testing.T) {
	reg := registry.New[*renderer]()
	names := []string{"Combined", "Inline", "SideBySide", "Unified", "Context"}
	for i, n := range names {
		kind := "Html"
		if i >= 3 {
			kind = "Text"
		}
		registry.MustRegister(reg, apis.Key{Kind: kind, Name: n}, ctor(kind))
	}
	r, _ := newChain(reg, "Html", "Text")

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan string, workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				n := names[(i+id)%len(names)]
				res, ok := r.Resolve(n)
				if !ok || res.Key.Name != n {
					errCh <- n
					return
				}
			}
		}(w)
	}
	wg.Wait()
	close(errCh)
	for n := range errCh {
		t.Fatalf("concurrent resolve mismatch for %q", n)
	}
	assert.Equal(t, len(names), r.Cached())
}
