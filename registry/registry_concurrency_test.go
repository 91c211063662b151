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

package registry_test

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/rfactory/apis"
	"dirpx.dev/rfactory/registry"
)

// TestConcurrentRegisterAndLookup verifies that Register/Lookup/Entries/Count
// are race-free and consistent under concurrent use.
func TestConcurrentRegisterAndLookup(t *testing.T) {
	reg := registry.New[*widget]()

	keys := make([]apis.Key, 10)
	for i := range keys {
		keys[i] = apis.Key{Kind: "Html", Name: fmt.Sprintf("W%d", i)}
	}

	// Register once (sequential) to establish baseline.
	for _, k := range keys {
		registry.MustRegister(reg, k, ctorFor(k.Name))
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				k := keys[i%len(keys)]
				if _, ok := reg.Lookup(k); !ok {
					t.Errorf("lookup failed for %v", k)
					return
				}
				_ = reg.Count()
				_ = reg.Entries()
			}
		}()
	}

	// Writers: re-registrations must all be rejected as duplicates.
	var dupes atomic.Int64
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				k := keys[(i+id)%len(keys)]
				if err := reg.Register(k, ctorFor("again")); err != nil {
					dupes.Add(1)
				}
			}
		}(w)
	}

	wg.Wait()

	assert.Equal(t, len(keys), reg.Count())
	assert.Equal(t, int64(workers*1000), dupes.Load())
}

// TestConcurrentFirstRegistration_OneWinner checks that exactly one of many
// racing registrations for the same key succeeds.
func TestConcurrentFirstRegistration_OneWinner(t *testing.T) {
	reg := registry.New[*widget]()
	k := apis.Key{Kind: "Text", Name: "Unified"}

	workers := runtime.GOMAXPROCS(0) * 4
	var wins atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			if reg.Register(k, ctorFor(fmt.Sprint(id))) == nil {
				wins.Add(1)
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, int64(1), wins.Load())
	assert.Equal(t, 1, reg.Count())
}

// TestSealRacesRegister ensures no registration lands after Seal returns.
func TestSealRacesRegister(t *testing.T) {
	reg := registry.New[*widget]()

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
				_ = reg.Register(apis.Key{Kind: "Html", Name: fmt.Sprint(i)}, ctorFor("x"))
			}
		}
	}()

	reg.Seal()
	sealedCount := reg.Count()
	close(stop)
	wg.Wait()

	assert.Equal(t, sealedCount, reg.Count())
}
