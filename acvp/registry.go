// Copyright 2026 Jacob Maynard
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package acvp

import (
	"fmt"
	"sync"
)

// Registry maps ACVP algorithm names to the capabilities of the module
// under test. A capability is an opaque per-handler value; the secure-hash
// handler, for example, registers its hash module. Registries are safe for
// concurrent use.
type Registry struct {
	mu           sync.RWMutex
	capabilities map[string]any
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{capabilities: make(map[string]any)}
}

// Register records capability as the module-under-test entry for the named
// algorithm. It fails if the algorithm already has a capability.
func (r *Registry) Register(algorithm string, capability any) error {
	if capability == nil {
		return fmt.Errorf("acvp.Register: capability is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, found := r.capabilities[algorithm]; found {
		return fmt.Errorf("acvp.Register: a capability is already registered for %q", algorithm)
	}
	r.capabilities[algorithm] = capability
	return nil
}

// Lookup returns the capability registered for the named algorithm and
// whether one exists.
func (r *Registry) Lookup(algorithm string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	capability, found := r.capabilities[algorithm]
	return capability, found
}
