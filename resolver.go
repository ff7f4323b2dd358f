/*
   Copyright 2025 The DIRPX Authors

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

package echain

import (
	"fmt"
	"strings"
	"sync"

	"dirpx.dev/echain/apis"
	"dirpx.dev/echain/catalog"
)

// Registry is the ordered, process-lifetime collection of message mappers.
//
// Registration typically happens once at startup; resolution happens on
// every user-visible failure. The registry therefore uses a single-writer /
// many-reader discipline: Register takes the exclusive lock, resolution
// takes a shared read lock and iterates over a snapshot, so concurrent
// Resolve calls never block each other and never race with Register.
//
// Lookup order is last-registered-first. Built-in mappers passed to
// NewRegistry sit at the bottom of the list, so every user mapper
// registered later takes precedence over them. That precedence is a policy
// callers may rely on, not an implementation detail.
type Registry struct {
	mu      sync.RWMutex
	mappers []apis.Mapper
}

// NewRegistry creates a registry pre-seeded with the given built-in
// mappers, in order. Pass none for an empty registry.
func NewRegistry(builtin ...apis.Mapper) *Registry {
	r := &Registry{}
	if len(builtin) > 0 {
		r.mappers = append(r.mappers, builtin...)
	}
	return r
}

// Register appends a mapper to the registry. Mappers registered later take
// precedence over earlier ones during resolution.
func (r *Registry) Register(m apis.Mapper) {
	if m == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mappers = append(r.mappers, m)
}

// snapshot returns a copy of the current mapper list under the read lock.
// The copy lets resolution iterate without holding the lock.
func (r *Registry) snapshot() []apis.Mapper {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]apis.Mapper, len(r.mappers))
	copy(out, r.mappers)
	return out
}

// Resolver produces user-facing messages, chain descriptions and grouping
// fingerprints for arbitrary error values.
//
// A Resolver is a pure view over its Registry: it owns no other state,
// never blocks on I/O and is safe for any number of concurrent callers.
// The registry is injected explicitly — there is no ambient global one —
// so applications control exactly which catalogs are in effect.
type Resolver struct {
	reg *Registry
}

// New creates a Resolver over the given registry. A nil registry behaves
// like an empty one.
func New(reg *Registry) *Resolver {
	if reg == nil {
		reg = NewRegistry()
	}
	return &Resolver{reg: reg}
}

// Default creates a Resolver whose registry is pre-seeded with the built-in
// domain catalogs (network, file, database, auth, permission, state).
// Mappers registered afterwards override the built-ins. The registry is
// fresh per call; the underlying catalog snapshot is built once and shared.
func Default() *Resolver {
	return New(NewRegistry(catalog.Builtin()))
}

// Registry exposes the resolver's registry for registration calls.
func (r *Resolver) Registry() *Registry { return r.reg }

// Resolve returns the best available user-facing message for err.
//
// Resolution tiers, first match wins:
//
//  1. the error's own message (apis.Describable, non-empty);
//  2. registered mappers, last-registered-first, first non-empty result;
//  3. the structured localized shape (apis.Localized): description,
//     failure reason and recovery suggestion, space-separated, in that
//     fixed order;
//  4. the generic fallback "[{domain}: {code}] {description}".
//
// Resolve is total: tier 4 is unconditional, so the result is non-empty
// and safe to display even for wholly opaque errors.
func (r *Resolver) Resolve(err error) string {
	if err == nil {
		return "<nil>"
	}

	// 1. Self-describing errors win over everything.
	if d, ok := err.(apis.Describable); ok {
		if msg := d.UserMessage(); msg != "" {
			return msg
		}
	}

	// 2. Mappers, in reverse registration order.
	mappers := r.reg.snapshot()
	for i := len(mappers) - 1; i >= 0; i-- {
		if msg, ok := mappers[i].Map(err); ok && msg != "" {
			return msg
		}
	}

	// 3. Localized triple, whichever parts are present.
	if l, ok := err.(apis.Localized); ok {
		parts := make([]string, 0, 3)
		if s := l.LocalizedDescription(); s != "" {
			parts = append(parts, s)
		}
		if s := l.FailureReason(); s != "" {
			parts = append(parts, s)
		}
		if s := l.RecoverySuggestion(); s != "" {
			parts = append(parts, s)
		}
		if len(parts) > 0 {
			return strings.Join(parts, " ")
		}
	}

	// 4. Generic fallback. Go's base error representation only guarantees
	// Error(), so the domain defaults to the concrete type and the code
	// to zero unless the error says otherwise.
	dom := fmt.Sprintf("%T", err)
	if d, ok := err.(apis.Domained); ok {
		if s := d.ErrorDomain(); s != "" {
			dom = s
		}
	}
	code := 0
	if c, ok := err.(apis.Coded); ok {
		code = c.ErrorCode()
	}
	return fmt.Sprintf("[%s: %d] %s", dom, code, err.Error())
}
