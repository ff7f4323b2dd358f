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
	"sort"

	"dirpx.dev/echain/apis"
	"dirpx.dev/echain/domain"
	"dirpx.dev/echain/reason"
)

// Error is the canonical rich error type for echain.
//
// It carries:
//   - Domain: high-level, normalized error domain (required);
//   - Code: optional numeric code within the domain;
//   - Reason: optional, more specific machine-friendly subcase;
//   - Message: human-oriented description (what went wrong);
//   - Params: arbitrary named payload (rendered as case parameters);
//   - Cause: the caught inner error, forming the wrap chain.
//
// Error implements every apis capability, so it resolves, renders and
// fingerprints without extra glue: the domain is its kind identity, the
// reason its case, and Cause its distinguished wrap slot.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and modified in a functional style.
type Error struct {
	// Domain is the primary classification of the error, e.g. "network",
	// "database". Must be a normalized domain from echain/domain.
	Domain domain.Domain

	// Code is an optional numeric code within the domain, e.g. a driver
	// errno. Zero means "no code".
	Code int

	// Reason refines the Domain with a machine-usable subcase, e.g.
	// "dns.resolve" or "sqlite.open.locked". May be empty when the
	// Domain is descriptive enough.
	Reason reason.Reason

	// Message is a human-readable, display-ready explanation. When empty,
	// the message resolver consults the registered catalogs instead.
	Message string

	// Params is an optional, shallow map of named values describing the
	// failure (file names, hosts, limits). The map is treated as
	// immutable: WithParam/WithParams always copy it.
	Params map[string]any

	// Cause holds the caught inner error (if any). It is the wrap slot
	// followed by the chain walker and also feeds errors.Is / errors.As.
	Cause error
}

// Compile-time capability checks.
var (
	_ apis.Describable = (*Error)(nil)
	_ apis.Wrapper     = (*Error)(nil)
	_ apis.Domained    = (*Error)(nil)
	_ apis.Reasoned    = (*Error)(nil)
	_ apis.Coded       = (*Error)(nil)
	_ apis.Structured  = (*Error)(nil)
)

// E is a convenience constructor for Error.
//
// Usage:
//
//	return echain.E(domain.Database, "store is unreachable",
//	    echain.WithReasonOption("sqlite.open.locked"),
//	    echain.WithParamOption("file", "App.sqlite"),
//	)
//
// It always returns a *new* Error and applies all provided options in order.
func E(d domain.Domain, msg string, opts ...Option) *Error {
	e := &Error{Domain: d, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Wrap constructs an Error whose wrap slot holds inner.
//
// This is the explicit form of the "caught" case: the new error's own
// identity is (d, opts...), while inner stays reachable through Caught()
// for the chain walker and through Unwrap() for errors.Is / errors.As.
// A nil inner produces a leaf error.
func Wrap(d domain.Domain, inner error, opts ...Option) *Error {
	e := E(d, "", opts...)
	e.Cause = inner
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<domain>: <message>
//
// or, when Reason is present:
//
//	<domain>:<reason>: <message>
//
// This keeps the error both human- and machine-scannable in logs.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s:%s: %s", e.Domain, e.Reason, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Domain, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// Caught returns the content of the wrap slot; nil means this Error is a
// chain leaf.
func (e *Error) Caught() error { return e.Cause }

// UserMessage returns the error's own display message. An empty return
// means "not provided" and lets the resolver fall through to catalogs.
func (e *Error) UserMessage() string { return e.Message }

// ErrorDomain returns the normalized domain string.
func (e *Error) ErrorDomain() string { return string(e.Domain) }

// ErrorReason returns the normalized reason string, possibly empty.
func (e *Error) ErrorReason() string { return string(e.Reason) }

// ErrorCode returns the numeric code, 0 when none was set.
func (e *Error) ErrorCode() int { return e.Code }

// ErrorStructure reports the structural identity used by the chain walker:
// the domain is the kind, the reason the case, and Params the associated
// values (sorted by name for deterministic rendering and fingerprinting).
func (e *Error) ErrorStructure() apis.Structure {
	st := apis.Structure{
		Type: string(e.Domain),
		Case: string(e.Reason),
	}
	if len(e.Params) == 0 {
		return st
	}
	names := make([]string, 0, len(e.Params))
	for n := range e.Params {
		names = append(names, n)
	}
	sort.Strings(names)
	st.Params = make([]apis.Param, 0, len(names))
	for _, n := range names {
		st.Params = append(st.Params, apis.Param{Name: n, Value: e.Params[n]})
	}
	return st
}

// WithReason returns a shallow copy of e with the given Reason set.
// The original error is not modified.
func (e *Error) WithReason(r reason.Reason) *Error {
	cp := *e
	cp.Reason = r
	return &cp
}

// WithCode returns a shallow copy of e with the given numeric code set.
func (e *Error) WithCode(code int) *Error {
	cp := *e
	cp.Code = code
	return &cp
}

// WithMessage returns a shallow copy of e with a replaced human message.
// Useful when the Domain/Reason should be kept but the message presented
// in a different language or context.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithParam returns a shallow copy of e with one extra named value in
// Params.
//
// The method always copies the map to preserve immutability. This prevents
// surprising modifications across goroutines or shared error values.
func (e *Error) WithParam(name string, v any) *Error {
	cp := *e
	// No params yet — create a new single-entry map.
	if len(cp.Params) == 0 {
		cp.Params = map[string]any{name: v}
		return &cp
	}
	// Copy existing params and add one more.
	m := make(map[string]any, len(cp.Params)+1)
	for n0, v0 := range cp.Params {
		m[n0] = v0
	}
	m[name] = v
	cp.Params = m
	return &cp
}

// WithParams returns a shallow copy of e with all provided kv merged into
// Params.
//
// If the Error already has Params, both maps are copied and merged, with
// kv taking precedence on name conflicts.
func (e *Error) WithParams(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	// No existing params — just copy kv.
	if len(cp.Params) == 0 {
		m := make(map[string]any, len(kv))
		for n, v := range kv {
			m[n] = v
		}
		cp.Params = m
		return &cp
	}
	// Merge existing + new.
	m := make(map[string]any, len(cp.Params)+len(kv))
	for n0, v0 := range cp.Params {
		m[n0] = v0
	}
	for n, v := range kv {
		m[n] = v
	}
	cp.Params = m
	return &cp
}

// WithCause returns a shallow copy of e with the given inner error placed
// in the wrap slot. If err is nil, the original error is returned
// unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
