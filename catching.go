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

import "context"

// Catching executes op and auto-wraps any error it returns.
//
// It is the generic form of the "caught" pattern: instead of declaring one
// wrapper case per lower-layer error type, a higher-layer error type E
// declares a single wrap constructor and Catching applies it uniformly.
//
// Semantics:
//
//   - op succeeds: its value is returned with a nil error;
//   - op fails with an error already of type E: that exact value is
//     returned as-is — no double wrapping;
//   - op fails with anything else: the error is passed to wrap and the
//     resulting E is returned.
//
// Catching itself never fails outside of propagating either the original
// typed error or the freshly wrapped one.
//
// Example:
//
//	cfg, err := echain.Catching(newConfigError, loadConfig)
func Catching[E error, T any](wrap func(error) E, op func() (T, error)) (T, error) {
	v, err := op()
	if err == nil {
		return v, nil
	}
	// Pass-through: an error that is already an E is rethrown untouched.
	if same, ok := err.(E); ok {
		return v, same
	}
	return v, wrap(err)
}

// Catch is Catching for operations that produce no value.
func Catch[E error](wrap func(error) E, op func() error) error {
	if err := op(); err != nil {
		if same, ok := err.(E); ok {
			return same
		}
		return wrap(err)
	}
	return nil
}

// CatchingContext is the context-aware variant of Catching, for operations
// that block. The wrapping semantics are identical; the only blocking
// happens inside op itself, never in the wrapping logic. A cancellation
// simply surfaces as whatever error op returns and is wrapped normally.
func CatchingContext[E error, T any](ctx context.Context, wrap func(error) E, op func(context.Context) (T, error)) (T, error) {
	v, err := op(ctx)
	if err == nil {
		return v, nil
	}
	if same, ok := err.(E); ok {
		return v, same
	}
	return v, wrap(err)
}

// Text is a string-backed error kind whose raw value doubles as its
// user-facing message.
//
// It is the zero-boilerplate default for simple enumerations: declare
// sentinel values whose stored string is already display-ready, and they
// satisfy both error and apis.Describable with no further code.
//
//	const ErrNotReady = echain.Text("The service is still starting up.")
//
// Types needing their own identity can embed Text in a struct or define
// constructors around it; Text is a convenience, not a requirement.
type Text string

// Error implements the built-in error interface.
func (t Text) Error() string { return string(t) }

// UserMessage implements apis.Describable using the raw stored string.
func (t Text) UserMessage() string { return string(t) }
