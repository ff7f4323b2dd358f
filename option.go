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

import "dirpx.dev/echain/reason"

// Option is a functional option for constructing or transforming an Error.
// It always takes an *Error and returns a (possibly new) *Error.
type Option func(*Error) *Error

// WithReasonOption sets the Reason on the error being constructed.
// Intended to be used with E(...) and Wrap(...).
func WithReasonOption(r reason.Reason) Option {
	return func(e *Error) *Error {
		return e.WithReason(r)
	}
}

// WithCodeOption sets the numeric code on construction.
// Intended to be used with E(...) and Wrap(...).
func WithCodeOption(code int) Option {
	return func(e *Error) *Error {
		return e.WithCode(code)
	}
}

// WithParamOption adds a single named value on construction.
// Intended to be used with E(...) and Wrap(...).
func WithParamOption(name string, v any) Option {
	return func(e *Error) *Error {
		return e.WithParam(name, v)
	}
}

// WithParamsOption merges multiple named values on construction.
// Intended to be used with E(...) and Wrap(...).
func WithParamsOption(kv map[string]any) Option {
	return func(e *Error) *Error {
		return e.WithParams(kv)
	}
}

// WithCauseOption places an inner error in the wrap slot on construction.
// Intended to be used with E(...).
func WithCauseOption(err error) Option {
	return func(e *Error) *Error {
		return e.WithCause(err)
	}
}
