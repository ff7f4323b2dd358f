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

package catalog

import "dirpx.dev/echain/domain"

// Option configures the Catalog at build time.
// All options are applied to an internal builder and then frozen into an
// immutable Catalog.
type Option func(*builder)

// WithDefault sets or replaces the default message for the given domain.
// The default is the fallback used when no reason-specific rule matches
// an error of that domain.
func WithDefault(d domain.Domain, msg string) Option {
	return func(b *builder) { b.defaults[d] = msg }
}

// WithOverride registers an exact message for the given domain. Overrides
// beat every reason rule and default for that domain, which makes them
// useful for temporarily silencing a whole domain with a single message.
func WithOverride(d domain.Domain, msg string) Option {
	return func(b *builder) { b.overrides[d] = msg }
}

// WithMessage adds a longest-prefix-match message rule for the given
// domain. The rule is evaluated against the error's reason
// (dot-separated). A more specific prefix wins. Use "*" to match a single
// segment.
func WithMessage(d domain.Domain, prefix, msg string) Option {
	return func(b *builder) { b.prefixes[d] = append(b.prefixes[d], prefixRule{prefix, msg}) }
}
