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

type prefixRule struct {
	// prefix is the raw, dot-separated reason prefix (may contain "*").
	// It is validated/normalized when the per-domain trie is built.
	prefix string
	// msg is the user-facing message to apply when this prefix matches.
	msg string
}

type builder struct {
	// user-provided adjustments (applied on top of library defaults)

	// defaults holds per-domain default messages that override the
	// library tables.
	defaults map[domain.Domain]string

	// overrides holds exact per-domain messages that beat every
	// reason-specific rule for that domain.
	overrides map[domain.Domain]string

	// prefixes holds per-domain LPM rules, collected as raw prefixRule
	// values and later compiled into a segment trie.
	prefixes map[domain.Domain][]prefixRule
}

// newBuilder creates an empty builder with maps pre-sized to hold typical
// numbers of entries.
func newBuilder() *builder {
	return &builder{
		// sized roughly to the number of built-in tables
		defaults: make(map[domain.Domain]string, len(defaultTables)),

		// overrides are usually few
		overrides: make(map[domain.Domain]string),
		prefixes:  make(map[domain.Domain][]prefixRule, len(defaultRules)),
	}
}
