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

import (
	"fmt"
	"strings"

	"dirpx.dev/echain/apis"
	"dirpx.dev/echain/catalog/internal/segmenttrie"
	"dirpx.dev/echain/domain"
	"dirpx.dev/echain/reason"
)

// New constructs an immutable Catalog snapshot.
//
// The resulting Catalog is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained instance — no shared
// references to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with the library's built-in tables.
//  2. Apply user-provided options (defaults, overrides, prefix rules).
//  3. Normalize and validate all reason prefixes (via reason.Normalize).
//  4. Build per-domain segment tries supporting longest-prefix-match with
//     '*' as a single-segment wildcard.
//  5. Freeze all maps and tries into immutable copies (fresh allocations).
//
// Errors returned from this function indicate invalid domains or prefixes
// encountered during normalization or trie construction.
func New(opts ...Option) (*Catalog, error) {
	// (0) Start with an empty builder; no pre-seeded state is assumed.
	b := newBuilder()

	// (1) Seed the builder with package-level tables. Copy into
	// builder-owned structures to prevent external mutation.
	for d, msg := range defaultTables {
		b.defaults[d] = msg
	}
	for _, r := range defaultRules {
		b.prefixes[r.d] = append(b.prefixes[r.d], prefixRule{r.prefix, r.msg})
	}

	// (2) Apply user-supplied options (defaults, overrides, prefixes).
	for _, opt := range opts {
		opt(b)
	}

	// (3) Reject invalid domains early; typed constants are already
	// canonical, but options accept arbitrary Domain values.
	for d := range b.defaults {
		if err := domain.Validate(d); err != nil {
			return nil, fmt.Errorf("catalog: invalid domain %q in default: %w", d, err)
		}
	}
	for d := range b.overrides {
		if err := domain.Validate(d); err != nil {
			return nil, fmt.Errorf("catalog: invalid domain %q in override: %w", d, err)
		}
	}

	// (4) Build per-domain prefix tries. Each rule prefix is normalized
	// and validated before insertion.
	tries := make(map[domain.Domain]*segmenttrie.Trie[string], len(b.prefixes))
	for d, rules := range b.prefixes {
		if err := domain.Validate(d); err != nil {
			return nil, fmt.Errorf("catalog: invalid domain %q in message rule: %w", d, err)
		}
		if len(rules) == 0 {
			continue
		}
		t := segmenttrie.New[string]()
		for _, r := range rules {
			p, err := normalizeAndValidatePrefix(r.prefix)
			if err != nil {
				return nil, fmt.Errorf("catalog: invalid reason-prefix %q for domain %q: %w", r.prefix, d, err)
			}
			if err := t.Insert(p, r.msg); err != nil {
				return nil, fmt.Errorf("catalog: cannot insert prefix %q for domain %q: %w", p, d, err)
			}
		}
		tries[d] = t
	}

	// (5) Freeze everything into a read-only snapshot. Each map is
	// freshly allocated; tries are shallow-copied (immutable after build).
	return &Catalog{
		defaults:  freezeMessages(b.defaults),
		overrides: freezeMessages(b.overrides),
		tries:     freezeTries(tries),
	}, nil
}

// Catalog is an immutable message table that combines per-domain defaults,
// per-domain exact overrides, and per-domain segment-aware prefix tries
// over reasons. Lookups are O(reason depth) and safe for concurrent use
// once constructed.
type Catalog struct {
	// defaults holds the base message for a domain, used when no
	// per-reason rule and no override are present.
	defaults map[domain.Domain]string

	// overrides holds explicit messages for specific domains. These take
	// precedence over both prefix rules and defaults.
	overrides map[domain.Domain]string

	// tries stores per-domain tries resolving messages from reason
	// prefixes (dot-separated, with "*" for one-segment wildcards).
	tries map[domain.Domain]*segmenttrie.Trie[string]
}

// Catalog implements apis.Mapper.
var _ apis.Mapper = (*Catalog)(nil)

// Map resolves a user-facing message for err.
//
// Only errors exposing a domain (apis.Domained) are eligible; everything
// else is declined so resolution can continue elsewhere. For eligible
// errors the resolution order is:
//
//  1. exact per-domain override;
//  2. per-domain longest-prefix-match rule on the reason;
//  3. per-domain default message;
//  4. no table for this domain — decline.
func (c *Catalog) Map(err error) (string, bool) {
	de, ok := err.(apis.Domained)
	if !ok {
		return "", false
	}
	d := domain.Domain(domain.Normalize(de.ErrorDomain()))
	if d == "" {
		return "", false
	}

	// 1. Fast path: exact override for this domain.
	if msg, ok := c.overrides[d]; ok {
		return msg, true
	}

	// 2. Per-domain prefix LPM over the reason, when one is exposed.
	if re, ok := err.(apis.Reasoned); ok {
		if idx, ok := c.tries[d]; ok && idx != nil {
			if msg, ok := idx.Match(reason.Normalize(re.ErrorReason())); ok {
				return msg, true
			}
		}
	}

	// 3. Per-domain default.
	if msg, ok := c.defaults[d]; ok {
		return msg, true
	}

	// 4. Unknown domain: decline rather than invent a message.
	return "", false
}

// Message resolves a message directly from a (domain, reason) pair, using
// the same precedence as Map. Useful for tests and for callers that have
// the classification without an error value.
func (c *Catalog) Message(d domain.Domain, r reason.Reason) (string, bool) {
	if msg, ok := c.overrides[d]; ok {
		return msg, true
	}
	if idx, ok := c.tries[d]; ok && idx != nil {
		if msg, ok := idx.Match(string(r)); ok {
			return msg, true
		}
	}
	if msg, ok := c.defaults[d]; ok {
		return msg, true
	}
	return "", false
}

// Explain produces a textual trace of how the catalog would resolve a
// message for a particular (domain, reason) pair.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, prefix, default, or none) and, for prefix matches, which
// pattern was used.
//
// Example output:
//
//	domain="database" reason="sqlite.open.locked"
//	message: source=prefix pattern="sqlite.open" -> "The data store could not be opened. Please restart the app."
//
// Notes:
//   - source ∈ {override | prefix | default | none}
//   - pattern is the rule as stored in the trie (may contain "*")
func (c *Catalog) Explain(d domain.Domain, r reason.Reason) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "domain=%q reason=%q\n", d, r)

	// 1) exact per-domain override
	if msg, ok := c.overrides[d]; ok {
		_, _ = fmt.Fprintf(&b, "message: source=override -> %q", msg)
		return b.String()
	}

	// 2) per-domain LPM against the reason
	if idx, ok := c.tries[d]; ok && idx != nil {
		if msg, ok2, pat := idx.MatchWithPattern(string(r)); ok2 {
			_, _ = fmt.Fprintf(&b, "message: source=prefix pattern=%q -> %q", pat, msg)
			return b.String()
		}
	}

	// 3) per-domain default
	if msg, ok := c.defaults[d]; ok {
		_, _ = fmt.Fprintf(&b, "message: source=default -> %q", msg)
		return b.String()
	}

	// 4) nothing for this domain
	_, _ = fmt.Fprintf(&b, "message: source=none")
	return b.String()
}

// normalizeAndValidatePrefix ensures a reason prefix is canonical and
// valid. It forbids empty prefixes and prefixes consisting only of
// wildcards; structural checks on segments happen again at trie insert.
func normalizeAndValidatePrefix(raw string) (string, error) {
	p := reason.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	segs := strings.Split(p, ".")
	allWild := true
	for _, seg := range segs {
		if !validPrefixSegment(seg) { // allows "*" or [a-z][a-z0-9_]*
			return "", fmt.Errorf("invalid segment %q", seg)
		}
		if seg != "*" {
			allWild = false
		}
	}
	if allWild {
		return "", fmt.Errorf("prefix cannot consist of '*' only")
	}
	return p, nil
}

// validPrefixSegment reports whether seg is a valid rule segment:
// "*" or [a-z][a-z0-9_]*. Empty segments are invalid.
func validPrefixSegment(seg string) bool {
	if seg == "" {
		return false
	}
	if seg == "*" {
		return true
	}
	if seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
