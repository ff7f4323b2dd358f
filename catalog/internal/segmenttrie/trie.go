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

// Package segmenttrie implements a segment-aware prefix index for
// dot-separated keys (reasons). It backs the per-domain message tables of
// the catalog package: the most specific registered reason prefix wins.
package segmenttrie

import (
	"errors"
	"strings"
)

// Trie is a prefix index over dot-separated keys. Each node represents one
// segment; the wildcard "*" matches exactly one segment. Lookup is
// longest-prefix-match honoring segment boundaries, so "auth.jwt" never
// matches the key "auth.j".
//
// A Trie is mutable during construction and MUST be treated as immutable
// once handed to concurrent readers; the catalog builder freezes tries at
// build time.
type Trie[T any] struct {
	// children maps the next segment (including "*") to its subtree.
	children map[string]*Trie[T]
	// hasVal marks that the prefix ending at this node carries a value.
	hasVal bool
	val    T
	// pattern is the canonical dotted prefix (with '*' where a wildcard
	// was used) for this node, set only when hasVal is true. It feeds
	// MatchWithPattern for Explain output, so lookups never build
	// strings.
	pattern string
}

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// empty segments, contains invalid characters, or consists only of
// wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert adds a dot-separated prefix to the trie and associates it with
// val.
//
// Examples:
//
//	"dns"
//	"sqlite.open.locked"
//	"token.*.expired"
//
// The wildcard "*" matches exactly one segment. A prefix made only of "*"
// segments is rejected as too generic. Returns ErrInvalidPrefix on
// malformed input.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	segs, ok := splitAndValidate(prefix)
	if !ok || len(segs) == 0 {
		return ErrInvalidPrefix
	}

	// Require at least one non-wildcard segment to avoid catching everything.
	allWild := true
	for _, s := range segs {
		if s != "*" {
			allWild = false
			break
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, exists := cur.children[s]
		if !exists {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	if cur.pattern == "" {
		// built once at insert time, not on the lookup path
		cur.pattern = prefix
	}
	return nil
}

// Match finds the deepest registered prefix covering key and returns its
// value. The key is treated as a dot-separated segment sequence; both
// exact branches and "*" branches are explored. Returns the zero value and
// false when the key is malformed or nothing matches.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern is Match plus the stored rule pattern of the winning
// node, for Explain-style diagnostics.
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}

	bestDepth := -1
	var bestVal T
	var bestPat string

	// dfs consumes one segment per level starting at byte offset off.
	// Segment parsing validates [a-z][a-z0-9_]* in place, so lookups do
	// not allocate.
	var dfs func(n *Trie[T], off, depth int)
	dfs = func(n *Trie[T], off, depth int) {
		if n.hasVal && depth > bestDepth {
			bestDepth = depth
			bestVal = n.val
			bestPat = n.pattern
		}
		if off >= len(key) {
			return
		}
		seg, nextOff, ok := nextSegment(key, off)
		if !ok {
			return
		}
		if next, ok := n.children[seg]; ok {
			dfs(next, nextOff, depth+1)
		}
		if next, ok := n.children["*"]; ok {
			dfs(next, nextOff, depth+1)
		}
	}

	dfs(t, 0, 0)
	if bestDepth < 0 {
		return zero, false, ""
	}
	return bestVal, true, bestPat
}

// nextSegment scans the segment beginning at off, validating
// [a-z][a-z0-9_]* as it goes, and returns the segment substring together
// with the offset just past the following dot. ok is false on the first
// invalid character, which ends that lookup path.
func nextSegment(s string, off int) (seg string, nextOff int, ok bool) {
	i := off
	c := s[i]
	if c < 'a' || c > 'z' {
		return "", off, false
	}
	i++
	for i < len(s) {
		c = s[i]
		if c == '.' {
			break
		}
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_') {
			return "", off, false
		}
		i++
	}
	seg = s[off:i]
	nextOff = i
	if nextOff < len(s) && s[nextOff] == '.' {
		nextOff++
	}
	return seg, nextOff, true
}

// splitAndValidate splits a dot-separated string into segments and
// validates each one, accepting "*" as a one-segment wildcard. Returns
// (nil, false) on invalid input. An empty string yields an empty (but
// valid) segment list.
func splitAndValidate(s string) ([]string, bool) {
	if s == "" {
		return []string{}, true
	}
	segs := strings.Split(s, ".")
	for _, seg := range segs {
		if !validSegment(seg) {
			return nil, false
		}
	}
	return segs, true
}

// validSegment reports whether seg may be stored in the trie: "*" or
// [a-z][a-z0-9_]*. Empty segments are invalid. These rules keep reason
// prefixes simple, predictable and easy to normalize.
func validSegment(seg string) bool {
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
