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
	"reflect"
	"strings"

	"dirpx.dev/echain/apis"
)

// maxWrapDepth bounds the walker's recursion. A well-formed chain is a few
// layers deep; the cap exists so a degenerate Wrapper that returns itself
// (or an ancestor) from Caught produces defined output instead of
// unbounded recursion.
const maxWrapDepth = 64

// indentUnit is the per-level indentation of the rendered tree.
const indentUnit = "   "

// Describe renders the wrap chain of err as an indented tree.
//
// One line per chain node in root-to-leaf order: wrappers print their type
// name, the leaf prints its full structural label, and the leaf is
// followed by its resolved message:
//
//	StateError
//	└─ FileError
//	   └─ permission.denied(path: "/tmp/x")
//	      └─ userFriendlyMessage: "Access to /tmp/x was declined."
//
// The root line carries no branch glyph; every deeper line is prefixed
// with "└─ " at an indent that grows by one unit per wrap level. A chain
// deeper than maxWrapDepth ends in a "(wrap depth limit reached)" line.
//
// Node identity comes from apis.Structured when implemented, otherwise
// from reflection over the concrete value (type name plus a "[Struct]" or
// "[Class]" suffix for value vs. pointer semantics).
func (r *Resolver) Describe(err error) string {
	if err == nil {
		return "<nil>"
	}
	var b strings.Builder
	r.describe(&b, err, "", 0)
	return b.String()
}

func (r *Resolver) describe(b *strings.Builder, err error, indent string, depth int) {
	child := caught(err)
	if child == nil {
		// Leaf: full label, then the resolved message one level deeper.
		b.WriteString(leafLabel(err))
		b.WriteString("\n")
		b.WriteString(indent)
		fmt.Fprintf(b, "└─ userFriendlyMessage: %q", r.Resolve(err))
		return
	}

	// Wrapper: type name only; the child carries the detail.
	b.WriteString(typeName(err))
	b.WriteString("\n")
	b.WriteString(indent)
	b.WriteString("└─ ")
	if depth+1 >= maxWrapDepth {
		b.WriteString("(wrap depth limit reached)")
		return
	}
	r.describe(b, child, indent+indentUnit, depth+1)
}

// Depth returns the number of wrap layers in err's chain: 0 for a bare
// leaf, N for N wrappers above the leaf. Counting stops at maxWrapDepth.
func Depth(err error) int {
	n := 0
	for err != nil && n < maxWrapDepth {
		child := caught(err)
		if child == nil {
			break
		}
		err = child
		n++
	}
	return n
}

// caught returns the wrap-slot content of err, or nil when err is a leaf
// (no Wrapper capability, or an empty slot).
func caught(err error) error {
	if w, ok := err.(apis.Wrapper); ok {
		return w.Caught()
	}
	return nil
}

// typeName returns the bare kind identity of err: the Structured type name
// when available, the reflected concrete type name otherwise.
func typeName(err error) string {
	if s, ok := err.(apis.Structured); ok {
		if st := s.ErrorStructure(); st.Type != "" {
			return st.Type
		}
	}
	return reflectedName(err)
}

// leafLabel renders the full structural label of a leaf node.
//
// Sum-shaped errors (a Structured with a case) render as
// "Type.case(name: value, ...)"; product-shaped errors render as
// "Type [Struct]" or "Type [Class]".
func leafLabel(err error) string {
	if s, ok := err.(apis.Structured); ok {
		st := s.ErrorStructure()
		if st.Type != "" {
			if st.Case != "" {
				return st.Type + "." + st.Case + renderParams(st.Params)
			}
			return st.Type + kindSuffix(err)
		}
	}
	return reflectedName(err) + kindSuffix(err)
}

// renderParams renders associated values in their natural debug form:
// strings quoted, everything else via %v. Returns "" for a bare case.
func renderParams(params []apis.Param) string {
	if len(params) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("(")
	for i, p := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		if p.Name != "" {
			b.WriteString(p.Name)
			b.WriteString(": ")
		}
		switch v := p.Value.(type) {
		case string:
			fmt.Fprintf(&b, "%q", v)
		default:
			fmt.Fprintf(&b, "%v", v)
		}
	}
	b.WriteString(")")
	return b.String()
}

// kindSuffix distinguishes reference from value semantics of the concrete
// error: pointer-shaped errors are classes, everything else structs.
func kindSuffix(err error) string {
	if t := reflect.TypeOf(err); t != nil && t.Kind() == reflect.Pointer {
		return " [Class]"
	}
	return " [Struct]"
}

// reflectedName derives a type name from the concrete value. Pointers are
// dereferenced so *FileError and FileError share one identity; unnamed
// types fall back to their full type string.
func reflectedName(err error) string {
	t := reflect.TypeOf(err)
	if t == nil {
		return "<nil>"
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if n := t.Name(); n != "" {
		return n
	}
	return t.String()
}
