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

package reason

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Reason is the canonical, validated representation of an error reason.
//
// Reasons are dot-separated hierarchical identifiers with a small, fixed
// maximum depth. Each segment names a component or operation inside the
// owning domain.
//
// Example valid reasons:
//
//   - "dns.resolve"
//   - "tls.handshake"
//   - "sqlite.open.locked"
//   - "token.expired"
//
// The intent is that error-producing code can build these identifiers from
// known component/operation names, and message catalogs can later match on
// their prefixes.
type Reason string

// MinLength and MaxLength define the allowed length range for a non-empty
// canonical reason.
//
// Reasons may be longer than domains because they usually contain several
// segments (component.operation.subcase).
const (
	// MinLength is the minimum length for a non-empty reason. Values
	// shorter than 3 characters are never meaningful subcases. The empty
	// string is still allowed and means "no reason provided".
	MinLength = 3

	// MaxLength is the maximum length for a valid reason. 128 characters
	// is enough for 5 segments with descriptive names.
	MaxLength = 128
)

const (
	// reasonFmt is the canonical regular expression used to validate
	// reasons.
	//
	// We accept 1 to 5 dot-separated segments, each segment:
	//
	//   - starts with a lowercase ASCII letter [a-z]
	//   - continues with lowercase letters, digits, or underscore
	//
	// Examples that match:
	//
	//	"dns.resolve"
	//	"sqlite.open.locked"
	//	"token.expired"
	//	"timeout"
	//
	// Examples that DO NOT match:
	//
	//	"DNS.Resolve"   (uppercase)
	//	"dns/resolve"   (slash; Normalize converts it first)
	//	"dns..resolve"  (empty segment)
	//	"1dns.resolve"  (digit first)
	//
	// NOTE: the empty string ("") is treated separately as "optional
	// reason" and does not go through this regexp.
	reasonFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,4}$`
)

// reasonRe is the compiled regexp for the pattern above.
var reasonRe = regexp.MustCompile(reasonFmt)

var (
	// ErrReasonInvalidFormat is returned when a reason does not conform
	// to the expected format.
	ErrReasonInvalidFormat = errors.New("echain: invalid reason format")
	// ErrReasonInvalidLength is returned when a reason is too short or
	// too long.
	ErrReasonInvalidLength = errors.New("echain: invalid reason length")
)

// Ensure Reason implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*Reason)(nil)
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Empty is the zero-value reason. It is considered "not provided" and is
// valid to store in error structs. Callers that require a non-empty,
// canonical reason should explicitly call Validate.
var Empty Reason = ""

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical reason form.
//
// Only conservative transformations are applied:
//
//   - trim spaces
//   - lower-case
//   - convert "/" to "." (callers sometimes build paths with slashes)
//   - replace "-" with "_" (to align with domain-style identifiers)
//
// It does NOT guarantee validity — callers should still call Parse or
// Validate afterwards.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Reason value.
//
// Parse also accepts the empty string and returns reason.Empty without
// error. This is what makes Reason an "optional" part of the error model.
func Parse(s string) (Reason, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

// MustParse is the panic-on-error variant of Parse, for declaring
// package-level reason constants.
//
// NOTE: unlike Parse, MustParse does NOT allow the empty string — an empty
// constant is almost always a programmer error.
func MustParse(s string) Reason {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if r == Empty {
		panic("echain: empty reason in MustParse")
	}
	return r
}

// Validate checks whether the provided Reason is in canonical form.
//
// The empty reason ("") is valid here; the whole point of this type is to
// be optional. Enforce "must be non-empty" at the call site if needed.
func Validate(r Reason) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

// String returns the canonical string representation of the reason.
func (r Reason) String() string {
	return string(r)
}

// MarshalText implements encoding.TextMarshaler.
//
// The empty reason marshals to an empty slice so JSON/YAML encoders that
// rely on TextMarshaler are not broken by optional reasons.
func (r Reason) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	if r == Empty {
		return []byte{}, nil
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning. An empty
// or whitespace-only input produces reason.Empty.
func (r *Reason) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// validate checks length and format of a non-empty reason.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrReasonInvalidLength
	}
	if !reasonRe.MatchString(s) {
		return ErrReasonInvalidFormat
	}
	return nil
}
