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

package domain

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Domain is the canonical, validated representation of an error domain.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with normalized values.
//
// IMPORTANT: the empty domain ("") is NOT allowed. Every classified error
// MUST carry a non-empty domain; errors with no classification simply do
// not implement the Domained capability.
type Domain string

// MinLength and MaxLength define the allowed length range for a canonical
// domain.
//
// They are separate constants so that validation errors, tests and other
// packages mirroring the same constraints can reference them.
const (
	// MinLength is the minimum length for a valid domain. Requiring at
	// least 3 characters keeps ultra-short, ambiguous identifiers like
	// "a" or "x1" out of the canonical set.
	MinLength = 3

	// MaxLength is the maximum length for a valid domain. 48 characters
	// is enough for descriptive domains like "background_transfer" while
	// preventing accidental unbounded strings.
	MaxLength = 48
)

const (
	// domainFmt is the canonical regular expression used to validate
	// domains.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[a-z] - first character must be a lowercase ASCII letter;
	//	[a-z0-9_]{2,47} - the remaining characters may be lowercase
	//	                  letters, digits or underscore; the quantifier
	//	                  {2,47} makes the total length 3..48 (1 + 2..47);
	//	$ - end of string;
	//
	// IMPORTANT: the numeric range {2,47} is tied to MinLength/MaxLength
	// above. Adjust them together.
	domainFmt = `^[a-z][a-z0-9_]{2,47}$`
)

// domainRe is the compiled form of domainFmt. Precompiled so repeated
// validations (catalog lookups normalize on every call) do not pay the
// compilation cost.
//
// Valid:   "network", "file", "database", "state"
// Invalid: "Network" (uppercase), "net-work" (dash), "db" (too short),
//          "1net" (does not start with a letter)
var domainRe = regexp.MustCompile(domainFmt)

// ErrDomainInvalid is returned when a value cannot be parsed or validated
// as a domain. A dedicated sentinel makes it easy for callers and tests to
// detect "this is about domain format" vs some other failure.
var ErrDomainInvalid = errors.New("echain: invalid domain")

// Ensure Domain implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Domain)(nil)
	_ encoding.TextUnmarshaler = (*Domain)(nil)
)

// Empty is the zero-value domain. It is considered "not provided" and is
// valid to store in error structs. Callers that require a non-empty,
// canonical domain should explicitly call Validate.
var Empty Domain = ""

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Domain value.
func Parse(s string) (Domain, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Domain(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in var blocks.
func MustParse(s string) Domain {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical domain form.
//
// The transformations are intentionally conservative and non-lossy:
//
//   - trim surrounding spaces;
//   - lowercase;
//   - replace '-' with '_'.
//
// It does NOT guarantee that the result is valid — callers should still
// call Validate/Parse afterwards.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether the provided Domain is valid.
// The empty domain ("") is considered invalid.
func Validate(d Domain) error {
	return validate(string(d))
}

// String returns the canonical string representation of the domain.
func (d Domain) String() string {
	return string(d)
}

// MarshalText implements encoding.TextMarshaler. It refuses to marshal an
// invalid domain rather than leak a non-canonical value.
func (d Domain) MarshalText() ([]byte, error) {
	if err := Validate(d); err != nil {
		return nil, err
	}
	return []byte(d), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It normalizes and
// validates the provided text before assigning.
func (d *Domain) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func validate(s string) error {
	if !domainRe.MatchString(s) {
		return ErrDomainInvalid
	}
	return nil
}
