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

package apis

// Describable is implemented by errors that carry their own user-facing
// message.
//
// This is the highest-precedence source consulted by the message resolver:
// if an error can describe itself, no mapper or fallback formatting is
// consulted.
//
// Implementations SHOULD return a non-empty, display-ready string. A
// wrapper error whose message is defined SHOULD normally delegate to the
// message of whatever it wraps, so that wrapping never silently drops the
// leaf's message — this is a convention for implementers, not something the
// resolver enforces.
//
// Returning the empty string is tolerated and treated as "no message
// provided": the resolver falls through to the next tier instead of
// surfacing an empty message.
type Describable interface {
	error

	// UserMessage returns the user-facing message for this error.
	UserMessage() string
}

// Wrapper is implemented by errors that hold exactly one caught inner error
// in a distinguished wrap slot.
//
// The wrap slot is what the chain walker follows: a chain is the linked
// sequence of Wrapper values ending at the first error that either does not
// implement Wrapper or whose slot is empty (the leaf).
//
// Wrapper is deliberately separate from the stdlib Unwrap convention.
// Unwrap participates in errors.Is / errors.As traversal and may be
// implemented by types that are not part of an echain wrap chain; Caught is
// the explicit, introspectable "caught" slot of this toolkit. Types will
// usually implement both, returning the same value.
//
// Chains MUST be finite. Nothing prevents a degenerate implementation from
// returning itself (or an ancestor) from Caught; the chain walker bounds
// its recursion rather than inheriting unbounded recursion from such input.
type Wrapper interface {
	error

	// Caught returns the wrapped inner error, or nil when the wrap slot
	// is empty and this error is a leaf.
	Caught() error
}

// Localized is implemented by errors that expose a structured, localized
// message shape: an optional description, failure reason and recovery
// suggestion.
//
// The resolver concatenates whichever parts are present, space-separated,
// in that fixed order. Each method MAY return the empty string.
type Localized interface {
	error

	// LocalizedDescription returns the localized description of the
	// failure, or "".
	LocalizedDescription() string

	// FailureReason returns a localized explanation of why the operation
	// failed, or "".
	FailureReason() string

	// RecoverySuggestion returns a localized hint on how the user can
	// recover, or "".
	RecoverySuggestion() string
}

// Domained is implemented by errors that are classified into a
// well-defined error *domain*, e.g. "network", "file", "database".
//
// Domains are intended to be stable and enumerable. They are the primary
// key that message catalogs use to select a message table, and the value
// printed in the generic fallback format.
//
// Implementations are expected to return a *canonicalized* domain string,
// normalized to the format enforced by echain/domain (lowercase,
// underscores, length limits, etc.).
type Domained interface {
	error

	// ErrorDomain returns the machine-readable error domain.
	//
	// The returned value SHOULD be non-empty and already normalized.
	// Consumers treat an empty domain as "unclassified".
	ErrorDomain() string
}

// Reasoned is implemented by errors that provide a more specific,
// contextual *reason* in addition to the domain.
//
// While the domain answers "what area of the system failed?", the reason
// answers "which exact subcase of that failure happened?".
//
// Examples:
//
//	domain: "network"   reason: "dns.resolve"
//	domain: "database"  reason: "sqlite.open.locked"
//
// Reasons are hierarchical, dot-separated strings validated by
// echain/reason. Message catalogs match on reason prefixes, so having a
// separate interface lets resolution gracefully degrade: an error without a
// reason still resolves through its domain's default message.
type Reasoned interface {
	error

	// ErrorReason returns the specific error reason. MAY be empty.
	ErrorReason() string
}

// Coded is implemented by errors that carry a numeric code alongside the
// domain. It exists for the last-resort fallback format
// "[{domain}: {code}] {description}"; errors without it format with code 0.
type Coded interface {
	error

	// ErrorCode returns the numeric code of the error.
	ErrorCode() int
}
