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

// Package catalog provides deterministic, immutable message tables mapping
// classified errors — pairs of domain (dirpx.dev/echain/domain) and
// optional reason (dirpx.dev/echain/reason) — to user-facing messages.
//
// # Overview
//
// In echain, a classified error is expressed in two parts:
//
//  1. a high-level Domain (e.g. domain.Network, domain.Database),
//  2. an optional, more specific Reason (e.g. "sqlite.open.locked").
//
// The message resolver needs to turn this pair into a display-ready
// string. Package catalog does that in a way that is:
//
//   - immutable — a Catalog is a snapshot, safe for concurrent reuse;
//   - overridable — callers can replace built-in tables per domain;
//   - prefix-aware — callers can add fine-grained messages for specific
//     reasons;
//   - declinable — a Catalog that has no table for an error's domain
//     says so, and resolution continues with the next registered mapper.
//
// # Resolution model
//
// A Catalog resolves messages in the following order:
//
//  1. exact override for the Domain;
//  2. per-Domain longest-prefix-match (LPM) on the Reason;
//  3. per-Domain default message;
//  4. no match — the catalog declines and the resolver moves on.
//
// Prefix rules are segment-aware: reasons are "."-separated segment
// sequences, and "*" matches exactly one segment. For example:
//
//	catalog.WithMessage(domain.Database, "sqlite.open", "The data store could not be opened.")
//	catalog.WithMessage(domain.Auth, "token.*.expired", "Your session has expired.")
//
// The more specific prefix wins.
//
// # Built-in tables
//
// New seeds every catalog with default tables for the well-known domains
// (network, file, database, auth, permission, validation, state,
// operation, runtime). Builtin returns that default catalog directly; it
// is what echain.Default registers at the bottom of the mapper registry,
// below any user mapper.
//
// # Diagnostics
//
// For debugging and tests, Catalog.Explain returns a human-readable trace
// of how a particular (domain, reason) resolved, including which tier
// matched and, for prefixes, which pattern was used. It is intended for
// inspection, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction the
// Catalog does not observe further changes to the caller's data, which
// makes a single instance safe to share across goroutines and requests.
package catalog
