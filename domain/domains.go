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

// Infrastructure domains
//
// These domains classify failures of the machinery underneath application
// logic: connectivity, storage, persistence. The built-in message catalogs
// ship default tables for all of them.
const (
	// Network classifies connectivity failures: unreachable hosts, DNS
	// resolution, TLS handshakes, timeouts on the wire.
	// Often paired with reasons like "dns.resolve", "timeout",
	// "tls.handshake".
	Network Domain = "network"

	// File classifies local file-system failures: missing files, denied
	// access, corruption, exhausted space.
	// Often paired with reasons like "not_found", "permission",
	// "corrupt".
	File Domain = "file"

	// Database classifies persistence-layer failures: opening a store,
	// locked databases, failed migrations, constraint violations.
	// Often paired with reasons like "sqlite.open", "sqlite.locked",
	// "migration".
	Database Domain = "database"
)

// Application domains
//
// These domains classify failures originating in application logic and its
// interaction with the user or platform.
const (
	// Auth classifies authentication and session failures.
	// Often paired with reasons like "token.expired", "token.invalid",
	// "session.expired".
	Auth Domain = "auth"

	// Permission classifies platform permission denials: the user or the
	// system declined access to a capability or resource.
	// Often paired with reasons like "denied", "restricted".
	Permission Domain = "permission"

	// Validation classifies rejected input: format, range or cross-field
	// consistency violations detected before any work was attempted.
	Validation Domain = "validation"

	// State classifies operations attempted in an illegal or unexpected
	// application state (not initialized, already running, shut down).
	State Domain = "state"

	// Operation classifies failures of a logical operation that do not
	// reduce to a more specific domain; the underlying technical cause is
	// typically carried in the wrap chain.
	Operation Domain = "operation"

	// Runtime is the fallback classification for internal, unexpected
	// failures. Use it when no more specific domain applies.
	Runtime Domain = "runtime"
)
