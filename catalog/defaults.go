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
	"sync"

	"dirpx.dev/echain/domain"
)

// defaultTables defines the library's built-in per-domain default
// messages. These are only defaults: applications are expected to override
// them (or register higher-precedence mappers) wherever product copy or
// localization demands different wording.
//
// Every message here is complete, display-ready English ending with a
// period; catalogs hand out already-resolved strings, never templates that
// still need localization (string-resource loading happens upstream of
// this package).
var defaultTables = map[domain.Domain]string{
	// Infrastructure.
	domain.Network:  "A network problem occurred. Check your connection and try again.",
	domain.File:     "A file operation failed. Please try again.",
	domain.Database: "A problem occurred while accessing your data. Please try again.",

	// Application.
	domain.Auth:       "You could not be signed in. Please try again.",
	domain.Permission: "Access was declined. You can enable the permission in your device Settings.",
	domain.Validation: "Some of the entered information is not valid. Please review it and try again.",
	domain.State:      "The operation could not be completed right now. Please try again.",
	domain.Operation:  "The operation could not be completed. Please try again.",
	domain.Runtime:    "Something went wrong. Please try again.",
}

// defaultRules defines the library's built-in reason-specific messages.
// Each rule refines one domain's table with a longest-prefix-match entry;
// a more specific reason prefix beats a shorter one, and any match beats
// the domain default.
var defaultRules = []struct {
	d      domain.Domain
	prefix string
	msg    string
}{
	// Network: connectivity subcases a user can act on.
	{domain.Network, "dns.resolve", "The server could not be found. Check your connection and try again."},
	{domain.Network, "timeout", "The connection timed out. Please try again in a moment."},
	{domain.Network, "tls.handshake", "A secure connection could not be established."},
	{domain.Network, "offline", "You appear to be offline. Reconnect and try again."},

	// File: local storage subcases.
	{domain.File, "not_found", "The file could not be found."},
	{domain.File, "permission", "You do not have permission to access this file."},
	{domain.File, "corrupt", "The file appears to be damaged and could not be read."},
	{domain.File, "no_space", "There is not enough space left on this device."},

	// Database: persistence subcases.
	{domain.Database, "sqlite.open", "The data store could not be opened. Please restart the app."},
	{domain.Database, "sqlite.locked", "Your data is busy right now. Please try again in a moment."},
	{domain.Database, "migration", "Your data could not be upgraded to this version of the app."},

	// Auth: session and token subcases.
	{domain.Auth, "token.expired", "Your session has expired. Please sign in again."},
	{domain.Auth, "token.invalid", "Your session is no longer valid. Please sign in again."},
	{domain.Auth, "session.expired", "Your session has expired. Please sign in again."},

	// State: lifecycle subcases.
	{domain.State, "not_ready", "The app is still starting up. Please wait a moment and try again."},
	{domain.State, "shutting_down", "The app is closing and could not complete the operation."},
}

var (
	builtinOnce sync.Once
	builtin     *Catalog
)

// Builtin returns the default catalog: the built-in tables with no user
// adjustments. This is what echain.Default seeds the mapper registry with.
// The snapshot is built once and shared; Catalog is immutable, so sharing
// is safe.
//
// The built-in tables are static and validated by tests, so construction
// cannot fail; a panic here means the tables themselves are broken.
func Builtin() *Catalog {
	builtinOnce.Do(func() {
		c, err := New()
		if err != nil {
			panic("catalog: built-in tables are invalid: " + err.Error())
		}
		builtin = c
	})
	return builtin
}
