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

// Package reason defines the canonical, validated representation of an
// error reason.
//
// A reason refines an error domain with a dot-separated, hierarchical
// identifier naming the exact subcase of the failure: "dns.resolve" inside
// "network", "sqlite.open.locked" inside "database".
//
// Reasons are the lookup key of the built-in message catalogs, which match
// on reason *prefixes* with longest-prefix-match semantics. Keeping the
// format strict (lowercase segments, bounded depth) is what makes prefix
// matching predictable.
//
// The empty reason is a valid value and means "no subcase provided";
// resolution then falls back to the domain's default message.
package reason
