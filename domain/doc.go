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

// Package domain defines the canonical, validated representation of an
// error domain.
//
// A domain names the area of the system an error belongs to ("network",
// "file", "database", ...). Domains are the primary key for message catalog
// lookup and the value printed in the generic fallback format
// "[{domain}: {code}] {description}".
//
// The package provides:
//
//   - the Domain type with Normalize / Parse / MustParse / Validate;
//   - text marshaling so domains can be embedded in config or API structs;
//   - a set of well-known domains used by the built-in catalogs.
//
// Domains are deliberately strict (lowercase, underscores, bounded length)
// so that raw user input can never masquerade as a canonical value.
package domain
