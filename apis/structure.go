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

// Structured is implemented by errors that can report their own structural
// identity: type name, case name and ordered parameters.
//
// The chain walker prints one line of identity per chain node but only
// holds a plain error reference, so it cannot rely on static dispatch.
// Implementing Structured makes that identity explicit and testable;
// errors that do not implement it fall back to reflection-derived type
// names with no case or parameter information.
type Structured interface {
	error

	// ErrorStructure returns the structural identity of this error value.
	ErrorStructure() Structure
}

// Structure is the structural identity of a single error value, as rendered
// by the chain walker and hashed (after parameter stripping) by the
// fingerprint generator.
type Structure struct {
	// Type is the error's kind identity, e.g. "PermissionError".
	// If empty, consumers derive a name via reflection instead.
	Type string

	// Case names the variant of a sum-shaped error, e.g. "denied".
	// Empty for product-shaped (struct/class-like) errors, which render
	// with a "[Struct]" or "[Class]" suffix instead of a case.
	Case string

	// Params are the case's associated values, in declaration order.
	// Only meaningful when Case is set.
	Params []Param
}

// Param is one associated value of an error case.
type Param struct {
	// Name is the parameter label. MAY be empty for positional values.
	Name string

	// Value is rendered in its natural debug form: strings are quoted,
	// everything else prints as %v.
	Value any
}
