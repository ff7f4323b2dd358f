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

// Mapper translates a specific error shape into a user-facing message.
//
// Mappers are pure lookups: they MUST NOT mutate the error, block, or keep
// a reference to it. A mapper that does not recognize the error returns
// ("", false) so that resolution can continue with the next registered
// mapper and, ultimately, the generic fallback format.
//
// Registered mappers form an ordered list queried last-registered-first.
// Built-in mappers are registered before any user mapper, so user mappers
// always take precedence — that ordering is a policy consumers may rely on,
// not an implementation accident.
//
// Implementations MUST be safe for concurrent use: a mapper may be invoked
// from any number of resolver calls at once.
type Mapper interface {
	// Map returns the user-facing message for err, or ("", false) when
	// this mapper has nothing to say about it.
	Map(err error) (msg string, ok bool)
}

// MapperFunc adapts a plain function to the Mapper interface.
type MapperFunc func(err error) (string, bool)

// Map implements Mapper.
func (f MapperFunc) Map(err error) (string, bool) { return f(err) }
