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

// Package adapter converts errors into transport-neutral reports.
package adapter

import (
	"dirpx.dev/echain"
	"dirpx.dev/echain/apis"
)

// ToReport resolves err through res and gathers the result, together
// with everything the error's capabilities expose, into a Report ready
// for logging or serialization. A nil resolver means a default resolver
// over the shared built-in catalog.
func ToReport(err error, res *echain.Resolver) apis.Report {
	if res == nil {
		res = echain.Default()
	}

	rep := apis.Report{
		Message:     res.Resolve(err),
		Fingerprint: res.GroupingID(err),
		Chain:       res.Describe(err),
		Depth:       echain.Depth(err),
	}
	if d, ok := err.(apis.Domained); ok {
		rep.Domain = d.ErrorDomain()
	}
	if r, ok := err.(apis.Reasoned); ok {
		rep.Reason = r.ErrorReason()
	}
	if c, ok := err.(apis.Coded); ok {
		rep.Code = c.ErrorCode()
	}
	return rep
}
