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

// Report is a flat, self-contained snapshot of an error, prepared for
// external consumers: structured logging sinks, crash-reporting backends,
// analytics pipelines.
//
// echain itself never logs or reports; it only produces this shape.
// Keeping it in apis lets sinks speak about errors without importing the
// concrete error implementation or the resolver.
//
// All fields are plain strings/ints so the struct survives JSON round-trips
// without custom marshaling.
type Report struct {
	// Domain is the error's domain, when classified ("" otherwise).
	Domain string `json:"domain,omitempty"`

	// Reason is the error's specific reason, when provided.
	Reason string `json:"reason,omitempty"`

	// Code is the numeric code, 0 when the error carries none.
	Code int `json:"code,omitempty"`

	// Message is the resolved user-facing message. Never empty.
	Message string `json:"message"`

	// Fingerprint is the 6-hex-char grouping identifier of the chain.
	Fingerprint string `json:"fingerprint"`

	// Chain is the rendered multi-line chain description.
	Chain string `json:"chain"`

	// Depth is the number of wrap layers (0 for a bare leaf).
	Depth int `json:"depth"`
}
