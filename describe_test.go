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

package echain

import (
	"strings"
	"testing"

	"dirpx.dev/echain/apis"
	"dirpx.dev/echain/domain"
)

// The test chain below mirrors a typical layered application: each layer
// has its own wrapper type whose only job is to hold what it caught.

type StateError struct{ inner error }

func (e StateError) Error() string { return "state error" }
func (e StateError) Caught() error { return e.inner }

type OperationError struct{ inner error }

func (e OperationError) Error() string { return "operation error" }
func (e OperationError) Caught() error { return e.inner }

type DatabaseError struct{ inner error }

func (e DatabaseError) Error() string { return "database error" }
func (e DatabaseError) Caught() error { return e.inner }

type FileError struct{ inner error }

func (e FileError) Error() string { return "file error" }
func (e FileError) Caught() error { return e.inner }

// PermissionError is the sum-shaped leaf: it names its case, carries an
// associated value and describes itself.
type PermissionError struct{ permission string }

func (e PermissionError) Error() string { return "permission denied: " + e.permission }

func (e PermissionError) ErrorStructure() apis.Structure {
	return apis.Structure{
		Type:   "PermissionError",
		Case:   "denied",
		Params: []apis.Param{{Name: "permission", Value: e.permission}},
	}
}

func (e PermissionError) UserMessage() string {
	return "Access to " + e.permission + " was declined. To use this feature, please enable the permission in your device Settings."
}

// diskFull has no capabilities at all: no structure, no message, no wrap
// slot. The walker and resolver must still produce defined output.
type diskFull struct{}

func (diskFull) Error() string { return "disk full" }

func TestDescribe_FiveLevelChain(t *testing.T) {
	err := StateError{OperationError{DatabaseError{FileError{PermissionError{permission: "contacts"}}}}}

	want := strings.Join([]string{
		`StateError`,
		`└─ OperationError`,
		`   └─ DatabaseError`,
		`      └─ FileError`,
		`         └─ PermissionError.denied(permission: "contacts")`,
		`            └─ userFriendlyMessage: "Access to contacts was declined. To use this feature, please enable the permission in your device Settings."`,
	}, "\n")

	if got := Default().Describe(err); got != want {
		t.Fatalf("chain mismatch.\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}
	if d := Depth(err); d != 4 {
		t.Fatalf("depth: got %d want 4", d)
	}
}

func TestDescribe_BareStructLeaf(t *testing.T) {
	res := Default()

	want := strings.Join([]string{
		`diskFull [Struct]`,
		`└─ userFriendlyMessage: "[echain.diskFull: 0] disk full"`,
	}, "\n")
	if got := res.Describe(diskFull{}); got != want {
		t.Fatalf("struct leaf mismatch.\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}

	// Pointer-shaped leaves report reference semantics.
	if got := res.Describe(&diskFull{}); !strings.HasPrefix(got, "diskFull [Class]") {
		t.Fatalf("class leaf mismatch: %q", got)
	}
}

func TestDescribe_CanonicalErrorChain(t *testing.T) {
	leaf := E(domain.File, "",
		WithReasonOption(mustReason(t, "not_found")),
		WithParamOption("path", "/tmp/export.csv"),
	)
	err := Wrap(domain.Operation, leaf)

	want := strings.Join([]string{
		`operation`,
		`└─ file.not_found(path: "/tmp/export.csv")`,
		`   └─ userFriendlyMessage: "The file could not be found."`,
	}, "\n")
	if got := Default().Describe(err); got != want {
		t.Fatalf("canonical chain mismatch.\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}
}

func TestDescribe_NilError(t *testing.T) {
	if got := Default().Describe(nil); got != "<nil>" {
		t.Fatalf("nil must render <nil>: %q", got)
	}
	if Depth(nil) != 0 {
		t.Fatal("nil depth must be 0")
	}
}

// selfWrap returns itself from Caught, the degenerate cycle case.
type selfWrap struct{}

func (selfWrap) Error() string { return "self" }
func (s selfWrap) Caught() error { return s }

func TestDescribe_DepthLimitOnCycle(t *testing.T) {
	got := Default().Describe(selfWrap{})
	if !strings.Contains(got, "(wrap depth limit reached)") {
		t.Fatalf("cycle must hit the depth limit:\n%s", got)
	}
	if n := strings.Count(got, "\n") + 1; n != maxWrapDepth+1 {
		t.Fatalf("line count: got %d want %d", n, maxWrapDepth+1)
	}
	if Depth(selfWrap{}) != maxWrapDepth {
		t.Fatalf("depth must stop at the cap, got %d", Depth(selfWrap{}))
	}
}
