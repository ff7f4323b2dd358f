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

package adapter

import (
	"errors"
	"strings"
	"testing"

	"dirpx.dev/echain"
	"dirpx.dev/echain/domain"
)

func TestToReport_RichError(t *testing.T) {
	res := echain.Default()
	err := echain.Wrap(domain.Database,
		echain.E(domain.File, "", echain.WithReasonOption("no_space")),
		echain.WithCodeOption(13),
		echain.WithReasonOption("sqlite.open"),
	)

	rep := ToReport(err, res)
	if rep.Domain != "database" || rep.Reason != "sqlite.open" || rep.Code != 13 {
		t.Fatalf("identity fields: %+v", rep)
	}
	if rep.Message != res.Resolve(err) {
		t.Fatalf("message: %q", rep.Message)
	}
	if rep.Fingerprint != res.GroupingID(err) {
		t.Fatalf("fingerprint: %q", rep.Fingerprint)
	}
	if rep.Depth != 1 {
		t.Fatalf("depth: %d", rep.Depth)
	}
	if !strings.Contains(rep.Chain, "file.no_space") {
		t.Fatalf("chain must include the leaf label:\n%s", rep.Chain)
	}
}

func TestToReport_PlainError(t *testing.T) {
	rep := ToReport(errors.New("boom"), nil)
	if rep.Domain != "" || rep.Reason != "" || rep.Code != 0 {
		t.Fatalf("plain errors carry no identity: %+v", rep)
	}
	if rep.Message == "" || rep.Fingerprint == "" || rep.Chain == "" {
		t.Fatalf("report must still be filled in: %+v", rep)
	}
	if rep.Depth != 0 {
		t.Fatalf("depth: %d", rep.Depth)
	}
}
