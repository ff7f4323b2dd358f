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
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"dirpx.dev/echain/apis"
	"dirpx.dev/echain/domain"
)

// localizedErr exposes only the structured localized triple.
type localizedErr struct {
	desc, why, fix string
}

func (e localizedErr) Error() string                { return "localized" }
func (e localizedErr) LocalizedDescription() string { return e.desc }
func (e localizedErr) FailureReason() string        { return e.why }
func (e localizedErr) RecoverySuggestion() string   { return e.fix }

// codedErr exposes a domain and a code but no message of its own.
type codedErr struct {
	dom  string
	code int
}

func (e codedErr) Error() string       { return "backend gave up" }
func (e codedErr) ErrorDomain() string { return e.dom }
func (e codedErr) ErrorCode() int      { return e.code }

func TestResolve_OwnMessageWins(t *testing.T) {
	res := Default()
	err := E(domain.Database, "The sync could not be completed.")

	if got := res.Resolve(err); got != "The sync could not be completed." {
		t.Fatalf("own message must win: %q", got)
	}
}

func TestResolve_EmptyMessageFallsThroughToCatalog(t *testing.T) {
	res := Default()
	err := E(domain.Database, "", WithReasonOption(mustReason(t, "sqlite.locked")))

	if got := res.Resolve(err); got != "Your data is busy right now. Please try again in a moment." {
		t.Fatalf("empty message must fall through to the catalog: %q", got)
	}
}

func TestResolve_MapperOrder_LastRegisteredFirst(t *testing.T) {
	res := Default()
	res.Registry().Register(apis.MapperFunc(func(error) (string, bool) {
		return "first mapper", true
	}))
	res.Registry().Register(apis.MapperFunc(func(error) (string, bool) {
		return "second mapper", true
	}))

	err := E(domain.Network, "") // no own message, both mappers claim it
	if got := res.Resolve(err); got != "second mapper" {
		t.Fatalf("later registration must win: %q", got)
	}
}

func TestResolve_MapperDecline_ContinuesDown(t *testing.T) {
	res := New(NewRegistry())
	res.Registry().Register(apis.MapperFunc(func(error) (string, bool) {
		return "", false
	}))

	err := localizedErr{desc: "The upload failed.", fix: "Try again on Wi-Fi."}
	if got := res.Resolve(err); got != "The upload failed. Try again on Wi-Fi." {
		t.Fatalf("localized triple must assemble present parts in order: %q", got)
	}
}

func TestResolve_LocalizedTriple_FullOrder(t *testing.T) {
	res := New(nil)
	err := localizedErr{desc: "d.", why: "w.", fix: "f."}
	if got := res.Resolve(err); got != "d. w. f." {
		t.Fatalf("triple order must be description, reason, suggestion: %q", got)
	}
}

func TestResolve_Fallback(t *testing.T) {
	res := New(nil)

	// Capability-bearing opaque error: domain and code feed the template.
	err := codedErr{dom: "payments", code: 402}
	want := fmt.Sprintf("[payments: 402] %s", err.Error())
	if got := res.Resolve(err); got != want {
		t.Fatalf("fallback: got %q want %q", got, want)
	}

	// Wholly opaque error: concrete type stands in for the domain.
	got := res.Resolve(errors.New("boom"))
	if !strings.Contains(got, "errorString") || !strings.Contains(got, ": 0] boom") {
		t.Fatalf("opaque fallback: %q", got)
	}

	if res.Resolve(nil) != "<nil>" {
		t.Fatal("nil error must resolve to <nil>")
	}
}

func TestRegistry_NilMapperIgnored(t *testing.T) {
	reg := NewRegistry()
	reg.Register(nil)
	if len(reg.snapshot()) != 0 {
		t.Fatal("nil mapper must not be stored")
	}
}

func TestRegistry_ConcurrentRegisterAndResolve(t *testing.T) {
	res := Default()
	err := E(domain.Network, "", WithReasonOption(mustReason(t, "offline")))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				res.Registry().Register(apis.MapperFunc(func(error) (string, bool) {
					return "", false
				}))
			}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if res.Resolve(err) == "" {
					t.Error("resolution returned empty message")
					return
				}
			}
		}()
	}
	wg.Wait()
}
