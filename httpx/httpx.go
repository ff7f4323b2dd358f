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

// Package httpx writes echain error descriptions as HTTP responses.
//
// The response body is a google.rpc.Status rendered with protojson, with
// the same detail payloads the gRPC adapter attaches: ErrorInfo for the
// grouping fingerprint and error domain, DebugInfo for the rendered
// chain. Clients of the two transports see one shape.
package httpx

import (
	"net/http"
	"strconv"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/echain"
	"dirpx.dev/echain/apis"
)

const chainDepthKey = "chain_depth"

// Meta carries per-response fields set by the caller rather than derived
// from the error.
type Meta struct {
	// Status is the HTTP status code. Zero means 500.
	Status int

	// Correlation identifies the failing request; propagated into the
	// ErrorInfo metadata when set.
	Correlation string

	// TraceID links the response to a trace; propagated alongside
	// Correlation when set.
	TraceID string
}

// Writer renders errors as HTTP responses.
type Writer struct {
	// Resolver produces the user-facing message and chain description.
	// Nil means a default resolver over the shared built-in catalog.
	Resolver *echain.Resolver
}

// Write resolves err and writes it to w as a protojson-encoded
// google.rpc.Status body with application/json content type. A nil err
// writes nothing.
func (wr *Writer) Write(w http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}
	res := wr.Resolver
	if res == nil {
		res = echain.Default()
	}

	code := meta.Status
	if code == 0 {
		code = http.StatusInternalServerError
	}

	st := &spb.Status{
		Code:    int32(code),
		Message: res.Resolve(err),
	}

	md := map[string]string{
		chainDepthKey: strconv.Itoa(echain.Depth(err)),
	}
	if meta.Correlation != "" {
		md["correlation"] = meta.Correlation
	}
	if meta.TraceID != "" {
		md["trace_id"] = meta.TraceID
	}

	info := &errdetails.ErrorInfo{
		Reason:   res.GroupingID(err),
		Domain:   errorDomain(err),
		Metadata: md,
	}
	dbg := &errdetails.DebugInfo{
		StackEntries: strings.Split(res.Describe(err), "\n"),
	}

	// Detail packing failures degrade to a detail-less body rather than
	// losing the message.
	if a, aerr := anypb.New(info); aerr == nil {
		st.Details = append(st.Details, a)
	}
	if a, aerr := anypb.New(dbg); aerr == nil {
		st.Details = append(st.Details, a)
	}

	body, merr := protojson.Marshal(st)
	if merr != nil {
		http.Error(w, res.Resolve(err), code)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

func errorDomain(err error) string {
	if d, ok := err.(apis.Domained); ok {
		return d.ErrorDomain()
	}
	return ""
}
