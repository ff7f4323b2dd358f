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

// Package grpcx surfaces echain error descriptions over gRPC.
//
// It is a thin adapter: the resolver produces the message, the chain
// description and the grouping fingerprint, and this package attaches them
// to the outgoing status as standard google.rpc detail payloads
// (ErrorInfo for identity, DebugInfo for the rendered chain).
package grpcx

import (
	"context"
	"strconv"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/echain"
	"dirpx.dev/echain/apis"
)

// chainDepthKey is the ErrorInfo metadata key carrying the wrap depth.
const chainDepthKey = "chain_depth"

// Option configures the interceptor.
type Option func(*options)

type options struct {
	codeFor func(error) codes.Code
}

// WithCode installs a function choosing the gRPC status code for an
// error. Without it every mapped error is surfaced as codes.Unknown.
func WithCode(f func(error) codes.Code) Option {
	return func(o *options) { o.codeFor = f }
}

// UnaryServerInterceptor returns a grpc.UnaryServerInterceptor that maps
// handler errors into gRPC statuses carrying echain detail payloads.
//
// Errors that already are gRPC statuses pass through untouched — a
// handler that speaks status directly has made its own decision. Every
// other error is resolved through res: the status message is the
// user-facing message, an errdetails.ErrorInfo carries the grouping
// fingerprint (Reason), the error domain and the wrap depth, and an
// errdetails.DebugInfo carries the rendered chain, one line per entry.
func UnaryServerInterceptor(res *echain.Resolver, opts ...Option) grpc.UnaryServerInterceptor {
	o := options{codeFor: func(error) codes.Code { return codes.Unknown }}
	for _, opt := range opts {
		opt(&o)
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if _, ok := gstatus.FromError(err); ok {
			// Already a status — return as-is.
			return nil, err
		}
		return nil, Status(res, err, o.codeFor(err)).Err()
	}
}

// Status builds a gRPC status for err with echain detail payloads
// attached. If attaching details fails the bare status is returned; the
// message is never lost.
func Status(res *echain.Resolver, err error, c codes.Code) *gstatus.Status {
	base := gstatus.New(c, res.Resolve(err))

	info := &errdetails.ErrorInfo{
		Reason: res.GroupingID(err),
		Domain: errorDomain(err),
		Metadata: map[string]string{
			chainDepthKey: strconv.Itoa(echain.Depth(err)),
		},
	}
	dbg := &errdetails.DebugInfo{
		StackEntries: strings.Split(res.Describe(err), "\n"),
	}

	if with, derr := base.WithDetails(info, dbg); derr == nil {
		return with
	}
	return base
}

// Fingerprint extracts the grouping fingerprint from a gRPC error
// produced by this package. Useful in clients and tests.
func Fingerprint(err error) (string, bool) {
	if info, ok := errorInfo(err); ok && info.GetReason() != "" {
		return info.GetReason(), true
	}
	return "", false
}

// ChainDetail extracts the rendered chain description from a gRPC error
// produced by this package.
func ChainDetail(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return "", false
	}
	for _, d := range st.Details() {
		if dbg, ok := d.(*errdetails.DebugInfo); ok {
			return strings.Join(dbg.GetStackEntries(), "\n"), true
		}
	}
	return "", false
}

func errorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}

func errorDomain(err error) string {
	if d, ok := err.(apis.Domained); ok {
		return d.ErrorDomain()
	}
	return ""
}
