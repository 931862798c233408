package model

import (
	"context"
	"net/http"
	"strings"
)

// Request describes a single outgoing call. it is an immutable value once
// handed to a transport: anything that needs a modified copy works on a
// [Request.Clone].
type Request struct {
	Method string
	Header http.Header
	Body   string
}

func (r *Request) Clone() *Request {
	clone := *r
	clone.Header = r.Header.Clone()
	return &clone
}

// Transport is the injected capability performing the actual network call.
// it must resolve exactly once per invocation; retries, timeouts and
// cancellation are the transport's (or the caller's) concern, never this
// layer's.
type Transport func(ctx context.Context, address string, req *Request) (*Response, error)

// HeaderLookup is the header access capability a transport exposes on its
// responses. [net/http.Header] satisfies it.
type HeaderLookup interface {
	Get(key string) string
}

// Response is the capability record a transport resolves with. the core only
// reads through it and never owns the underlying connection or buffers.
//
// JSON defers body parsing: it is invoked at most once, and only when content
// negotiation decides the body should be parsed.
type Response struct {
	StatusCode int
	Headers    HeaderLookup
	JSON       func(ctx context.Context) (any, error)
}

// FetchedResponse pairs a response with its parsed body. HasContent is false
// when no body was fetched, which is not the same as a body that parsed to
// null.
type FetchedResponse struct {
	*Response
	Content    any
	HasContent bool
}

// JSONMediaType is the content negotiation sentinel. a body is parsed iff the
// content-type header value starts with it, compared case-insensitively.
const JSONMediaType = "application/json"

func IsJSONContent(contentType string) bool {
	return len(contentType) >= len(JSONMediaType) &&
		strings.EqualFold(contentType[:len(JSONMediaType)], JSONMediaType)
}
