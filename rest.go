// package rest normalizes a pluggable transport into the uniform service
// result envelope defined in [github.com/frankli0324/go-rest/result]. the
// transport is injected, never implemented here; this layer validates its
// responses, negotiates JSON body parsing and classifies non-success
// statuses.
package rest

import (
	"context"
	"net/http"

	"github.com/frankli0324/go-rest/internal"
	"github.com/frankli0324/go-rest/internal/model"
	"github.com/frankli0324/go-rest/result"
)

type Header = http.Header

type Client = internal.Client
type Options = internal.Options
type Middleware = internal.Middleware

type Request = model.Request
type Response = model.Response
type FetchedResponse = model.FetchedResponse
type Transport = model.Transport
type ContractError = model.ContractError

// ErrContract matches contract-violation failures under [errors.Is].
var ErrContract = model.ErrContract

func NewClient(options Options) *Client { return internal.NewClient(options) }

// FetchResponse invokes transport exactly once against address and resolves
// body parsing per content negotiation. see [internal.FetchResponse].
func FetchResponse(ctx context.Context, transport Transport, address string, req *Request) (*FetchedResponse, error) {
	return internal.FetchResponse(ctx, transport, address, req)
}

// Do performs req through c and folds the outcome into a [result.Result],
// decoding success-range bodies into T and classifying everything else.
func Do[T any](ctx context.Context, c *Client, address string, req *Request) (result.Result[T], error) {
	return internal.Do[T](ctx, c, address, req)
}
