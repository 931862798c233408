// package middleware ships ready-made middlewares for the client's transport
// chain. each one wraps the next transport and leaves the original request
// untouched, cloning it when it needs to add headers.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/frankli0324/go-rest/internal"
	"github.com/frankli0324/go-rest/internal/model"
)

const requestIDHeader = "X-Request-Id"

// RequestID stamps outgoing requests with a fresh x-request-id unless the
// caller already set one, so calls can be correlated with peer-side logs.
func RequestID() internal.Middleware {
	return func(next model.Transport) model.Transport {
		return func(ctx context.Context, address string, req *model.Request) (*model.Response, error) {
			if req.Header.Get(requestIDHeader) == "" {
				req = req.Clone()
				if req.Header == nil {
					req.Header = http.Header{}
				}
				req.Header.Set(requestIDHeader, uuid.NewString())
			}
			return next(ctx, address, req)
		}
	}
}
