package rest

import (
	"net/http"

	"github.com/frankli0324/go-rest/internal/transport"
)

type TransportOption = transport.Option

// HTTPTransport adapts cl to the injected transport shape. it is also what a
// nil [Options.Transport] falls back to, with [http.DefaultClient].
func HTTPTransport(cl *http.Client, opts ...TransportOption) Transport {
	return transport.New(cl, opts...)
}

// WithHTTP2 forces the adapted client onto HTTP/2.
func WithHTTP2() TransportOption { return transport.WithHTTP2() }
