// package transport adapts [net/http] to the call capability consumed by the
// client core. the adapter only translates shapes; pooling, redirects and
// timeouts stay the wrapped client's concern.
package transport

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"golang.org/x/net/http2"

	"github.com/frankli0324/go-rest/internal/model"
)

type Option func(*config)

type config struct {
	h2 bool
}

// WithHTTP2 puts the wrapped client on an [http2.Transport], for peers that
// only speak h2.
func WithHTTP2() Option {
	return func(c *config) { c.h2 = true }
}

// New wraps cl into the transport capability shape. a nil cl uses
// [http.DefaultClient].
func New(cl *http.Client, opts ...Option) model.Transport {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}
	if cl == nil {
		cl = http.DefaultClient
	}
	if cfg.h2 {
		c := *cl
		c.Transport = &http2.Transport{TLSClientConfig: &tls.Config{}}
		cl = &c
	}
	return func(ctx context.Context, address string, req *model.Request) (*model.Response, error) {
		var body io.Reader
		if req.Body != "" {
			body = strings.NewReader(req.Body)
		}
		hr, err := http.NewRequestWithContext(ctx, req.Method, address, body)
		if err != nil {
			return nil, err
		}
		for k, vs := range req.Header {
			for _, v := range vs {
				hr.Header.Add(k, v)
			}
		}
		resp, err := cl.Do(hr)
		if err != nil {
			return nil, err
		}
		if !model.IsJSONContent(resp.Header.Get("Content-Type")) {
			// the parser will never run for this response, so the body is
			// drained up front to hand the connection back to the pool.
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}
		return &model.Response{
			StatusCode: resp.StatusCode,
			Headers:    resp.Header,
			JSON: func(context.Context) (any, error) {
				defer resp.Body.Close()
				var v any
				if err := json.NewDecoder(resp.Body).Decode(&v); err != nil && err != io.EOF {
					return nil, err
				}
				return v, nil
			},
		}, nil
	}
}
