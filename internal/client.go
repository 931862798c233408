package internal

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/frankli0324/go-rest/internal/model"
	"github.com/frankli0324/go-rest/internal/transport"
	"github.com/frankli0324/go-rest/result"
)

// Options is the configuration bag accepted by [NewClient]. Transport is the
// injected call capability; nil selects the [net/http] backed default.
// BaseURI, when set, prefixes relative addresses passed to CtxDo.
type Options struct {
	Transport model.Transport
	BaseURI   string
}

type Middleware func(next model.Transport) model.Transport

type Client struct {
	options     Options
	middlewares []Middleware
}

func NewClient(options Options) *Client {
	return &Client{options: options}
}

// Use appends mw to the end of the chain. The last "Use"d mw executes first
func (c *Client) Use(mws ...Middleware) {
	c.middlewares = append(c.middlewares, mws...)
}

func (c *Client) transport() model.Transport {
	next := c.options.Transport
	if next == nil {
		next = transport.New(nil)
	}
	for i := len(c.middlewares) - 1; i >= 0; i-- {
		next = c.middlewares[i](next)
	}
	return next
}

// CtxDo performs one call against address, resolved against BaseURI when
// relative, through the middleware chain and [FetchResponse].
func (c *Client) CtxDo(ctx context.Context, address string, req *model.Request) (*model.FetchedResponse, error) {
	return FetchResponse(ctx, c.transport(), c.resolve(address), req)
}

func (c *Client) resolve(address string) string {
	base := c.options.BaseURI
	if base == "" || strings.Contains(address, "://") {
		return address
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(address, "/")
}

// Do performs req and folds the outcome into the uniform service result
// envelope. an empty Method fails locally with a required-field error before
// any transport call. success-range statuses project the parsed body onto T;
// everything else is classified with [result.ResponseError]. transport
// failures and contract violations surface as a plain error since they carry
// no service semantics.
func Do[T any](ctx context.Context, c *Client, address string, req *model.Request) (result.Result[T], error) {
	var res result.Result[T]
	if req == nil || req.Method == "" {
		res.Error = result.RequiredFieldError("method").Error
		return res, nil
	}
	fetched, err := c.CtxDo(ctx, address, req)
	if err != nil {
		return res, err
	}
	if fetched.StatusCode >= 200 && fetched.StatusCode <= 299 {
		if fetched.HasContent {
			if err := remarshal(fetched.Content, &res.Value); err != nil {
				return res, err
			}
		}
		return res, nil
	}
	var content any
	if fetched.HasContent {
		content = fetched.Content
	}
	res.Error = result.ResponseError(fetched.StatusCode, content).Error
	return res, nil
}

// remarshal projects a generically decoded body onto the caller's type.
func remarshal(content any, into any) error {
	raw, err := json.Marshal(content)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, into)
}
