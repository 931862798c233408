package internal

import (
	"context"

	"github.com/frankli0324/go-rest/internal/model"
)

// FetchResponse invokes transport exactly once against address and decides,
// from the content-type response header, whether to invoke the deferred body
// parser. no header or a non-JSON media type resolves with the bare response;
// a value starting with "application/json" (case-insensitive) resolves with
// the parsed body, which may be empty if the body was empty JSON.
//
// transport failures propagate unchanged. a response that does not expose a
// status, a header lookup and a body parser fails with a [model.ContractError]
// instead, which is never classified as a service error.
func FetchResponse(ctx context.Context, transport model.Transport, address string, req *model.Request) (*model.FetchedResponse, error) {
	resp, err := transport(ctx, address, req)
	if err != nil {
		return nil, err
	}
	if err := validate(resp); err != nil {
		return nil, err
	}
	if !model.IsJSONContent(resp.Headers.Get("Content-Type")) {
		return &model.FetchedResponse{Response: resp}, nil
	}
	content, err := resp.JSON(ctx)
	if err != nil {
		return nil, err
	}
	return &model.FetchedResponse{Response: resp, Content: content, HasContent: true}, nil
}

func validate(resp *model.Response) error {
	switch {
	case resp == nil:
		return &model.ContractError{Missing: "response"}
	case resp.StatusCode == 0:
		return &model.ContractError{Missing: "status"}
	case resp.Headers == nil:
		return &model.ContractError{Missing: "header lookup"}
	case resp.JSON == nil:
		return &model.ContractError{Missing: "body parser"}
	}
	return nil
}
