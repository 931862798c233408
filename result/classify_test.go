package result_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankli0324/go-rest/result"
)

var classified = map[string]struct {
	status  int
	code    string
	message string
}{
	"NotModified":        {304, result.CodeNotModified, "Unexpected HTTP status code: 304"},
	"InvalidRequest":     {400, result.CodeInvalidRequest, "HTTP client error: 400"},
	"NotAuthenticated":   {401, result.CodeNotAuthenticated, "HTTP client error: 401"},
	"NotAuthorized":      {403, result.CodeNotAuthorized, "HTTP client error: 403"},
	"NotFound":           {404, result.CodeNotFound, "HTTP client error: 404"},
	"Conflict":           {409, result.CodeConflict, "HTTP client error: 409"},
	"RequestTooLarge":    {413, result.CodeRequestTooLarge, "HTTP client error: 413"},
	"TooManyRequests":    {429, result.CodeTooManyRequests, "HTTP client error: 429"},
	"InternalError":      {500, result.CodeInternalError, "HTTP server error: 500"},
	"ServiceUnavailable": {503, result.CodeServiceUnavailable, "HTTP server error: 503"},

	// unmapped statuses fall back by range. only the client range defaults
	// to invalidRequest, everything else is an invalid response.
	"UnmappedClient":  {499, result.CodeInvalidRequest, "HTTP client error: 499"},
	"UnmappedServer":  {599, result.CodeInvalidResponse, "HTTP server error: 599"},
	"UnmappedNeither": {250, result.CodeInvalidResponse, "Unexpected HTTP status code: 250"},
	"UnmappedSuccess": {218, result.CodeInvalidResponse, "Unexpected HTTP status code: 218"},
}

func TestResponseError(t *testing.T) {
	for name, tc := range classified {
		tc := tc
		t.Run(name, func(t *testing.T) {
			res := result.ResponseError(tc.status, nil)
			require.NotNil(t, res.Error)
			assert.Equal(t, tc.code, res.Error.Code)
			assert.Equal(t, tc.message, res.Error.Message)
			assert.Nil(t, res.Error.InnerError)
		})
	}
}

func TestResponseErrorPeerPassThrough(t *testing.T) {
	body := map[string]any{
		"code":    "quotaExceeded",
		"message": "try later",
		"details": map[string]any{"retryAfter": "60"},
		"innerError": map[string]any{
			"code": "storageFull",
		},
	}
	// the peer's own structured error wins regardless of status
	for _, status := range []int{400, 500, 200} {
		res := result.ResponseError(status, body)
		require.NotNil(t, res.Error)
		assert.Equal(t, "quotaExceeded", res.Error.Code)
		assert.Equal(t, "try later", res.Error.Message)
		assert.Equal(t, map[string]any{"retryAfter": "60"}, res.Error.Details)
		require.NotNil(t, res.Error.InnerError)
		assert.Equal(t, "storageFull", res.Error.InnerError.Code)
	}
}

func TestResponseErrorBodyWithoutCode(t *testing.T) {
	// a body that is not a structured error does not suppress classification
	for name, content := range map[string]any{
		"PlainObject": map[string]any{"message": "oops"},
		"EmptyCode":   map[string]any{"code": ""},
		"NonString":   map[string]any{"code": 42},
		"Array":       []any{"code"},
		"Scalar":      "code",
	} {
		content := content
		t.Run(name, func(t *testing.T) {
			res := result.ResponseError(404, content)
			require.NotNil(t, res.Error)
			assert.Equal(t, result.CodeNotFound, res.Error.Code)
		})
	}
}

func TestRequiredFieldError(t *testing.T) {
	res := result.RequiredFieldError("email")
	require.NotNil(t, res.Error)
	assert.Equal(t, result.CodeInvalidRequest, res.Error.Code)
	assert.Equal(t, "The request field 'email' is required.", res.Error.Message)
}

func TestErrorChain(t *testing.T) {
	inner := &result.Error{Code: "inner"}
	outer := &result.Error{Code: "outer", Message: "went wrong", InnerError: inner}
	assert.Equal(t, "outer: went wrong", outer.Error())
	assert.Equal(t, fmt.Sprint(inner), "inner")
	require.ErrorIs(t, outer, inner)
}
