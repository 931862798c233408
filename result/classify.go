package result

import "fmt"

// semantic error code vocabulary. closed-ish: peers may answer with codes
// outside this list and those pass through untouched.
const (
	CodeNotModified        = "notModified"
	CodeInvalidRequest     = "invalidRequest"
	CodeNotAuthenticated   = "notAuthenticated"
	CodeNotAuthorized      = "notAuthorized"
	CodeNotFound           = "notFound"
	CodeConflict           = "conflict"
	CodeRequestTooLarge    = "requestTooLarge"
	CodeTooManyRequests    = "tooManyRequests"
	CodeInternalError      = "internalError"
	CodeServiceUnavailable = "serviceUnavailable"
	CodeInvalidResponse    = "invalidResponse"
)

// statusCodes maps the known transport status codes to their semantic codes.
// built once, read-only afterwards, safe for unsynchronized concurrent reads.
var statusCodes = map[int]string{
	304: CodeNotModified,
	400: CodeInvalidRequest,
	401: CodeNotAuthenticated,
	403: CodeNotAuthorized,
	404: CodeNotFound,
	409: CodeConflict,
	413: CodeRequestTooLarge,
	429: CodeTooManyRequests,
	500: CodeInternalError,
	503: CodeServiceUnavailable,
}

// ResponseError builds the error half of a service result from a transport
// outcome. a peer that already answered with a structured error, a body
// carrying a code, wins over local classification and is wrapped unchanged
// regardless of status. everything else is classified by status range and the
// fixed status table; unmapped client-range statuses default to
// [CodeInvalidRequest], any other unmapped status to [CodeInvalidResponse].
func ResponseError(status int, content any) Base {
	if err, ok := errorFromContent(content); ok {
		return Base{Error: err}
	}
	clientErr := status >= 400 && status <= 499
	serverErr := status >= 500 && status <= 599

	code, ok := statusCodes[status]
	if !ok {
		if clientErr {
			code = CodeInvalidRequest
		} else {
			code = CodeInvalidResponse
		}
	}
	var message string
	switch {
	case serverErr:
		message = fmt.Sprintf("HTTP server error: %d", status)
	case clientErr:
		message = fmt.Sprintf("HTTP client error: %d", status)
	default:
		message = fmt.Sprintf("Unexpected HTTP status code: %d", status)
	}
	return Base{Error: &Error{Code: code, Message: message}}
}

// RequiredFieldError reports a mandatory request field that was left empty.
// purely local, returned before a transport call is attempted.
func RequiredFieldError(name string) Base {
	return Base{Error: &Error{
		Code:    CodeInvalidRequest,
		Message: fmt.Sprintf("The request field '%s' is required.", name),
	}}
}

// errorFromContent recognizes a peer-supplied structured error: a decoded
// JSON object whose code field is a non-empty string. nested innerError
// objects are carried over recursively.
func errorFromContent(content any) (*Error, bool) {
	switch v := content.(type) {
	case *Error:
		if v != nil && v.Code != "" {
			return v, true
		}
	case map[string]any:
		code, _ := v["code"].(string)
		if code == "" {
			return nil, false
		}
		e := &Error{Code: code}
		e.Message, _ = v["message"].(string)
		e.Details = v["details"]
		if inner, ok := errorFromContent(v["innerError"]); ok {
			e.InnerError = inner
		}
		return e, true
	}
	return nil, false
}
