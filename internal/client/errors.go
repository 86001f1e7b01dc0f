package client

import "fmt"

// TransportError wraps a network-level failure (connect, send,
// receive). Never retried here; retry policy belongs to the caller.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ResponseError reports a non-200 response. Body holds the server's
// JSON-decoded error payload.
type ResponseError struct {
	StatusCode int
	Body       any
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("invalid response, status code: %d - data: %v", e.StatusCode, e.Body)
}

// MalformedPayloadError reports a 200 response whose body is not valid
// JSON.
type MalformedPayloadError struct {
	Err error
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed response payload: %v", e.Err)
}

func (e *MalformedPayloadError) Unwrap() error { return e.Err }

// LoginError reports credentials the server rejected, as opposed to a
// generic non-200 response.
type LoginError struct {
	StatusCode int
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("login failed, status code: %d", e.StatusCode)
}
