package client

import (
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// ErrClosed is returned by every operation attempted after [Client.Close].
var ErrClosed = errors.New("client is closed")

// ErrMissingToken is returned by [Client.Authenticate] when the service
// answered 200 but the response body carried no token field. It is
// wrapped in a [*SchemaError].
var ErrMissingToken = errors.New("no token received in response")

// ValidationError reports caller input rejected before any network call.
// No request is sent and no retry is counted when one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// TransportError reports a network-level failure: connection refused,
// DNS failure, timeout, or a retry budget exhausted without ever
// receiving a response. The underlying cause is available via Unwrap.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError reports a non-2xx response, including one returned after
// the retry budget was exhausted on a retryable status. Body holds the
// raw response body for diagnostics.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d (empty error body)", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// SchemaError reports a 2xx response whose body did not match the shape
// the operation expected.
type SchemaError struct {
	Op  string
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: unexpected response body: %v", e.Op, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

func newStatusError(resp *resty.Response) *StatusError {
	return &StatusError{
		StatusCode: resp.StatusCode(),
		Body:       resp.String(),
	}
}
