package client

import "errors"

// Client errors.
//
// Design decision: We define specific errors rather than returning the raw
// HTTP outcome so callers can tell a service that answered badly from a
// network failure, which is reported as the wrapped transport error.
var (
	// ErrUnexpectedStatus is returned when the service answers with a
	// non-2xx status code.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrMalformedResponse is returned when the response body is not the
	// JSON document the endpoint is expected to return.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrInvalidProxyAddress is returned when the proxy address format is invalid.
	// Expected format is "host:port".
	ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port")
)
