package types

import (
	"errors"
	"fmt"
)

var ErrMissingAPIKey = errors.New("api key is required")

// UnknownParameterError is returned when a filter name is outside the
// resource allow-list. It is raised before any request is sent.
type UnknownParameterError struct {
	Resource string
	Param    string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("%s is not a valid parameter for %s", e.Param, e.Resource)
}

// InvalidParameterShapeError is returned when an operator receives a value of
// the wrong arity or type.
type InvalidParameterShapeError struct {
	Param  string
	Op     Operator
	Reason string
}

func (e *InvalidParameterShapeError) Error() string {
	return fmt.Sprintf("%s%s%s: %s", e.Param, OperatorSeparator, e.Op, e.Reason)
}

// RemoteRequestError is an HTTP-level failure. StatusCode is zero when no
// response was received.
type RemoteRequestError struct {
	Endpoint   string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *RemoteRequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("server returned error status %d for %s: %s", e.StatusCode, e.Endpoint, string(e.Body))
}

func (e *RemoteRequestError) Unwrap() error {
	return e.Err
}

// InvalidResponseError is returned when the body is not JSON or lacks a
// required structure.
type InvalidResponseError struct {
	Endpoint string
	Body     []byte
	Err      error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid response from %s: %v", e.Endpoint, e.Err)
}

func (e *InvalidResponseError) Unwrap() error {
	return e.Err
}
