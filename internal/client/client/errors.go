package client

import (
	"errors"
	"fmt"
)

var (
	// ErrServer matches every *ServerError.
	ErrServer = errors.New("server error")
	// ErrNetwork matches every *NetworkError.
	ErrNetwork = errors.New("network error")
	// ErrTransport covers failures that are neither: a request that could
	// not be built, a 2xx body that could not be decoded, a cancelled call.
	ErrTransport = errors.New("transport error")
)

// DefaultServerMessage is used when an error response carries no message.
const DefaultServerMessage = "An error occurred"

// ServerError means the backend answered and reported a failure, either
// with an HTTP error status or with success=false.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string { return e.Message }

func (e *ServerError) Unwrap() error { return ErrServer }

// NetworkError means no response arrived: connection refused, DNS failure
// or the request timeout elapsed.
type NetworkError struct {
	URL     string
	BaseURL string
	Err     error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error at %s. Please check if the backend is running at %s", e.URL, e.BaseURL)
}

func (e *NetworkError) Unwrap() []error { return []error{ErrNetwork, e.Err} }
