package errors

import (
	"errors"
)

// Sentinel errors for the three failure categories of a completion call
var (
	// ErrConfiguration - unknown backend or missing secret (fails before any I/O)
	ErrConfiguration = errors.New("configuration error")

	// ErrTransport - connection refused, timeout, TLS failure
	ErrTransport = errors.New("transport error")

	// ErrRemote - non-2xx response or malformed payload from the endpoint
	ErrRemote = errors.New("remote error")

	// ErrInvalidInput - caller supplied unusable input (e.g. a bad functions file)
	ErrInvalidInput = errors.New("invalid input")
)
