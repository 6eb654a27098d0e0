package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"

	"github.com/sashabaranov/go-openai"
)

// Classify reports which category err belongs to without altering it.
// It returns nil when err is nil or does not match any known category.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrConfiguration):
		return ErrConfiguration
	case errors.Is(err, ErrInvalidInput):
		return ErrInvalidInput
	case errors.Is(err, ErrTransport):
		return ErrTransport
	case errors.Is(err, ErrRemote):
		return ErrRemote
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return ErrRemote
	}

	// go-openai reports non-JSON error bodies as RequestError with the status set
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.HTTPStatusCode != 0 {
			return ErrRemote
		}
		return ErrTransport
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrTransport
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return ErrTransport
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrTransport
	}

	// Response body decode failures. A bare EOF means an empty or truncated
	// body; transport EOFs arrive inside *url.Error and are handled above.
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return ErrRemote
	}

	return nil
}

// Category returns the category name for an error
func Category(err error) string {
	if err == nil {
		return ""
	}

	switch Classify(err) {
	case ErrConfiguration:
		return "ConfigurationError"
	case ErrInvalidInput:
		return "InvalidInput"
	case ErrTransport:
		return "TransportError"
	case ErrRemote:
		return "RemoteError"
	default:
		return "Unknown"
	}
}

// Wrap wraps an error with context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", message, err)
}

// IsCategory checks if error belongs to specific category
func IsCategory(err error, category error) bool {
	if err == nil {
		return false
	}
	return Classify(err) == category
}

// Configuration wraps message as a configuration error
func Configuration(message string) error {
	return fmt.Errorf("%s: %w", message, ErrConfiguration)
}

// InvalidInput wraps error as invalid input
func InvalidInput(message string) error {
	return fmt.Errorf("%s: %w", message, ErrInvalidInput)
}
