package model

import (
	"errors"
	"fmt"

	llmErrors "github.com/harunnryd/llmswitch/internal/errors"
)

// UnsupportedBackendError is returned when the selected backend name does not
// match a known BackendKind. It matches llmErrors.ErrConfiguration.
type UnsupportedBackendError struct {
	Backend string
}

func (e *UnsupportedBackendError) Error() string {
	return fmt.Sprintf("unsupported LLM backend %q: choose %s", e.Backend, supportedBackendList())
}

func (e *UnsupportedBackendError) Is(target error) bool {
	return target == llmErrors.ErrConfiguration
}

func IsUnsupportedBackend(err error) bool {
	var ube *UnsupportedBackendError
	return errors.As(err, &ube)
}
