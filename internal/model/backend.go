package model

import (
	"strings"
)

// BackendKind identifies which chat-completion provider a request targets.
type BackendKind string

const (
	// BackendAzure is the cloud-hosted Azure OpenAI service.
	BackendAzure BackendKind = "azure"
	// BackendOllama is a local Ollama server speaking the OpenAI API.
	BackendOllama BackendKind = "ollama"
	// BackendLMStudio is a local LM Studio server speaking the OpenAI API.
	BackendLMStudio BackendKind = "lmstudio"
)

// BackendKinds returns every supported kind in a stable order.
func BackendKinds() []BackendKind {
	return []BackendKind{BackendAzure, BackendOllama, BackendLMStudio}
}

// ParseBackendKind maps a backend name to its kind. Matching is exact.
func ParseBackendKind(name string) (BackendKind, error) {
	switch kind := BackendKind(name); kind {
	case BackendAzure, BackendOllama, BackendLMStudio:
		return kind, nil
	default:
		return "", &UnsupportedBackendError{Backend: name}
	}
}

func (k BackendKind) String() string {
	return string(k)
}

// IsLocal reports whether the backend is a locally hosted server.
func (k BackendKind) IsLocal() bool {
	return k == BackendOllama || k == BackendLMStudio
}

func (k BackendKind) DisplayName() string {
	switch k {
	case BackendAzure:
		return "Azure OpenAI"
	case BackendOllama:
		return "Ollama"
	case BackendLMStudio:
		return "LM Studio"
	default:
		return string(k)
	}
}

func supportedBackendList() string {
	kinds := BackendKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = "'" + string(k) + "'"
	}
	return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
}
