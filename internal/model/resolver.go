package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/harunnryd/llmswitch/internal/config"
	llmErrors "github.com/harunnryd/llmswitch/internal/errors"
)

// CloudHostedConfig is the connection shape of the Azure OpenAI backend.
type CloudHostedConfig struct {
	EndpointURL string `json:"endpoint_url" yaml:"endpoint_url"`
	APIVersion  string `json:"api_version" yaml:"api_version"`
	APIKey      string `json:"api_key" yaml:"api_key"`
	Engine      string `json:"engine" yaml:"engine"`
}

// LocalServerConfig is the connection shape of the OpenAI-compatible local
// servers. The API key is a placeholder the servers do not check.
type LocalServerConfig struct {
	EndpointURL       string `json:"endpoint_url" yaml:"endpoint_url"`
	APIKeyPlaceholder string `json:"api_key_placeholder" yaml:"api_key_placeholder"`
	Model             string `json:"model" yaml:"model"`
}

// BackendConfig is the resolved configuration for one backend. Exactly one of
// Cloud or Local is set, matching Kind.
type BackendConfig struct {
	Kind  BackendKind        `json:"backend" yaml:"backend"`
	Cloud *CloudHostedConfig `json:"cloud,omitempty" yaml:"cloud,omitempty"`
	Local *LocalServerConfig `json:"local,omitempty" yaml:"local,omitempty"`
}

// EndpointURL returns the endpoint of whichever shape is populated.
func (c BackendConfig) EndpointURL() string {
	switch {
	case c.Cloud != nil:
		return c.Cloud.EndpointURL
	case c.Local != nil:
		return c.Local.EndpointURL
	default:
		return ""
	}
}

// ModelName returns the engine for the cloud backend and the model otherwise.
func (c BackendConfig) ModelName() string {
	switch {
	case c.Cloud != nil:
		return c.Cloud.Engine
	case c.Local != nil:
		return c.Local.Model
	default:
		return ""
	}
}

// Validate checks that the populated shape matches Kind and is complete.
func (c BackendConfig) Validate() error {
	switch c.Kind {
	case BackendAzure:
		if c.Cloud == nil || c.Local != nil {
			return llmErrors.Configuration("azure backend requires exactly the cloud-hosted shape")
		}
		return requireFields(c.Kind, map[string]string{
			config.EnvAzureEndpoint:   c.Cloud.EndpointURL,
			config.EnvAzureAPIVersion: c.Cloud.APIVersion,
			config.EnvAzureAPIKey:     c.Cloud.APIKey,
			config.EnvAzureEngine:     c.Cloud.Engine,
		})
	case BackendOllama, BackendLMStudio:
		if c.Local == nil || c.Cloud != nil {
			return llmErrors.Configuration(fmt.Sprintf("%s backend requires exactly the local-server shape", c.Kind))
		}
		urlVar, modelVar := config.EnvOllamaBaseURL, config.EnvOllamaModel
		if c.Kind == BackendLMStudio {
			urlVar, modelVar = config.EnvLMStudioBaseURL, config.EnvLMStudioModel
		}
		return requireFields(c.Kind, map[string]string{
			urlVar:    c.Local.EndpointURL,
			modelVar:  c.Local.Model,
			"api_key": c.Local.APIKeyPlaceholder,
		})
	default:
		return &UnsupportedBackendError{Backend: string(c.Kind)}
	}
}

func requireFields(kind BackendKind, fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return llmErrors.Configuration(fmt.Sprintf("%s backend is missing %s", kind, strings.Join(missing, ", ")))
}

// Resolve turns raw configuration into a BackendConfig. It performs no I/O and
// returns the same value for the same input.
func Resolve(cfg config.LLMConfig) (BackendConfig, error) {
	kind, err := ParseBackendKind(cfg.Backend)
	if err != nil {
		return BackendConfig{}, err
	}

	var resolved BackendConfig
	switch kind {
	case BackendAzure:
		resolved = BackendConfig{
			Kind: kind,
			Cloud: &CloudHostedConfig{
				EndpointURL: cfg.Azure.Endpoint,
				APIVersion:  cfg.Azure.APIVersion,
				APIKey:      cfg.Azure.APIKey,
				Engine:      cfg.Azure.Engine,
			},
		}
	case BackendOllama:
		resolved = localConfig(kind, cfg.Ollama)
	case BackendLMStudio:
		resolved = localConfig(kind, cfg.LMStudio)
	}

	if err := resolved.Validate(); err != nil {
		return BackendConfig{}, err
	}
	return resolved, nil
}

func localConfig(kind BackendKind, local config.LocalConfig) BackendConfig {
	return BackendConfig{
		Kind: kind,
		Local: &LocalServerConfig{
			EndpointURL:       local.BaseURL,
			APIKeyPlaceholder: local.APIKey,
			Model:             local.Model,
		},
	}
}

// ResolveFromEnv loads configuration from defaults, files and the process
// environment, then resolves it.
func ResolveFromEnv() (BackendConfig, error) {
	cfg, err := config.Load(nil)
	if err != nil {
		return BackendConfig{}, fmt.Errorf("load config: %w: %w", err, llmErrors.ErrConfiguration)
	}
	return Resolve(cfg.LLM)
}
