package model

import (
	"slices"

	"github.com/harunnryd/llmswitch/internal/model/contract"
)

// BuildParams assembles the backend-specific parameter set for req. The cloud
// backend is addressed by engine and API version, local backends by model.
// Functions are included only when req carries at least one.
func BuildParams(cfg BackendConfig, req contract.CompletionRequest) (contract.Params, error) {
	if err := cfg.Validate(); err != nil {
		return contract.Params{}, err
	}

	params := contract.Params{
		Messages:    slices.Clone(req.Messages),
		Temperature: req.Temperature,
	}

	switch cfg.Kind {
	case BackendAzure:
		params.Engine = cfg.Cloud.Engine
		params.APIVersion = cfg.Cloud.APIVersion
	case BackendOllama, BackendLMStudio:
		params.Model = cfg.Local.Model
	default:
		return contract.Params{}, &UnsupportedBackendError{Backend: string(cfg.Kind)}
	}

	if len(req.Functions) > 0 {
		params.Functions = slices.Clone(req.Functions)
	}

	return params, nil
}
