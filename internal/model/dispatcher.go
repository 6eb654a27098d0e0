package model

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/harunnryd/llmswitch/internal/config"
	llmErrors "github.com/harunnryd/llmswitch/internal/errors"
	"github.com/harunnryd/llmswitch/internal/logger"
	"github.com/harunnryd/llmswitch/internal/model/contract"
	openaiProvider "github.com/harunnryd/llmswitch/internal/model/providers/openai"
)

// Dispatcher sends chat completions to one resolved backend. It holds no
// per-call state and is safe for concurrent use.
type Dispatcher struct {
	cfg      BackendConfig
	provider Provider
}

type dispatcherOptions struct {
	httpClient *http.Client
	provider   Provider
}

type Option func(*dispatcherOptions)

// WithHTTPClient sets the HTTP client used for the outbound call. Callers
// wanting bounded latency can set a client timeout here.
func WithHTTPClient(client *http.Client) Option {
	return func(o *dispatcherOptions) {
		o.httpClient = client
	}
}

// WithProvider replaces the go-openai provider.
func WithProvider(p Provider) Option {
	return func(o *dispatcherOptions) {
		o.provider = p
	}
}

// NewDispatcher validates cfg and builds the provider for its backend.
func NewDispatcher(cfg BackendConfig, opts ...Option) (*Dispatcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o dispatcherOptions
	for _, opt := range opts {
		opt(&o)
	}

	provider := o.provider
	if provider == nil {
		switch cfg.Kind {
		case BackendAzure:
			provider = openaiProvider.NewAzure(cfg.Cloud.EndpointURL, cfg.Cloud.APIVersion, cfg.Cloud.APIKey, cfg.Cloud.Engine, o.httpClient)
		case BackendOllama, BackendLMStudio:
			provider = openaiProvider.NewCompatible(string(cfg.Kind), cfg.Local.EndpointURL, cfg.Local.APIKeyPlaceholder, o.httpClient)
		default:
			return nil, &UnsupportedBackendError{Backend: string(cfg.Kind)}
		}
	}

	slog.Debug("Dispatcher initialized", "backend", cfg.Kind, "provider", provider.Name(), "endpoint", cfg.EndpointURL(), "model", cfg.ModelName())

	return &Dispatcher{cfg: cfg, provider: provider}, nil
}

// Backend returns the configuration the dispatcher was built with.
func (d *Dispatcher) Backend() BackendConfig {
	return d.cfg
}

// ChatCompletion performs one blocking call and returns the backend response
// unmodified. Transport and remote errors are returned as received.
func (d *Dispatcher) ChatCompletion(ctx context.Context, req contract.CompletionRequest) (*contract.CompletionResponse, error) {
	ctx = logger.EnsureTraceID(ctx)
	traceID := logger.GetTraceID(ctx)

	params, err := BuildParams(d.cfg, req)
	if err != nil {
		return nil, err
	}

	if len(params.Functions) > 0 && d.cfg.Kind.IsLocal() {
		slog.Warn("Forwarding functions to local backend; support depends on the loaded model",
			"backend", d.cfg.Kind, "model", params.Model, "functions", len(params.Functions), "trace_id", traceID)
	}

	slog.Info("Dispatching chat completion",
		"backend", d.cfg.Kind, "provider", d.provider.Name(), "model", d.cfg.ModelName(), "messages", len(params.Messages), "trace_id", traceID)

	resp, err := d.provider.Generate(ctx, params)
	if err != nil {
		slog.Error("Chat completion failed",
			"backend", d.cfg.Kind, "provider", d.provider.Name(), "category", llmErrors.Category(err), "error", err, "trace_id", traceID)
		return nil, err
	}

	slog.Info("Chat completion received", "backend", d.cfg.Kind, "choices", len(resp.Choices), "trace_id", traceID)

	return &contract.CompletionResponse{
		Backend:                string(d.cfg.Kind),
		ChatCompletionResponse: *resp,
	}, nil
}

// ChatCompletion resolves cfg and dispatches req in one shot. An unknown
// backend fails before any network activity.
func ChatCompletion(ctx context.Context, cfg config.LLMConfig, req contract.CompletionRequest, opts ...Option) (*contract.CompletionResponse, error) {
	resolved, err := Resolve(cfg)
	if err != nil {
		return nil, err
	}

	dispatcher, err := NewDispatcher(resolved, opts...)
	if err != nil {
		return nil, err
	}

	return dispatcher.ChatCompletion(ctx, req)
}
