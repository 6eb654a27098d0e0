package openai

import (
	"context"
	"math"
	"net/http"
	"strings"

	"github.com/harunnryd/llmswitch/internal/model/contract"

	"github.com/sashabaranov/go-openai"
)

type Provider struct {
	client *openai.Client
	name   string
}

// NewAzure builds a provider for an Azure OpenAI deployment. Every request is
// routed to engine regardless of the model named in the request.
func NewAzure(endpoint, apiVersion, apiKey, engine string, httpClient *http.Client) *Provider {
	cfg := openai.DefaultAzureConfig(apiKey, strings.TrimSuffix(endpoint, "/"))
	cfg.APIVersion = apiVersion
	cfg.AzureModelMapperFunc = func(string) string {
		return engine
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}

	return &Provider{client: openai.NewClientWithConfig(cfg), name: "azure"}
}

// NewCompatible builds a provider for an OpenAI-compatible server such as
// Ollama or LM Studio. apiKey is sent as a bearer token; local servers ignore it.
func NewCompatible(name, baseURL, apiKey string, httpClient *http.Client) *Provider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}

	return &Provider{client: openai.NewClientWithConfig(cfg), name: name}
}

func (p *Provider) Name() string {
	return p.name
}

// Generate performs exactly one chat completion call. Errors from the client
// are returned as-is so callers can inspect *openai.APIError and friends.
func (p *Provider) Generate(ctx context.Context, params contract.Params) (*openai.ChatCompletionResponse, error) {
	resp, err := p.client.CreateChatCompletion(ctx, ChatRequest(params))
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChatRequest converts params into the go-openai request shape.
func ChatRequest(params contract.Params) openai.ChatCompletionRequest {
	model := params.Model
	if params.Engine != "" {
		model = params.Engine
	}

	messages := make([]openai.ChatCompletionMessage, len(params.Messages))
	for i, m := range params.Messages {
		messages[i] = openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		}
	}

	req := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: wireTemperature(params.Temperature),
	}

	if len(params.Functions) > 0 {
		req.Functions = make([]openai.FunctionDefinition, len(params.Functions))
		for i, f := range params.Functions {
			def := openai.FunctionDefinition{
				Name:        f.Name,
				Description: f.Description,
			}
			if f.Parameters != nil {
				def.Parameters = f.Parameters
			}
			req.Functions[i] = def
		}
	}

	return req
}

// go-openai omits a zero temperature from the request body, which lets the
// server substitute its own default. The smallest positive float32 keeps the
// field on the wire while remaining zero for every practical purpose.
func wireTemperature(t float32) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return t
}
