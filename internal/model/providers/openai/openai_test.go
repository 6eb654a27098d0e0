package openai

import (
	"encoding/json"
	"testing"

	"github.com/harunnryd/llmswitch/internal/model/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatRequest_LocalModel(t *testing.T) {
	req := ChatRequest(contract.Params{
		Model: "llama3.1:70b",
		Messages: []contract.Message{
			{Role: contract.RoleSystem, Content: "You are a helpful assistant."},
			{Role: contract.RoleUser, Content: "Say hello"},
		},
		Temperature: 0.2,
	})

	assert.Equal(t, "llama3.1:70b", req.Model)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.Equal(t, "Say hello", req.Messages[1].Content)
	assert.InDelta(t, 0.2, req.Temperature, 1e-6)
	assert.Nil(t, req.Functions)
}

func TestChatRequest_EngineWinsForAzure(t *testing.T) {
	req := ChatRequest(contract.Params{Engine: "gpt-4o", APIVersion: "2024-02-01"})
	assert.Equal(t, "gpt-4o", req.Model)
}

func TestChatRequest_ZeroTemperatureStaysOnTheWire(t *testing.T) {
	req := ChatRequest(contract.Params{Model: "local-model"})

	raw, err := json.Marshal(req)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))

	require.Contains(t, body, "temperature")
	assert.InDelta(t, 0, body["temperature"], 1e-9)
	assert.NotContains(t, body, "functions")
}

func TestChatRequest_Functions(t *testing.T) {
	req := ChatRequest(contract.Params{
		Model: "local-model",
		Functions: []contract.FunctionDef{
			{Name: "lookup_gene", Description: "Find a gene", Parameters: map[string]interface{}{"type": "object"}},
			{Name: "no_params"},
		},
	})

	require.Len(t, req.Functions, 2)
	assert.Equal(t, "lookup_gene", req.Functions[0].Name)
	assert.Equal(t, "Find a gene", req.Functions[0].Description)
	assert.Equal(t, map[string]interface{}{"type": "object"}, req.Functions[0].Parameters)
	assert.Nil(t, req.Functions[1].Parameters)
}

func TestProviderNames(t *testing.T) {
	assert.Equal(t, "azure", NewAzure("https://example.openai.azure.com/", "2024-02-01", "key", "gpt-4o", nil).Name())
	assert.Equal(t, "ollama", NewCompatible("ollama", "http://localhost:11434/v1", "ollama", nil).Name())
}
