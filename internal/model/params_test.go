package model

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/harunnryd/llmswitch/internal/model/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paramKeys(t *testing.T, p contract.Params) []string {
	t.Helper()
	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func pingRequest() contract.CompletionRequest {
	return contract.CompletionRequest{
		Messages: []contract.Message{{Role: contract.RoleUser, Content: "ping"}},
	}
}

func weatherFunction() contract.FunctionDef {
	return contract.FunctionDef{
		Name:        "get_weather",
		Description: "Look up the weather",
		Parameters:  map[string]interface{}{"type": "object"},
	}
}

func TestBuildParams_Azure(t *testing.T) {
	cfg, err := Resolve(baseLLMConfig("azure"))
	require.NoError(t, err)

	params, err := BuildParams(cfg, pingRequest())
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", params.Engine)
	assert.Equal(t, cfg.Cloud.APIVersion, params.APIVersion)
	assert.Empty(t, params.Model)
	assert.Equal(t, []string{"api_version", "engine", "messages", "temperature"}, paramKeys(t, params))
}

func TestBuildParams_Local(t *testing.T) {
	for _, backend := range []string{"ollama", "lmstudio"} {
		t.Run(backend, func(t *testing.T) {
			cfg, err := Resolve(baseLLMConfig(backend))
			require.NoError(t, err)

			params, err := BuildParams(cfg, pingRequest())
			require.NoError(t, err)

			assert.Equal(t, cfg.Local.Model, params.Model)
			assert.Empty(t, params.Engine)
			assert.Empty(t, params.APIVersion)
			assert.Equal(t, []string{"messages", "model", "temperature"}, paramKeys(t, params))
		})
	}
}

func TestBuildParams_FunctionsOnlyWhenSupplied(t *testing.T) {
	cfg, err := Resolve(baseLLMConfig("lmstudio"))
	require.NoError(t, err)

	req := pingRequest()
	req.Functions = []contract.FunctionDef{}
	params, err := BuildParams(cfg, req)
	require.NoError(t, err)
	assert.Nil(t, params.Functions)
	assert.NotContains(t, paramKeys(t, params), "functions")

	req.Functions = []contract.FunctionDef{weatherFunction()}
	params, err = BuildParams(cfg, req)
	require.NoError(t, err)
	assert.Equal(t, req.Functions, params.Functions)
	assert.Equal(t, []string{"functions", "messages", "model", "temperature"}, paramKeys(t, params))
}

func TestBuildParams_PreservesOrderAndTemperature(t *testing.T) {
	cfg, err := Resolve(baseLLMConfig("ollama"))
	require.NoError(t, err)

	req := contract.CompletionRequest{
		Messages: []contract.Message{
			{Role: contract.RoleSystem, Content: "You are a molecular biology expert."},
			{Role: contract.RoleUser, Content: "What does BRCA1 do?"},
			{Role: contract.RoleAssistant, Content: "It repairs DNA."},
			{Role: contract.RoleUser, Content: "Briefly."},
		},
		Temperature: 0.7,
	}

	params, err := BuildParams(cfg, req)
	require.NoError(t, err)
	assert.Equal(t, req.Messages, params.Messages)
	assert.InDelta(t, 0.7, params.Temperature, 1e-6)

	// The built params do not alias the caller's transcript.
	params.Messages[0].Content = "changed"
	assert.Equal(t, "You are a molecular biology expert.", req.Messages[0].Content)
}

func TestBuildParams_InvalidConfig(t *testing.T) {
	_, err := BuildParams(BackendConfig{Kind: "bogus"}, pingRequest())
	assert.True(t, IsUnsupportedBackend(err))

	_, err = BuildParams(BackendConfig{Kind: BackendAzure}, pingRequest())
	assert.Error(t, err)
}
