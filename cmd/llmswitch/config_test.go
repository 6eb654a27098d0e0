package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harunnryd/llmswitch/internal/config"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfigInitCmd(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	for _, name := range []string{config.EnvBackend, config.EnvOllamaModel, config.EnvLMStudioBaseURL} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	cmd, out, _ := newTestCommand()
	require.NoError(t, configInitCmd.RunE(cmd, nil))

	configPath := filepath.Join(home, ".llmswitch", "config.yaml")
	assert.FileExists(t, configPath)
	assert.Contains(t, out.String(), "Initialized config at "+configPath)

	loaded, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBackend, loaded.LLM.Backend)
	assert.Equal(t, config.DefaultOllamaModel, loaded.LLM.Ollama.Model)
	assert.Equal(t, config.DefaultLMStudioBaseURL, loaded.LLM.LMStudio.BaseURL)

	before, err := os.ReadFile(configPath)
	require.NoError(t, err)

	cmd, out, _ = newTestCommand()
	require.NoError(t, configInitCmd.RunE(cmd, nil), "init succeeds when config exists")
	assert.Contains(t, out.String(), "Config already exists")

	after, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestConfigViewCmd_RedactsSecrets(t *testing.T) {
	c := testConfig("azure")
	c.LLM.Azure.Endpoint = "https://example.openai.azure.com"
	c.LLM.Azure.APIKey = "sk-secret-123456"
	useConfig(t, c)

	cmd, out, _ := newTestCommand()
	require.NoError(t, configViewCmd.RunE(cmd, nil))
	assert.NotContains(t, out.String(), "sk-secret-123456")

	var decoded config.Config
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "azure", decoded.LLM.Backend)
	assert.Equal(t, "https://example.openai.azure.com", decoded.LLM.Azure.Endpoint)
	assert.Equal(t, "sk************56", decoded.LLM.Azure.APIKey)
	assert.Equal(t, "sk-secret-123456", c.LLM.Azure.APIKey, "loaded config is not mutated")
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", maskSecret(""))
	assert.Equal(t, "****", maskSecret("abcd"))
	assert.Equal(t, "ab*ef", maskSecret("abcef"))
	assert.Nil(t, redactConfigSecrets(nil))
}

func TestConfigInitCmd_Locked(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configPath, err := config.GlobalConfigPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0755))

	held := flock.New(configPath + ".lock")
	locked, err := held.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	defer held.Unlock()

	cmd, _, _ := newTestCommand()
	err = configInitCmd.RunE(cmd, nil)
	assert.ErrorContains(t, err, "config init already running")
	assert.NoFileExists(t, configPath)
}
