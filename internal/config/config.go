package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/harunnryd/llmswitch/internal/pathutil"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

type Config struct {
	Log    LogConfig    `koanf:"log" yaml:"log"`
	LLM    LLMConfig    `koanf:"llm" yaml:"llm"`
	Client ClientConfig `koanf:"client" yaml:"client"`
}

type LogConfig struct {
	Level string `koanf:"level" yaml:"level"`
}

// LLMConfig holds the raw backend selection and per-backend connection
// parameters. It is turned into a typed backend configuration by model.Resolve.
type LLMConfig struct {
	Backend  string      `koanf:"backend" yaml:"backend"`
	Azure    AzureConfig `koanf:"azure" yaml:"azure"`
	Ollama   LocalConfig `koanf:"ollama" yaml:"ollama"`
	LMStudio LocalConfig `koanf:"lmstudio" yaml:"lmstudio"`
}

type AzureConfig struct {
	Endpoint   string `koanf:"endpoint" yaml:"endpoint"`
	APIVersion string `koanf:"api_version" yaml:"api_version"`
	APIKey     string `koanf:"api_key" yaml:"api_key"`
	Engine     string `koanf:"engine" yaml:"engine"`
}

type LocalConfig struct {
	BaseURL string `koanf:"base_url" yaml:"base_url"`
	Model   string `koanf:"model" yaml:"model"`
	APIKey  string `koanf:"api_key" yaml:"api_key"`
}

type ClientConfig struct {
	// Timeout bounds a single completion call. Empty means no timeout.
	Timeout string `koanf:"timeout" yaml:"timeout"`
}

const (
	DefaultLogLevel        = "info"
	DefaultBackend         = "azure"
	DefaultAzureAPIVersion = "2024-02-01"
	DefaultAzureEngine     = "gpt-4o"
	DefaultOllamaBaseURL   = "http://localhost:11434/v1"
	DefaultOllamaModel     = "llama3.1:70b"
	DefaultOllamaAPIKey    = "ollama"
	DefaultLMStudioBaseURL = "http://localhost:1234/v1"
	DefaultLMStudioModel   = "local-model"
	DefaultLMStudioAPIKey  = "lm-studio"
	DefaultClientTimeout   = ""
	DefaultConfigDir       = ".llmswitch"
	DefaultConfigFile      = "config.yaml"
	DefaultDotEnvFile      = ".env"
	EnvBackend             = "LLM_BACKEND"
	EnvAzureEndpoint       = "AZURE_OPENAI_ENDPOINT"
	EnvAzureAPIVersion     = "AZURE_OPENAI_API_VERSION"
	EnvAzureAPIKey         = "AZURE_OPENAI_API_KEY"
	EnvAzureEngine         = "AZURE_OPENAI_ENGINE"
	EnvOllamaBaseURL       = "OLLAMA_BASE_URL"
	EnvOllamaModel         = "OLLAMA_MODEL"
	EnvLMStudioBaseURL     = "LMSTUDIO_BASE_URL"
	EnvLMStudioModel       = "LMSTUDIO_MODEL"
	EnvLogLevel            = "LLMSWITCH_LOG_LEVEL"
	EnvClientTimeout       = "LLMSWITCH_CLIENT_TIMEOUT"
)

// envKeys maps recognized environment variables to config keys. Anything
// not listed here is ignored.
var envKeys = map[string]string{
	EnvBackend:         "llm.backend",
	EnvAzureEndpoint:   "llm.azure.endpoint",
	EnvAzureAPIVersion: "llm.azure.api_version",
	EnvAzureAPIKey:     "llm.azure.api_key",
	EnvAzureEngine:     "llm.azure.engine",
	EnvOllamaBaseURL:   "llm.ollama.base_url",
	EnvOllamaModel:     "llm.ollama.model",
	EnvLMStudioBaseURL: "llm.lmstudio.base_url",
	EnvLMStudioModel:   "llm.lmstudio.model",
	EnvLogLevel:        "log.level",
	EnvClientTimeout:   "client.timeout",
}

// EnvKey returns the config key for an environment variable name, or "" when
// the variable is not recognized.
func EnvKey(name string) string {
	return envKeys[name]
}

// Load builds the configuration from defaults, the YAML config file, a .env
// file in the working directory, the process environment and CLI flags, in
// that order of precedence (later wins).
func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	// Hardcoded Defaults
	defaults := map[string]interface{}{
		"log.level":             DefaultLogLevel,
		"llm.backend":           DefaultBackend,
		"llm.azure.endpoint":    "",
		"llm.azure.api_version": DefaultAzureAPIVersion,
		"llm.azure.api_key":     "",
		"llm.azure.engine":      DefaultAzureEngine,
		"llm.ollama.base_url":   DefaultOllamaBaseURL,
		"llm.ollama.model":      DefaultOllamaModel,
		"llm.ollama.api_key":    DefaultOllamaAPIKey,
		"llm.lmstudio.base_url": DefaultLMStudioBaseURL,
		"llm.lmstudio.model":    DefaultLMStudioModel,
		"llm.lmstudio.api_key":  DefaultLMStudioAPIKey,
		"client.timeout":        DefaultClientTimeout,
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	// Config file loading
	configPath := ""
	if cmd != nil {
		if flag := cmd.Flags().Lookup("config"); flag != nil {
			configPath = strings.TrimSpace(flag.Value.String())
		}
	}

	if configPath != "" {
		expanded, err := pathutil.Expand(configPath)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(expanded), yaml.Parser()); err != nil {
			return nil, err
		}
	} else if globalPath, err := GlobalConfigPath(); err == nil {
		if err := loadGlobalConfig(k, globalPath); err != nil {
			return nil, err
		}
	}

	// .env file
	if err := loadDotEnv(k, DefaultDotEnvFile); err != nil {
		return nil, err
	}

	// Environment Variables
	if err := k.Load(env.Provider("", ".", EnvKey), nil); err != nil {
		return nil, err
	}

	// CLI Flags
	if cmd != nil {
		if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadGlobalConfig reads the per-user config file. Only a missing file is
// skipped; a file that exists must parse.
func loadGlobalConfig(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			slog.Debug("Global config not found", "path", path)
			return nil
		}
		return err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	return nil
}

// loadDotEnv applies recognized variables from a .env file. A missing file is
// not an error.
func loadDotEnv(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	dk := koanf.New(".")
	if err := dk.Load(file.Provider(path), dotenv.Parser()); err != nil {
		return err
	}

	for name, value := range dk.All() {
		if key := EnvKey(name); key != "" {
			k.Set(key, value)
		}
	}

	slog.Debug("Loaded .env file", "path", path)
	return nil
}

// GlobalConfigPath returns $HOME/.llmswitch/config.yaml.
func GlobalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile), nil
}
