package main

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/harunnryd/llmswitch/internal/config"
	llmErrors "github.com/harunnryd/llmswitch/internal/errors"
	"github.com/harunnryd/llmswitch/internal/model"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func loadConfigForCommand(cmd *cobra.Command) (*config.Config, error) {
	if cfg != nil {
		return cfg, nil
	}

	loadedCfg, err := config.Load(cmd)
	if err != nil {
		return nil, err
	}

	return loadedCfg, nil
}

// newDispatcher resolves llm and applies the client timeout from c.
func newDispatcher(c *config.Config, llm config.LLMConfig) (*model.Dispatcher, error) {
	resolved, err := model.Resolve(llm)
	if err != nil {
		return nil, err
	}

	timeout, err := config.OptionalDuration(c.Client.Timeout)
	if err != nil {
		return nil, llmErrors.Configuration(fmt.Sprintf("invalid client timeout: %v", err))
	}

	var opts []model.Option
	if timeout > 0 {
		opts = append(opts, model.WithHTTPClient(&http.Client{Timeout: timeout}))
	}

	return model.NewDispatcher(resolved, opts...)
}

// troubleshootingHints suggests what to check for a failed call to the
// backend named in llm.
func troubleshootingHints(llm config.LLMConfig, err error) []string {
	if model.IsUnsupportedBackend(err) {
		return []string{"Set LLM_BACKEND (or --llm.backend) to 'azure', 'ollama', or 'lmstudio'"}
	}

	switch model.BackendKind(llm.Backend) {
	case model.BackendAzure:
		switch {
		case llmErrors.IsCategory(err, llmErrors.ErrConfiguration):
			return []string{fmt.Sprintf("Export %s and %s, or add them to .env", config.EnvAzureEndpoint, config.EnvAzureAPIKey)}
		case llmErrors.IsCategory(err, llmErrors.ErrTransport):
			return []string{fmt.Sprintf("Check network access to %s", llm.Azure.Endpoint)}
		default:
			return []string{
				fmt.Sprintf("Check %s", config.EnvAzureAPIKey),
				fmt.Sprintf("Make sure deployment %q exists for api-version %s", llm.Azure.Engine, llm.Azure.APIVersion),
			}
		}
	case model.BackendOllama:
		if llmErrors.IsCategory(err, llmErrors.ErrTransport) {
			return []string{
				"Make sure Ollama is running: ollama serve",
				fmt.Sprintf("Make sure the model is available: ollama pull %s", llm.Ollama.Model),
			}
		}
		return []string{fmt.Sprintf("Make sure the model is available: ollama pull %s", llm.Ollama.Model)}
	case model.BackendLMStudio:
		if llmErrors.IsCategory(err, llmErrors.ErrTransport) {
			return []string{
				fmt.Sprintf("Make sure LM Studio server is running on %s", llm.LMStudio.BaseURL),
				"Load a model in LM Studio and start the local server",
			}
		}
		return []string{"Load a model in LM Studio and start the local server"}
	default:
		return nil
	}
}

func printHints(w io.Writer, hints []string) {
	for _, hint := range hints {
		fmt.Fprintf(w, "  - %s\n", hint)
	}
}

func printField(w io.Writer, label, value string) {
	lipgloss.Fprintln(w, labelStyle.Render(label+":")+" "+value)
}

func printBackendSummary(w io.Writer, llm config.LLMConfig) {
	printField(w, "Backend", llm.Backend)

	switch model.BackendKind(llm.Backend) {
	case model.BackendAzure:
		printField(w, "Engine", valueOrNA(llm.Azure.Engine))
		printField(w, "API Base", valueOrNA(llm.Azure.Endpoint))
	case model.BackendOllama:
		printField(w, "Model", valueOrNA(llm.Ollama.Model))
		printField(w, "API Base", valueOrNA(llm.Ollama.BaseURL))
	case model.BackendLMStudio:
		printField(w, "Model", valueOrNA(llm.LMStudio.Model))
		printField(w, "API Base", valueOrNA(llm.LMStudio.BaseURL))
	}
}

func valueOrNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return "N/A"
	}
	return value
}
