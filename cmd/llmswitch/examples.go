package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/harunnryd/llmswitch/internal/config"
	"github.com/harunnryd/llmswitch/internal/model"
	"github.com/harunnryd/llmswitch/internal/model/contract"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
)

var exampleTranscript = []contract.Message{
	{Role: contract.RoleSystem, Content: "You are a molecular biology expert."},
	{Role: contract.RoleUser, Content: "Briefly explain what the BRCA1 gene does."},
}

var examplesCmd = &cobra.Command{
	Use:   "examples [backend...]",
	Short: "Run the same example conversation against one or more backends",
	Long: `Send the molecular biology example conversation to each named backend
(default: ollama). The backend is overridden per run; the process environment
is left untouched.`,
	ValidArgs: []string{string(model.BackendAzure), string(model.BackendOllama), string(model.BackendLMStudio)},
	RunE: func(cmd *cobra.Command, args []string) error {
		loadedCfg, err := loadConfigForCommand(cmd)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		backends := args
		if len(backends) == 0 {
			backends = []string{string(model.BackendOllama)}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "\nLLM Backend Examples")
		fmt.Fprintln(out)

		for i, backend := range backends {
			runExample(cmd, out, loadedCfg, i+1, backend)
		}

		fmt.Fprintln(out, "\nDone! Set LLM_BACKEND before running other commands:")
		fmt.Fprintln(out, "  export LLM_BACKEND=ollama    # For Ollama")
		fmt.Fprintln(out, "  export LLM_BACKEND=lmstudio  # For LM Studio")
		fmt.Fprintln(out, "  export LLM_BACKEND=azure     # For Azure OpenAI")
		return nil
	},
}

func exampleTitle(backend string) string {
	switch model.BackendKind(backend) {
	case model.BackendAzure:
		return "Using Azure OpenAI"
	case model.BackendOllama:
		return "Using Ollama (Local Model)"
	case model.BackendLMStudio:
		return "Using LM Studio (Local Model)"
	default:
		return fmt.Sprintf("Using %s", backend)
	}
}

func runExample(cmd *cobra.Command, out io.Writer, base *config.Config, n int, backend string) {
	llm := base.LLM
	llm.Backend = backend

	rule := strings.Repeat("=", 60)
	fmt.Fprintln(out, rule)
	lipgloss.Fprintln(out, headerStyle.Render(fmt.Sprintf("Example %d: %s", n, exampleTitle(backend))))
	fmt.Fprintln(out, rule)
	printBackendSummary(out, llm)

	dispatcher, err := newDispatcher(base, llm)
	if err == nil {
		var resp *contract.CompletionResponse
		resp, err = dispatcher.ChatCompletion(cmd.Context(), contract.CompletionRequest{Messages: exampleTranscript})
		if err == nil {
			content, _ := resp.FirstContent()
			fmt.Fprintf(out, "\nResponse:\n%s\n\n", content)
			return
		}
	}

	lipgloss.Fprintln(out, failStyle.Render("Error:")+" "+err.Error())
	printHints(out, troubleshootingHints(llm, err))
	fmt.Fprintln(out)
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}
