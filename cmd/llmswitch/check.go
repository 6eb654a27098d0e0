package main

import (
	"fmt"

	llmErrors "github.com/harunnryd/llmswitch/internal/errors"
	"github.com/harunnryd/llmswitch/internal/model/contract"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
)

var checkChecklist = []string{
	"Your LLM_BACKEND environment variable or config file setting",
	"The server is running (for Ollama/LM Studio)",
	"The model is loaded and available",
	"The API endpoint URL is correct",
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the configured backend answers a test message",
	Long:  `Print the resolved backend configuration and send a short test conversation to it.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loadedCfg, err := loadConfigForCommand(cmd)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Testing LLM backend configuration...")
		fmt.Fprintln(out)
		printBackendSummary(out, loadedCfg.LLM)
		fmt.Fprintln(out)

		dispatcher, err := newDispatcher(loadedCfg, loadedCfg.LLM)
		if err == nil {
			fmt.Fprintln(out, "Sending test message...")

			var resp *contract.CompletionResponse
			resp, err = dispatcher.ChatCompletion(cmd.Context(), contract.CompletionRequest{
				Messages: []contract.Message{
					{Role: contract.RoleSystem, Content: "You are a helpful assistant."},
					{Role: contract.RoleUser, Content: "Say hello and confirm you are working!"},
				},
			})
			if err == nil {
				content, _ := resp.FirstContent()
				fmt.Fprintf(out, "\nResponse received:\n%s\n\n", content)
				lipgloss.Fprintln(out, passStyle.Render("Configuration test PASSED!"))
				return nil
			}
		}

		fmt.Fprintln(out)
		lipgloss.Fprintln(out, failStyle.Render("Configuration test FAILED!"))
		fmt.Fprintf(out, "Error: %v\n\n", err)
		fmt.Fprintln(out, "Please check:")
		for i, item := range checkChecklist {
			fmt.Fprintf(out, "%d. %s\n", i+1, item)
		}
		if hints := troubleshootingHints(loadedCfg.LLM, err); len(hints) > 0 {
			fmt.Fprintln(out, "\nHints:")
			printHints(out, hints)
		}

		return llmErrors.Wrap(err, "configuration test failed")
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
