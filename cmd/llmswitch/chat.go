package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	llmErrors "github.com/harunnryd/llmswitch/internal/errors"
	"github.com/harunnryd/llmswitch/internal/model/contract"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat [prompt]",
	Short: "Send one prompt to the configured backend",
	Long: `Send a single chat completion request and print the first choice.

Functions for function calling can be supplied as a JSON array of
{"name", "description", "parameters"} objects. They are forwarded to every
backend; local servers may ignore or reject them.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loadedCfg, err := loadConfigForCommand(cmd)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		system, _ := cmd.Flags().GetString("system")
		temperature, _ := cmd.Flags().GetFloat32("temperature")
		functionsPath, _ := cmd.Flags().GetString("functions")
		raw, _ := cmd.Flags().GetBool("raw")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		prompt := strings.Join(args, " ")
		if strings.TrimSpace(prompt) == "" {
			return llmErrors.InvalidInput("prompt is empty")
		}

		functions, err := readFunctions(functionsPath)
		if err != nil {
			return err
		}

		req := contract.CompletionRequest{
			Messages:    buildTranscript(system, prompt),
			Temperature: temperature,
			Functions:   functions,
		}

		dispatcher, err := newDispatcher(loadedCfg, loadedCfg.LLM)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		resp, err := dispatcher.ChatCompletion(ctx, req)
		if err != nil {
			errOut := cmd.ErrOrStderr()
			fmt.Fprintf(errOut, "%s: %v\n", llmErrors.Category(err), err)
			printHints(errOut, troubleshootingHints(loadedCfg.LLM, err))
			return llmErrors.Wrap(err, "chat completion failed")
		}

		out := cmd.OutOrStdout()
		if raw {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		}

		if len(resp.Choices) == 0 {
			fmt.Fprintln(out, "(no choices returned)")
			return nil
		}

		msg := resp.Choices[0].Message
		if msg.FunctionCall != nil {
			fmt.Fprintf(out, "function_call: %s(%s)\n", msg.FunctionCall.Name, msg.FunctionCall.Arguments)
		}
		if msg.Content != "" || msg.FunctionCall == nil {
			fmt.Fprintln(out, msg.Content)
		}
		return nil
	},
}

func buildTranscript(system, prompt string) []contract.Message {
	var messages []contract.Message
	if strings.TrimSpace(system) != "" {
		messages = append(messages, contract.Message{Role: contract.RoleSystem, Content: system})
	}
	return append(messages, contract.Message{Role: contract.RoleUser, Content: prompt})
}

// readFunctions loads a JSON array of function definitions. An empty path
// means no functions.
func readFunctions(path string) ([]contract.FunctionDef, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read functions file %s: %w: %w", path, err, llmErrors.ErrInvalidInput)
	}

	var functions []contract.FunctionDef
	if err := json.Unmarshal(data, &functions); err != nil {
		return nil, fmt.Errorf("parse functions file %s: %w: %w", path, err, llmErrors.ErrInvalidInput)
	}

	return functions, nil
}

func registerChatFlags(cmd *cobra.Command) {
	cmd.Flags().String("system", "", "system message placed before the prompt")
	cmd.Flags().Float32("temperature", 0, "sampling temperature")
	cmd.Flags().String("functions", "", "path to a JSON array of function definitions")
	cmd.Flags().Bool("raw", false, "print the full backend response as JSON")
	cmd.Flags().Duration("timeout", 0, "abort the call after this long (0 waits indefinitely)")
}

func init() {
	registerChatFlags(chatCmd)
	rootCmd.AddCommand(chatCmd)
}
