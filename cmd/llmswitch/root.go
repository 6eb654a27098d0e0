package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/harunnryd/llmswitch/internal/config"
	"github.com/harunnryd/llmswitch/internal/logger"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "llmswitch",
	Short: "Chat completions across Azure OpenAI, Ollama and LM Studio",
	Long: `llmswitch selects one of three chat-completion backends (Azure OpenAI,
Ollama, LM Studio) from the environment and sends a uniform request to it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cmd)
		if err != nil {
			return err
		}

		logger.Setup(cfg.Log.Level)
		return nil
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.llmswitch/config.yaml)")
	rootCmd.PersistentFlags().StringP("llm.backend", "b", config.DefaultBackend, "backend to use (azure, ollama, lmstudio); overrides LLM_BACKEND")
	rootCmd.PersistentFlags().String("log.level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
}
