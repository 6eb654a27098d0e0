package main

import (
	"fmt"

	"github.com/harunnryd/llmswitch/internal/config"
	"github.com/harunnryd/llmswitch/internal/model"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List supported backends and their resolved settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loadedCfg, err := loadConfigForCommand(cmd)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		lipgloss.Fprintln(cmd.OutOrStdout(), renderBackendsTable(loadedCfg.LLM))
		return nil
	},
}

// backendRows resolves every supported backend against llm. The selected
// backend is marked with "*".
func backendRows(llm config.LLMConfig) [][]string {
	rows := make([][]string, 0, len(model.BackendKinds()))
	for _, kind := range model.BackendKinds() {
		candidate := llm
		candidate.Backend = string(kind)

		marker := " "
		if llm.Backend == string(kind) {
			marker = "*"
		}

		status := "ready"
		endpoint, modelName := "", ""
		resolved, err := model.Resolve(candidate)
		if err != nil {
			status = err.Error()
		} else {
			endpoint, modelName = resolved.EndpointURL(), resolved.ModelName()
		}

		rows = append(rows, []string{marker, string(kind), kind.DisplayName(), valueOrNA(endpoint), valueOrNA(modelName), status})
	}
	return rows
}

func renderBackendsTable(llm config.LLMConfig) string {
	border := lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cell
		}).
		Headers("", "BACKEND", "NAME", "ENDPOINT", "MODEL", "STATUS").
		Rows(backendRows(llm)...)

	return t.String()
}

func init() {
	rootCmd.AddCommand(backendsCmd)
}
