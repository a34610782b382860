package cmd

import (
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch an interactive terminal UI for analyzing text.

Features:
  - Type text and press Enter to analyze it
  - See the primary emotion, its confidence and secondary emotions
  - Keep the last five analyses in a history list

Controls:
  Enter       Analyze text
  Alt+Enter   New line
  Ctrl+Y      Copy result
  F1          Help
  Esc         Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
