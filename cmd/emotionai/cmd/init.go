package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize emotionai configuration",
	Long: `Write a default config.yaml to your config directory.

The file configures the simulated classifier (delay, canned result,
failure mode), the banner art and the diagnostic log location.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := configPath()

	// Check if config already exists
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit config.yaml to change the simulated result or delay")
	fmt.Fprintln(out, "  2. Run 'emotionai analyze \"I love this!\"' to test a classification")
	fmt.Fprintln(out, "  3. Run 'emotionai' to launch the interactive TUI")

	return nil
}

const configTemplate = `# EmotionAI configuration

classifier:
  # How long the simulated classifier takes to answer.
  delay: 1s

  # Make every request fail. Failures are written to the log file.
  fail: false

  # Canned result returned by the simulated classifier.
  # Emotions: happy, sad, angry, fear, surprise, neutral.
  # Secondary emotions must be sorted highest first and, together with the
  # confidence, must not add up to more than 1.
  result:
    emotion: happy
    confidence: 0.85
    secondary_emotions:
      - emotion: surprise
        score: 0.10
      - emotion: neutral
        score: 0.05

# Draw the primary emotion as block art when a system font is available.
banner: true

# Diagnostic log (default: emotionai.log in the config directory).
log_file: ""
`
