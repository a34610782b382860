package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/f3rmion/emotionai/internal/emotion"
	"github.com/f3rmion/emotionai/internal/render"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <text>",
	Short: "Analyze the emotion of a piece of text",
	Long: `Classify text once and print the primary emotion, its confidence and
the secondary emotions.

Example:
  emotionai analyze "I love this!"
  emotionai analyze --json I love this`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().Bool("json", false, "print the result as JSON")
}

// analyzeOutput is the JSON shape printed by analyze --json.
type analyzeOutput struct {
	Text   string         `json:"text"`
	Result emotion.Result `json:"result"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		return errors.New("nothing to analyze: text is empty")
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	log := newLogger(cfg)
	defer log.Sync()

	classifier, err := cfg.NewClassifier()
	if err != nil {
		return err
	}

	res, err := classifier.Classify(context.Background(), text)
	if err != nil {
		log.Errorw("analysis failed", "error", err)
		return fmt.Errorf("analysis failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(analyzeOutput{Text: text, Result: res})
	}

	lines := render.Lines(res)
	primary := render.For(res.Emotion)
	fmt.Fprintf(out, "%s %s\n", primary.Glyph, lines[0])
	fmt.Fprintf(out, "  %s\n", lines[1])
	if len(res.Secondary) > 0 {
		fmt.Fprintln(out, "Secondary emotions:")
		for i, s := range res.Secondary {
			fmt.Fprintf(out, "  %s %s\n", render.For(s.Emotion).Glyph, lines[i+2])
		}
	}

	return nil
}
