// Package cmd contains all CLI commands for emotionai.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/emotionai/internal/clipboard"
	"github.com/f3rmion/emotionai/internal/config"
	"github.com/f3rmion/emotionai/internal/logger"
	"github.com/f3rmion/emotionai/internal/tui"
	"github.com/f3rmion/emotionai/internal/tui/bigchar"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "emotionai",
	Short: "EmotionAI - understand the emotions behind your text",
	Long: `EmotionAI classifies the emotion expressed in a piece of text.

Each analysis reports:
  - A primary emotion with its confidence
  - Secondary emotions, highest score first

Emotions: happy, sad, angry, fear, surprise, neutral.

The classifier is currently simulated: it answers after a short delay with
a configurable canned result.

Running 'emotionai' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/emotionai)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose diagnostics")
	rootCmd.PersistentFlags().String("delay", "", "simulated classification delay, e.g. 1s (overrides config)")
	rootCmd.PersistentFlags().Bool("fail", false, "make every classification fail (overrides config)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("delay", rootCmd.PersistentFlags().Lookup("delay"))
	viper.BindPFlag("fail", rootCmd.PersistentFlags().Lookup("fail"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		configDir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", configDir)
	}

	viper.SetEnvPrefix("EMOTIONAI")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadSettings loads config.yaml and applies flag and environment overrides.
func loadSettings() (*config.Config, error) {
	cfg, err := config.LoadDir(getConfigDir())
	if err != nil {
		return nil, err
	}

	if viper.IsSet("delay") && viper.GetString("delay") != "" {
		cfg.Classifier.Delay = viper.GetString("delay")
	}
	if viper.IsSet("fail") {
		cfg.Classifier.Fail = viper.GetBool("fail")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger opens the diagnostic log for cfg.
func newLogger(cfg *config.Config) *zap.SugaredLogger {
	return logger.NewOrNop(cfg.LogPath(getConfigDir()), viper.GetBool("verbose"))
}

// runTUI launches the interactive TUI.
func runTUI(cmd *cobra.Command, args []string) error {
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

	opts := tui.Options{
		Classifier: classifier,
		Logger:     log,
	}
	if clipboard.Available() {
		opts.Copy = clipboard.Write
	} else {
		log.Debugw("no clipboard command found, copy disabled")
	}
	if cfg.Banner {
		opts.Banner = bigchar.System()
	}

	p := tea.NewProgram(
		tui.NewApp(opts),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		log.Errorw("running TUI", "error", err)
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

// configPath returns the path of config.yaml in the config directory.
func configPath() string {
	return filepath.Join(getConfigDir(), config.FileName)
}
