// Package cmd contains all CLI commands for kotoba.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tomozane/kotoba/internal/config"
	"github.com/tomozane/kotoba/internal/sentence"
	"github.com/tomozane/kotoba/internal/tui"
	"github.com/tomozane/kotoba/internal/vocab"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kotoba",
	Short: "Japanese vocabulary trainer with furigana-aware rendering",
	Long: `kotoba is a terminal tool for collecting and training Japanese vocabulary.

Sentences are written in annotated plain text:
  - "^" attaches a furigana reading to the kanji run before it
  - "~" marks an explicit space

Example: 日本語^にほんごを~勉強^べんきょうします

Besides vocabulary management, kotoba can break hiragana down into
gojuon rows and columns, apply sound marks, conjugate verbs and render
annotated sentences to HTML with kanji lookup links.

Running 'kotoba' without arguments opens the vocabulary browser.`,
	RunE: runRoot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/kotoba)")
}

// initConfig resolves the config directory and environment overrides.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", filepath.Join(home, ".config", "kotoba"))
	}

	viper.SetEnvPrefix("KOTOBA")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadConfig loads the user configuration, applying defaults when no
// file exists.
func loadConfig() (*config.Config, error) {
	return config.Load(getConfigDir())
}

// openStore opens the vocabulary database configured for this user.
func openStore() (*vocab.Store, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := config.EnsureConfigDir(getConfigDir()); err != nil {
		return nil, nil, fmt.Errorf("creating config directory: %w", err)
	}
	store, err := vocab.Open(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

// newRenderer builds the sentence renderer from configuration.
func newRenderer(cfg *config.Config) *sentence.Renderer {
	r := sentence.NewRenderer(cfg.LookupBaseURL)
	r.LinkKanji = cfg.LinkKanji
	return r
}

// runRoot launches the vocabulary browser TUI.
func runRoot(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.All()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		tui.NewBrowseModel(entries, newRenderer(cfg)),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
