package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/tomozane/kotoba/internal/tui"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train vocabulary with flashcards",
	Long: `Run through the stored vocabulary as flashcards in the terminal.

Controls:
  space/enter  Flip the card
  n/p          Next / previous card
  s            Shuffle
  q            Quit`,
	RunE: runTrain,
}

func init() {
	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.All()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no vocabulary to train; add entries with 'kotoba add'")
	}

	p := tea.NewProgram(tui.NewTrainModel(entries), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
