package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tomozane/kotoba/internal/tui"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one vocabulary entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var showHTML bool

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showHTML, "html", false, "also print sentences rendered as HTML")
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	entry, err := store.Get(id)
	if err != nil {
		return fmt.Errorf("loading entry %d: %w", id, err)
	}

	renderer := newRenderer(cfg)

	fmt.Printf("Word:         %s\n", tui.DisplayText(entry.Word))
	fmt.Printf("Translations: %s\n", strings.Join(entry.Translations, ", "))
	for i, s := range entry.Sentences {
		fmt.Printf("Sentence %-4d %s\n", i+1, tui.DisplayText(s.JP))
		if s.Translation != "" {
			fmt.Printf("              %s\n", s.Translation)
		}
		if showHTML {
			fmt.Printf("              %s\n", renderer.RenderText(s.JP))
		}
	}
	for _, k := range entry.Kanji() {
		fmt.Printf("Lookup %c:     %s\n", k, renderer.LookupURL(k))
	}
	return nil
}
