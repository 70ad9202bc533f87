package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tomozane/kotoba/internal/vocab"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a vocabulary entry",
	Long: `Replace fields of an existing vocabulary entry. Only the fields
given as flags change; repeatable flags replace the whole list.

Examples:
  kotoba edit 3 --word 日本語^にほんご
  kotoba edit 3 -t 'Japanese language' -t Japanese
  kotoba edit 3 -s '日本語を話します = I speak Japanese'`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editWord         string
	editTranslations []string
	editSentences    []string
)

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editWord, "word", "", "replace the word")
	editCmd.Flags().StringArrayVarP(&editTranslations, "translation", "t", nil, "replace the translations (repeatable)")
	editCmd.Flags().StringArrayVarP(&editSentences, "sentence", "s", nil, "replace the sentences (repeatable)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	entry, err := store.Get(id)
	if err != nil {
		return fmt.Errorf("loading entry %d: %w", id, err)
	}

	if editWord != "" {
		entry.Word = strings.TrimSpace(editWord)
	}
	if cmd.Flags().Changed("translation") {
		entry.Translations = editTranslations
	}
	if cmd.Flags().Changed("sentence") {
		entry.Sentences = vocab.ParseSentences(strings.Join(editSentences, "\n"))
	}

	if err := store.Put(entry); err != nil {
		return err
	}
	fmt.Printf("Updated %s (id %d)\n", entry.Word, entry.ID)
	return nil
}
