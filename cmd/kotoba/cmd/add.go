package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tomozane/kotoba/internal/vocab"
)

var addCmd = &cobra.Command{
	Use:   "add <word>",
	Short: "Add a vocabulary entry",
	Long: `Add a vocabulary entry to the database.

The word and sentences may carry furigana and space annotations.
Sentence flags take the form "japanese = translation"; the translation
is optional.

Examples:
  kotoba add 日本語 -t 'Japanese language'
  kotoba add 飲む -t 'to drink' -s '水を飲む = I drink water'
  kotoba add 勉強^べんきょう -t study -t studies`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var (
	addTranslations []string
	addSentences    []string
)

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringArrayVarP(&addTranslations, "translation", "t", nil, "translation (repeatable, required)")
	addCmd.Flags().StringArrayVarP(&addSentences, "sentence", "s", nil, "example sentence 'jp = translation' (repeatable)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	word := strings.TrimSpace(args[0])
	if word == "" {
		return fmt.Errorf("word is required")
	}
	if len(addTranslations) == 0 {
		return fmt.Errorf("at least one translation is required (-t)")
	}

	entry := &vocab.Entry{
		Word:         word,
		Translations: addTranslations,
		Sentences:    vocab.ParseSentences(strings.Join(addSentences, "\n")),
	}

	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Put(entry); err != nil {
		return err
	}
	fmt.Printf("Added %s (id %d)\n", entry.Word, entry.ID)
	return nil
}
