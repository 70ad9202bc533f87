package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tomozane/kotoba/internal/vocab"
	"gopkg.in/yaml.v3"
)

// deckFile is the YAML layout of an exported vocabulary deck.
type deckFile struct {
	Entries []*vocab.Entry `yaml:"entries"`
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the vocabulary as a YAML deck",
	Long: `Export all vocabulary entries as a YAML deck file. With no argument
the deck is written to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a YAML deck into the vocabulary",
	Long: `Import entries from a YAML deck file. Imported entries are always
added as new records; ids in the file are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.All()
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(deckFile{Entries: entries})
	if err != nil {
		return fmt.Errorf("marshaling deck: %w", err)
	}

	if len(args) == 0 {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(args[0], out, 0644); err != nil {
		return fmt.Errorf("writing deck file: %w", err)
	}
	fmt.Printf("Exported %d entries to %s\n", len(entries), args[0])
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading deck file: %w", err)
	}

	var deck deckFile
	if err := yaml.Unmarshal(data, &deck); err != nil {
		return fmt.Errorf("parsing deck file: %w", err)
	}

	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	for _, e := range deck.Entries {
		e.ID = 0
		if err := store.Put(e); err != nil {
			return fmt.Errorf("importing %q: %w", e.Word, err)
		}
	}
	fmt.Printf("Imported %d entries from %s\n", len(deck.Entries), args[0])
	return nil
}
