package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tomozane/kotoba/internal/kana"
)

var kanaCmd = &cobra.Command{
	Use:   "kana <syllable>",
	Short: "Break a kana letter down into row, column and sound mark",
	Long: `Look up a hiragana letter by glyph or romanized syllable and show its
position in the gojuon table.

The irregular spellings shi, chi, tsu, fu, ji and n are understood.

Transformations can be applied to the letter before display:

Examples:
  kotoba kana ka
  kotoba kana て --dakuten     # て → で
  kotoba kana ば --plain       # ば → は
  kotoba kana は --handakuten  # は → ぱ
  kotoba kana く --column o    # く → こ`,
	Args: cobra.ExactArgs(1),
	RunE: runKana,
}

var (
	kanaDakuten    bool
	kanaHandakuten bool
	kanaPlain      bool
	kanaColumn     string
)

func init() {
	rootCmd.AddCommand(kanaCmd)
	kanaCmd.Flags().BoolVar(&kanaDakuten, "dakuten", false, "apply a dakuten")
	kanaCmd.Flags().BoolVar(&kanaHandakuten, "handakuten", false, "apply a handakuten")
	kanaCmd.Flags().BoolVar(&kanaPlain, "plain", false, "strip any sound mark")
	kanaCmd.Flags().StringVar(&kanaColumn, "column", "", "shift to another vowel column (a, i, u, e, o)")
}

func runKana(cmd *cobra.Command, args []string) error {
	letter, err := kana.FromRomaji(args[0])
	if err != nil {
		return err
	}

	switch {
	case kanaDakuten:
		letter, err = letter.WithSoundMark(kana.Dakuten)
	case kanaHandakuten:
		letter, err = letter.WithSoundMark(kana.Handakuten)
	case kanaPlain:
		letter, err = letter.WithSoundMark(kana.NoMark)
	}
	if err != nil {
		return err
	}

	if kanaColumn != "" {
		letter, err = letter.WithColumn(kana.Column(kanaColumn))
		if err != nil {
			return err
		}
	}

	fmt.Printf("Glyph:      %c\n", letter.Glyph)
	fmt.Printf("Romaji:     %s\n", letter.Romaji())
	fmt.Printf("Row:        %s\n", letter.Row)
	fmt.Printf("Column:     %s\n", letter.Column)
	fmt.Printf("Sound mark: %s\n", letter.SoundMark())
	return nil
}
