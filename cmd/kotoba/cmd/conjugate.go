package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tomozane/kotoba/internal/inflect"
)

var conjugateCmd = &cobra.Command{
	Use:   "conjugate <verb>",
	Short: "Derive te-form and masu-form of a verb",
	Long: `Conjugate a verb given in dictionary form.

The verb type decides the conjugation pattern:
  ichidan    食べる → 食べて, 食べます
  godan      飲む   → 飲んで, 飲みます
  irregular  (not derivable by rule)

When the character before a final る is a kanji, its reading is unknown
and the ichidan check cannot decide; such verbs are accepted for
--type ichidan.

Examples:
  kotoba conjugate 飲む --type godan
  kotoba conjugate 食べる --type ichidan`,
	Args: cobra.ExactArgs(1),
	RunE: runConjugate,
}

var conjugateType string

func init() {
	rootCmd.AddCommand(conjugateCmd)
	conjugateCmd.Flags().StringVarP(&conjugateType, "type", "t", "godan", "verb type: ichidan, godan or irregular")
}

func runConjugate(cmd *cobra.Command, args []string) error {
	verbType, err := inflect.ParseVerbType(conjugateType)
	if err != nil {
		return err
	}

	conj, err := inflect.New(args[0], verbType)
	if err != nil {
		return err
	}

	fmt.Printf("Dictionary form: %s (%s)\n", conj.Base(), conj.Type())
	fmt.Printf("Ichidan ending:  %s\n", inflect.HasIchidanEnding(conj.Base()))

	printForm := func(label string, form string, err error) error {
		if errors.Is(err, inflect.ErrUnsupported) {
			fmt.Printf("%s (not derivable for %s verbs)\n", label, conj.Type())
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", label, form)
		return nil
	}

	te, teErr := conj.TeForm()
	if err := printForm("Te-form:        ", te, teErr); err != nil {
		return err
	}
	masu, masuErr := conj.MasuForm()
	return printForm("Masu-form:      ", masu, masuErr)
}
