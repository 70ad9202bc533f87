package cmd

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <text>",
	Short: "Render annotated text to HTML",
	Long: `Render an annotated sentence to HTML markup.

Kanji runs become lookup links, "^" readings become <ruby> annotations
and "~" markers become non-breaking spaces.

Examples:
  kotoba render '日本語^にほんご'
  kotoba render '日本語を~勉強します' --no-links
  kotoba render '漢字^かんじ' --copy`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

var (
	renderNoLinks bool
	renderCopy    bool
	renderBaseURL string
)

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().BoolVar(&renderNoLinks, "no-links", false, "render kanji as plain glyphs instead of lookup links")
	renderCmd.Flags().BoolVar(&renderCopy, "copy", false, "copy the markup to the clipboard")
	renderCmd.Flags().StringVar(&renderBaseURL, "base-url", "", "override the configured lookup base URL")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	renderer := newRenderer(cfg)
	if renderBaseURL != "" {
		renderer.LookupBaseURL = renderBaseURL
	}
	if renderNoLinks {
		renderer.LinkKanji = false
	}

	html := renderer.RenderText(args[0])
	fmt.Println(html)

	if renderCopy {
		if err := clipboard.WriteAll(html); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, "Copied to clipboard.")
		}
	}
	return nil
}
