package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/tomozane/kotoba/internal/sentence"
)

// DisplayText renders annotated text for a terminal: a kanji run's
// furigana follows it in 【】 brackets, "~" markers become spaces.
func DisplayText(text string) string {
	var b strings.Builder
	for _, n := range sentence.Group(sentence.Tokenize(text)) {
		switch n.Kind {
		case sentence.NodePlainRun:
			b.WriteString(n.Text)
		case sentence.NodeKanjiRun:
			b.WriteString(string(n.Kanji))
			if n.HasFurigana && n.Furigana != "" {
				b.WriteString("【" + n.Furigana + "】")
			}
		case sentence.NodeSpace:
			b.WriteString(" ")
		}
	}
	return b.String()
}

// truncate shortens s to the given display width, accounting for
// double-width CJK runes.
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}
