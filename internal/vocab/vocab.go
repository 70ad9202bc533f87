// Package vocab stores vocabulary entries and their example sentences.
package vocab

import (
	"strings"

	"github.com/tomozane/kotoba/internal/kana"
)

// Sentence is an example sentence in annotated form plus an optional
// translation. An empty Translation means none was given.
type Sentence struct {
	JP          string `yaml:"jp" json:"jp"`
	Translation string `yaml:"translation,omitempty" json:"translation,omitempty"`
}

// Entry is one vocabulary record. ID is zero until the entry has been
// stored.
type Entry struct {
	ID           int64      `yaml:"id,omitempty" json:"id,omitempty"`
	Word         string     `yaml:"word" json:"word"`
	Translations []string   `yaml:"translations" json:"translations"`
	Sentences    []Sentence `yaml:"sentences,omitempty" json:"sentences,omitempty"`
}

// Kanji returns the distinct kanji of the entry's word, in order of
// first appearance.
func (e *Entry) Kanji() []rune {
	var kanji []rune
	seen := make(map[rune]bool)
	for _, r := range e.Word {
		if kana.IsKanji(r) && !seen[r] {
			kanji = append(kanji, r)
			seen[r] = true
		}
	}
	return kanji
}

// ParseSentence splits a sentence line at the first "=" into Japanese
// text and translation. Later "=" characters stay in the translation.
func ParseSentence(line string) Sentence {
	jp, tr, found := strings.Cut(line, "=")
	if !found {
		return Sentence{JP: strings.TrimSpace(jp)}
	}
	return Sentence{JP: strings.TrimSpace(jp), Translation: strings.TrimSpace(tr)}
}

// ParseSentences parses one sentence per line, skipping blank lines.
func ParseSentences(text string) []Sentence {
	var sentences []Sentence
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sentences = append(sentences, ParseSentence(line))
	}
	return sentences
}

// FormatSentence is the inverse of ParseSentence: its output parses
// back to an equivalent Sentence.
func FormatSentence(s Sentence) string {
	if s.Translation == "" {
		return s.JP
	}
	return s.JP + " = " + s.Translation
}

// FormatSentences renders sentences one per line.
func FormatSentences(sentences []Sentence) string {
	lines := make([]string, len(sentences))
	for i, s := range sentences {
		lines[i] = FormatSentence(s)
	}
	return strings.Join(lines, "\n")
}
