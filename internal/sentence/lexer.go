// Package sentence turns annotated Japanese text into renderable
// structure. A "^" introduces a furigana reading for the kanji run
// before it and "~" marks an explicit space.
package sentence

import "github.com/tomozane/kotoba/internal/kana"

// TokenKind tags a lexer token.
type TokenKind int

const (
	TokenKanji TokenKind = iota
	TokenFurigana
	TokenSpace
	TokenPlain
)

// Token is one unit of annotated text. Rune is set for kanji and plain
// tokens, Text for furigana runs.
type Token struct {
	Kind TokenKind
	Rune rune
	Text string
}

// Tokenize splits annotated text into tokens in a single pass. It
// never fails: a "^" not followed by hiragana simply yields an empty
// furigana run.
func Tokenize(text string) []Token {
	runes := []rune(text)
	var tokens []Token
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case kana.IsKanji(r):
			tokens = append(tokens, Token{Kind: TokenKanji, Rune: r})
		case r == '^':
			j := i + 1
			for j < len(runes) && kana.IsHiragana(runes[j]) {
				j++
			}
			tokens = append(tokens, Token{Kind: TokenFurigana, Text: string(runes[i+1 : j])})
			i = j - 1
		case r == '~':
			tokens = append(tokens, Token{Kind: TokenSpace})
		default:
			tokens = append(tokens, Token{Kind: TokenPlain, Rune: r})
		}
	}
	return tokens
}
