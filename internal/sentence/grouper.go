package sentence

import (
	"strings"

	"github.com/tomozane/kotoba/internal/kana"
)

// NodeKind tags a grouped node.
type NodeKind int

const (
	NodeKanjiRun NodeKind = iota
	NodePlainRun
	NodeSpace
)

// Node is one grouped unit of a sentence. A kanji run's furigana, when
// present, annotates the whole run; HasFurigana distinguishes an empty
// reading from no reading at all.
type Node struct {
	Kind        NodeKind
	Text        string
	Kanji       []rune
	Furigana    string
	HasFurigana bool
}

type groupState int

const (
	stateEmpty groupState = iota
	statePlain
	stateKanji
)

// Group folds a token sequence into nodes: consecutive kanji merge
// into one run, a furigana token directly after a kanji run attaches
// to it, consecutive plain characters merge into one run. A furigana
// token anywhere else is dropped without error; existing annotated
// content relies on that tolerance.
func Group(tokens []Token) []Node {
	var nodes []Node
	var buf []rune
	state := stateEmpty

	flushPlain := func() {
		nodes = append(nodes, Node{Kind: NodePlainRun, Text: plainText(buf)})
		buf = nil
	}
	flushKanji := func() {
		nodes = append(nodes, Node{Kind: NodeKanjiRun, Kanji: buf})
		buf = nil
	}

	for _, tok := range tokens {
		switch state {
		case stateEmpty:
			switch tok.Kind {
			case TokenKanji:
				buf = []rune{tok.Rune}
				state = stateKanji
			case TokenPlain:
				buf = []rune{tok.Rune}
				state = statePlain
			case TokenSpace:
				nodes = append(nodes, Node{Kind: NodeSpace})
			case TokenFurigana:
				// No kanji run to attach to: drop.
			}
		case statePlain:
			switch tok.Kind {
			case TokenKanji:
				flushPlain()
				buf = []rune{tok.Rune}
				state = stateKanji
			case TokenPlain:
				buf = append(buf, tok.Rune)
			case TokenSpace:
				flushPlain()
				nodes = append(nodes, Node{Kind: NodeSpace})
				state = stateEmpty
			case TokenFurigana:
				// Drop, as above.
			}
		case stateKanji:
			switch tok.Kind {
			case TokenKanji:
				buf = append(buf, tok.Rune)
			case TokenPlain:
				flushKanji()
				buf = []rune{tok.Rune}
				state = statePlain
			case TokenSpace:
				flushKanji()
				nodes = append(nodes, Node{Kind: NodeSpace})
				state = stateEmpty
			case TokenFurigana:
				nodes = append(nodes, Node{
					Kind:        NodeKanjiRun,
					Kanji:       buf,
					Furigana:    tok.Text,
					HasFurigana: true,
				})
				buf = nil
				state = stateEmpty
			}
		}
	}

	switch state {
	case statePlain:
		flushPlain()
	case stateKanji:
		flushKanji()
	}

	return nodes
}

// plainText concatenates buffered plain characters, silently dropping
// whitespace. Explicit spacing goes through the "~" marker instead.
func plainText(buf []rune) string {
	var b strings.Builder
	for _, r := range buf {
		if kana.IsWhitespace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
