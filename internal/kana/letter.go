package kana

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Row is the consonant class of a hiragana letter. RowVowel ("-") holds
// the five bare vowels and RowSyllabicN ("nn") holds ん alone.
type Row string

const (
	RowVowel     Row = "-"
	RowK         Row = "k"
	RowG         Row = "g"
	RowS         Row = "s"
	RowZ         Row = "z"
	RowT         Row = "t"
	RowD         Row = "d"
	RowN         Row = "n"
	RowH         Row = "h"
	RowB         Row = "b"
	RowP         Row = "p"
	RowM         Row = "m"
	RowR         Row = "r"
	RowY         Row = "y"
	RowW         Row = "w"
	RowSyllabicN Row = "nn"
)

// Column is the vowel class of a hiragana letter. ColN is used only by
// the syllabic ん.
type Column string

const (
	ColA Column = "a"
	ColI Column = "i"
	ColU Column = "u"
	ColE Column = "e"
	ColO Column = "o"
	ColN Column = "n"
)

// SoundMark is the diacritic attached to a letter's glyph.
type SoundMark int

const (
	NoMark SoundMark = iota
	Dakuten
	Handakuten
)

func (m SoundMark) String() string {
	switch m {
	case Dakuten:
		return "dakuten"
	case Handakuten:
		return "handakuten"
	default:
		return "none"
	}
}

var (
	ErrInvalidRomaji   = errors.New("invalid romaji")
	ErrNotFound        = errors.New("no such kana letter")
	ErrInvalidColumn   = errors.New("invalid column")
	ErrNoSoundMarkRule = errors.New("no sound mark rule")
)

// rows is the forward gojuon table: 14 rows, 71 glyphs.
var rows = map[Row]map[Column]rune{
	RowVowel:     {ColA: 'あ', ColI: 'い', ColU: 'う', ColE: 'え', ColO: 'お'},
	RowK:         {ColA: 'か', ColI: 'き', ColU: 'く', ColE: 'け', ColO: 'こ'},
	RowG:         {ColA: 'が', ColI: 'ぎ', ColU: 'ぐ', ColE: 'げ', ColO: 'ご'},
	RowS:         {ColA: 'さ', ColI: 'し', ColU: 'す', ColE: 'せ', ColO: 'そ'},
	RowZ:         {ColA: 'ざ', ColI: 'じ', ColU: 'ず', ColE: 'ぜ', ColO: 'ぞ'},
	RowT:         {ColA: 'た', ColI: 'ち', ColU: 'つ', ColE: 'て', ColO: 'と'},
	RowD:         {ColA: 'だ', ColI: 'ぢ', ColU: 'づ', ColE: 'で', ColO: 'ど'},
	RowN:         {ColA: 'な', ColI: 'に', ColU: 'ぬ', ColE: 'ね', ColO: 'の'},
	RowH:         {ColA: 'は', ColI: 'ひ', ColU: 'ふ', ColE: 'へ', ColO: 'ほ'},
	RowB:         {ColA: 'ば', ColI: 'び', ColU: 'ぶ', ColE: 'べ', ColO: 'ぼ'},
	RowP:         {ColA: 'ぱ', ColI: 'ぴ', ColU: 'ぷ', ColE: 'ぺ', ColO: 'ぽ'},
	RowM:         {ColA: 'ま', ColI: 'み', ColU: 'む', ColE: 'め', ColO: 'も'},
	RowR:         {ColA: 'ら', ColI: 'り', ColU: 'る', ColE: 'れ', ColO: 'ろ'},
	RowY:         {ColA: 'や', ColU: 'ゆ', ColO: 'よ'},
	RowW:         {ColA: 'わ', ColO: 'を'},
	RowSyllabicN: {ColN: 'ん'},
}

// smallGlyphs are the contracted-sound glyphs. They take part in glyph
// lookup only; transformations do not apply to them.
var smallGlyphs = map[string]rune{
	"ya":  'ゃ',
	"yu":  'ゅ',
	"yo":  'ょ',
	"tsu": 'っ',
}

// How a dakuten or handakuten shifts a base row.
var (
	dakutenRules    = map[Row]Row{RowK: RowG, RowS: RowZ, RowT: RowD, RowH: RowB}
	handakutenRules = map[Row]Row{RowH: RowP}
)

// reverseSoundMarkRules maps a marked row back to its base row.
var reverseSoundMarkRules = map[Row]Row{
	RowG: RowK, RowZ: RowS, RowD: RowT, RowB: RowH, RowP: RowH,
}

type rowColumn struct {
	row Row
	col Column
}

// byGlyph is the reverse table, derived from rows at package init and
// read-only afterwards.
var byGlyph = func() map[rune]rowColumn {
	m := make(map[rune]rowColumn, 71)
	for row, cols := range rows {
		for col, glyph := range cols {
			m[glyph] = rowColumn{row: row, col: col}
		}
	}
	return m
}()

// Letter is one hiragana glyph with its position in the gojuon table.
// The zero value is not a valid letter; construct via FromGlyph or
// FromRomaji. Transformations return new values.
type Letter struct {
	Glyph  rune
	Row    Row
	Column Column
}

func (l Letter) String() string {
	return fmt.Sprintf("Letter(%c, row=%s, col=%s)", l.Glyph, l.Row, l.Column)
}

// SoundMark returns the diacritic implied by the letter's row.
func (l Letter) SoundMark() SoundMark {
	switch l.Row {
	case RowG, RowZ, RowD, RowB:
		return Dakuten
	case RowP:
		return Handakuten
	default:
		return NoMark
	}
}

// FromGlyph looks up the letter for a single hiragana glyph.
func FromGlyph(glyph rune) (Letter, error) {
	rc, ok := byGlyph[glyph]
	if !ok {
		return Letter{}, fmt.Errorf("%w: %q", ErrNotFound, glyph)
	}
	return Letter{Glyph: glyph, Row: rc.row, Column: rc.col}, nil
}

// SmallGlyph looks up a contracted-sound glyph (ゃゅょっ) by its romaji
// spelling.
func SmallGlyph(romaji string) (rune, error) {
	g, ok := smallGlyphs[romaji]
	if !ok {
		return 0, fmt.Errorf("%w: small glyph %q", ErrNotFound, romaji)
	}
	return g, nil
}

// FromRomaji builds a letter from a romanized syllable. A string that
// is already a single hiragana glyph is resolved by reverse lookup.
// The irregular spellings shi, chi, tsu, fu, ji and n are handled
// before the generic row+column reading.
func FromRomaji(s string) (Letter, error) {
	if utf8.RuneCountInString(s) == 1 {
		if r, _ := utf8.DecodeRuneInString(s); IsHiragana(r) {
			return FromGlyph(r)
		}
	}

	if s == "" {
		return Letter{}, fmt.Errorf("%w: empty input", ErrInvalidRomaji)
	}

	var row Row
	var col Column
	switch s {
	case "shi":
		row, col = RowS, ColI
	case "chi":
		row, col = RowT, ColI
	case "tsu":
		row, col = RowT, ColU
	case "fu":
		row, col = RowH, ColU
	case "ji":
		row, col = RowZ, ColI
	case "n":
		row, col = RowSyllabicN, ColN
	default:
		switch len(s) {
		case 1:
			row, col = RowVowel, Column(s)
		case 2:
			row, col = Row(s[:1]), Column(s[1:])
		default:
			return Letter{}, fmt.Errorf("%w: %q", ErrInvalidRomaji, s)
		}
	}

	glyph, ok := rows[row][col]
	if !ok {
		return Letter{}, fmt.Errorf("%w: %q", ErrInvalidRomaji, s)
	}
	return Letter{Glyph: glyph, Row: row, Column: col}, nil
}

// Romaji returns the romanized spelling of the letter. The irregular
// glyphs get their conventional spellings; the vowel row and ん drop
// the row prefix so that every result re-parses via FromRomaji.
func (l Letter) Romaji() string {
	switch l.Glyph {
	case 'し':
		return "shi"
	case 'ち':
		return "chi"
	case 'つ':
		return "tsu"
	case 'ふ':
		return "fu"
	case 'じ', 'ぢ':
		return "ji"
	case 'づ':
		return "zu"
	case 'ん':
		return "n"
	}
	if l.Row == RowVowel {
		return string(l.Column)
	}
	return string(l.Row) + string(l.Column)
}

// WithColumn returns the letter in the same row with the given vowel
// column.
func (l Letter) WithColumn(col Column) (Letter, error) {
	switch col {
	case ColA, ColI, ColU, ColE, ColO:
	default:
		return Letter{}, fmt.Errorf("%w: %q", ErrInvalidColumn, col)
	}
	glyph, ok := rows[l.Row][col]
	if !ok {
		return Letter{}, fmt.Errorf("%w: row %q has no column %q", ErrNotFound, l.Row, col)
	}
	return Letter{Glyph: glyph, Row: l.Row, Column: col}, nil
}

// WithSoundMark returns the letter carrying the given diacritic.
// Requesting the mark the letter already has is the identity. Adding a
// mark first strips any existing one, then shifts the base row through
// the dakuten or handakuten rules. The column is preserved.
func (l Letter) WithSoundMark(mark SoundMark) (Letter, error) {
	if mark == l.SoundMark() {
		return l, nil
	}

	if mark == NoMark {
		base, ok := reverseSoundMarkRules[l.Row]
		if !ok {
			return Letter{}, fmt.Errorf("%w: row %q has no base row", ErrNoSoundMarkRule, l.Row)
		}
		return Letter{Glyph: rows[base][l.Column], Row: base, Column: l.Column}, nil
	}

	basic, err := l.WithSoundMark(NoMark)
	if err != nil {
		return Letter{}, err
	}

	var target Row
	var ok bool
	switch mark {
	case Dakuten:
		target, ok = dakutenRules[basic.Row]
	case Handakuten:
		target, ok = handakutenRules[basic.Row]
	}
	if !ok {
		return Letter{}, fmt.Errorf("%w: row %q has no %s rule", ErrNoSoundMarkRule, basic.Row, mark)
	}
	return Letter{Glyph: rows[target][basic.Column], Row: target, Column: basic.Column}, nil
}
