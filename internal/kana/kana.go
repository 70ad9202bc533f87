// Package kana classifies Japanese characters and models hiragana
// letters as row/column positions in the gojuon table.
package kana

import "unicode"

// IsHiragana reports whether r falls in the hiragana block (ぁ..ゟ).
func IsHiragana(r rune) bool {
	return r >= 'ぁ' && r <= 'ゟ'
}

// IsKatakana reports whether r falls in the full-width katakana block (゠..ヿ).
func IsKatakana(r rune) bool {
	return r >= '゠' && r <= 'ヿ'
}

// IsKanji reports whether r is a CJK ideograph. Covers the unified
// ideograph block, extension A and the compatibility ideographs.
func IsKanji(r rune) bool {
	switch {
	case r >= 0x3400 && r <= 0x4DB5: // extension A
		return true
	case r >= 0x4E00 && r <= 0x9FCB: // unified ideographs
		return true
	case r >= 0xF900 && r <= 0xFAD9: // compatibility ideographs
		return true
	}
	return false
}

// IsRadical reports whether r falls in the CJK radicals blocks (⺀..⿕).
func IsRadical(r rune) bool {
	return r >= 0x2E80 && r <= 0x2FD5
}

// IsHalfWidthKatakana reports whether r falls in the half-width
// katakana block (｟..ﾟ).
func IsHalfWidthKatakana(r rune) bool {
	return r >= 0xFF5F && r <= 0xFF9F
}

// IsWhitespace reports whether r is a whitespace character.
func IsWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}
