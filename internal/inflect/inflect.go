// Package inflect derives conjugated forms of Japanese verbs from
// their dictionary form.
package inflect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomozane/kotoba/internal/kana"
)

// VerbType is the conjugation class of a verb.
type VerbType string

const (
	Ichidan   VerbType = "ichidan"
	Godan     VerbType = "godan"
	Irregular VerbType = "irregular"
)

// ParseVerbType resolves a user-supplied class name.
func ParseVerbType(s string) (VerbType, error) {
	switch VerbType(strings.ToLower(s)) {
	case Ichidan:
		return Ichidan, nil
	case Godan:
		return Godan, nil
	case Irregular:
		return Irregular, nil
	}
	return "", fmt.Errorf("unknown verb type %q", s)
}

var (
	ErrVerbTooShort      = errors.New("verb is empty or too short")
	ErrInvalidVerbEnding = errors.New("final kana is not a valid verb ending")
	ErrIchidanMismatch   = errors.New("verb has no ichidan ending")
	ErrUnsupported       = errors.New("unsupported for this verb type")
)

// validEndings are the nine dictionary-form endings.
const validEndings = "るつうくすぶむぬぐ"

// Tristate is the result of a check that can be indeterminate.
type Tristate int

const (
	No Tristate = iota
	Yes
	Unknown
)

func (t Tristate) String() string {
	switch t {
	case Yes:
		return "yes"
	case Unknown:
		return "unknown"
	default:
		return "no"
	}
}

// HasIchidanEnding reports whether verb ends in an i-column or
// e-column kana followed by る. When the character before る is an
// ideograph the reading is not recoverable from the spelling, so the
// result is Unknown rather than a forced boolean.
func HasIchidanEnding(verb string) Tristate {
	runes := []rune(verb)
	if len(runes) < 2 {
		return No
	}
	penult, last := runes[len(runes)-2], runes[len(runes)-1]
	if kana.IsKanji(penult) {
		if last == 'る' {
			return Unknown
		}
		return No
	}
	letter, err := kana.FromGlyph(penult)
	if err != nil {
		return No
	}
	if (letter.Column == kana.ColI || letter.Column == kana.ColE) && last == 'る' {
		return Yes
	}
	return No
}

// Conjugation holds a validated base verb and derives its forms on
// demand.
type Conjugation struct {
	base     []rune
	verbType VerbType
}

// New validates the dictionary form and returns a Conjugation.
// An ichidan verb whose ending check is definitively negative is
// rejected; the Unknown case (kanji before る) is accepted.
func New(verb string, verbType VerbType) (*Conjugation, error) {
	runes := []rune(verb)
	if len(runes) <= 1 {
		return nil, fmt.Errorf("%w: %q", ErrVerbTooShort, verb)
	}
	if !strings.ContainsRune(validEndings, runes[len(runes)-1]) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVerbEnding, runes[len(runes)-1])
	}
	if verbType == Ichidan && HasIchidanEnding(verb) == No {
		return nil, fmt.Errorf("%w: %q", ErrIchidanMismatch, verb)
	}
	return &Conjugation{base: runes, verbType: verbType}, nil
}

// Base returns the dictionary form.
func (c *Conjugation) Base() string {
	return string(c.base)
}

// Type returns the verb's conjugation class.
func (c *Conjugation) Type() VerbType {
	return c.verbType
}

func (c *Conjugation) stem() string {
	return string(c.base[:len(c.base)-1])
}

func (c *Conjugation) last() rune {
	return c.base[len(c.base)-1]
}

// TeForm derives the te-form (connective).
func (c *Conjugation) TeForm() (string, error) {
	switch c.verbType {
	case Ichidan:
		return c.stem() + "て", nil
	case Godan:
		switch c.last() {
		case 'う', 'つ', 'る':
			return c.stem() + "って", nil
		case 'く':
			return c.stem() + "いて", nil
		case 'す':
			return c.stem() + "して", nil
		case 'ぶ', 'む', 'ぬ':
			return c.stem() + "んで", nil
		case 'ぐ':
			return c.stem() + "いで", nil
		}
		// Unreachable: New validated the ending.
		return "", fmt.Errorf("%w: %q", ErrInvalidVerbEnding, c.last())
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, c.verbType)
	}
}

// MasuForm derives the polite present form. For godan verbs the final
// kana is shifted to its i-column neighbor.
func (c *Conjugation) MasuForm() (string, error) {
	switch c.verbType {
	case Ichidan:
		return c.stem() + "ます", nil
	case Godan:
		letter, err := kana.FromGlyph(c.last())
		if err != nil {
			return "", err
		}
		shifted, err := letter.WithColumn(kana.ColI)
		if err != nil {
			return "", err
		}
		return c.stem() + string(shifted.Glyph) + "ます", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, c.verbType)
	}
}
