package kana

import (
	"errors"
	"testing"
)

func mustGlyph(t *testing.T, glyph rune) Letter {
	t.Helper()
	l, err := FromGlyph(glyph)
	if err != nil {
		t.Fatalf("FromGlyph(%c): %v", glyph, err)
	}
	return l
}

func TestTableComplete(t *testing.T) {
	if got := len(byGlyph); got != 71 {
		t.Errorf("reverse table has %d glyphs, want 71", got)
	}
}

func TestFromGlyph(t *testing.T) {
	l := mustGlyph(t, 'で')
	if l.Row != RowD || l.Column != ColE {
		t.Errorf("で = (%s, %s), want (d, e)", l.Row, l.Column)
	}
	if l.SoundMark() != Dakuten {
		t.Errorf("で sound mark = %s, want dakuten", l.SoundMark())
	}

	if _, err := FromGlyph('語'); !errors.Is(err, ErrNotFound) {
		t.Errorf("FromGlyph(語) err = %v, want ErrNotFound", err)
	}
	if _, err := FromGlyph('ア'); !errors.Is(err, ErrNotFound) {
		t.Errorf("FromGlyph(ア) err = %v, want ErrNotFound", err)
	}
}

func TestFromRomaji(t *testing.T) {
	tests := []struct {
		in    string
		glyph rune
	}{
		{"a", 'あ'},
		{"i", 'い'},
		{"ka", 'か'},
		{"te", 'て'},
		{"wo", 'を'},
		{"pa", 'ぱ'},
		// Irregular spellings
		{"shi", 'し'},
		{"chi", 'ち'},
		{"tsu", 'つ'},
		{"fu", 'ふ'},
		{"ji", 'じ'},
		{"n", 'ん'},
		// A hiragana glyph resolves via reverse lookup
		{"ば", 'ば'},
	}
	for _, tt := range tests {
		l, err := FromRomaji(tt.in)
		if err != nil {
			t.Errorf("FromRomaji(%q): %v", tt.in, err)
			continue
		}
		if l.Glyph != tt.glyph {
			t.Errorf("FromRomaji(%q) = %c, want %c", tt.in, l.Glyph, tt.glyph)
		}
	}
}

func TestFromRomajiInvalid(t *testing.T) {
	for _, in := range []string{"", "x", "qa", "yi", "wu", "kya", "shi ", "abc"} {
		if _, err := FromRomaji(in); !errors.Is(err, ErrInvalidRomaji) {
			t.Errorf("FromRomaji(%q) err = %v, want ErrInvalidRomaji", in, err)
		}
	}
}

// Every glyph's romaji must re-parse to a letter. The four d/z-row
// overlaps share a spelling, so ぢ re-parses to じ and づ to ず; all
// other glyphs round-trip to themselves.
func TestRomajiRoundTrip(t *testing.T) {
	expected := map[rune]rune{'ぢ': 'じ', 'づ': 'ず'}

	for glyph := range byGlyph {
		l := mustGlyph(t, glyph)
		back, err := FromRomaji(l.Romaji())
		if err != nil {
			t.Errorf("FromRomaji(%q) for %c: %v", l.Romaji(), glyph, err)
			continue
		}
		want := glyph
		if w, ok := expected[glyph]; ok {
			want = w
		}
		if back.Glyph != want {
			t.Errorf("%c → %q → %c, want %c", glyph, l.Romaji(), back.Glyph, want)
		}
	}
}

func TestRomajiSpellings(t *testing.T) {
	tests := []struct {
		glyph rune
		want  string
	}{
		{'し', "shi"},
		{'ち', "chi"},
		{'つ', "tsu"},
		{'ふ', "fu"},
		{'じ', "ji"},
		{'ぢ', "ji"},
		{'づ', "zu"},
		{'ん', "n"},
		{'あ', "a"},
		{'か', "ka"},
		{'ぽ', "po"},
	}
	for _, tt := range tests {
		if got := mustGlyph(t, tt.glyph).Romaji(); got != tt.want {
			t.Errorf("Romaji(%c) = %q, want %q", tt.glyph, got, tt.want)
		}
	}
}

func TestWithColumn(t *testing.T) {
	l, err := mustGlyph(t, 'く').WithColumn(ColO)
	if err != nil {
		t.Fatalf("WithColumn(o): %v", err)
	}
	if l.Glyph != 'こ' {
		t.Errorf("く with column o = %c, want こ", l.Glyph)
	}

	if _, err := mustGlyph(t, 'か').WithColumn("x"); !errors.Is(err, ErrInvalidColumn) {
		t.Errorf("WithColumn(x) err = %v, want ErrInvalidColumn", err)
	}
	if _, err := mustGlyph(t, 'や').WithColumn(ColI); !errors.Is(err, ErrNotFound) {
		t.Errorf("や with column i err = %v, want ErrNotFound", err)
	}
	if _, err := mustGlyph(t, 'ん').WithColumn(ColA); !errors.Is(err, ErrNotFound) {
		t.Errorf("ん with column a err = %v, want ErrNotFound", err)
	}
}

func TestWithSoundMark(t *testing.T) {
	tests := []struct {
		glyph rune
		mark  SoundMark
		want  rune
	}{
		{'て', Dakuten, 'で'},
		{'は', Dakuten, 'ば'},
		{'は', Handakuten, 'ぱ'},
		{'ば', Handakuten, 'ぱ'}, // strips dakuten first
		{'ぱ', Dakuten, 'ば'},    // strips handakuten first
		{'ば', NoMark, 'は'},
		{'ぱ', NoMark, 'は'},
		{'じ', NoMark, 'し'},
	}
	for _, tt := range tests {
		l, err := mustGlyph(t, tt.glyph).WithSoundMark(tt.mark)
		if err != nil {
			t.Errorf("%c with %s: %v", tt.glyph, tt.mark, err)
			continue
		}
		if l.Glyph != tt.want {
			t.Errorf("%c with %s = %c, want %c", tt.glyph, tt.mark, l.Glyph, tt.want)
		}
	}
}

func TestWithSoundMarkIdentity(t *testing.T) {
	for _, glyph := range []rune{'か', 'が', 'ぱ', 'あ', 'ん'} {
		l := mustGlyph(t, glyph)
		same, err := l.WithSoundMark(l.SoundMark())
		if err != nil {
			t.Errorf("%c identity: %v", glyph, err)
			continue
		}
		if same != l {
			t.Errorf("%c identity returned %v, want %v", glyph, same, l)
		}
	}
}

// Adding and removing a dakuten reconstructs the base letter for every
// letter of the rows that have a dakuten rule.
func TestSoundMarkRoundTrip(t *testing.T) {
	for _, row := range []Row{RowK, RowS, RowT, RowH} {
		for col := range rows[row] {
			base := mustGlyph(t, rows[row][col])
			marked, err := base.WithSoundMark(Dakuten)
			if err != nil {
				t.Errorf("%c dakuten: %v", base.Glyph, err)
				continue
			}
			back, err := marked.WithSoundMark(NoMark)
			if err != nil {
				t.Errorf("%c strip: %v", marked.Glyph, err)
				continue
			}
			if back != base {
				t.Errorf("%c → %c → %c, want %c", base.Glyph, marked.Glyph, back.Glyph, base.Glyph)
			}
		}
	}

	// Handakuten exists for the h row only.
	for col := range rows[RowH] {
		base := mustGlyph(t, rows[RowH][col])
		marked, err := base.WithSoundMark(Handakuten)
		if err != nil {
			t.Errorf("%c handakuten: %v", base.Glyph, err)
			continue
		}
		back, err := marked.WithSoundMark(NoMark)
		if err != nil {
			t.Errorf("%c strip: %v", marked.Glyph, err)
			continue
		}
		if back != base {
			t.Errorf("%c → %c → %c, want %c", base.Glyph, marked.Glyph, back.Glyph, base.Glyph)
		}
	}
}

func TestWithSoundMarkNoRule(t *testing.T) {
	tests := []struct {
		glyph rune
		mark  SoundMark
	}{
		{'あ', Dakuten},    // vowel row has no dakuten rule
		{'ん', Dakuten},    // neither has ん
		{'さ', Handakuten}, // handakuten exists only for the h row
		{'が', Handakuten}, // strips to か, k row has no handakuten rule
	}
	for _, tt := range tests {
		if _, err := mustGlyph(t, tt.glyph).WithSoundMark(tt.mark); !errors.Is(err, ErrNoSoundMarkRule) {
			t.Errorf("%c with %s err = %v, want ErrNoSoundMarkRule", tt.glyph, tt.mark, err)
		}
	}

	// か carries no mark, so requesting none is the identity, not an error.
	l, err := mustGlyph(t, 'か').WithSoundMark(NoMark)
	if err != nil || l.Glyph != 'か' {
		t.Errorf("か with no mark = (%v, %v), want identity", l, err)
	}
}

func TestSmallGlyph(t *testing.T) {
	tests := map[string]rune{"ya": 'ゃ', "yu": 'ゅ', "yo": 'ょ', "tsu": 'っ'}
	for in, want := range tests {
		got, err := SmallGlyph(in)
		if err != nil {
			t.Errorf("SmallGlyph(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("SmallGlyph(%q) = %c, want %c", in, got, want)
		}
	}
	if _, err := SmallGlyph("ka"); !errors.Is(err, ErrNotFound) {
		t.Errorf("SmallGlyph(ka) err = %v, want ErrNotFound", err)
	}
}
