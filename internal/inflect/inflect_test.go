package inflect

import (
	"errors"
	"testing"
)

func TestHasIchidanEnding(t *testing.T) {
	tests := []struct {
		verb string
		want Tristate
	}{
		{"食べる", Yes},
		{"起きる", Yes},
		{"しる", Yes}, // spelling-based: しる looks ichidan even though 知る is godan
		{"飲む", No},
		{"かう", No},
		{"ある", No},
		{"る", No}, // too short
		{"", No},
		{"見る", Unknown}, // kanji before る, reading unknown
		{"食む", No},      // kanji before something other than る
	}
	for _, tt := range tests {
		if got := HasIchidanEnding(tt.verb); got != tt.want {
			t.Errorf("HasIchidanEnding(%q) = %s, want %s", tt.verb, got, tt.want)
		}
	}
}

func TestNewValidation(t *testing.T) {
	for _, ending := range []rune("るつうくすぶむぬぐ") {
		verb := "あ" + string(ending)
		if _, err := New(verb, Godan); err != nil {
			t.Errorf("New(%q, godan): %v", verb, err)
		}
	}

	if _, err := New("あか", Godan); !errors.Is(err, ErrInvalidVerbEnding) {
		t.Errorf("New(あか) err = %v, want ErrInvalidVerbEnding", err)
	}
	if _, err := New("", Godan); !errors.Is(err, ErrVerbTooShort) {
		t.Errorf("New(\"\") err = %v, want ErrVerbTooShort", err)
	}
	if _, err := New("る", Ichidan); !errors.Is(err, ErrVerbTooShort) {
		t.Errorf("New(る) err = %v, want ErrVerbTooShort", err)
	}

	if _, err := New("飲む", Ichidan); !errors.Is(err, ErrIchidanMismatch) {
		t.Errorf("New(飲む, ichidan) err = %v, want ErrIchidanMismatch", err)
	}
	// A kanji before る makes the check indeterminate; such verbs pass.
	if _, err := New("見る", Ichidan); err != nil {
		t.Errorf("New(見る, ichidan): %v", err)
	}
}

func TestTeForm(t *testing.T) {
	tests := []struct {
		verb     string
		verbType VerbType
		want     string
	}{
		{"飲む", Godan, "飲んで"},
		{"書く", Godan, "書いて"},
		{"話す", Godan, "話して"},
		{"買う", Godan, "買って"},
		{"待つ", Godan, "待って"},
		{"知る", Godan, "知って"},
		{"遊ぶ", Godan, "遊んで"},
		{"死ぬ", Godan, "死んで"},
		{"泳ぐ", Godan, "泳いで"},
		{"食べる", Ichidan, "食べて"},
	}
	for _, tt := range tests {
		conj, err := New(tt.verb, tt.verbType)
		if err != nil {
			t.Errorf("New(%q): %v", tt.verb, err)
			continue
		}
		got, err := conj.TeForm()
		if err != nil {
			t.Errorf("TeForm(%q): %v", tt.verb, err)
			continue
		}
		if got != tt.want {
			t.Errorf("TeForm(%q) = %q, want %q", tt.verb, got, tt.want)
		}
	}
}

func TestMasuForm(t *testing.T) {
	tests := []struct {
		verb     string
		verbType VerbType
		want     string
	}{
		{"飲む", Godan, "飲みます"},
		{"書く", Godan, "書きます"},
		{"話す", Godan, "話します"},
		{"買う", Godan, "買います"},
		{"食べる", Ichidan, "食べます"},
	}
	for _, tt := range tests {
		conj, err := New(tt.verb, tt.verbType)
		if err != nil {
			t.Errorf("New(%q): %v", tt.verb, err)
			continue
		}
		got, err := conj.MasuForm()
		if err != nil {
			t.Errorf("MasuForm(%q): %v", tt.verb, err)
			continue
		}
		if got != tt.want {
			t.Errorf("MasuForm(%q) = %q, want %q", tt.verb, got, tt.want)
		}
	}
}

func TestIrregularUnsupported(t *testing.T) {
	conj, err := New("する", Irregular)
	if err != nil {
		t.Fatalf("New(する, irregular): %v", err)
	}
	if _, err := conj.TeForm(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("TeForm err = %v, want ErrUnsupported", err)
	}
	if _, err := conj.MasuForm(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("MasuForm err = %v, want ErrUnsupported", err)
	}
}

func TestParseVerbType(t *testing.T) {
	for in, want := range map[string]VerbType{
		"godan": Godan, "Ichidan": Ichidan, "IRREGULAR": Irregular,
	} {
		got, err := ParseVerbType(in)
		if err != nil {
			t.Errorf("ParseVerbType(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseVerbType(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseVerbType("weak"); err == nil {
		t.Error("ParseVerbType(weak) succeeded, want error")
	}
}
