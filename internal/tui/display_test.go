package tui

import "testing"

func TestDisplayText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"日本語^にほんご", "日本語【にほんご】"},
		{"日本語^にほんごを~勉強^べんきょうします", "日本語【にほんご】を 勉強【べんきょう】します"},
		{"abc~def", "abc def"},
		{"語^", "語"}, // empty reading is not bracketed
		{"^にほん語", "語"},
		{"かな", "かな"},
	}
	for _, tt := range tests {
		if got := DisplayText(tt.in); got != tt.want {
			t.Errorf("DisplayText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	got := truncate("日本語の勉強", 7)
	if got != "日本語…" {
		t.Errorf("truncate = %q", got)
	}
}
