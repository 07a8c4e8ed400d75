package utils

import (
	"testing"
	"unicode/utf8"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h 30m"},
		{120, "2h"},
		{135, "2h 15m"},
	}

	for _, tt := range tests {
		if got := FormatTime(tt.minutes); got != tt.want {
			t.Errorf("FormatTime(%d) = %q, expected %q", tt.minutes, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Expected unchanged string, got %q", got)
	}
	if got := Truncate("a long description here", 10); got != "a long ..." {
		t.Errorf("Expected ellipsized string, got %q", got)
	}
	if len(Truncate("a long description here", 10)) != 10 {
		t.Error("Truncated string should be exactly max long")
	}
}

func TestTruncateMultibyte(t *testing.T) {
	got := Truncate("日本語のカレーライス丼", 8)

	if got != "日本語のカ..." {
		t.Errorf("Expected a clean rune boundary, got %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 8 {
		t.Errorf("Expected 8 runes, got %d", n)
	}
	if !utf8.ValidString(got) {
		t.Error("Truncation must not split a rune")
	}
}
