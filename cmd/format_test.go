package cmd

import (
	"strings"
	"testing"
)

func TestShortID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"abc", "abc"},
		{"12345678", "12345678"},
		{"0f8fad5b-d9cb-469f-a165-70867728950e", "0f8fad5b"},
	}
	for _, tt := range tests {
		got := shortID(tt.input)
		if got != tt.want {
			t.Errorf("shortID(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{0, "[..........]"},
		{25, "[##........]"},
		{50, "[#####.....]"},
		{100, "[##########]"},
		{150, "[##########]"},
		{-5, "[..........]"},
	}
	for _, tt := range tests {
		got := progressBar(tt.pct, 10)
		if got != tt.want {
			t.Errorf("progressBar(%v) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestExamCountdown(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{-3, "passed"},
		{0, "today"},
		{1, "tomorrow"},
		{12, "in 12 days"},
	}
	for _, tt := range tests {
		got := examCountdown(tt.days)
		if got != tt.want {
			t.Errorf("examCountdown(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes \n", true},
		{"y", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"maybe\n", false},
	}
	for _, tt := range tests {
		var out strings.Builder
		got := confirm(strings.NewReader(tt.input), &out, "Continue?")
		if got != tt.want {
			t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if out.String() != "Continue? [y/N] " {
			t.Errorf("prompt = %q", out.String())
		}
	}
}
