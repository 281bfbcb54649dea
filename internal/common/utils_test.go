package common

import (
	"path/filepath"
	"testing"
)

func TestContentHash(t *testing.T) {
	h1 := ContentHash([]byte("document body"))
	h2 := ContentHash([]byte("document body"))
	h3 := ContentHash([]byte("different body"))

	if len(h1) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(h1))
	}
	if h1 != h2 {
		t.Error("identical content produced different hashes")
	}
	if h1 == h3 {
		t.Error("different content produced identical hashes")
	}
}

func TestOutputPathFor(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/data/input/report.pdf", "report.json"},
		{"/data/input/archive.v2.PDF", "archive.v2.json"},
		{"plain.pdf", "plain.json"},
		{"noextension", "noextension.json"},
	}

	for _, tt := range tests {
		got := OutputPathFor(tt.input, "/out")
		want := filepath.Join("/out", tt.want)
		if got != want {
			t.Errorf("OutputPathFor(%q) = %q, want %q", tt.input, got, want)
		}
	}
}

func TestIsPDF(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"report.pdf", true},
		{"REPORT.PDF", true},
		{"report.Pdf", true},
		{"report.pdf.bak", false},
		{"report.txt", false},
		{"pdf", false},
	}

	for _, tt := range tests {
		if got := IsPDF(tt.name); got != tt.want {
			t.Errorf("IsPDF(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
