package rollno

import (
	"testing"
	"time"
)

func TestDomainCode(t *testing.T) {
	tests := []struct {
		domain string
		want   string
	}{
		{"Python", "PY"},
		{"python", "PY"},
		{"Data Science", "DS"},
		{"Machine Learning", "ML"},
		{"Underwater Basket Weaving", "GN"},
		{"", "GN"},
	}

	for _, tt := range tests {
		if got := DomainCode(tt.domain); got != tt.want {
			t.Errorf("DomainCode(%q) = %q, want %q", tt.domain, got, tt.want)
		}
	}
}

func TestFormatFirstAllocation(t *testing.T) {
	got := Format("Python", "CSE", 25, 1)
	if got != "25PY001CSE" {
		t.Errorf("Format = %q, want 25PY001CSE", got)
	}
}

func TestNextSequence(t *testing.T) {
	tests := []struct {
		domain string
		last   string
		want   string
	}{
		{"Python", "", "25PY001CSE"},
		{"Python", "25PY001CSE", "25PY002CSE"},
		{"Python", "25PY099CSE", "25PY100CSE"},
		{"Data Science", "25DS007CSE", "25DS008CSE"},
	}

	for _, tt := range tests {
		got, err := Next(tt.domain, "CSE", 25, tt.last)
		if err != nil {
			t.Fatalf("Next(%q, %q): %v", tt.domain, tt.last, err)
		}
		if got != tt.want {
			t.Errorf("Next(%q, %q) = %q, want %q", tt.domain, tt.last, got, tt.want)
		}
	}
}

func TestNextRejectsForeignRoll(t *testing.T) {
	if _, err := Next("Python", "CSE", 25, "25DS001CSE"); err == nil {
		t.Fatal("expected error for roll with wrong domain code")
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		roll   string
		branch string
		want   bool
	}{
		{"25PY001CSE", "CSE", true},
		{"25PY123CSE", "CSE", true},
		{"25PY001ECSE", "CSE", false}, // ECSE roll ends in CSE
		{"25PY001ECSE", "ECSE", true},
		{"25DS001CSE", "CSE", false}, // wrong domain code
		{"24PY001CSE", "CSE", false}, // wrong year
		{"25PYxxxCSE", "CSE", false}, // non-digit sequence
		{"25PY01CSE", "CSE", false},  // sequence too short
		{"", "CSE", false},
	}

	for _, tt := range tests {
		if got := Matches(tt.roll, "Python", tt.branch, 25); got != tt.want {
			t.Errorf("Matches(%q, branch %q) = %v, want %v", tt.roll, tt.branch, got, tt.want)
		}
	}
}

func TestSequenceParsing(t *testing.T) {
	seq, err := Sequence("25ML042ECE", "Machine Learning")
	if err != nil {
		t.Fatalf("Sequence: %v", err)
	}
	if seq != 42 {
		t.Errorf("seq = %d, want 42", seq)
	}
}

func TestYear(t *testing.T) {
	y := Year(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	if y != 25 {
		t.Errorf("Year = %d, want 25", y)
	}
}
