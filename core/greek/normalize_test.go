package greek

import "testing"

func TestFold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"λήψεται", "ληψεται"},
		{"Ἐν", "εν"},
		{"ἀρχῇ", "αρχη"},
		{"ΓΕΝΕΣΙΣ", "γενεσις"},
		{"ΛΟΓΟΣ", "λογος"},
		{"ἐξολοθρεύσω", "εξολοθρευσω"},
		{"πρώϊμον", "πρωιμον"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Fold(tt.input); got != tt.expected {
			t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestCompareForm(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Spaces removed so compound entries match single tokens.
		{"περι τεμειν", "περιτεμειν"},
		// Final sigma stays final.
		{"λογος", "λογος"},
		// Sigma that becomes medial after joining is rewritten.
		{"λογος και", "λογοσκαι"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CompareForm(tt.input); got != tt.expected {
			t.Errorf("CompareForm(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestMovableNu(t *testing.T) {
	if !EndsMovableVowel("ληψεται") {
		t.Errorf("EndsMovableVowel(ληψεται) should be true")
	}
	if !EndsMovableVowel("εποιησε") {
		t.Errorf("EndsMovableVowel(εποιησε) should be true")
	}
	if EndsMovableVowel("λογος") {
		t.Errorf("EndsMovableVowel(λογος) should be false")
	}
	if !EndsMovableNu("εποιησεν") {
		t.Errorf("EndsMovableNu(εποιησεν) should be true")
	}
	if got := WithMovableNu("εποιησε"); got != "εποιησεν" {
		t.Errorf("WithMovableNu = %q, want εποιησεν", got)
	}
	if got := WithoutMovableNu("εποιησεν"); got != "εποιησε" {
		t.Errorf("WithoutMovableNu = %q, want εποιησε", got)
	}
}

func TestMovableNuRoundTrip(t *testing.T) {
	// Appending and stripping are inverses for the movable endings.
	forms := []string{"εποιησε", "εστι", "ελαβε"}
	for _, f := range forms {
		withNu := WithMovableNu(f)
		if !EndsMovableNu(withNu) {
			t.Errorf("WithMovableNu(%q) = %q does not end in movable nu", f, withNu)
		}
		if got := WithoutMovableNu(withNu); got != f {
			t.Errorf("round trip %q -> %q -> %q", f, withNu, got)
		}
	}
}

func TestIsProperName(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"Ἀβραάμ", true},
		{"Μωυσῆς", true},
		{"λογος", false},
		{"ἀρχῇ", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsProperName(tt.input); got != tt.expected {
			t.Errorf("IsProperName(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsNumeral(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"εκατον", true},
		{"τριακοντα", true},
		{"δεκατεσσαρες", true},
		{"πρωτος", true},
		{"λογος", false},
		{"ανθρωπος", false},
	}

	for _, tt := range tests {
		if got := IsNumeral(tt.input); got != tt.expected {
			t.Errorf("IsNumeral(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsGreekRune(t *testing.T) {
	for _, r := range "λήψεταιἘν" {
		if !IsGreekRune(r) {
			t.Errorf("IsGreekRune(%q) should be true", r)
		}
	}
	for _, r := range "abc123{}\\" {
		if IsGreekRune(r) {
			t.Errorf("IsGreekRune(%q) should be false", r)
		}
	}
}
