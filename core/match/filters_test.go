package match

import "testing"

func TestAcceptedWords(t *testing.T) {
	a := NewAcceptedWords([]string{"λήμψεται", "Χείμαρρος"})

	// Membership is on folded forms, so case and accents do not matter.
	if !a.Contains("λημψεται") {
		t.Errorf("folded form should be accepted")
	}
	if !a.Contains("ΛΗΜΨΕΤΑΙ") {
		t.Errorf("uppercase form should be accepted")
	}
	if !a.Contains("χειμαρρος") {
		t.Errorf("capitalized entry should accept lowercase token")
	}
	if a.Contains("λογος") {
		t.Errorf("unlisted word should not be accepted")
	}
	if a.Len() != 2 {
		t.Errorf("Len = %d, want 2", a.Len())
	}
}

func TestExaminedCorrections(t *testing.T) {
	e := NewExaminedCorrections([]Correction{
		{Ref: "Gen.1.3", Original: "εἰπε", Corrected: "εἶπε"},
	})

	if !e.Contains("Gen.1.3", "ειπε") {
		t.Errorf("examined pair should match on folded word")
	}
	if e.Contains("Gen.1.4", "ειπε") {
		t.Errorf("same word at another verse is not examined")
	}
	if e.Contains("Gen.1.3", "λογος") {
		t.Errorf("different word at the same verse is not examined")
	}
}
