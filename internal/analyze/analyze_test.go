package analyze

import (
	"testing"

	"github.com/FocuswithJustin/BrentonAudit/core/match"
	"github.com/FocuswithJustin/BrentonAudit/core/variation"
)

func TestClassifyEdit(t *testing.T) {
	tests := []struct {
		wrong, right string
		want         Kind
	}{
		{"λογος", "λογος", None},
		// Folding makes an accent-only fix a non-edit.
		{"λόγος", "λογος", None},
		{"ανθρωπως", "ανθρωπος", Substitution},
		{"ανθρωπσο", "ανθρωποσ", Transposition},
		{"ανθρωος", "ανθρωπος", Insertion},
		{"ανθρωππος", "ανθρωπος", Deletion},
		{"καπνος", "θηριον", Complex},
	}
	for _, tt := range tests {
		if got := ClassifyEdit(tt.wrong, tt.right); got.Kind != tt.want {
			t.Errorf("ClassifyEdit(%q, %q) = %q, want %q", tt.wrong, tt.right, got.Kind, tt.want)
		}
	}
}

func TestClassifyEditSubstitutionChars(t *testing.T) {
	e := ClassifyEdit("ανθρωπως", "ανθρωπος")
	if e.From != "ω" || e.To != "ο" {
		t.Errorf("substitution chars = %q→%q, want ω→ο", e.From, e.To)
	}
}

func TestAnalyzeCorrections(t *testing.T) {
	cs := []match.Correction{
		{Ref: "Gen.1.1", Original: "ανθρωπως", Corrected: "ανθρωπος"},
		{Ref: "Gen.1.2", Original: "θεως", Corrected: "θεος"},
		{Ref: "Gen.1.3", Original: "ανθρωος", Corrected: "ανθρωπος"},
		{Ref: "Gen.1.4", Original: "ανθρωππος", Corrected: "ανθρωπος"},
	}

	stats := AnalyzeCorrections(cs)
	if stats.Total != 4 {
		t.Errorf("total = %d, want 4", stats.Total)
	}
	if got := stats.Substitutions[[2]string{"ω", "ο"}]; got != 2 {
		t.Errorf("ω→ο substitutions = %d, want 2", got)
	}
	if len(stats.Insertions) != 1 || len(stats.Deletions) != 1 {
		t.Errorf("insertions = %d deletions = %d, want 1 and 1", len(stats.Insertions), len(stats.Deletions))
	}

	top := stats.TopSubstitutions(5)
	if len(top) != 1 || top[0].From != "ω" || top[0].Count != 2 {
		t.Errorf("top substitutions = %+v", top)
	}
}

func TestCategorizeAccepted(t *testing.T) {
	buckets := CategorizeAccepted([]string{
		"λήμψεται",
		"ἐξολοθρεύσω",
		"βββ",
	})

	if got := buckets[variation.LambdaFuture]; len(got) != 1 || got[0] != "λήμψεται" {
		t.Errorf("lambda bucket = %v", got)
	}
	if got := buckets[variation.DestructionVerb]; len(got) != 1 {
		t.Errorf("destruction bucket = %v", got)
	}
	if got := buckets[OtherCategory]; len(got) != 1 || got[0] != "βββ" {
		t.Errorf("other bucket = %v", got)
	}
}
