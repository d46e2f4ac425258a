package match

import (
	"math"
	"testing"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"λογος", "λογος", 1},
		{"", "", 1},
		{"ανθρωπς", "ανθρωπος", 14.0 / 15.0},
		{"λογος", "", 0},
	}
	for _, tt := range tests {
		if got := Ratio(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Ratio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRatioSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"ανθρωπς", "ανθρωπος"},
		{"ληψεται", "λημψεται"},
		{"γη", "θεος"},
	}
	for _, p := range pairs {
		if ab, ba := Ratio(p[0], p[1]), Ratio(p[1], p[0]); math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Ratio(%q, %q) = %v but reversed = %v", p[0], p[1], ab, ba)
		}
	}
}

func TestBestMatchLengthFilter(t *testing.T) {
	scope := map[string]string{
		"και": "καί",
		"γη":  "γῆ",
	}
	// Every candidate differs in length by more than two runes.
	form, score := bestMatch("δεκατεσσαρες", scope)
	if form != "" || score != 0 {
		t.Errorf("bestMatch past the length filter = (%q, %v), want no candidate", form, score)
	}
}

func TestBestMatchPicksHighestScore(t *testing.T) {
	scope := map[string]string{
		"ανθρωπος": "ἄνθρωπος",
		"ανθρακος": "ἄνθρακος",
	}
	form, score := bestMatch("ανθρωπς", scope)
	if form != "ἄνθρωπος" {
		t.Errorf("bestMatch = %q, want ἄνθρωπος", form)
	}
	if score < 0.9 {
		t.Errorf("score = %v, want > 0.9", score)
	}
}

func TestBestMatchCompareFormJoinsCompounds(t *testing.T) {
	// The compound scope entry carries a space and a medial final sigma;
	// the comparison form must make it equal to the joined token.
	scope := map[string]string{
		"προςελθειν": "προς ελθεῖν",
	}
	form, score := bestMatch("προσελθειν", scope)
	if form != "προς ελθεῖν" {
		t.Errorf("bestMatch = %q, want the compound original", form)
	}
	if score != 1 {
		t.Errorf("score = %v, want 1 for an exact comparison-form match", score)
	}
}

func TestBestMatchWithNuRetry(t *testing.T) {
	scope := map[string]string{
		"εποιησεν": "ἐποίησεν",
	}

	// Direct search falls short; appending the movable ν makes it exact.
	form, score := bestMatchWithNuRetry("εποιησε", scope, 1)
	if form != "ἐποίησεν" {
		t.Errorf("form = %q, want ἐποίησεν", form)
	}
	if score != 1 {
		t.Errorf("score = %v, want 1 after the movable-nu retry", score)
	}

	// A token not ending in ε/ι gets no retry.
	_, score = bestMatchWithNuRetry("εποιησα", scope, 1)
	if score == 1 {
		t.Errorf("no retry expected for a token without a movable-vowel ending")
	}
}
