package match

import (
	"sort"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/FocuswithJustin/BrentonAudit/core/greek"
)

// lengthSlack is the maximum rune-length difference between a token and a
// candidate before the similarity computation is skipped entirely.
const lengthSlack = 2

var dmp = diffmatchpatch.New()

// Ratio returns the character-level sequence similarity of two strings in
// [0,1]: twice the number of matching characters over the total length.
func Ratio(a, b string) float64 {
	if a == b {
		return 1
	}
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 1
	}

	matching := 0
	for _, d := range dmp.DiffMain(a, b, false) {
		if d.Type == diffmatchpatch.DiffEqual {
			matching += utf8.RuneCountInString(d.Text)
		}
	}
	return float64(2*matching) / float64(total)
}

// bestMatch finds the highest-scoring candidate for the folded token in a
// normalized→original scope map. Candidates are compared on comparison
// forms; those whose length differs by more than lengthSlack are skipped.
// Ties keep the first candidate in sorted key order.
func bestMatch(folded string, scope map[string]string) (string, float64) {
	cmpToken := greek.CompareForm(folded)
	tokenLen := utf8.RuneCountInString(cmpToken)

	keys := make([]string, 0, len(scope))
	for k := range scope {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bestForm := ""
	bestScore := 0.0
	for _, k := range keys {
		cmpCand := greek.CompareForm(k)
		diff := utf8.RuneCountInString(cmpCand) - tokenLen
		if diff < -lengthSlack || diff > lengthSlack {
			continue
		}
		if score := Ratio(cmpToken, cmpCand); score > bestScore {
			bestScore = score
			bestForm = scope[k]
		}
	}
	return bestForm, bestScore
}

// bestMatchWithNuRetry runs bestMatch and, when the token ends in ε or ι
// and the first search fell short of the threshold, retries with a
// trailing movable ν appended, keeping whichever search scored higher.
func bestMatchWithNuRetry(folded string, scope map[string]string, threshold float64) (string, float64) {
	form, score := bestMatch(folded, scope)
	if score >= threshold || !greek.EndsMovableVowel(folded) {
		return form, score
	}
	nuForm, nuScore := bestMatch(greek.WithMovableNu(folded), scope)
	if nuScore > score {
		return nuForm, nuScore
	}
	return form, score
}
