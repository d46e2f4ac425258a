// Package analyze summarizes the audit's curated inputs: it classifies the
// edit each adjudicated correction made and buckets accepted words by the
// spelling alternation that likely motivated them.
package analyze

import (
	"sort"

	"github.com/antzucaro/matchr"

	"github.com/FocuswithJustin/BrentonAudit/core/greek"
	"github.com/FocuswithJustin/BrentonAudit/core/match"
	"github.com/FocuswithJustin/BrentonAudit/core/variation"
)

// Kind is the shape of a single correction's edit.
type Kind string

// Edit kinds.
const (
	Substitution  Kind = "substitution"
	Transposition Kind = "transposition"
	Insertion     Kind = "insertion"
	Deletion      Kind = "deletion"
	Complex       Kind = "complex"
	None          Kind = "none"
)

// Edit describes one correction's edit on folded forms. From and To carry
// the characters involved for substitutions and transpositions.
type Edit struct {
	Kind Kind
	From string
	To   string
}

// ClassifyEdit determines what kind of edit turns the transcribed word into
// its correction. Both words are folded first so diacritic fixes count as
// no edit at all.
func ClassifyEdit(wrong, right string) Edit {
	w := []rune(greek.Fold(wrong))
	r := []rune(greek.Fold(right))
	if string(w) == string(r) {
		return Edit{Kind: None}
	}

	lev := matchr.Levenshtein(string(w), string(r))
	dl := matchr.DamerauLevenshtein(string(w), string(r))

	if len(w) == len(r) && lev == 1 {
		for i := range w {
			if w[i] != r[i] {
				return Edit{Kind: Substitution, From: string(w[i]), To: string(r[i])}
			}
		}
	}
	// A swap of adjacent characters costs 1 with transpositions counted
	// and 2 without.
	if dl == 1 && lev == 2 {
		for i := 0; i < len(w)-1; i++ {
			if w[i] != r[i] {
				return Edit{Kind: Transposition, From: string(w[i]) + string(w[i+1]), To: string(r[i]) + string(r[i+1])}
			}
		}
	}

	switch {
	case len(w) < len(r):
		return Edit{Kind: Insertion}
	case len(w) > len(r):
		return Edit{Kind: Deletion}
	default:
		return Edit{Kind: Complex}
	}
}

// SubstitutionCount is one character substitution and how often it occurs.
type SubstitutionCount struct {
	From  string
	To    string
	Count int
}

// CorrectionStats aggregates the edits of a correction log.
type CorrectionStats struct {
	Total         int
	Substitutions map[[2]string]int
	Insertions    []match.Correction
	Deletions     []match.Correction
	Transposition []match.Correction
	Complex       []match.Correction
}

// AnalyzeCorrections classifies every correction's edit and tallies them.
func AnalyzeCorrections(cs []match.Correction) CorrectionStats {
	stats := CorrectionStats{
		Total:         len(cs),
		Substitutions: make(map[[2]string]int),
	}
	for _, c := range cs {
		e := ClassifyEdit(c.Original, c.Corrected)
		switch e.Kind {
		case Substitution:
			stats.Substitutions[[2]string{e.From, e.To}]++
		case Transposition:
			stats.Transposition = append(stats.Transposition, c)
		case Insertion:
			stats.Insertions = append(stats.Insertions, c)
		case Deletion:
			stats.Deletions = append(stats.Deletions, c)
		case Complex:
			stats.Complex = append(stats.Complex, c)
		}
	}
	return stats
}

// TopSubstitutions returns the n most frequent substitutions, most frequent
// first; ties sort by character pair for stable output.
func (s CorrectionStats) TopSubstitutions(n int) []SubstitutionCount {
	out := make([]SubstitutionCount, 0, len(s.Substitutions))
	for pair, count := range s.Substitutions {
		out = append(out, SubstitutionCount{From: pair[0], To: pair[1], Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// OtherCategory buckets accepted words no alternation rule explains.
const OtherCategory variation.Category = "other"

// CategorizeAccepted buckets accepted words by the first alternation
// category whose stems occur in them.
func CategorizeAccepted(words []string) map[variation.Category][]string {
	out := make(map[variation.Category][]string)
	for _, w := range words {
		cat, ok := variation.Categorize(w)
		if !ok {
			cat = OtherCategory
		}
		out[cat] = append(out[cat], w)
	}
	return out
}
