package variation

import (
	"strings"

	"github.com/FocuswithJustin/BrentonAudit/core/greek"
)

// Set is a set of folded variant forms.
type Set map[string]bool

// Has reports whether the set contains the folded form of s.
func (s Set) Has(form string) bool {
	return s[greek.Fold(form)]
}

// Generate returns every folded form reachable from word by applying the
// selected categories' rules. Each category makes one pass over the
// accumulated set; within a pass a rule replaces all occurrences of its
// pattern at once, and newly produced forms are not re-expanded until the
// next category. A movable-nu closure runs once at the end: forms ending
// in ε/ι gain a ν variant, forms ending in εν/ιν lose one.
//
// Passing All (or no selector) applies every category.
func Generate(word string, selector Category) Set {
	folded := greek.Fold(word)
	current := Set{folded: true}

	for _, ps := range patterns {
		if selector != All && selector != ps.Name {
			continue
		}
		next := make(Set, len(current))
		for v := range current {
			next[v] = true
			for _, r := range ps.Rules {
				expandRule(next, v, r)
			}
		}
		current = next
	}

	// Movable-nu closure over the accumulated set.
	final := make(Set, len(current))
	for v := range current {
		final[v] = true
		if greek.EndsMovableVowel(v) {
			final[greek.WithMovableNu(v)] = true
		} else if greek.EndsMovableNu(v) {
			final[greek.WithoutMovableNu(v)] = true
		}
	}
	return final
}

// expandRule adds to out every form produced by substituting one alternant
// of r for another in v. All occurrences are replaced at once.
func expandRule(out Set, v string, r rule) {
	for i, from := range r {
		if !strings.Contains(v, from) {
			continue
		}
		for j, to := range r {
			if i == j {
				continue
			}
			out[strings.ReplaceAll(v, from, to)] = true
		}
	}
}

// Pairwise reports whether a and b are legitimate spelling variants of one
// another, and under which category. Categories are tried in priority
// order with a one-shot substitution test in both directions; if no single
// category explains the pair, the full variant set of each word is
// consulted as a catch-all for cross-category combinations (reported as
// Combined).
func Pairwise(a, b string) (bool, Category) {
	fa := greek.Fold(a)
	fb := greek.Fold(b)
	if fa == fb {
		return false, ""
	}

	for _, ps := range patterns {
		for _, r := range ps.Rules {
			if oneShotMatch(fa, fb, r) {
				return true, ps.Name
			}
		}
	}

	if Generate(fa, All)[fb] || Generate(fb, All)[fa] {
		return true, Combined
	}
	return false, ""
}

// Categorize returns the first category in priority order any of whose
// rule stems occurs in the folded word. Used to bucket curated word lists
// by the alternation that likely motivated them.
func Categorize(word string) (Category, bool) {
	folded := greek.Fold(word)
	for _, ps := range patterns {
		for _, r := range ps.Rules {
			for _, alt := range r {
				if strings.Contains(folded, alt) {
					return ps.Name, true
				}
			}
		}
	}
	return "", false
}

// oneShotMatch reports whether a single substitution from rule r turns one
// word into the other.
func oneShotMatch(a, b string, r rule) bool {
	for i, from := range r {
		for j, to := range r {
			if i == j {
				continue
			}
			if strings.Contains(a, from) && strings.Contains(b, to) &&
				strings.ReplaceAll(a, from, to) == b {
				return true
			}
			if strings.Contains(b, from) && strings.Contains(a, to) &&
				strings.ReplaceAll(b, from, to) == a {
				return true
			}
		}
	}
	return false
}
