// Package greek provides the normalized-form primitives used for all word
// comparisons in the audit: Unicode folding, comparison forms, the movable-nu
// convention, and the heuristics for proper names and numeral words.
package greek

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldChain decomposes to NFD, drops combining marks (accents, breathing
// marks, iota subscripts), and recomposes to NFC.
var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize returns s in NFC form.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Fold returns the canonical normalized form of a Greek word: NFC,
// lowercased, with all diacritics stripped. Every index key and every
// comparison in the matching pipeline operates on folded forms.
func Fold(s string) string {
	folded, _, err := transform.String(foldChain, Lower(Normalize(s)))
	if err != nil {
		// The chain cannot fail on valid UTF-8; fall back to the lowercased input.
		return Lower(s)
	}
	return folded
}

// Lower lowercases a Greek word. strings.ToLower maps Σ to the medial σ
// even word-finally; the final form is restored so uppercase input lowers
// like typed lowercase.
func Lower(s string) string {
	out := strings.ToLower(s)
	if strings.HasSuffix(out, "σ") {
		out = strings.TrimSuffix(out, "σ") + "ς"
	}
	return out
}

// CompareForm prepares a folded form for equality and similarity tests:
// spaces are removed (so compound entries match single tokens) and any
// final sigma that is no longer word-final after joining is rewritten to
// the medial form.
func CompareForm(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	rs := []rune(s)
	for i, r := range rs {
		if r == 'ς' && i != len(rs)-1 {
			rs[i] = 'σ'
		}
	}
	return string(rs)
}

// EndsMovableVowel reports whether the folded form ends in ε or ι, the
// endings that may optionally carry a trailing movable ν.
func EndsMovableVowel(s string) bool {
	return strings.HasSuffix(s, "ε") || strings.HasSuffix(s, "ι")
}

// EndsMovableNu reports whether the folded form ends in εν or ιν, i.e.
// already carries a movable ν that other editions may omit.
func EndsMovableNu(s string) bool {
	return strings.HasSuffix(s, "εν") || strings.HasSuffix(s, "ιν")
}

// WithMovableNu returns the form with a trailing ν appended.
func WithMovableNu(s string) string {
	return s + "ν"
}

// WithoutMovableNu returns the form with its trailing ν removed.
// The caller must have checked EndsMovableNu first.
func WithoutMovableNu(s string) string {
	return strings.TrimSuffix(s, "ν")
}

// IsProperName reports whether the surface form (original casing) looks
// like a proper name: its first letter is uppercase.
func IsProperName(surface string) bool {
	for _, r := range surface {
		return unicode.IsUpper(r)
	}
	return false
}

// numeralStems are folded substrings that mark Greek numeral words:
// cardinals (tens, hundreds, thousands) and ordinal prefixes.
var numeralStems = []string{
	"εκατον",
	"διακοσι",
	"τριακοσι",
	"τετρακοσι",
	"πεντακοσι",
	"εξακοσι",
	"επτακοσι",
	"οκτακοσι",
	"εννακοσι",
	"χιλι",
	"μυρι",
	"δεκα",
	"εικοσι",
	"τριακοντα",
	"τεσσαρακοντα",
	"πεντηκοντα",
	"εξηκοντα",
	"εβδομηκοντα",
	"ογδοηκοντα",
	"ενενηκοντα",
	"πρωτ",
	"δευτερ",
	"τριτ",
	"τεταρτ",
	"πεμπτ",
	"εβδομ",
	"ογδο",
	"ενατ",
	"δεκατ",
}

// IsNumeral reports whether the folded form contains a Greek numeral stem.
func IsNumeral(folded string) bool {
	for _, stem := range numeralStems {
		if strings.Contains(folded, stem) {
			return true
		}
	}
	return false
}

// IsGreekRune reports whether r falls in the basic or extended Greek blocks
// used by the source text.
func IsGreekRune(r rune) bool {
	return (r >= 0x0370 && r <= 0x03FF) || (r >= 0x1F00 && r <= 0x1FFF)
}
