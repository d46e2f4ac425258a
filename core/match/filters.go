package match

import "github.com/FocuswithJustin/BrentonAudit/core/greek"

// AcceptedWords is the manually curated set of Brenton spellings accepted
// as correct despite not appearing in either reference edition. Consulted
// before the engine runs to suppress repeat findings.
type AcceptedWords struct {
	set map[string]bool
}

// NewAcceptedWords builds the filter from a word list; entries are folded.
func NewAcceptedWords(words []string) *AcceptedWords {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[greek.Fold(w)] = true
	}
	return &AcceptedWords{set: set}
}

// Contains reports whether the word's folded form is accepted.
func (a *AcceptedWords) Contains(word string) bool {
	return a.set[greek.Fold(word)]
}

// Len returns the number of accepted forms.
func (a *AcceptedWords) Len() int {
	return len(a.set)
}

// Correction is one previously adjudicated correction: at a verse, the
// transcribed word and the form it was corrected to.
type Correction struct {
	Ref       string
	Original  string
	Corrected string
}

// ExaminedCorrections is the set of (verse, word) pairs already reviewed;
// tokens matching a pair are skipped rather than re-reported.
type ExaminedCorrections struct {
	pairs map[examinedKey]bool
}

type examinedKey struct {
	ref  string
	word string
}

// NewExaminedCorrections builds the filter from parsed correction rows.
func NewExaminedCorrections(corrections []Correction) *ExaminedCorrections {
	pairs := make(map[examinedKey]bool, len(corrections))
	for _, c := range corrections {
		pairs[examinedKey{ref: c.Ref, word: greek.Fold(c.Original)}] = true
	}
	return &ExaminedCorrections{pairs: pairs}
}

// Contains reports whether the word at the given verse reference has
// already been examined.
func (e *ExaminedCorrections) Contains(ref, word string) bool {
	return e.pairs[examinedKey{ref: ref, word: greek.Fold(word)}]
}

// Len returns the number of examined pairs.
func (e *ExaminedCorrections) Len() int {
	return len(e.pairs)
}
