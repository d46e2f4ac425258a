// Package corpus holds the per-edition reference word index: every word of
// an edition in reading order, verse start boundaries, and the deduplicated
// normalized-form lookup used for membership and typo search.
//
// Word IDs are the addressing scheme: consecutive IDs are adjacent words in
// reading order, and a verse's words are the half-open ID range from its
// start to the next verse's start.
package corpus

import (
	"sort"

	"github.com/FocuswithJustin/BrentonAudit/core/greek"
	"github.com/FocuswithJustin/BrentonAudit/core/verse"
)

// WordRow is one row of an edition's word list, as parsed by the loader.
type WordRow struct {
	ID   int
	Text string
}

// VerseRow pairs a verse reference with the word ID of its first word.
type VerseRow struct {
	Ref    verse.Ref
	WordID int
}

// WordRecord is one word of the corpus in its indexed forms.
type WordRecord struct {
	ID         int
	Normalized string // folded form, used for all comparisons
	Original   string // lowercased surface form
}

// verseStart is a versification entry ordered by word ID.
type verseStart struct {
	Ref verse.Ref
	ID  int
}

// Index is the immutable in-memory index of one edition. Built once at
// startup; safe for concurrent readers.
type Index struct {
	edition string
	words   map[int]WordRecord
	ids     []int // word IDs sorted ascending
	starts  map[verse.Ref]int
	byID    []verseStart // versification sorted by word ID
	dedup   map[string]string
	maxID   int
}

// New builds an edition index from parsed word and versification rows.
// Empty inputs produce a usable index whose lookups all report no match.
func New(edition string, words []WordRow, verses []VerseRow) *Index {
	x := &Index{
		edition: edition,
		words:   make(map[int]WordRecord, len(words)),
		starts:  make(map[verse.Ref]int, len(verses)),
		dedup:   make(map[string]string, len(words)),
	}

	for _, w := range words {
		normalized := greek.Fold(w.Text)
		original := greek.Lower(greek.Normalize(w.Text))
		x.words[w.ID] = WordRecord{ID: w.ID, Normalized: normalized, Original: original}
		// First occurrence wins in the dedup table.
		if _, seen := x.dedup[normalized]; !seen {
			x.dedup[normalized] = original
		}
		if w.ID > x.maxID {
			x.maxID = w.ID
		}
	}

	x.ids = make([]int, 0, len(x.words))
	for id := range x.words {
		x.ids = append(x.ids, id)
	}
	sort.Ints(x.ids)

	for _, v := range verses {
		x.starts[v.Ref] = v.WordID
		x.byID = append(x.byID, verseStart{Ref: v.Ref, ID: v.WordID})
	}
	sort.Slice(x.byID, func(i, j int) bool { return x.byID[i].ID < x.byID[j].ID })

	return x
}

// Edition returns the edition name this index was built for.
func (x *Index) Edition() string {
	return x.edition
}

// Len returns the number of indexed words.
func (x *Index) Len() int {
	return len(x.words)
}

// VerseCount returns the number of versification entries.
func (x *Index) VerseCount() int {
	return len(x.byID)
}

// MaxID returns the highest word ID in the corpus.
func (x *Index) MaxID() int {
	return x.maxID
}

// Has reports whether the folded form occurs anywhere in the corpus.
func (x *Index) Has(normalized string) bool {
	_, ok := x.dedup[normalized]
	return ok
}

// Lookup returns the first-encountered original form for a folded form.
func (x *Index) Lookup(normalized string) (string, bool) {
	orig, ok := x.dedup[normalized]
	return orig, ok
}

// Words returns the deduplicated normalized→original table. The map is
// shared with the index and must not be modified.
func (x *Index) Words() map[string]string {
	return x.dedup
}

// VerseScope returns the words of one verse as a normalized→original map,
// including synthesized compound entries for ID-adjacent word pairs. An
// unknown reference returns an empty map.
func (x *Index) VerseScope(ref verse.Ref) map[string]string {
	startID, ok := x.starts[ref]
	if !ok {
		return map[string]string{}
	}
	return x.rangeWords(startID, x.verseEnd(startID))
}

// AreaScope returns the words of the verses from halfWidth before to
// halfWidth after ref in word-ID order, clamped to the corpus bounds,
// with the same compound synthesis as VerseScope.
func (x *Index) AreaScope(ref verse.Ref, halfWidth int) map[string]string {
	startID, ok := x.starts[ref]
	if !ok {
		return map[string]string{}
	}

	pos := sort.Search(len(x.byID), func(i int) bool { return x.byID[i].ID >= startID })
	if pos == len(x.byID) || x.byID[pos].ID != startID {
		return map[string]string{}
	}

	lo := pos - halfWidth
	if lo < 0 {
		lo = 0
	}
	hi := pos + halfWidth
	if hi > len(x.byID)-1 {
		hi = len(x.byID) - 1
	}

	return x.rangeWords(x.byID[lo].ID, x.verseEnd(x.byID[hi].ID))
}

// verseEnd returns the last word ID of the verse starting at startID: one
// before the next verse's start, or the corpus max for the final verse.
func (x *Index) verseEnd(startID int) int {
	pos := sort.Search(len(x.byID), func(i int) bool { return x.byID[i].ID > startID })
	if pos == len(x.byID) {
		return x.maxID
	}
	return x.byID[pos].ID - 1
}

// rangeWords materializes the normalized→original map for the inclusive
// word-ID range. For every pair of ID-adjacent words inside the range an
// extra compound entry is added: key is the concatenated normalized forms,
// value the space-joined originals. Reference editions sometimes split a
// compound the source writes as one word; without these entries such
// splits would surface as typos.
func (x *Index) rangeWords(startID, endID int) map[string]string {
	out := make(map[string]string)

	lo := sort.SearchInts(x.ids, startID)
	for i := lo; i < len(x.ids) && x.ids[i] <= endID; i++ {
		w := x.words[x.ids[i]]
		if _, seen := out[w.Normalized]; !seen {
			out[w.Normalized] = w.Original
		}

		if next, ok := x.words[w.ID+1]; ok && w.ID+1 <= endID {
			compound := w.Normalized + next.Normalized
			if _, seen := out[compound]; !seen {
				out[compound] = w.Original + " " + next.Original
			}
		}
	}
	return out
}
