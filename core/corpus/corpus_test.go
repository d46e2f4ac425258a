package corpus

import (
	"testing"

	"github.com/FocuswithJustin/BrentonAudit/core/verse"
)

func ref(book string, ch, v int) verse.Ref {
	return verse.Ref{Book: book, Chapter: ch, Verse: v}
}

// Corpus with verses starting at word IDs 10, 20 and 35, max word ID 50.
func boundaryIndex(t *testing.T) *Index {
	t.Helper()
	var words []WordRow
	for id := 10; id <= 50; id++ {
		words = append(words, WordRow{ID: id, Text: "λογος"})
	}
	verses := []VerseRow{
		{Ref: ref("Gen", 1, 1), WordID: 10},
		{Ref: ref("Gen", 1, 2), WordID: 20},
		{Ref: ref("Gen", 1, 3), WordID: 35},
	}
	return New("rahlfs", words, verses)
}

func TestVerseEndBoundaries(t *testing.T) {
	x := boundaryIndex(t)

	// Middle verse: IDs 20-34.
	if got := x.verseEnd(20); got != 34 {
		t.Errorf("verseEnd(20) = %d, want 34", got)
	}
	// Last verse runs to the corpus max.
	if got := x.verseEnd(35); got != 50 {
		t.Errorf("verseEnd(35) = %d, want 50", got)
	}
	// First verse: IDs 10-19.
	if got := x.verseEnd(10); got != 19 {
		t.Errorf("verseEnd(10) = %d, want 19", got)
	}
}

func TestVerseScope(t *testing.T) {
	words := []WordRow{
		{ID: 1, Text: "Ἐν"},
		{ID: 2, Text: "ἀρχῇ"},
		{ID: 3, Text: "ἐποίησεν"},
		{ID: 4, Text: "ὁ"},
		{ID: 5, Text: "Θεός"},
	}
	verses := []VerseRow{
		{Ref: ref("Gen", 1, 1), WordID: 1},
		{Ref: ref("Gen", 1, 2), WordID: 4},
	}
	x := New("rahlfs", words, verses)

	scope := x.VerseScope(ref("Gen", 1, 1))
	for _, want := range []string{"εν", "αρχη", "εποιησεν"} {
		if _, ok := scope[want]; !ok {
			t.Errorf("verse scope missing %q", want)
		}
	}
	if _, ok := scope["θεος"]; ok {
		t.Errorf("verse scope should not contain words of the next verse")
	}

	// Unknown reference degrades to an empty map.
	if got := x.VerseScope(ref("Exod", 1, 1)); len(got) != 0 {
		t.Errorf("unknown ref should yield empty scope, got %v", got)
	}
}

func TestCompoundSynthesis(t *testing.T) {
	words := []WordRow{
		{ID: 5, Text: "περι"},
		{ID: 6, Text: "τεμειν"},
	}
	verses := []VerseRow{{Ref: ref("Gen", 17, 11), WordID: 5}}
	x := New("swete", words, verses)

	scope := x.VerseScope(ref("Gen", 17, 11))
	orig, ok := scope["περιτεμειν"]
	if !ok {
		t.Fatalf("scope missing compound entry περιτεμειν: %v", scope)
	}
	if orig != "περι τεμειν" {
		t.Errorf("compound original = %q, want %q", orig, "περι τεμειν")
	}
}

func TestCompoundNotSynthesizedAcrossGap(t *testing.T) {
	// IDs 5 and 7 are not adjacent; no compound should appear.
	words := []WordRow{
		{ID: 5, Text: "περι"},
		{ID: 7, Text: "τεμειν"},
	}
	verses := []VerseRow{{Ref: ref("Gen", 17, 11), WordID: 5}}
	x := New("swete", words, verses)

	scope := x.VerseScope(ref("Gen", 17, 11))
	if _, ok := scope["περιτεμειν"]; ok {
		t.Errorf("compound must only join ID-adjacent words")
	}
}

func TestAreaScope(t *testing.T) {
	var words []WordRow
	var verses []VerseRow
	// Ten verses of three words each: verse v starts at ID v*3.
	for v := 1; v <= 10; v++ {
		verses = append(verses, VerseRow{Ref: ref("Gen", 1, v), WordID: v * 3})
		for i := 0; i < 3; i++ {
			words = append(words, WordRow{ID: v*3 + i, Text: "λογος"})
		}
	}
	x := New("rahlfs", words, verses)

	// Width 1 around verse 5: verses 4-6, IDs 12-20.
	scope := x.AreaScope(ref("Gen", 1, 5), 1)
	if len(scope) == 0 {
		t.Fatalf("area scope should not be empty")
	}

	// Clamped at the start of the corpus.
	scope = x.AreaScope(ref("Gen", 1, 1), 3)
	if len(scope) == 0 {
		t.Fatalf("area scope at corpus start should not be empty")
	}

	// Clamped at the end: the final verse extends to the corpus max.
	scope = x.AreaScope(ref("Gen", 1, 10), 2)
	if len(scope) == 0 {
		t.Fatalf("area scope at corpus end should not be empty")
	}

	if got := x.AreaScope(ref("Exod", 9, 9), 5); len(got) != 0 {
		t.Errorf("unknown ref should yield empty area scope")
	}
}

func TestDedup(t *testing.T) {
	words := []WordRow{
		{ID: 1, Text: "Λόγος"},
		{ID: 2, Text: "λογος"},
		{ID: 3, Text: "λόγος"},
	}
	x := New("rahlfs", words, nil)

	orig, ok := x.Lookup("λογος")
	if !ok {
		t.Fatalf("dedup lookup failed")
	}
	// First occurrence wins.
	if orig != "λόγος" {
		t.Errorf("dedup original = %q, want first-encountered %q", orig, "λόγος")
	}
	if !x.Has("λογος") {
		t.Errorf("Has should report indexed forms")
	}
	if x.Has("ανθρωπος") {
		t.Errorf("Has should not report unindexed forms")
	}
}

func TestEmptyIndex(t *testing.T) {
	x := New("rahlfs", nil, nil)

	if x.Has("λογος") {
		t.Errorf("empty index should contain nothing")
	}
	if got := x.VerseScope(ref("Gen", 1, 1)); len(got) != 0 {
		t.Errorf("empty index verse scope should be empty")
	}
	if got := x.AreaScope(ref("Gen", 1, 1), 20); len(got) != 0 {
		t.Errorf("empty index area scope should be empty")
	}
	if x.Len() != 0 || x.MaxID() != 0 || x.VerseCount() != 0 {
		t.Errorf("empty index counters should be zero")
	}
}
