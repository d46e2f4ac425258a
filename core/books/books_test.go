package books

import (
	"errors"
	"testing"

	coreerrors "github.com/FocuswithJustin/BrentonAudit/core/errors"
	"github.com/FocuswithJustin/BrentonAudit/core/verse"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		edition  Edition
		book     string
		chapter  int
		verseNum int
		expected verse.Ref
	}{
		{Rahlfs, "ΓΕΝΕΣΙΣ", 14, 7, verse.Ref{Book: "Gen", Chapter: 14, Verse: 7}},
		{Swete, "ΓΕΝΕΣΙΣ", 14, 7, verse.Ref{Book: "Gen", Chapter: 14, Verse: 7}},
		// Canonical Ezra keeps its chapter numbers inside 2Esdr.
		{Rahlfs, "ΕΣΔΡΑΣ", 8, 35, verse.Ref{Book: "2Esdr", Chapter: 8, Verse: 35}},
		// Nehemiah continues 2Esdr numbering after Ezra's ten chapters.
		{Rahlfs, "ΝΕΕΜΙΑΣ", 1, 2, verse.Ref{Book: "2Esdr", Chapter: 11, Verse: 2}},
		{Rahlfs, "ΝΕΕΜΙΑΣ", 13, 5, verse.Ref{Book: "2Esdr", Chapter: 23, Verse: 5}},
		// Swete keeps Nehemiah separate.
		{Swete, "ΝΕΕΜΙΑΣ", 1, 2, verse.Ref{Book: "Neh", Chapter: 1, Verse: 2}},
		{Swete, "ΕΣΔΡΑΣ", 8, 35, verse.Ref{Book: "Ezr", Chapter: 8, Verse: 35}},
		// Recension choices.
		{Rahlfs, "ΙΗΣΟΥΣ ΝΑΥΗ", 10, 12, verse.Ref{Book: "JoshB", Chapter: 10, Verse: 12}},
		{Rahlfs, "ΔΑΝΙΗΛ", 3, 1, verse.Ref{Book: "DanTh", Chapter: 3, Verse: 1}},
		{Swete, "ΨΑΛΜΟΙ", 22, 1, verse.Ref{Book: "Psa", Chapter: 22, Verse: 1}},
	}

	for _, tt := range tests {
		got, err := Convert(tt.edition, tt.book, tt.chapter, tt.verseNum)
		if err != nil {
			t.Errorf("Convert(%s, %s, %d, %d) unexpected error: %v",
				tt.edition, tt.book, tt.chapter, tt.verseNum, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("Convert(%s, %s, %d, %d) = %+v, want %+v",
				tt.edition, tt.book, tt.chapter, tt.verseNum, got, tt.expected)
		}
	}
}

func TestConvertUnknownBook(t *testing.T) {
	_, err := Convert(Rahlfs, "ΑΓΝΩΣΤΟΣ", 1, 1)
	if err == nil {
		t.Fatalf("expected error for unknown book")
	}
	if !errors.Is(err, coreerrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestConvertUnknownEdition(t *testing.T) {
	if _, err := Convert(Edition("brenton"), "ΓΕΝΕΣΙΣ", 1, 1); err == nil {
		t.Errorf("expected error for unknown edition")
	}
}

func TestKnown(t *testing.T) {
	if !Known(Rahlfs, "ΓΕΝΕΣΙΣ") || !Known(Swete, "ΓΕΝΕΣΙΣ") {
		t.Errorf("ΓΕΝΕΣΙΣ should be known in both editions")
	}
	if Known(Rahlfs, "ΑΓΝΩΣΤΟΣ") {
		t.Errorf("ΑΓΝΩΣΤΟΣ should not be known")
	}
}
