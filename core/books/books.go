// Package books maps Brenton's Greek book headings to the book codes used by
// the Rahlfs and Swete reference editions, including the chapter renumbering
// for books that one edition prints combined and the other prints split.
package books

import (
	"github.com/FocuswithJustin/BrentonAudit/core/errors"
	"github.com/FocuswithJustin/BrentonAudit/core/verse"
)

// Edition identifies a reference edition's coordinate system.
type Edition string

// Reference editions.
const (
	Rahlfs Edition = "rahlfs"
	Swete  Edition = "swete"
)

// ezraChapters is the chapter count of canonical Ezra. Rahlfs prints Ezra
// and Nehemiah as the single book 2Esdr, so Nehemiah chapter n becomes
// 2Esdr chapter n+10.
const ezraChapters = 10

// brentonToSwete maps Brenton Greek book headings to Swete book codes.
var brentonToSwete = map[string]string{
	// Pentateuch
	"ΓΕΝΕΣΙΣ":       "Gen",
	"ΕΞΟΔΟΣ":        "Exo",
	"ΛΕΥΙΤΙΚΟΝ":     "Lev",
	"ΑΡΙΘΜΟΙ":       "Num",
	"ΔΕΥΤΕΡΟΝΟΜΙΟΝ": "Deu",

	// Historical books
	"ΙΗΣΟΥΣ ΝΑΥΗ":      "Jos",
	"ΚΡΙΤΑΙ":           "Jdg",
	"ΡΟΥΘ":             "Rut",
	"ΒΑΣΙΛΕΙΩΝ Α":      "1Sa",
	"ΒΑΣΙΛΕΙΩΝ Β":      "2Sa",
	"ΒΑΣΙΛΕΙΩΝ Γ":      "1Ki",
	"ΒΑΣΙΛΕΙΩΝ Δ":      "2Ki",
	"ΠΑΡΑΛΕΙΠΟΜΕΝΩΝ Α": "1Ch",
	"ΠΑΡΑΛΕΙΠΟΜΕΝΩΝ Β": "2Ch",

	// Swete keeps Ezra and Nehemiah separate.
	"ΕΣΔΡΑΣ":   "Ezr",
	"ΝΕΕΜΙΑΣ":  "Neh",
	"ΕΣΔΡΑΣ Α": "1Es",

	"ΕΣΘΗΡ": "Est",

	// Wisdom books
	"ΙΩΒ":                  "Job",
	"ΨΑΛΜΟΙ":               "Psa",
	"ΠΑΡΟΙΜΙΑΙ ΣΑΛΩΜΩΝΤΟΣ": "Pro",
	"ΕΚΚΛΗΣΙΑΣΤΗΣ":         "Ecc",
	"ΑΣΜΑ":                 "Sol",

	// Major prophets
	"ΗΣΑΙΑΣ":          "Isa",
	"ΙΕΡΕΜΙΑΣ":        "Jer",
	"ΘΡΗΝΟΙ ΙΕΡΕΜΙΟΥ": "Lam",
	"ΙΕΖΕΚΙΗΛ":        "Eze",
	"ΔΑΝΙΗΛ":          "Dan",

	// The Twelve
	"ΩΣΗΕ":     "Hos",
	"ΙΩΗΛ":     "Joe",
	"ΑΜΩΣ":     "Amo",
	"ΟΒΔΕΙΟΥ":  "Oba",
	"ΙΩΝΑΣ":    "Jon",
	"ΜΙΧΑΙΑΣ":  "Mic",
	"ΝΑΟΥΜ":    "Nah",
	"ΑΜΒΑΚΟΥΜ": "Hab",
	"ΣΟΦΟΝΙΑΣ": "Zep",
	"ΑΓΓΑΙΟΣ":  "Hag",
	"ΖΑΧΑΡΙΑΣ": "Zec",
	"ΜΑΛΑΧΙΑΣ": "Mal",

	// Apocryphal/deuterocanonical books
	"ΤΩΒΙΤ":                        "Tob",
	"ΙΟΥΔΙΘ":                       "Jdt",
	"ΣΟΦΙΑ ΣΑΛΩΜΩΝ":                "Wis",
	"ΣΟΦΙΑ ΣΕΙΡΑΧ":                 "Sir",
	"ΒΑΡΟΥΧ":                       "Bar",
	"ΕΠΙΣΤΟΛΗ ΙΕΡΕΜΙΟΥ":            "Epj",
	"ΣΩΣΑΝΝΑ":                      "Sus",
	"ΒΗΛ ΚΑΙ ΔΡΑΚΩΝ":               "Bel",
	"ΜΑΚΚΑΒΑΙΩΝ Α":                 "1Ma",
	"ΜΑΚΚΑΒΑΙΩΝ Β":                 "2Ma",
	"ΜΑΚΚΑΒΑΙΩΝ Γ":                 "3Ma",
	"ΜΑΚΚΑΒΑΙΩΝ Δ":                 "4Ma",
	"ΠΡΟΣΕΥΧΗ ΜΑΝΑΣΣΗ ΥΙΟΥ ΕΖΕΚΙΟΥ": "Ode",
}

// brentonToRahlfs maps Brenton Greek book headings to Rahlfs book codes.
// Where Rahlfs carries two recensions (JoshA/JoshB, DanOG/DanTh, ...),
// Brenton follows the recension conventional in printed LXX editions.
var brentonToRahlfs = map[string]string{
	// Pentateuch
	"ΓΕΝΕΣΙΣ":       "Gen",
	"ΕΞΟΔΟΣ":        "Exod",
	"ΛΕΥΙΤΙΚΟΝ":     "Lev",
	"ΑΡΙΘΜΟΙ":       "Num",
	"ΔΕΥΤΕΡΟΝΟΜΙΟΝ": "Deut",

	// Historical books
	"ΙΗΣΟΥΣ ΝΑΥΗ":      "JoshB",
	"ΚΡΙΤΑΙ":           "JudgB",
	"ΡΟΥΘ":             "Ruth",
	"ΒΑΣΙΛΕΙΩΝ Α":      "1Sam",
	"ΒΑΣΙΛΕΙΩΝ Β":      "2Sam",
	"ΒΑΣΙΛΕΙΩΝ Γ":      "1Kgs",
	"ΒΑΣΙΛΕΙΩΝ Δ":      "2Kgs",
	"ΠΑΡΑΛΕΙΠΟΜΕΝΩΝ Α": "1Chr",
	"ΠΑΡΑΛΕΙΠΟΜΕΝΩΝ Β": "2Chr",

	// Rahlfs prints Ezra and Nehemiah combined as 2Esdr; Nehemiah chapters
	// are renumbered (see Convert).
	"ΕΣΔΡΑΣ":   "2Esdr",
	"ΝΕΕΜΙΑΣ":  "2Esdr",
	"ΕΣΔΡΑΣ Α": "1Esdr",

	"ΕΣΘΗΡ": "Esth",

	// Wisdom books
	"ΙΩΒ":                  "Job",
	"ΨΑΛΜΟΙ":               "Ps",
	"ΠΑΡΟΙΜΙΑΙ ΣΑΛΩΜΩΝΤΟΣ": "Prov",
	"ΕΚΚΛΗΣΙΑΣΤΗΣ":         "Eccl",
	"ΑΣΜΑ":                 "Song",

	// Major prophets
	"ΗΣΑΙΑΣ":          "Isa",
	"ΙΕΡΕΜΙΑΣ":        "Jer",
	"ΘΡΗΝΟΙ ΙΕΡΕΜΙΟΥ": "Lam",
	"ΙΕΖΕΚΙΗΛ":        "Ezek",
	"ΔΑΝΙΗΛ":          "DanTh",

	// The Twelve
	"ΩΣΗΕ":     "Hos",
	"ΙΩΗΛ":     "Joel",
	"ΑΜΩΣ":     "Amos",
	"ΟΒΔΕΙΟΥ":  "Obad",
	"ΙΩΝΑΣ":    "Jonah",
	"ΜΙΧΑΙΑΣ":  "Mic",
	"ΝΑΟΥΜ":    "Nah",
	"ΑΜΒΑΚΟΥΜ": "Hab",
	"ΣΟΦΟΝΙΑΣ": "Zeph",
	"ΑΓΓΑΙΟΣ":  "Hag",
	"ΖΑΧΑΡΙΑΣ": "Zech",
	"ΜΑΛΑΧΙΑΣ": "Mal",

	// Apocryphal/deuterocanonical books
	"ΤΩΒΙΤ":                        "TobS",
	"ΙΟΥΔΙΘ":                       "Jdt",
	"ΣΟΦΙΑ ΣΑΛΩΜΩΝ":                "Wis",
	"ΣΟΦΙΑ ΣΕΙΡΑΧ":                 "Sir",
	"ΒΑΡΟΥΧ":                       "Bar",
	"ΕΠΙΣΤΟΛΗ ΙΕΡΕΜΙΟΥ":            "EpJer",
	"ΣΩΣΑΝΝΑ":                      "SusTh",
	"ΒΗΛ ΚΑΙ ΔΡΑΚΩΝ":               "BelTh",
	"ΜΑΚΚΑΒΑΙΩΝ Α":                 "1Macc",
	"ΜΑΚΚΑΒΑΙΩΝ Β":                 "2Macc",
	"ΜΑΚΚΑΒΑΙΩΝ Γ":                 "3Macc",
	"ΜΑΚΚΑΒΑΙΩΝ Δ":                 "4Macc",
	"ΠΡΟΣΕΥΧΗ ΜΑΝΑΣΣΗ ΥΙΟΥ ΕΖΕΚΙΟΥ": "Odes",
}

// Convert translates a Brenton (book, chapter, verse) coordinate into the
// given edition's coordinate system. The only non-1:1 case is Nehemiah in
// Rahlfs, where chapters continue 2Esdr's numbering after Ezra's ten
// chapters. An unknown book heading returns a NotFoundError; callers fall
// back to context-free matching rather than failing the token.
func Convert(edition Edition, book string, chapter, verseNum int) (verse.Ref, error) {
	if edition == Rahlfs && book == "ΝΕΕΜΙΑΣ" {
		return verse.Ref{Book: "2Esdr", Chapter: chapter + ezraChapters, Verse: verseNum}, nil
	}

	var table map[string]string
	switch edition {
	case Rahlfs:
		table = brentonToRahlfs
	case Swete:
		table = brentonToSwete
	default:
		return verse.Ref{}, errors.NewValidation("edition", "unknown edition "+string(edition))
	}

	code, ok := table[book]
	if !ok {
		return verse.Ref{}, errors.NewNotFound("book", book)
	}
	return verse.Ref{Book: code, Chapter: chapter, Verse: verseNum}, nil
}

// Known reports whether the Brenton book heading has a mapping in the
// given edition.
func Known(edition Edition, book string) bool {
	switch edition {
	case Rahlfs:
		_, ok := brentonToRahlfs[book]
		return ok
	case Swete:
		_, ok := brentonToSwete[book]
		return ok
	}
	return false
}
