// Package verse defines the verse reference value type shared by the corpus
// indices and the book converter. References in different editions use
// different coordinate systems and are never compared across editions.
package verse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Ref identifies a verse within one edition: a book code, a chapter and a
// verse number. Equality is by the triple.
type Ref struct {
	Book    string
	Chapter int
	Verse   int
}

// refGrammar parses reference strings as they appear in versification files.
// Rahlfs writes "Gen.1.1"; Swete writes "Gen.1:1". Book codes may carry a
// leading digit ("1Sam", "2Esdr").
type refGrammar struct {
	BookPrefix string `parser:"@Int?"`
	BookName   string `parser:"@Ident"`
	Chapter    int    `parser:"'.' @Int"`
	Verse      int    `parser:"( '.' | ':' ) @Int"`
}

var refLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z]*`},
	{Name: "Punct", Pattern: `[.:]`},
})

var refParser = participle.MustBuild[refGrammar](
	participle.Lexer(refLexer),
)

// Parse parses a full verse reference string in either edition's spelling:
//   - "Gen.1.1" (dot-separated chapter and verse)
//   - "Gen.1:1" (colon-separated verse)
//   - "2Esdr.11.2" (book code with numeric prefix)
func Parse(s string) (Ref, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Ref{}, fmt.Errorf("empty verse reference")
	}

	parsed, err := refParser.ParseString("", s)
	if err != nil {
		return Ref{}, fmt.Errorf("invalid verse reference %q: %w", s, err)
	}

	return Ref{
		Book:    parsed.BookPrefix + parsed.BookName,
		Chapter: parsed.Chapter,
		Verse:   parsed.Verse,
	}, nil
}

// String returns the dot-separated form of the reference.
func (r Ref) String() string {
	var sb strings.Builder
	sb.WriteString(r.Book)
	sb.WriteString(".")
	sb.WriteString(strconv.Itoa(r.Chapter))
	sb.WriteString(".")
	sb.WriteString(strconv.Itoa(r.Verse))
	return sb.String()
}

// IsZero reports whether the reference is the zero value.
func (r Ref) IsZero() bool {
	return r.Book == "" && r.Chapter == 0 && r.Verse == 0
}
