// Package tex extracts Greek tokens and their verse locations from the
// Brenton LaTeX source. The scanner tracks \biblebook, \ch and \vs markers
// line by line and strips typesetting commands before tokenizing.
package tex

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/BrentonAudit/core/errors"
	"github.com/FocuswithJustin/BrentonAudit/core/greek"
)

// Token is one Greek word occurrence in the source.
type Token struct {
	// Line is the 1-based source line number.
	Line int
	// Surface is the word as printed, NFC-normalized.
	Surface string
	// Book is the Brenton heading in force, empty before the first
	// \biblebook command.
	Book string
	// Chapter and Verse are the markers in force, zero when unknown.
	Chapter int
	Verse   int
	// Source is the stripped source line, kept for reports.
	Source string
}

// HasContext reports whether the token carries a complete verse location.
func (t Token) HasContext() bool {
	return t.Book != "" && t.Chapter > 0 && t.Verse > 0
}

var (
	bookRe    = regexp.MustCompile(`\\biblebook\{([^}]+)\}`)
	chapterRe = regexp.MustCompile(`\\ch\{(\d+)\}`)
	verseRe   = regexp.MustCompile(`\\vs\{(\d+)\}`)

	// A chapter-opening drop cap. The colored form wraps the initial in
	// \textcolor; the plain form does not. Group 1 is the initial, group 2
	// the rest of the word in small caps.
	lettrineColorRe  = regexp.MustCompile(`\\lettrine\[[^\]]*\]\{\\textcolor\{[^}]+\}\{([^}]+)\}\}\{([^}]*)\}`)
	lettrineSimpleRe = regexp.MustCompile(`\\lettrine\[[^\]]*\]\{([^}]+)\}\{([^}]*)\}`)

	commandArgRe = regexp.MustCompile(`\\[a-zA-Z]+\{[^}]*\}`)
	commandRe    = regexp.MustCompile(`\\[a-zA-Z]+`)

	greekRe = regexp.MustCompile(`[\x{0370}-\x{03FF}\x{1F00}-\x{1FFF}]+`)
)

// Scanner walks a LaTeX source stream and yields tokens with verse context.
type Scanner struct {
	book    string
	chapter int
	verse   int
}

// NewScanner returns a scanner with no location in force.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan reads the whole stream and returns every Greek token in order.
func (s *Scanner) Scan(r io.Reader) ([]Token, error) {
	var tokens []Token
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		tokens = append(tokens, s.scanLine(lineNum, line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.NewIO("scan", "", err)
	}
	return tokens, nil
}

// scanLine updates the location state from one line and returns its tokens.
func (s *Scanner) scanLine(lineNum int, line string) []Token {
	if m := bookRe.FindStringSubmatch(line); m != nil {
		s.book = greek.Normalize(m[1])
		s.chapter = 0
		s.verse = 0
		return nil
	}

	if m := chapterRe.FindStringSubmatch(line); m != nil {
		ch, _ := strconv.Atoi(m[1])
		s.chapter = ch
		// The first verse is implied by the chapter marker.
		s.verse = 1
	} else if strings.Contains(line, `\lettrine`) {
		// A drop cap opens a book's first chapter.
		s.chapter = 1
		s.verse = 1
	}

	if m := verseRe.FindStringSubmatch(line); m != nil {
		v, _ := strconv.Atoi(m[1])
		s.verse = v
	}

	words, stripped := ExtractWords(line)
	if len(words) == 0 {
		return nil
	}

	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, Token{
			Line:    lineNum,
			Surface: w,
			Book:    s.book,
			Chapter: s.chapter,
			Verse:   s.verse,
			Source:  stripped,
		})
	}
	return tokens
}

// ExtractWords returns the Greek words of one line in print order, plus the
// line with typesetting commands stripped. A \lettrine drop cap splits the
// first word across two brace groups; it is reassembled and lowercased
// before the rest of the line is tokenized.
func ExtractWords(line string) ([]string, string) {
	var words []string

	m := lettrineColorRe.FindStringSubmatchIndex(line)
	re := lettrineColorRe
	if m == nil {
		m = lettrineSimpleRe.FindStringSubmatchIndex(line)
		re = lettrineSimpleRe
	}
	if m != nil {
		groups := re.FindStringSubmatch(line[m[0]:m[1]])
		initial := groups[1]
		rest := groups[2]
		first := initial
		if strings.TrimSpace(rest) != "" {
			first += rest
		}
		words = append(words, greek.Normalize(greek.Lower(first)))
		line = line[:m[0]] + line[m[1]:]
	}

	line = commandArgRe.ReplaceAllString(line, "")
	stripped := commandRe.ReplaceAllString(line, "")

	for _, w := range greekRe.FindAllString(stripped, -1) {
		words = append(words, greek.Normalize(w))
	}
	return words, stripped
}
