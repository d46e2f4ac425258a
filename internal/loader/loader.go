// Package loader reads the audit's input files: reference word lists,
// versification tables, the accepted-words list and the corrections log.
// Files ending in .xz are decompressed transparently. A missing file
// degrades to empty data with a warning so the pipeline can still run.
package loader

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/BrentonAudit/core/corpus"
	"github.com/FocuswithJustin/BrentonAudit/core/errors"
	"github.com/FocuswithJustin/BrentonAudit/core/match"
	"github.com/FocuswithJustin/BrentonAudit/core/verse"
	"github.com/FocuswithJustin/BrentonAudit/internal/logging"
)

// Column declares a versification file's column order.
type Column int

const (
	// ColumnAuto detects the order once from the first well-formed row.
	ColumnAuto Column = iota
	// ColumnRefFirst: verse reference, then word ID.
	ColumnRefFirst
	// ColumnIDFirst: word ID, then verse reference.
	ColumnIDFirst
)

// Words reads a reference word list: tab-separated rows whose first column
// is the word ID and whose last column is the word text. Malformed rows
// are skipped. A missing file yields an empty list.
func Words(path string) ([]corpus.WordRow, error) {
	rows, err := readRows(path, "word list")
	if rows == nil || err != nil {
		return nil, err
	}

	var out []corpus.WordRow
	for i, row := range rows {
		if len(row) < 2 {
			logging.RowSkipped(path, i+1, "too few columns")
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			logging.RowSkipped(path, i+1, "non-integer word id")
			continue
		}
		text := strings.TrimSpace(row[len(row)-1])
		if text == "" {
			logging.RowSkipped(path, i+1, "empty word")
			continue
		}
		out = append(out, corpus.WordRow{ID: id, Text: text})
	}
	return out, nil
}

// Versification reads a versification table: two-column rows pairing a
// verse reference with the word ID of the verse's first word. The column
// order is fixed by col; ColumnAuto decides it once from the first row
// whose leading column settles the question.
func Versification(path string, col Column) ([]corpus.VerseRow, error) {
	rows, err := readRows(path, "versification")
	if rows == nil || err != nil {
		return nil, err
	}

	if col == ColumnAuto {
		col = detectColumns(rows)
	}

	var out []corpus.VerseRow
	for i, row := range rows {
		if len(row) < 2 {
			logging.RowSkipped(path, i+1, "too few columns")
			continue
		}
		refField, idField := row[0], row[1]
		if col == ColumnIDFirst {
			refField, idField = idField, refField
		}
		id, err := strconv.Atoi(strings.TrimSpace(idField))
		if err != nil {
			logging.RowSkipped(path, i+1, "non-integer word id")
			continue
		}
		ref, err := parseRef(refField)
		if err != nil {
			logging.RowSkipped(path, i+1, "unparseable verse reference")
			continue
		}
		out = append(out, corpus.VerseRow{Ref: ref, WordID: id})
	}
	return out, nil
}

// detectColumns inspects rows until one has exactly one integer column.
// Defaults to reference-first when nothing settles it.
func detectColumns(rows [][]string) Column {
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		_, firstErr := strconv.Atoi(strings.TrimSpace(row[0]))
		_, secondErr := strconv.Atoi(strings.TrimSpace(row[1]))
		if firstErr == nil && secondErr != nil {
			return ColumnIDFirst
		}
		if firstErr != nil && secondErr == nil {
			return ColumnRefFirst
		}
	}
	return ColumnRefFirst
}

// parseRef parses a verse reference, tolerating "Gen 1:1" as well as the
// canonical "Gen.1.1".
func parseRef(s string) (verse.Ref, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", ".")
	return verse.Parse(s)
}

// AcceptedWords reads the curated accepted-words list: one word per line,
// blank lines and lines starting with # ignored.
func AcceptedWords(path string) ([]string, error) {
	r, err := open(path, "accepted words")
	if r == nil || err != nil {
		return nil, err
	}
	defer r.Close()

	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	return out, nil
}

// Corrections reads the log of previously adjudicated corrections: rows of
// verse reference, original word, corrected word. References are rewritten
// to canonical form when they parse so they match token references.
func Corrections(path string) ([]match.Correction, error) {
	rows, err := readRows(path, "corrections")
	if rows == nil || err != nil {
		return nil, err
	}

	var out []match.Correction
	for i, row := range rows {
		if len(row) < 3 {
			logging.RowSkipped(path, i+1, "too few columns")
			continue
		}
		refStr := strings.TrimSpace(row[0])
		if ref, err := parseRef(refStr); err == nil {
			refStr = ref.String()
		}
		out = append(out, match.Correction{
			Ref:       refStr,
			Original:  strings.TrimSpace(row[1]),
			Corrected: strings.TrimSpace(row[2]),
		})
	}
	return out, nil
}

// readRows opens a tab-separated file and returns its rows. A missing
// file logs a warning and returns nil rows with nil error.
func readRows(path, kind string) ([][]string, error) {
	r, err := open(path, kind)
	if r == nil || err != nil {
		return nil, err
	}
	defer r.Close()

	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.NewParse(kind, path, err.Error())
	}
	return rows, nil
}

// open opens path for reading, decompressing .xz transparently. A missing
// file returns (nil, nil) after logging.
func open(path, kind string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.InputMissing(kind, path)
			return nil, nil
		}
		return nil, errors.NewIO("open", path, err)
	}

	if !strings.HasSuffix(path, ".xz") {
		return f, nil
	}

	xr, err := xz.NewReader(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, errors.NewParse(kind, path, err.Error())
	}
	return &xzReadCloser{r: xr, f: f}, nil
}

// xzReadCloser closes the underlying file when the stream is done.
type xzReadCloser struct {
	r *xz.Reader
	f *os.File
}

func (x *xzReadCloser) Read(p []byte) (int, error) { return x.r.Read(p) }
func (x *xzReadCloser) Close() error               { return x.f.Close() }
