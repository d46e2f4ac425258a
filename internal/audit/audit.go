// Package audit wires the whole proofreading run together: it loads the
// reference corpora and curated filters, scans the LaTeX source, classifies
// every Greek token and collects the findings.
package audit

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/FocuswithJustin/BrentonAudit/core/books"
	"github.com/FocuswithJustin/BrentonAudit/core/corpus"
	"github.com/FocuswithJustin/BrentonAudit/core/errors"
	"github.com/FocuswithJustin/BrentonAudit/core/match"
	"github.com/FocuswithJustin/BrentonAudit/internal/loader"
	"github.com/FocuswithJustin/BrentonAudit/internal/logging"
	"github.com/FocuswithJustin/BrentonAudit/internal/report"
	"github.com/FocuswithJustin/BrentonAudit/internal/tex"
)

// Options selects the run's inputs and tuning.
type Options struct {
	SourcePath string

	RahlfsWords  string
	RahlfsVerses string
	SweteWords   string
	SweteVerses  string

	AcceptedPath    string
	CorrectionsPath string

	// Column fixes the versification column order; ColumnAuto sniffs it
	// once per file.
	Column loader.Column

	Config match.Config

	// StorePath, when set, persists the run and its findings to SQLite.
	StorePath string
}

// Outcome is the result of one audit run.
type Outcome struct {
	RunID    string
	Tokens   int
	Findings []report.Finding
	Summary  report.Summary
}

// Run executes the audit pipeline once.
func Run(ctx context.Context, opts Options) (*Outcome, error) {
	runID := report.NewRunID()
	ctx = logging.WithRunID(ctx, runID)

	rahlfs, err := loadEdition("rahlfs", opts.RahlfsWords, opts.RahlfsVerses, opts.Column)
	if err != nil {
		return nil, err
	}
	swete, err := loadEdition("swete", opts.SweteWords, opts.SweteVerses, opts.Column)
	if err != nil {
		return nil, err
	}

	acceptedWords, err := loader.AcceptedWords(opts.AcceptedPath)
	if err != nil {
		return nil, err
	}
	accepted := match.NewAcceptedWords(acceptedWords)

	corrections, err := loader.Corrections(opts.CorrectionsPath)
	if err != nil {
		return nil, err
	}
	examined := match.NewExaminedCorrections(corrections)

	logging.InfoContext(ctx, "filters_loaded",
		"accepted", accepted.Len(),
		"examined", examined.Len())

	f, err := os.Open(opts.SourcePath)
	if err != nil {
		return nil, errors.NewIO("open", opts.SourcePath, err)
	}
	tokens, scanErr := tex.NewScanner().Scan(f)
	f.Close()
	if scanErr != nil {
		return nil, scanErr
	}

	engine := match.NewEngine(opts.Config, rahlfs, swete)
	out := &Outcome{RunID: runID, Tokens: len(tokens)}

	book := ""
	chapter := 0
	for _, tok := range tokens {
		if tok.Book != book || tok.Chapter != chapter {
			if book != "" {
				logging.AuditProgress(book, chapter, out.Tokens, len(out.Findings))
			}
			book, chapter = tok.Book, tok.Chapter
		}

		if accepted.Contains(tok.Surface) {
			continue
		}

		refStr := tokenRef(tok)
		if examined.Contains(refStr, tok.Surface) {
			continue
		}

		var mctx *match.Context
		if tok.HasContext() {
			mctx = &match.Context{Book: tok.Book, Chapter: tok.Chapter, Verse: tok.Verse}
		}

		res := engine.Classify(tok.Surface, mctx)
		if res.Classification == match.Known {
			continue
		}

		out.Findings = append(out.Findings, report.Finding{
			Line:           tok.Line,
			Ref:            refStr,
			Word:           tok.Surface,
			Classification: res.Classification,
			Category:       string(res.Category),
			MatchedForm:    res.MatchedForm,
			Score:          res.Score,
			Scope:          res.Scope,
			ProperName:     res.ProperName,
			Numeral:        res.Numeral,
			Source:         tok.Source,
		})
	}
	out.Summary = report.Summarize(out.Findings)

	logging.InfoContext(ctx, "audit_complete",
		"tokens", out.Tokens,
		"findings", out.Summary.Total,
		"variations", out.Summary.Variations,
		"typos", out.Summary.Typos,
		"unknown", out.Summary.Unknown)

	if opts.StorePath != "" {
		if err := persist(ctx, opts, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// tokenRef renders the token's location for reports and the examined-pairs
// check: the canonical Rahlfs reference when the book converts, otherwise
// the raw Brenton coordinates, otherwise "Unknown".
func tokenRef(tok tex.Token) string {
	if !tok.HasContext() {
		return "Unknown"
	}
	if ref, err := books.Convert(books.Rahlfs, tok.Book, tok.Chapter, tok.Verse); err == nil {
		return ref.String()
	}
	return fmt.Sprintf("%s %d:%d", tok.Book, tok.Chapter, tok.Verse)
}

// loadEdition builds one edition's index from its word list and
// versification files.
func loadEdition(edition, wordsPath, versesPath string, col loader.Column) (*corpus.Index, error) {
	start := time.Now()

	words, err := loader.Words(wordsPath)
	if err != nil {
		return nil, err
	}
	verses, err := loader.Versification(versesPath, col)
	if err != nil {
		return nil, err
	}

	x := corpus.New(edition, words, verses)
	logging.CorpusLoaded(edition, x.Len(), x.VerseCount(), time.Since(start))
	return x, nil
}

// persist writes the run and findings to the SQLite store.
func persist(ctx context.Context, opts Options, out *Outcome) error {
	hash, err := report.FingerprintFile(opts.SourcePath)
	if err != nil {
		return err
	}

	store, err := report.OpenStore(opts.StorePath)
	if err != nil {
		return err
	}
	defer store.Close()

	run := report.Run{
		ID:         out.RunID,
		StartedAt:  time.Now(),
		SourceHash: hash,
		Tokens:     out.Tokens,
	}
	return store.SaveRun(ctx, run, out.Findings)
}
