// Package report renders audit findings to TSV and Excel and persists run
// history in a SQLite store.
package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/FocuswithJustin/BrentonAudit/core/errors"
	"github.com/FocuswithJustin/BrentonAudit/core/match"
)

// Finding is one reported token with its classification.
type Finding struct {
	Line           int
	Ref            string
	Word           string
	Classification match.Classification
	Category       string
	MatchedForm    string
	Score          float64
	Scope          match.Scope
	ProperName     bool
	Numeral        bool
	Source         string
}

// tsvHeader matches the column order of the findings table everywhere.
var tsvHeader = []string{
	"Line Number",
	"Verse Reference",
	"Word",
	"Classification",
	"Category",
	"Matched Form",
	"Score",
	"Scope",
	"Proper Name",
	"Numeral",
	"Full Line",
}

// WriteTSV writes findings as tab-separated rows with a header line.
func WriteTSV(w io.Writer, findings []Finding) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write(tsvHeader); err != nil {
		return errors.NewIO("write", "tsv header", err)
	}
	for _, f := range findings {
		row := []string{
			strconv.Itoa(f.Line),
			f.Ref,
			f.Word,
			string(f.Classification),
			f.Category,
			f.MatchedForm,
			formatScore(f.Score),
			string(f.Scope),
			formatFlag(f.ProperName),
			formatFlag(f.Numeral),
			f.Source,
		}
		if err := cw.Write(row); err != nil {
			return errors.NewIO("write", "tsv row", err)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flush tsv")
}

func formatScore(s float64) string {
	if s == 0 {
		return ""
	}
	return strconv.FormatFloat(s, 'f', 4, 64)
}

func formatFlag(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

// Summary tallies findings per classification.
type Summary struct {
	Total      int
	Variations int
	Typos      int
	Unknown    int
}

// Summarize counts findings by classification.
func Summarize(findings []Finding) Summary {
	s := Summary{Total: len(findings)}
	for _, f := range findings {
		switch f.Classification {
		case match.LegitimateVariation:
			s.Variations++
		case match.Typo:
			s.Typos++
		case match.Unknown:
			s.Unknown++
		}
	}
	return s
}
