// Command brenton-audit proofreads a Brenton Septuagint LaTeX transcription
// against the Rahlfs and Swete reference corpora, reporting likely typos,
// legitimate spelling variations and unknown words.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/BrentonAudit/core/match"
	"github.com/FocuswithJustin/BrentonAudit/internal/analyze"
	"github.com/FocuswithJustin/BrentonAudit/internal/audit"
	"github.com/FocuswithJustin/BrentonAudit/internal/loader"
	"github.com/FocuswithJustin/BrentonAudit/internal/logging"
	"github.com/FocuswithJustin/BrentonAudit/internal/report"
)

const version = "0.2.0"

// CLI defines the command-line interface for brenton-audit.
var CLI struct {
	// Global flags
	Verbose bool `short:"v" help:"Enable debug logging"`
	JSONLog bool `name:"json-log" help:"Emit logs as JSON"`

	// Command groups (noun-first organization)
	Audit   AuditCmd     `cmd:"" help:"Audit a LaTeX source against the reference corpora"`
	Runs    RunsGroup    `cmd:"" help:"Persisted run history"`
	Analyze AnalyzeGroup `cmd:"" help:"Analyze curated inputs"`
	Version VersionCmd   `cmd:"" help:"Print version information"`
}

// RunsGroup contains run-history operations.
type RunsGroup struct {
	List   RunsListCmd   `cmd:"" help:"List persisted audit runs"`
	Export RunsExportCmd `cmd:"" help:"Export a persisted run's findings to TSV"`
}

// AnalyzeGroup contains analysis operations over curated inputs.
type AnalyzeGroup struct {
	Corrections AnalyzeCorrectionsCmd `cmd:"" help:"Summarize edit patterns in the corrections log"`
	Accepted    AnalyzeAcceptedCmd    `cmd:"" help:"Bucket accepted words by spelling alternation"`
}

// AuditCmd runs the full proofreading pipeline.
type AuditCmd struct {
	Source string `arg:"" help:"Brenton LaTeX source file" type:"existingfile"`

	RahlfsWords  string `default:"rahlfs_words.tsv" help:"Rahlfs word list" type:"path"`
	RahlfsVerses string `default:"rahlfs_verses.tsv" help:"Rahlfs versification table" type:"path"`
	SweteWords   string `default:"swete_words.tsv" help:"Swete word list" type:"path"`
	SweteVerses  string `default:"swete_verses.tsv" help:"Swete versification table" type:"path"`

	Accepted    string `default:"accepted_words.txt" help:"Curated accepted-words list" type:"path"`
	Corrections string `default:"word_corrections.tsv" help:"Previously adjudicated corrections" type:"path"`

	Columns string `default:"auto" enum:"auto,ref-first,id-first" help:"Versification column order"`

	Threshold float64 `default:"0.80" help:"Minimum similarity ratio for typo reports"`
	Area      int     `default:"20" help:"Verses searched on each side in the area scope"`

	Out   string `help:"Findings TSV output path (default stdout)" type:"path"`
	Excel string `help:"Also write an .xlsx report to this path" type:"path"`
	Store string `help:"Persist the run to this SQLite database" type:"path"`
}

func (c *AuditCmd) Run() error {
	opts := audit.Options{
		SourcePath:      c.Source,
		RahlfsWords:     c.RahlfsWords,
		RahlfsVerses:    c.RahlfsVerses,
		SweteWords:      c.SweteWords,
		SweteVerses:     c.SweteVerses,
		AcceptedPath:    c.Accepted,
		CorrectionsPath: c.Corrections,
		Column:          parseColumns(c.Columns),
		Config: match.Config{
			TypoThreshold: c.Threshold,
			AreaHalfWidth: c.Area,
		},
		StorePath: c.Store,
	}

	out, err := audit.Run(context.Background(), opts)
	if err != nil {
		return err
	}

	w := os.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return fmt.Errorf("create %s: %w", c.Out, err)
		}
		defer f.Close()
		w = f
	}
	if err := report.WriteTSV(w, out.Findings); err != nil {
		return err
	}

	if c.Excel != "" {
		if err := report.WriteExcel(c.Excel, out.Findings); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stderr, "%d tokens, %d findings (%d variations, %d typos, %d unknown)\n",
		out.Tokens, out.Summary.Total, out.Summary.Variations, out.Summary.Typos, out.Summary.Unknown)
	return nil
}

func parseColumns(s string) loader.Column {
	switch s {
	case "ref-first":
		return loader.ColumnRefFirst
	case "id-first":
		return loader.ColumnIDFirst
	default:
		return loader.ColumnAuto
	}
}

// RunsListCmd lists persisted audit runs.
type RunsListCmd struct {
	Store string `arg:"" help:"SQLite run store" type:"existingfile"`
}

func (c *RunsListCmd) Run() error {
	store, err := report.OpenStore(c.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Runs(context.Background())
	if err != nil {
		return err
	}
	for _, r := range runs {
		fmt.Printf("%s  %s  tokens=%d findings=%d source=%s\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), r.Tokens, r.Findings, r.SourceHash[:12])
	}
	return nil
}

// RunsExportCmd exports one persisted run's findings as TSV.
type RunsExportCmd struct {
	Store string `arg:"" help:"SQLite run store" type:"existingfile"`
	RunID string `arg:"" name:"run" help:"Run ID"`
	Out   string `help:"Output path (default stdout)" type:"path"`
}

func (c *RunsExportCmd) Run() error {
	store, err := report.OpenStore(c.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	findings, err := store.FindingsForRun(context.Background(), c.RunID)
	if err != nil {
		return err
	}

	w := os.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return fmt.Errorf("create %s: %w", c.Out, err)
		}
		defer f.Close()
		w = f
	}
	return report.WriteTSV(w, findings)
}

// AnalyzeCorrectionsCmd summarizes the edit shapes in the corrections log.
type AnalyzeCorrectionsCmd struct {
	Corrections string `arg:"" help:"Corrections TSV file" type:"existingfile"`
	Top         int    `default:"30" help:"Number of substitution pairs to show"`
}

func (c *AnalyzeCorrectionsCmd) Run() error {
	cs, err := loader.Corrections(c.Corrections)
	if err != nil {
		return err
	}

	stats := analyze.AnalyzeCorrections(cs)
	fmt.Printf("Total corrections: %d\n\n", stats.Total)

	fmt.Println("Character substitutions:")
	for _, s := range stats.TopSubstitutions(c.Top) {
		fmt.Printf("  %s -> %s: %d\n", s.From, s.To, s.Count)
	}

	fmt.Printf("\nMissing characters: %d\n", len(stats.Insertions))
	for _, corr := range stats.Insertions {
		fmt.Printf("  %s -> %s\n", corr.Original, corr.Corrected)
	}
	fmt.Printf("\nExtra characters: %d\n", len(stats.Deletions))
	for _, corr := range stats.Deletions {
		fmt.Printf("  %s -> %s\n", corr.Original, corr.Corrected)
	}
	fmt.Printf("\nTranspositions: %d\n", len(stats.Transposition))
	for _, corr := range stats.Transposition {
		fmt.Printf("  %s -> %s\n", corr.Original, corr.Corrected)
	}
	return nil
}

// AnalyzeAcceptedCmd buckets the accepted-words list by alternation category.
type AnalyzeAcceptedCmd struct {
	Accepted string `arg:"" help:"Accepted-words list" type:"existingfile"`
}

func (c *AnalyzeAcceptedCmd) Run() error {
	words, err := loader.AcceptedWords(c.Accepted)
	if err != nil {
		return err
	}

	buckets := analyze.CategorizeAccepted(words)
	fmt.Printf("Total accepted words: %d\n", len(words))
	for cat, ws := range buckets {
		fmt.Printf("\n%s (%d):\n", cat, len(ws))
		for _, w := range ws {
			fmt.Printf("  %s\n", w)
		}
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("brenton-audit %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("brenton-audit"),
		kong.Description("Septuagint transcription proofreading against Rahlfs and Swete"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	level := logging.LevelInfo
	if CLI.Verbose {
		level = logging.LevelDebug
	}
	format := logging.FormatText
	if CLI.JSONLog {
		format = logging.FormatJSON
	}
	logging.InitLogger(level, format)

	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
