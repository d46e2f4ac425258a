package report

import (
	"context"
	"database/sql"
	"encoding/hex"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"
	_ "modernc.org/sqlite"

	"github.com/FocuswithJustin/BrentonAudit/core/errors"
	"github.com/FocuswithJustin/BrentonAudit/core/match"
)

// Run is one persisted audit run.
type Run struct {
	ID         string
	StartedAt  time.Time
	SourceHash string
	Tokens     int
	Findings   int
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// FingerprintFile hashes a file's contents with BLAKE3, for recording which
// source text a run audited.
func FingerprintFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.NewIO("open", path, err)
	}
	defer f.Close()

	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.NewIO("read", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Store persists run history and findings in SQLite.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	started_at  TEXT NOT NULL,
	source_hash TEXT NOT NULL,
	tokens      INTEGER NOT NULL,
	findings    INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS findings (
	run_id         TEXT NOT NULL REFERENCES runs(id),
	line           INTEGER NOT NULL,
	ref            TEXT NOT NULL,
	word           TEXT NOT NULL,
	classification TEXT NOT NULL,
	category       TEXT NOT NULL,
	matched_form   TEXT NOT NULL,
	score          REAL NOT NULL,
	scope          TEXT NOT NULL,
	proper_name    INTEGER NOT NULL,
	numeral        INTEGER NOT NULL,
	source         TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS findings_run ON findings(run_id);
`

// OpenStore opens (and if needed creates) the run store at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create schema")
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun records one run and its findings in a single transaction.
func (s *Store) SaveRun(ctx context.Context, run Run, findings []Finding) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, source_hash, tokens, findings) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt.UTC().Format(time.RFC3339), run.SourceHash, run.Tokens, len(findings))
	if err != nil {
		return errors.Wrap(err, "insert run")
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO findings
		 (run_id, line, ref, word, classification, category, matched_form, score, scope, proper_name, numeral, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "prepare findings insert")
	}
	defer stmt.Close()

	for _, f := range findings {
		_, err := stmt.ExecContext(ctx,
			run.ID, f.Line, f.Ref, f.Word, string(f.Classification), f.Category,
			f.MatchedForm, f.Score, string(f.Scope), boolInt(f.ProperName), boolInt(f.Numeral), f.Source)
		if err != nil {
			return errors.Wrap(err, "insert finding")
		}
	}

	return errors.Wrap(tx.Commit(), "commit run")
}

// Runs lists persisted runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, source_hash, tokens, findings FROM runs ORDER BY started_at DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "query runs")
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var started string
		if err := rows.Scan(&r.ID, &started, &r.SourceHash, &r.Tokens, &r.Findings); err != nil {
			return nil, errors.Wrap(err, "scan run")
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, started)
		out = append(out, r)
	}
	return out, rows.Err()
}

// FindingsForRun loads the findings recorded for one run.
func (s *Store) FindingsForRun(ctx context.Context, runID string) ([]Finding, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT line, ref, word, classification, category, matched_form, score, scope, proper_name, numeral, source
		 FROM findings WHERE run_id = ? ORDER BY line`, runID)
	if err != nil {
		return nil, errors.Wrap(err, "query findings")
	}
	defer rows.Close()

	var out []Finding
	for rows.Next() {
		var f Finding
		var classification, scope string
		var proper, numeral int
		err := rows.Scan(&f.Line, &f.Ref, &f.Word, &classification, &f.Category,
			&f.MatchedForm, &f.Score, &scope, &proper, &numeral, &f.Source)
		if err != nil {
			return nil, errors.Wrap(err, "scan finding")
		}
		f.Classification = match.Classification(classification)
		f.Scope = match.Scope(scope)
		f.ProperName = proper != 0
		f.Numeral = numeral != 0
		out = append(out, f)
	}
	return out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
