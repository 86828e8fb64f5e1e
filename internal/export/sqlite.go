package export

import (
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/fenglish/internal"
)

// WriteSQLite appends all results to the SQLite database at path, creating
// the schema on first use. Each call is recorded as a run.
func (e *Exporter) WriteSQLite(path string) error {
	dsn, err := sqliteDSN(path, "")
	if err != nil {
		return err
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := createTables(db); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := e.insertRun(tx); err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	if err := e.insertResults(tx); err != nil {
		return fmt.Errorf("failed to insert results: %w", err)
	}

	return tx.Commit()
}

// sqliteDSN turns path into a file: URI so that '?', '#' and '%' in the
// path are escaped instead of being read as URI syntax
func sqliteDSN(path, query string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve database path: %w", err)
	}

	u := url.URL{
		Scheme:   "file",
		Path:     filepath.ToSlash(abs),
		RawQuery: query,
	}
	return u.String(), nil
}

// createTables creates the export schema if it does not exist yet
func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id text PRIMARY KEY,
			created integer NOT NULL,
			version text NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS phrases (
			id integer PRIMARY KEY AUTOINCREMENT,
			run_id text NOT NULL,
			phrase text NOT NULL,
			note text NOT NULL,
			total integer NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS variants (
			phrase_id integer NOT NULL,
			rank integer NOT NULL,
			spelling text NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS ix_phrases_run ON phrases (run_id)`,
		`CREATE INDEX IF NOT EXISTS ix_variants_spelling ON variants (spelling)`,
		`CREATE INDEX IF NOT EXISTS ix_variants_phrase ON variants (phrase_id)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}

func (e *Exporter) insertRun(tx *sql.Tx) error {
	_, err := tx.Exec(`INSERT INTO runs (id, created, version) VALUES (?, ?, ?)`,
		e.runID, time.Now().Unix(), internal.Version)
	return err
}

func (e *Exporter) insertResults(tx *sql.Tx) error {
	phraseStmt, err := tx.Prepare(`INSERT INTO phrases (run_id, phrase, note, total) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer phraseStmt.Close()

	variantStmt, err := tx.Prepare(`INSERT INTO variants (phrase_id, rank, spelling) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer variantStmt.Close()

	for _, r := range e.results {
		res, err := phraseStmt.Exec(e.runID, r.Phrase, r.Note, r.Total)
		if err != nil {
			return err
		}
		phraseID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for i, v := range r.Variants {
			if _, err := variantStmt.Exec(phraseID, i+1, v); err != nil {
				return err
			}
		}
	}

	return nil
}

// LookupSQLite returns the distinct phrases in the database at path that
// have spelling among their variants, in the order they were first stored.
func LookupSQLite(path, spelling string) ([]string, error) {
	dsn, err := sqliteDSN(path, "mode=ro")
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT p.phrase
		FROM variants v JOIN phrases p ON p.id = v.phrase_id
		WHERE v.spelling = ?
		GROUP BY p.phrase
		ORDER BY MIN(p.id)`, spelling)
	if err != nil {
		return nil, fmt.Errorf("failed to query variants: %w", err)
	}
	defer rows.Close()

	var phrases []string
	for rows.Next() {
		var phrase string
		if err := rows.Scan(&phrase); err != nil {
			return nil, err
		}
		phrases = append(phrases, phrase)
	}

	return phrases, rows.Err()
}
