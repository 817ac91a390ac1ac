// =============================================================================
// CMMC Assessment Importer - Assessment Store
// =============================================================================
//
// This module persists the three assessment maps and the import history in a
// local SQLite database:
//
//   assessment_status : objective id -> status enum
//   implementation    : objective id -> description/evidence/notes/responsible
//   remediation       : objective id -> POA&M status/due date/milestone
//   import_history    : append-only log of completed imports
//
// All rows are keyed by the canonical objective identifier string. A merge
// writes all three maps plus its history record inside one transaction, so
// a failed write never leaves the maps out of step with each other.
//
// =============================================================================

package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// =============================================================================
// ENTRY TYPES
// =============================================================================

// ImplementationEntry holds the free-text implementation detail for one
// objective. Empty fields mean "never recorded", not "cleared".
type ImplementationEntry struct {
	Description string
	Evidence    string
	Notes       string
	Responsible string
}

// RemediationEntry holds one POA&M item for an objective.
type RemediationEntry struct {
	// Status is one of "open", "in-progress", "completed".
	Status    string
	DueDate   string
	Milestone string
}

// HistoryRecord is one append-only import-history entry.
type HistoryRecord struct {
	ID        string
	Date      time.Time
	Source    string
	Matched   int
	Unmatched int
	Updated   int
}

// =============================================================================
// STORE
// =============================================================================

// Store is the SQLite-backed persistence layer for assessment state.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if necessary) the assessment database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// initialize creates the required tables.
func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS assessment_status (
		objective_id TEXT PRIMARY KEY,
		status       TEXT NOT NULL,
		updated_at   DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS implementation (
		objective_id TEXT PRIMARY KEY,
		description  TEXT NOT NULL DEFAULT '',
		evidence     TEXT NOT NULL DEFAULT '',
		notes        TEXT NOT NULL DEFAULT '',
		responsible  TEXT NOT NULL DEFAULT '',
		updated_at   DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS remediation (
		objective_id TEXT PRIMARY KEY,
		status       TEXT NOT NULL DEFAULT 'open',
		due_date     TEXT NOT NULL DEFAULT '',
		milestone    TEXT NOT NULL DEFAULT '',
		updated_at   DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS import_history (
		id         TEXT PRIMARY KEY,
		date       DATETIME NOT NULL,
		source     TEXT NOT NULL DEFAULT '',
		matched    INTEGER NOT NULL,
		unmatched  INTEGER NOT NULL,
		updated    INTEGER NOT NULL
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// =============================================================================
// LOADING
// =============================================================================

// LoadAssessmentStatus loads the full assessment-status map.
func (s *Store) LoadAssessmentStatus() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT objective_id, status FROM assessment_status`)
	if err != nil {
		return nil, fmt.Errorf("failed to load assessment status: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var id, status string
		if err := rows.Scan(&id, &status); err != nil {
			return nil, fmt.Errorf("failed to scan assessment status: %w", err)
		}
		out[id] = status
	}
	return out, rows.Err()
}

// LoadImplementation loads the full implementation-detail map.
func (s *Store) LoadImplementation() (map[string]ImplementationEntry, error) {
	rows, err := s.db.Query(`SELECT objective_id, description, evidence, notes, responsible FROM implementation`)
	if err != nil {
		return nil, fmt.Errorf("failed to load implementation entries: %w", err)
	}
	defer rows.Close()

	out := make(map[string]ImplementationEntry)
	for rows.Next() {
		var id string
		var e ImplementationEntry
		if err := rows.Scan(&id, &e.Description, &e.Evidence, &e.Notes, &e.Responsible); err != nil {
			return nil, fmt.Errorf("failed to scan implementation entry: %w", err)
		}
		out[id] = e
	}
	return out, rows.Err()
}

// LoadRemediation loads the full remediation map.
func (s *Store) LoadRemediation() (map[string]RemediationEntry, error) {
	rows, err := s.db.Query(`SELECT objective_id, status, due_date, milestone FROM remediation`)
	if err != nil {
		return nil, fmt.Errorf("failed to load remediation entries: %w", err)
	}
	defer rows.Close()

	out := make(map[string]RemediationEntry)
	for rows.Next() {
		var id string
		var e RemediationEntry
		if err := rows.Scan(&id, &e.Status, &e.DueDate, &e.Milestone); err != nil {
			return nil, fmt.Errorf("failed to scan remediation entry: %w", err)
		}
		out[id] = e
	}
	return out, rows.Err()
}

// =============================================================================
// SAVING
// =============================================================================

// SaveMerge upserts every entry of the three maps and appends the history
// record, all in a single transaction.
func (s *Store) SaveMerge(
	status map[string]string,
	impl map[string]ImplementationEntry,
	rem map[string]RemediationEntry,
	record HistoryRecord,
) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for id, st := range status {
		if _, err := tx.Exec(`
			INSERT INTO assessment_status (objective_id, status, updated_at)
			VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(objective_id) DO UPDATE SET
				status = excluded.status, updated_at = CURRENT_TIMESTAMP`,
			id, st); err != nil {
			return fmt.Errorf("failed to save assessment status for %s: %w", id, err)
		}
	}

	for id, e := range impl {
		if _, err := tx.Exec(`
			INSERT INTO implementation (objective_id, description, evidence, notes, responsible, updated_at)
			VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(objective_id) DO UPDATE SET
				description = excluded.description,
				evidence    = excluded.evidence,
				notes       = excluded.notes,
				responsible = excluded.responsible,
				updated_at  = CURRENT_TIMESTAMP`,
			id, e.Description, e.Evidence, e.Notes, e.Responsible); err != nil {
			return fmt.Errorf("failed to save implementation entry for %s: %w", id, err)
		}
	}

	for id, e := range rem {
		if _, err := tx.Exec(`
			INSERT INTO remediation (objective_id, status, due_date, milestone, updated_at)
			VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(objective_id) DO UPDATE SET
				status     = excluded.status,
				due_date   = excluded.due_date,
				milestone  = excluded.milestone,
				updated_at = CURRENT_TIMESTAMP`,
			id, e.Status, e.DueDate, e.Milestone); err != nil {
			return fmt.Errorf("failed to save remediation entry for %s: %w", id, err)
		}
	}

	if _, err := tx.Exec(`
		INSERT INTO import_history (id, date, source, matched, unmatched, updated)
		VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID, record.Date.UTC(), record.Source,
		record.Matched, record.Unmatched, record.Updated); err != nil {
		return fmt.Errorf("failed to append import history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit merge: %w", err)
	}
	return nil
}

// =============================================================================
// HISTORY
// =============================================================================

// History returns all import-history records, most recent first.
func (s *Store) History() ([]HistoryRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, date, source, matched, unmatched, updated
		FROM import_history ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to load import history: %w", err)
	}
	defer rows.Close()

	var out []HistoryRecord
	for rows.Next() {
		var r HistoryRecord
		if err := rows.Scan(&r.ID, &r.Date, &r.Source, &r.Matched, &r.Unmatched, &r.Updated); err != nil {
			return nil, fmt.Errorf("failed to scan history record: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
